package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrPhoneNotUnique     = errors.New("the phone number is already registered")
	ErrEventNameNotUnique = errors.New("an event with this name already exists")
)
