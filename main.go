package main

import (
	"github.com/billfold/backend/cmd"
)

func main() {
	cmd.Execute()
}
