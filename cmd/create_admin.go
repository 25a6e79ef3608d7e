package cmd

import (
	"errors"

	"github.com/billfold/backend/internal/models"
	"github.com/billfold/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	adminPhone    string
	adminUsername string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Bootstrap the administrator account",
	Long: `Registration only ever creates regular users, so the administrator
account is seeded with this command.`,
	RunE: runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().StringVar(&adminPhone, "phone", "", "Phone number for the administrator")
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "Display name for the administrator")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Password for the administrator")
	_ = createAdminCmd.MarkFlagRequired("phone")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(_ *cobra.Command, _ []string) error {
	db, err := connect()
	if err != nil {
		return err
	}

	if err := models.Migrate(db); err != nil {
		return err
	}

	users := repository.NewUserRepository(db)
	if _, ok := users.QueryByPhone(adminPhone); ok {
		return errors.New("this phone number is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Phone:    adminPhone,
		Username: adminUsername,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Balance:  decimal.Zero,
	}
	if !users.Save(&admin) {
		return errors.New("could not save the administrator account")
	}

	log.Info().Int64("id", admin.ID).Str("phone", admin.Phone).Msg("administrator account created")
	return nil
}
