package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/billfold/backend/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func runMigrate(_ *cobra.Command, _ []string) error {
	db, err := connect()
	if err != nil {
		return err
	}

	if err := models.Migrate(db); err != nil {
		return err
	}

	log.Info().Msg("database schema is up to date")
	return nil
}

// connect ensures the directory for a file-backed database exists, then
// opens it.
func connect() (*gorm.DB, error) {
	path := strings.SplitN(dsn, "?", 2)[0]
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(dsn, ":memory:") {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, err
		}
	}

	return models.Connect(dsn)
}
