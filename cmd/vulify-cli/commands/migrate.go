package commands

import (
	"log/slog"

	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	migrate := cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			if err := database.RunMigrations(db,
				&models.Customer{},
				&models.CustomerUser{},
				&models.EmailCommunication{},
				&models.Scan{},
				&models.ScanResult{},
				&models.VulnerabilityTemplate{},
				&models.VulnerabilityRemediation{},
				&models.RemediationStep{},
				&models.AuditLog{},
				&models.User{},
			); err != nil {
				slog.Error("could not run migrations", "err", err)
				return
			}

			slog.Info("migrations finished")
		},
	}

	return &migrate
}
