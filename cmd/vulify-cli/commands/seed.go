package commands

import (
	"log/slog"

	"github.com/l3montree-dev/vulify/database/repositories"
	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Load the sample dataset into the database",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			shared.LoadConfig() // nolint
			db, err := shared.DatabaseFactory()
			if err != nil {
				slog.Error("could not connect to database", "err", err)
				return
			}

			sampleDataService := services.NewSampleDataService(
				repositories.NewCustomerRepository(db),
				repositories.NewCustomerUserRepository(db),
				repositories.NewEmailCommunicationRepository(db),
				repositories.NewScanRepository(db),
				repositories.NewScanResultRepository(db),
				repositories.NewVulnerabilityTemplateRepository(db),
				repositories.NewVulnerabilityRemediationRepository(db),
				repositories.NewAuditLogRepository(db),
				repositories.NewUserRepository(db),
			)

			if _, err := sampleDataService.SeedUsers(); err != nil {
				slog.Error("could not seed users", "err", err)
				return
			}

			customers, err := sampleDataService.SeedCustomers()
			if err != nil {
				slog.Error("could not seed customers", "err", err)
				return
			}

			for _, customer := range customers {
				if _, err := sampleDataService.SeedCustomerUsers(customer); err != nil {
					slog.Error("could not seed customer users", "customer", customer.CompanyName, "err", err)
					return
				}
				if _, err := sampleDataService.SeedEmails(customer); err != nil {
					slog.Error("could not seed emails", "customer", customer.CompanyName, "err", err)
					return
				}
			}

			if _, err := sampleDataService.SeedScans(); err != nil {
				slog.Error("could not seed scans", "err", err)
				return
			}
			if _, err := sampleDataService.SeedTemplates(); err != nil {
				slog.Error("could not seed vulnerability templates", "err", err)
				return
			}
			if _, err := sampleDataService.SeedRemediations(); err != nil {
				slog.Error("could not seed remediations", "err", err)
				return
			}
			if _, err := sampleDataService.SeedAuditLogs(); err != nil {
				slog.Error("could not seed audit logs", "err", err)
				return
			}

			slog.Info("sample data loaded", "customers", len(customers))
		},
	}

	return &seed
}
