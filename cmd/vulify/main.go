// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/vulify/cmd/vulify/api"
	"github.com/l3montree-dev/vulify/controllers"
	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/database/repositories"
	"github.com/l3montree-dev/vulify/router"
	"github.com/l3montree-dev/vulify/services"
	"github.com/l3montree-dev/vulify/shared"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

//	@title			vulify admin API
//	@version		v1
//	@description	vulify admin API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	db, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
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
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	// without a user row nobody can log in, so bootstrap one from env
	if adminEmail := os.Getenv("ADMIN_EMAIL"); adminEmail != "" {
		if _, err := services.EnsureAdminUser(repositories.NewUserRepository(db), adminEmail, os.Getenv("ADMIN_NAME")); err != nil {
			slog.Error("failed to bootstrap admin user", "error", err)
			panic(errors.New("Failed to bootstrap admin user"))
		}
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.Module,
		router.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(sessionRouter router.SessionRouter) {}),
		fx.Invoke(func(customerRouter router.CustomerRouter) {}),
		fx.Invoke(func(scanRouter router.ScanRouter) {}),
		fx.Invoke(func(knowledgeBaseRouter router.KnowledgeBaseRouter) {}),
		fx.Invoke(func(auditLogRouter router.AuditLogRouter) {}),
		fx.Invoke(func(statisticsRouter router.StatisticsRouter) {}),
		fx.Invoke(func(sampleDataRouter router.SampleDataRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		Debug: environment == "dev",

		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init error tracking", "err", err)
	}
}
