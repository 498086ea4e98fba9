// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package services

import (
	"errors"
	"log/slog"

	"github.com/l3montree-dev/vulify/database"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/shared"
	"gorm.io/gorm"
)

// EnsureAdminUser makes sure a login-capable admin account exists.
// Without at least one user row the session endpoint can never mint a
// session, so both the env bootstrap on startup and the seed command
// go through this.
func EnsureAdminUser(userRepository shared.UserRepository, email, fullName string) (models.User, error) {
	existing, err := userRepository.ReadByEmail(email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	if fullName == "" {
		fullName = "Administrator"
	}

	user := models.User{
		Email:                   email,
		FullName:                fullName,
		Role:                    "admin",
		NotificationPreferences: database.JSONB{"email_notifications": true, "security_alerts": true},
	}
	if err := userRepository.Create(nil, &user); err != nil {
		return models.User{}, err
	}

	slog.Info("created admin user", "email", email)
	return user, nil
}
