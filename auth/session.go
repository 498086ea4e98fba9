// Copyright (C) 2025 Tim Bastin, l3montree GmbH
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

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// CookieName is where the SPA keeps its session token. A bearer header
// works as well, the middleware checks both.
const CookieName = "vulify_session"

// SessionTTL bounds both the JWT expiry and the cookie lifetime.
const SessionTTL = 24 * time.Hour

type Session struct {
	userID string
	email  string
}

func NewSession(userID, email string) Session {
	return Session{userID: userID, email: email}
}

func (s Session) GetUserID() string {
	return s.userID
}

func (s Session) GetEmail() string {
	return s.email
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignSession mints a stateless session token for the given admin user.
func SignSession(secret string, userID, email string, now time.Time) (string, error) {
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			Issuer:    "vulify",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySession parses and validates a session token and returns the
// session it encodes.
func VerifySession(secret, tokenString string) (Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Session{}, errors.Wrap(err, "could not parse session token")
	}
	if !token.Valid {
		return Session{}, errors.New("invalid session token")
	}

	return NewSession(claims.Subject, claims.Email), nil
}
