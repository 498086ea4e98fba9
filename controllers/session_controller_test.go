package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/vulify/auth"
	"github.com/l3montree-dev/vulify/database/models"
	"github.com/l3montree-dev/vulify/dtos"
	"github.com/l3montree-dev/vulify/mocks"
	"github.com/l3montree-dev/vulify/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestLogin(t *testing.T) {
	t.Run("should reject a malformed email", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/", `{"email": "not-an-email"}`)

		h := NewSessionController(nil, nil, "test-secret")
		err := h.Login(ctx)
		assert.Error(t, err)
		assert.Equal(t, 400, err.(*echo.HTTPError).Code)
	})

	t.Run("should record a failed login for an unknown email", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("ReadByEmail", "ghost@vulify.io").Return(models.User{}, gorm.ErrRecordNotFound)
		auditRecorder := mocks.NewAuditRecorder(t)
		auditRecorder.On("Record", mock.MatchedBy(func(event models.AuditLog) bool {
			return event.EventType == models.EventTypeFailedLogin && event.Status == models.AuditLogStatusFailed
		})).Return()

		ctx, _ := newJSONContext(http.MethodPost, "/", `{"email": "ghost@vulify.io"}`)

		h := NewSessionController(userRepository, auditRecorder, "test-secret")
		err := h.Login(ctx)
		assert.Error(t, err)
		assert.Equal(t, 404, err.(*echo.HTTPError).Code)
	})

	t.Run("should mint a session token and set the cookie", func(t *testing.T) {
		user := models.User{
			Model: models.Model{ID: uuid.New()},
			Email: "admin@vulify.io",
			Role:  "admin",
		}
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("ReadByEmail", "admin@vulify.io").Return(user, nil)

		ctx, rec := newJSONContext(http.MethodPost, "/", `{"email": "admin@vulify.io"}`)

		h := NewSessionController(userRepository, nil, "test-secret")
		assert.NoError(t, h.Login(ctx))
		assert.Equal(t, 200, rec.Code)

		var res struct {
			Token string       `json:"token"`
			User  dtos.UserDTO `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "admin@vulify.io", res.User.Email)

		session, err := auth.VerifySession("test-secret", res.Token)
		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), session.GetUserID())

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.Equal(t, res.Token, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})
}

func TestWhoami(t *testing.T) {
	t.Run("should return the current user profile", func(t *testing.T) {
		user := models.User{
			Model:    models.Model{ID: uuid.New()},
			Email:    "admin@vulify.io",
			FullName: "Alex Morgan",
		}
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", user.ID).Return(user, nil)

		ctx, rec := newJSONContext(http.MethodGet, "/", "")
		shared.SetSession(ctx, auth.NewSession(user.ID.String(), user.Email))

		h := NewSessionController(userRepository, nil, "test-secret")
		assert.NoError(t, h.Whoami(ctx))

		var res dtos.UserDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Alex Morgan", res.FullName)
	})
}

func TestUpdateMe(t *testing.T) {
	t.Run("should patch profile fields and persist", func(t *testing.T) {
		user := models.User{
			Model:    models.Model{ID: uuid.New()},
			Email:    "admin@vulify.io",
			FullName: "Alex Morgan",
		}
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", user.ID).Return(user, nil)
		userRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{"fullName": "Alex M. Morgan", "phone": "+49 30 1234567"}`)
		shared.SetSession(ctx, auth.NewSession(user.ID.String(), user.Email))

		h := NewSessionController(userRepository, nil, "test-secret")
		assert.NoError(t, h.UpdateMe(ctx))

		var res dtos.UserDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Alex M. Morgan", res.FullName)
		assert.Equal(t, "+49 30 1234567", res.Phone)
	})

	t.Run("should skip the save on an empty patch", func(t *testing.T) {
		user := models.User{Model: models.Model{ID: uuid.New()}, Email: "admin@vulify.io"}
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", user.ID).Return(user, nil)

		ctx, rec := newJSONContext(http.MethodPatch, "/", `{}`)
		shared.SetSession(ctx, auth.NewSession(user.ID.String(), user.Email))

		h := NewSessionController(userRepository, nil, "test-secret")
		assert.NoError(t, h.UpdateMe(ctx))
		assert.Equal(t, 200, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("should clear the session cookie", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodDelete, "/", "")

		h := NewSessionController(nil, nil, "test-secret")
		assert.NoError(t, h.Logout(ctx))

		cookies := rec.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, auth.CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})
}
