package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
	"eventdeck/internal/service"
	"eventdeck/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	comparePassword = service.ComparePassword
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
	getUserByName = store.GetUserByName
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid request payload")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"a@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("hash error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"a@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
			return nil, store.ErrDuplicate
		}
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"a@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "already registered")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, _ *model.User) (*model.User, error) {
			return nil, errors.New("c")
		}
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"a@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "c\"")
	})

	t.Run("success lowercases email and returns token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		hashPassword = func(p string) (string, error) { require.Equal(t, "Secret123!", p); return "h", nil }
		var gotEmail string
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			gotEmail = u.Email
			u.ID = 1
			u.CreatedAt = now
			return u, nil
		}
		issueAccessToken = func(id int, role string, _ time.Duration) (string, error) {
			require.Equal(t, 1, id)
			require.Equal(t, service.RoleUser, role)
			return "tok", nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"Alice@EXAMPLE.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "alice@example.com", gotEmail)
		require.Contains(t, rec.Body.String(), "\"access_token\":\"tok\"")
	})

	t.Run("token error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createUser = func(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
			u.ID = 1
			return u, nil
		}
		issueAccessToken = func(int, string, time.Duration) (string, error) { return "", errors.New("t") }
		ctx, rec := newJSONCtx(e, `{"name":"a","email":"a@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("unknown user", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByName = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, `{"name":"a","password":"p"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid credentials")
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByName = func(_ context.Context, _ database.DB, _ string) (*model.User, error) {
			return &model.User{ID: 1, Name: "a", PasswordHash: "h"}, nil
		}
		comparePassword = func(hash, password string) error { return errors.New("mismatch") }
		ctx, rec := newJSONCtx(e, `{"name":"a","password":"bad"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByName = func(_ context.Context, _ database.DB, name string) (*model.User, error) {
			require.Equal(t, "a", name)
			return &model.User{ID: 1, Name: "a", Email: "a@b.com", PasswordHash: "h"}, nil
		}
		comparePassword = func(hash, password string) error {
			require.Equal(t, "h", hash)
			require.Equal(t, "p", password)
			return nil
		}
		issueAccessToken = func(id int, role string, _ time.Duration) (string, error) {
			require.Equal(t, service.RoleUser, role)
			return "tok", nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"a","password":"p"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"access_token\":\"tok\"")
	})
}
