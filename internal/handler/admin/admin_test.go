package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
	"eventdeck/internal/service"
	"eventdeck/internal/store"

	"github.com/google/uuid"
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
	createAdmin = store.CreateAdmin
	getAdminByName = store.GetAdminByName
	createEvent = store.CreateEvent
	deleteEvent = store.DeleteEvent
	newPosterKeyID = uuid.NewString
}

func TestRegisterHandler(t *testing.T) {
	e := echo.New()

	t.Run("duplicate registration", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		hashPassword = func(string) (string, error) { return "h", nil }
		createAdmin = func(_ context.Context, _ database.DB, _ *model.Admin) (*model.Admin, error) {
			return nil, store.ErrDuplicate
		}
		ctx, rec := newJSONCtx(e, `{"name":"root","email":"root@b.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "already registered")
	})

	t.Run("success issues admin token", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		now := time.Now().UTC()
		hashPassword = func(string) (string, error) { return "h", nil }
		createAdmin = func(_ context.Context, _ database.DB, a *model.Admin) (*model.Admin, error) {
			require.Equal(t, "root@b.com", a.Email)
			a.ID = 2
			a.CreatedAt = now
			return a, nil
		}
		issueAccessToken = func(id int, role string, _ time.Duration) (string, error) {
			require.Equal(t, 2, id)
			require.Equal(t, service.RoleAdmin, role)
			return "tok", nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"root","email":"Root@B.com","password":"Secret123!"}`)
		err := RegisterHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "\"access_token\":\"tok\"")
	})
}

func TestLoginHandler(t *testing.T) {
	e := echo.New()

	t.Run("unknown admin", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getAdminByName = func(_ context.Context, _ database.DB, _ string) (*model.Admin, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newJSONCtx(e, `{"name":"root","password":"p"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getAdminByName = func(_ context.Context, _ database.DB, _ string) (*model.Admin, error) {
			return &model.Admin{ID: 2, Name: "root", Email: "root@b.com", PasswordHash: "h"}, nil
		}
		comparePassword = func(hash, password string) error { return nil }
		issueAccessToken = func(id int, role string, _ time.Duration) (string, error) {
			require.Equal(t, service.RoleAdmin, role)
			return "tok", nil
		}
		ctx, rec := newJSONCtx(e, `{"name":"root","password":"p"}`)
		err := LoginHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
