package router

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/core/database"
	"go-user-api-starter/internal/domain"
	"go-user-api-starter/internal/repo"
	"go-user-api-starter/internal/service"
)

func newAdminEngine(t *testing.T) (*gin.Engine, *service.UserService, *auth.JWTer) {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	jwter := &auth.JWTer{
		Secret: []byte("test-secret-at-least-16-chars"),
		Issuer: "user-api-test",
		TTL:    time.Hour,
	}
	svc := service.NewUserService(repo.NewUserRepo(db), auth.SHA256Hasher{}, jwter, nil)
	return NewAdminEngine(zap.NewNop(), svc, jwter), svc, jwter
}

func bearer(t *testing.T, jwter *auth.JWTer) map[string]string {
	t.Helper()
	token, err := jwter.Issue(1, "ops@example.com")
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdmin_RequiresToken(t *testing.T) {
	r, _, _ := newAdminEngine(t)

	w := doJSON(t, r, http.MethodGet, "/admin/v1/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_ListAndStats(t *testing.T) {
	r, svc, jwter := newAdminEngine(t)
	ctx := t.Context()

	_, err := svc.Register(ctx, "alice@example.com", nil, "pw")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "bob@example.com", nil, "pw")
	require.NoError(t, err)

	hdr := bearer(t, jwter)

	w := doJSON(t, r, http.MethodGet, "/admin/v1/users?limit=1&q=bob", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list struct {
		Total int64               `json:"total"`
		Items []domain.PublicUser `json:"items"`
	}
	decode(t, w, &list)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "bob@example.com", list.Items[0].Email)

	w = doJSON(t, r, http.MethodGet, "/admin/v1/stats", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":2}`, w.Body.String())
}

func TestAdmin_DeleteUser(t *testing.T) {
	r, svc, jwter := newAdminEngine(t)

	u, err := svc.Register(t.Context(), "alice@example.com", nil, "pw")
	require.NoError(t, err)
	hdr := bearer(t, jwter)
	path := fmt.Sprintf("/admin/v1/users/%d", u.ID)

	w := doJSON(t, r, http.MethodDelete, path, nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, path, nil, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
