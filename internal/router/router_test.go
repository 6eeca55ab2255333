package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	adminhandler "github.com/athletex/gym-api/internal/handler/admin"
	authhandler "github.com/athletex/gym-api/internal/handler/auth"
	bookinghandler "github.com/athletex/gym-api/internal/handler/booking"
	contacthandler "github.com/athletex/gym-api/internal/handler/contact"
	healthhandler "github.com/athletex/gym-api/internal/handler/health"
	promhandler "github.com/athletex/gym-api/internal/handler/prometheus"
	trainerhandler "github.com/athletex/gym-api/internal/handler/trainer"
	membershiphandler "github.com/athletex/gym-api/internal/handler/membership"
	"github.com/athletex/gym-api/internal/model"
	apperrors "github.com/athletex/gym-api/pkg/errors"
)

type stubResolver struct{}

func (stubResolver) ResolveCaller(_ context.Context, token string) (*model.Caller, error) {
	switch token {
	case "member-token":
		return &model.Caller{UserID: uuid.New(), Email: "member@example.com", Role: model.RoleUser}, nil
	case "admin-token":
		return &model.Caller{UserID: uuid.New(), Email: "admin@example.com", Role: model.RoleAdmin}, nil
	}
	return nil, apperrors.Unauthorized("invalid token", nil)
}

// testRouter assembles the full route table; the nil services are never
// reached because every request below is rejected by the auth layer.
func testRouter() *Router {
	r := NewRouter(
		stubResolver{},
		healthhandler.NewHandler(nil),
		promhandler.New(),
		authhandler.NewHandler(nil),
		membershiphandler.NewHandler(nil),
		bookinghandler.NewHandler(nil),
		contacthandler.NewHandler(nil),
		trainerhandler.NewHandler(nil),
		adminhandler.NewHandler(nil),
		DefaultConfig(),
	)
	r.Setup()
	return r
}

func do(r *Router, method, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.Engine().ServeHTTP(w, req)
	return w
}

// The admin surface for shared resources lives on the resource's own
// path, not under /admin: unauthenticated requests must see 401 (the
// route exists and is gated), members 403.
func TestAdminEndpoints_DocumentedPaths(t *testing.T) {
	r := testRouter()

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/contact/all"},
		{http.MethodPatch, "/api/contact/" + uuid.NewString() + "/read"},
		{http.MethodDelete, "/api/contact/" + uuid.NewString()},
		{http.MethodPost, "/api/trainers"},
		{http.MethodGet, "/api/memberships"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/admin/bookings"},
	}

	for _, tc := range cases {
		w := do(r, tc.method, tc.path, "")
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s without token", tc.method, tc.path)

		w = do(r, tc.method, tc.path, "member-token")
		assert.Equalf(t, http.StatusForbidden, w.Code, "%s %s as member", tc.method, tc.path)
	}
}

func TestHealthEndpoint_Public(t *testing.T) {
	r := testRouter()

	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
