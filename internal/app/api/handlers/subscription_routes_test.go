package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	mw "github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/api/middleware"
	subsvc "github.com/Mehulsingh1010/Serenity-AI-sub000/internal/app/service/subscription"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/config"
)

func newSubscriptionRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Subscription: config.SubscriptionConfig{FreeTierLimit: 5}}
	gate := subsvc.NewService(store, cfg, zap.NewNop().Sugar())

	r := gin.New()
	authed := r.Group("/api/v1")
	authed.Use(mw.AuthMiddleware(testSecret))
	RegisterSubscriptionRoutes(authed, gate)
	return r
}

func getStatus(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/subscription/status", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiSubscriptionStatus_RequiresAuth(t *testing.T) {
	r := newSubscriptionRouter(&stubStore{})
	require.Equal(t, http.StatusUnauthorized, getStatus(r, "").Code)
}

func TestApiSubscriptionStatus_FreeTier(t *testing.T) {
	r := newSubscriptionRouter(&stubStore{count: 5})

	w := getStatus(r, signToken(t, jwt.MapClaims{"sub": "user-1"}))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"isSubscribed":false,"entriesUsed":5,"entriesRemaining":0}`, w.Body.String())
}

func TestApiSubscriptionStatus_SubscriberFromClaims(t *testing.T) {
	r := newSubscriptionRouter(&stubStore{count: 12})

	w := getStatus(r, signToken(t, jwt.MapClaims{"sub": "user-1", "plan": "premium", "status": "active"}))
	require.Equal(t, http.StatusOK, w.Code)
	// A subscriber over the free-tier limit must not be reported as out of
	// quota; the remaining figure is omitted entirely.
	require.JSONEq(t, `{"isSubscribed":true,"entriesUsed":12}`, w.Body.String())
}

func TestApiSubscriptionStatus_InactivePlanIsNotSubscribed(t *testing.T) {
	r := newSubscriptionRouter(&stubStore{count: 1})

	w := getStatus(r, signToken(t, jwt.MapClaims{"sub": "user-1", "plan": "premium", "status": "canceled"}))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"isSubscribed":false`)
}
