package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarthub/restaurant-backend/internal/cart"
	"github.com/smarthub/restaurant-backend/internal/chat"
	"github.com/smarthub/restaurant-backend/internal/llm"
	"github.com/smarthub/restaurant-backend/internal/menu"
)

const testJWTSecret = "super-secret-jwt-token"

type stubMenuRepo struct{}

func (stubMenuRepo) List(context.Context, string) ([]menu.Item, error) {
	return []menu.Item{{ID: "menu-1", Name: "Margherita", Category: "Pizza"}}, nil
}
func (stubMenuRepo) Categories(context.Context) ([]string, error) { return []string{"Pizza"}, nil }
func (stubMenuRepo) Search(context.Context, []string, int) ([]menu.GroundingItem, error) {
	return nil, nil
}
func (stubMenuRepo) Sample(context.Context, int) ([]menu.GroundingItem, error) { return nil, nil }
func (stubMenuRepo) PricesByID(context.Context, []string) (map[string]float64, error) {
	return nil, nil
}

type stubLLM struct{}

func (stubLLM) Complete(context.Context, llm.Request) (llm.Response, error) {
	return llm.Response{Text: "Hello!"}, nil
}

type stubCartRepo struct{}

func (stubCartRepo) ListByUser(context.Context, string) ([]cart.Item, error) { return nil, nil }
func (stubCartRepo) Upsert(context.Context, string, string, int) (*cart.Item, error) {
	return &cart.Item{ID: "cart-1"}, nil
}
func (stubCartRepo) UpdateQuantity(context.Context, string, string, int) (*cart.Item, error) {
	return &cart.Item{ID: "cart-1"}, nil
}
func (stubCartRepo) Delete(context.Context, string, string) error { return nil }

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := stubMenuRepo{}
	chatSvc := chat.NewService(stubLLM{}, repo, chat.DefaultInfo(), nil)
	return New(&Config{
		MenuHandler:       menu.NewHandler(repo, nil),
		ChatHandler:       chat.NewHandler(chatSvc, nil),
		CartHandler:       cart.NewHandler(stubCartRepo{}, nil),
		SupabaseJWTSecret: testJWTSecret,
	})
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestPublicMenuRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Margherita")
}

func TestPublicChatRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"Hello there"}`))
	testRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello!")
}

func TestCartRequiresAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartWithToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
