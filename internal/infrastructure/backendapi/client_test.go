package backendapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dias012rrr/fooddelivery/internal/domain"
	"github.com/dias012rrr/fooddelivery/internal/domain/entity"
	"github.com/dias012rrr/fooddelivery/internal/domain/repository"
	"github.com/dias012rrr/fooddelivery/internal/infrastructure/backendapi"
	"github.com/dias012rrr/fooddelivery/pkg/logger"
)

func orderFixture() entity.Order {
	return entity.Order{
		Customer:    "Ann",
		Email:       "ann@example.com",
		Phone:       "+15550001",
		Address:     "1 Main St",
		Total:       decimal.RequireFromString("16.50"),
		FoodItemIDs: []uint64{1, 2},
	}
}

func attachmentFixture(name, content string) []repository.Attachment {
	return []repository.Attachment{{Filename: name, Reader: strings.NewReader(content)}}
}

func newClient(t *testing.T, handler http.Handler) *backendapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backendapi.New(backendapi.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func TestMenuClient_List(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/menu", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Borscht", "price": "7.50", "category": "main-courses"},
			{"id": 2, "name": "Blini", "price": "4.25", "category": "desserts"},
		})
	}))

	items, err := backendapi.NewMenuClient(c).List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Borscht", items[0].Name)
	assert.Equal(t, "7.5", items[0].Price.String())
}

func TestMenuClient_GetByID_NotFound(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"no such item"}`, http.StatusNotFound)
	}))

	_, err := backendapi.NewMenuClient(c).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMenuClient_ListPage_QueryAndShape(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/items", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "price", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("sortDir"))
		assert.Equal(t, "Soup", q.Get("filter"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data":  []map[string]any{{"id": 6, "name": "Soup"}},
			"total": 11,
		})
	}))

	page, err := backendapi.NewMenuClient(c).ListPage(context.Background(), 2, 5, "price", "desc", "Soup")
	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, uint64(6), page.Items[0].ID)
}

func TestAccountClient_Login_FlatUserVariant(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body["email"])
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Ann", "email": "ann@example.com"})
	}))

	sess, err := backendapi.NewAccountClient(c).Login(context.Background(), "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), sess.User.ID)
	assert.Empty(t, sess.Token)
}

func TestAccountClient_Login_WrappedVariantWithToken(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": 7, "email": "ann@example.com"},
			"token": "tok-1",
		})
	}))

	sess, err := backendapi.NewAccountClient(c).Login(context.Background(), "ann@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), sess.User.ID)
	assert.Equal(t, "tok-1", sess.Token)
}

func TestAccountClient_Login_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusForbidden, domain.ErrEmailNotVerified},
		{http.StatusUnauthorized, domain.ErrInvalidCredentials},
		{http.StatusNotFound, domain.ErrInvalidCredentials},
		{http.StatusBadRequest, domain.ErrInvalidCredentials},
	}
	for _, tc := range cases {
		c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"nope"}`, tc.status)
		}))
		_, err := backendapi.NewAccountClient(c).Login(context.Background(), "ann@example.com", "secret")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
	}
}

func TestAccountClient_Register_Conflict(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"email already registered"}`, http.StatusConflict)
	}))

	err := backendapi.NewAccountClient(c).Register(context.Background(), "Ann", "ann@example.com", "+15550001", "secret")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAccountClient_CheckAuth(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/check", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "email": "ann@example.com"})
	}))

	user, err := backendapi.NewAccountClient(c).CheckAuth(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestAccountClient_CheckAuth_RateLimited(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := backendapi.NewAccountClient(c).CheckAuth(context.Background(), "tok-1")
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestAccountClient_CheckAuth_Rejected(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := backendapi.NewAccountClient(c).CheckAuth(context.Background(), "tok-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderClient_Create(t *testing.T) {
	var got map[string]any
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	order := orderFixture()
	require.NoError(t, backendapi.NewOrderClient(c).Create(context.Background(), order))
	assert.Equal(t, "Ann", got["customer"])
	assert.Contains(t, got, "food_items")
}

func TestSupportClient_SendMultipart(t *testing.T) {
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/support", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "ann@example.com", r.FormValue("email"))
		assert.Equal(t, "It is broken", r.FormValue("message"))
		files := r.MultipartForm.File["attachments"]
		require.Len(t, files, 1)
		assert.Equal(t, "shot.png", files[0].Filename)
	}))

	err := backendapi.NewSupportClient(c).Send(context.Background(), "ann@example.com", "It is broken", attachmentFixture("shot.png", "pixels"))
	require.NoError(t, err)
}

func TestClient_BackendDownMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listening anymore

	c := backendapi.New(backendapi.Config{
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, logger.New(logger.Config{Env: "test", Level: "error"}))

	_, err := backendapi.NewMenuClient(c).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_CircuitOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := backendapi.New(backendapi.Config{
		BaseURL: srv.URL,
		Timeout: time.Second,
	}, logger.New(logger.Config{Env: "test", Level: "error"}))
	menu := backendapi.NewMenuClient(c)

	for i := 0; i < 6; i++ {
		_, err := menu.List(context.Background())
		require.ErrorIs(t, err, domain.ErrBackendUnavailable)
	}
}
