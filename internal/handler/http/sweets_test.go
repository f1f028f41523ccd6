package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshika394/sweet-shop-manager/internal/store"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

// userToken wires a VerifyToken stub resolving any bearer token to the
// given user, so route tests can focus on the handler under test.
func userToken(user models.User) *mockAuthService {
	return &mockAuthService{
		verifyTokenFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

var (
	regularUser = models.User{ID: "user-id", Username: "john"}
	adminUser   = models.User{ID: "admin-id", Username: "boss", IsAdmin: true}
)

func TestListSweets(t *testing.T) {
	inventory := &mockInventoryService{
		listFn: func(_ context.Context) ([]models.Sweet, error) {
			return []models.Sweet{{ID: 1, Name: "Dark Truffle", Category: "chocolate", Price: 250, Quantity: 10}}, nil
		},
	}
	h := newTestHandler(userToken(regularUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodGet, "/api/sweets", nil))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var sweets []models.Sweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sweets))
	require.Len(t, sweets, 1)
	assert.Equal(t, "Dark Truffle", sweets[0].Name)
}

func TestSearchSweets_ParsesFilter(t *testing.T) {
	var captured models.SweetFilter
	inventory := &mockInventoryService{
		searchFn: func(_ context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
			captured = filter
			return []models.Sweet{}, nil
		},
	}
	h := newTestHandler(userToken(regularUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodGet, "/api/sweets/search?query=truffle&category=chocolate&minPrice=100&maxPrice=300", nil))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "truffle", captured.Query)
	assert.Equal(t, "chocolate", captured.Category)
	require.NotNil(t, captured.MinPrice)
	require.NotNil(t, captured.MaxPrice)
	assert.Equal(t, int64(100), *captured.MinPrice)
	assert.Equal(t, int64(300), *captured.MaxPrice)
}

func TestSearchSweets_BadPriceBounds(t *testing.T) {
	h := newTestHandler(userToken(regularUser), nil)

	for _, target := range []string{
		"/api/sweets/search?minPrice=abc",
		"/api/sweets/search?maxPrice=12.5",
	} {
		req := authorized(httptest.NewRequest(http.MethodGet, target, nil))
		recorder := serve(h, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, target)
	}
}

func TestCreateSweet_AdminOnly(t *testing.T) {
	inventory := &mockInventoryService{
		createFn: func(_ context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
			return models.Sweet{ID: 1, Name: req.Name, Category: req.Category, Price: req.Price}, nil
		},
	}

	body := `{"name":"Dark Truffle","category":"chocolate","price":250}`

	// regular user is rejected by the admin gate
	h := newTestHandler(userToken(regularUser), inventory)
	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets", strings.NewReader(body)))
	recorder := serve(h, req)
	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"message":"Admin access required"}`, recorder.Body.String())

	// admin succeeds
	h = newTestHandler(userToken(adminUser), inventory)
	req = authorized(httptest.NewRequest(http.MethodPost, "/api/sweets", strings.NewReader(body)))
	recorder = serve(h, req)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var sweet models.Sweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sweet))
	assert.Equal(t, int64(1), sweet.ID)
}

func TestCreateSweet_ValidationFailures(t *testing.T) {
	h := newTestHandler(userToken(adminUser), nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"category":"chocolate","price":250}`},
		{"zero price", `{"name":"Dark Truffle","category":"chocolate","price":0}`},
		{"negative price", `{"name":"Dark Truffle","category":"chocolate","price":-5}`},
		{"negative quantity", `{"name":"Dark Truffle","category":"chocolate","price":250,"quantity":-1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets", strings.NewReader(tc.body)))
			recorder := serve(h, req)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

func TestUpdateSweet(t *testing.T) {
	inventory := &mockInventoryService{
		updateFn: func(_ context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error) {
			require.Equal(t, int64(1), id)
			require.NotNil(t, req.Price)
			return models.Sweet{ID: id, Name: "Dark Truffle", Price: *req.Price}, nil
		},
	}
	h := newTestHandler(userToken(adminUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/sweets/1", strings.NewReader(`{"price":300}`)))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var sweet models.Sweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sweet))
	assert.Equal(t, int64(300), sweet.Price)
}

func TestUpdateSweet_NotFound(t *testing.T) {
	inventory := &mockInventoryService{
		updateFn: func(_ context.Context, _ int64, _ models.UpdateSweetRequest) (models.Sweet, error) {
			return models.Sweet{}, store.ErrSweetNotFound
		},
	}
	h := newTestHandler(userToken(adminUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/sweets/42", strings.NewReader(`{"price":300}`)))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"message":"Sweet not found"}`, recorder.Body.String())
}

func TestUpdateSweet_BadID(t *testing.T) {
	h := newTestHandler(userToken(adminUser), nil)

	req := authorized(httptest.NewRequest(http.MethodPut, "/api/sweets/abc", strings.NewReader(`{"price":300}`)))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestDeleteSweet(t *testing.T) {
	inventory := &mockInventoryService{
		deleteFn: func(_ context.Context, id int64) error {
			require.Equal(t, int64(1), id)
			return nil
		},
	}
	h := newTestHandler(userToken(adminUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodDelete, "/api/sweets/1", nil))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestDeleteSweet_NotFound(t *testing.T) {
	inventory := &mockInventoryService{
		deleteFn: func(_ context.Context, _ int64) error {
			return store.ErrSweetNotFound
		},
	}
	h := newTestHandler(userToken(adminUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodDelete, "/api/sweets/42", nil))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPurchaseSweet_Success(t *testing.T) {
	inventory := &mockInventoryService{
		purchaseFn: func(_ context.Context, id, quantity int64) (models.Sweet, error) {
			require.Equal(t, int64(1), id)
			require.Equal(t, int64(3), quantity)
			return models.Sweet{ID: 1, Name: "Dark Truffle", Quantity: 7}, nil
		},
	}
	h := newTestHandler(userToken(regularUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/1/purchase", strings.NewReader(`{"quantity":3}`)))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var sweet models.Sweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sweet))
	assert.Equal(t, int64(7), sweet.Quantity)
}

func TestPurchaseSweet_InsufficientStock(t *testing.T) {
	inventory := &mockInventoryService{
		purchaseFn: func(_ context.Context, _, _ int64) (models.Sweet, error) {
			return models.Sweet{}, store.ErrInsufficientStock
		},
	}
	h := newTestHandler(userToken(regularUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/1/purchase", strings.NewReader(`{"quantity":100}`)))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"message":"Insufficient stock"}`, recorder.Body.String())
}

func TestPurchaseSweet_NotFound(t *testing.T) {
	inventory := &mockInventoryService{
		purchaseFn: func(_ context.Context, _, _ int64) (models.Sweet, error) {
			return models.Sweet{}, store.ErrSweetNotFound
		},
	}
	h := newTestHandler(userToken(regularUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/42/purchase", strings.NewReader(`{"quantity":1}`)))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"message":"Sweet not found"}`, recorder.Body.String())
}

func TestPurchaseSweet_NonPositiveQuantityRejectedBySchema(t *testing.T) {
	h := newTestHandler(userToken(regularUser), nil)

	for _, body := range []string{`{"quantity":0}`, `{"quantity":-2}`, `{}`} {
		req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/1/purchase", strings.NewReader(body)))
		recorder := serve(h, req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code, body)
	}
}

func TestRestockSweet_Success(t *testing.T) {
	inventory := &mockInventoryService{
		restockFn: func(_ context.Context, id, quantity int64) (models.Sweet, error) {
			require.Equal(t, int64(1), id)
			require.Equal(t, int64(20), quantity)
			return models.Sweet{ID: 1, Quantity: 25}, nil
		},
	}
	h := newTestHandler(userToken(adminUser), inventory)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/1/restock", strings.NewReader(`{"quantity":20}`)))
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var sweet models.Sweet
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &sweet))
	assert.Equal(t, int64(25), sweet.Quantity)
}

func TestRestockSweet_RequiresAdmin(t *testing.T) {
	h := newTestHandler(userToken(regularUser), nil)

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/sweets/1/restock", strings.NewReader(`{"quantity":20}`)))
	recorder := serve(h, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"message":"Admin access required"}`, recorder.Body.String())
}
