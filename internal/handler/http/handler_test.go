package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/Vanshika394/sweet-shop-manager/internal/logger"
	"github.com/Vanshika394/sweet-shop-manager/internal/service"
	"github.com/Vanshika394/sweet-shop-manager/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	verifyTokenFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, req)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token"}, nil
}

func (m *mockAuthService) VerifyToken(ctx context.Context, tokenString string) (models.User, error) {
	if m.verifyTokenFn != nil {
		return m.verifyTokenFn(ctx, tokenString)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.InventoryService
// ─────────────────────────────────────────────

type mockInventoryService struct {
	listFn     func(ctx context.Context) ([]models.Sweet, error)
	searchFn   func(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	createFn   func(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error)
	updateFn   func(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error)
	deleteFn   func(ctx context.Context, id int64) error
	purchaseFn func(ctx context.Context, id, quantity int64) (models.Sweet, error)
	restockFn  func(ctx context.Context, id, quantity int64) (models.Sweet, error)
}

func (m *mockInventoryService) List(ctx context.Context) ([]models.Sweet, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockInventoryService) Search(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockInventoryService) Create(ctx context.Context, req models.CreateSweetRequest) (models.Sweet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, req)
	}
	return models.Sweet{}, nil
}

func (m *mockInventoryService) Update(ctx context.Context, id int64, req models.UpdateSweetRequest) (models.Sweet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.Sweet{}, nil
}

func (m *mockInventoryService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockInventoryService) Purchase(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	if m.purchaseFn != nil {
		return m.purchaseFn(ctx, id, quantity)
	}
	return models.Sweet{}, nil
}

func (m *mockInventoryService) Restock(ctx context.Context, id, quantity int64) (models.Sweet, error) {
	if m.restockFn != nil {
		return m.restockFn(ctx, id, quantity)
	}
	return models.Sweet{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) Version(ctx context.Context) string {
	if m.version == "" {
		return "N/A"
	}
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(auth *mockAuthService, inventory *mockInventoryService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if inventory == nil {
		inventory = &mockInventoryService{}
	}

	return &Handler{
		services: &service.Services{
			AuthService:      auth,
			InventoryService: inventory,
			AppInfoService:   &mockAppInfoService{version: "1.0.0"},
		},
		validate: validator.New(),
		logger:   logger.Nop(),
	}
}

// serve runs the request through the full route tree, middleware included.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, req)
	return recorder
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	require.NotNil(t, h)
	require.NotNil(t, h.validate)
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	recorder := serve(h, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok","version":"1.0.0"}`, recorder.Body.String())
}
