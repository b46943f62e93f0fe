package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/auth"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerFixture struct {
	router             *gin.Engine
	userUseCase        *usecasemocks.MockUserUseCase
	transactionUseCase *usecasemocks.MockTransactionUseCase
	tokenIssuer        *auth.JWTIssuer
}

func newRouterFixture(t *testing.T) routerFixture {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	userUseCase := usecasemocks.NewMockUserUseCase(t)
	transactionUseCase := usecasemocks.NewMockTransactionUseCase(t)
	tokenIssuer := auth.NewJWTIssuer("test-secret")

	router := gin.New()
	SetupMiddlewares(router, mockLogger)
	SetupRoutes(router,
		handler.NewUserHandler(userUseCase, mockLogger),
		handler.NewTransactionHandler(transactionUseCase, mockLogger),
		tokenIssuer,
		mockLogger,
	)

	return routerFixture{
		router:             router,
		userUseCase:        userUseCase,
		transactionUseCase: transactionUseCase,
		tokenIssuer:        tokenIssuer,
	}
}

func (f routerFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func TestProtectedRoutesRequireAToken(t *testing.T) {
	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/dashboard"},
		{http.MethodPost, "/api/transactions/addIncome"},
		{http.MethodPost, "/api/transactions/addExpense"},
		{http.MethodGet, "/api/transactions/"},
		{http.MethodPatch, "/api/transactions/"},
		{http.MethodDelete, "/api/transactions/" + uuid.NewString()},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			fixture := newRouterFixture(t)

			recorder := fixture.do(route.method, route.path, "{}", "")

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, "failed", body["status"])
			assert.Equal(t, "Unauthorized!", body["message"])
		})
	}

	t.Run("Invalid token", func(t *testing.T) {
		fixture := newRouterFixture(t)

		recorder := fixture.do(http.MethodGet, "/api/users/dashboard", "", "not-a-token")

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		fixture := newRouterFixture(t)
		foreign, err := auth.NewJWTIssuer("other-secret").Issue(coreport.Identity{ID: "user-1", Name: "Alice"})
		require.NoError(t, err)

		recorder := fixture.do(http.MethodGet, "/api/users/dashboard", "", foreign)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestAuthorizedRequestCarriesTheTokenIdentity(t *testing.T) {
	fixture := newRouterFixture(t)
	userID := uuid.NewString()
	token, err := fixture.tokenIssuer.Issue(coreport.Identity{ID: userID, Name: "Alice"})
	require.NoError(t, err)

	fixture.transactionUseCase.EXPECT().
		RecordIncome(mock.Anything, userID, "100.50", "Monthly salary").
		Return(nil).Once()

	recorder := fixture.do(http.MethodPost, "/api/transactions/addIncome",
		`{"amount":"100.50","remarks":"Monthly salary"}`, token)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestDashboardEndToEnd(t *testing.T) {
	fixture := newRouterFixture(t)
	userID := uuid.NewString()
	token, err := fixture.tokenIssuer.Issue(coreport.Identity{ID: userID, Name: "Alice"})
	require.NoError(t, err)

	account := &entity.User{ID: userID, Name: "Alice", Email: "alice@example.com", BalanceCents: 10000}
	fixture.userUseCase.EXPECT().Dashboard(mock.Anything, userID).
		Return(account, []entity.Transaction{}, nil).Once()

	recorder := fixture.do(http.MethodGet, "/api/users/dashboard", "", token)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	assert.Equal(t, "100.00", data["balance"])
}

func TestUnknownRouteRenders404Envelope(t *testing.T) {
	fixture := newRouterFixture(t)

	recorder := fixture.do(http.MethodGet, "/api/unknown", "", "")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "failed", body["status"])
	assert.Equal(t, "Error 404 not found", body["message"])
}

func TestCORSPreflight(t *testing.T) {
	fixture := newRouterFixture(t)

	recorder := fixture.do(http.MethodOptions, "/api/users/login", "", "")

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
