package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/nbp_rates_app/internal/core/ports/services"
	"github.com/SscSPs/nbp_rates_app/internal/dto"
	"github.com/SscSPs/nbp_rates_app/internal/handlers"
	"github.com/SscSPs/nbp_rates_app/internal/platform/config"
	"github.com/SscSPs/nbp_rates_app/internal/viewstate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock LoadCurrencyRatesSvc ---
type MockLoadCurrencyRatesSvc struct {
	mock.Mock
}

func (m *MockLoadCurrencyRatesSvc) LoadCurrencyRates(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock LoadCurrencyDetailsSvc ---
type MockLoadCurrencyDetailsSvc struct {
	mock.Mock
}

func (m *MockLoadCurrencyDetailsSvc) LoadCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	args := m.Called(ctx, code, table, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyDetails), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.LoadCurrencyRatesSvc   = (*MockLoadCurrencyRatesSvc)(nil)
	_ portssvc.LoadCurrencyDetailsSvc = (*MockLoadCurrencyDetailsSvc)(nil)
)

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router     *gin.Engine
	ratesSvc   *MockLoadCurrencyRatesSvc
	detailsSvc *MockLoadCurrencyDetailsSvc
	screens    *viewstate.Screens
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ratesSvc = new(MockLoadCurrencyRatesSvc)
	suite.detailsSvc = new(MockLoadCurrencyDetailsSvc)
	suite.screens = viewstate.NewScreens(&portssvc.ServiceContainer{
		CurrencyRates:   suite.ratesSvc,
		CurrencyDetails: suite.detailsSvc,
	})

	cfg := &config.Config{
		RateLimit:          "1000-M",
		CORSAllowedOrigins: []string{"*"},
	}
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, suite.screens, nil)
}

func (suite *HandlersTestSuite) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

var listCurrencies = []domain.Currency{
	{Name: "dolar amerykański", Code: "USD", CurrentRate: 4.1234, Table: domain.TableA},
	{Name: "euro", Code: "EUR", CurrentRate: 4.35, Table: domain.TableA},
	{Name: "afgani (Afganistan)", Code: "AFN", CurrentRate: 0.0567, Table: domain.TableB},
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestGetCurrencyList_Initial() {
	w := suite.do(http.MethodGet, "/api/v1/currencies")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyListStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsLoading)
	suite.Nil(resp.Error)
	suite.NotNil(resp.Currencies)
	suite.Empty(resp.Currencies)
}

func (suite *HandlersTestSuite) TestReloadCurrencyList_Success() {
	suite.ratesSvc.On("LoadCurrencyRates", mock.Anything).Return(listCurrencies, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/currencies/reload")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyListStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsLoading)
	suite.Require().Len(resp.Currencies, 3)
	suite.Equal("USD", resp.Currencies[0].Code)
	suite.Equal("4.1234", resp.Currencies[0].FormattedRate)
	suite.Equal("4.3500", resp.Currencies[1].FormattedRate)
	suite.Equal("B", resp.Currencies[2].Table)

	w = suite.do(http.MethodGet, "/api/v1/currencies")
	var after dto.CurrencyListStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &after))
	suite.Len(after.Currencies, 3)
}

func (suite *HandlersTestSuite) TestReloadCurrencyList_FailureThenClearError() {
	suite.ratesSvc.On("LoadCurrencyRates", mock.Anything).Return(listCurrencies, nil).Once()
	suite.ratesSvc.On("LoadCurrencyRates", mock.Anything).Return(nil, &apperrors.UpstreamStatusError{StatusCode: http.StatusInternalServerError}).Once()

	suite.do(http.MethodPost, "/api/v1/currencies/reload")
	w := suite.do(http.MethodPost, "/api/v1/currencies/reload")

	suite.Require().Equal(http.StatusBadGateway, w.Code)
	var resp dto.CurrencyListStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Error)
	suite.Equal("NBP API returned status 500", *resp.Error)
	suite.Len(resp.Currencies, 3, "stale currencies are kept")

	w = suite.do(http.MethodDelete, "/api/v1/currencies/error")
	suite.Require().Equal(http.StatusOK, w.Code)
	var cleared dto.CurrencyListStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &cleared))
	suite.Nil(cleared.Error)
	suite.Len(cleared.Currencies, 3)
}

func (suite *HandlersTestSuite) TestStreamCurrencyList() {
	suite.ratesSvc.On("LoadCurrencyRates", mock.Anything).Return(listCurrencies, nil).Once()
	_, err := suite.screens.CurrencyList.Load(context.Background())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	w := &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/stream", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		suite.router.ServeHTTP(w, req)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.FailNow("stream did not stop after the client went away")
	}

	body := w.Body.String()
	suite.Equal("text/event-stream", w.Header().Get("Content-Type"))
	suite.True(strings.HasPrefix(body, "event:state\n"), body)
	suite.Contains(body, `"code":"USD"`)
}

var usdDetails = &domain.CurrencyDetails{
	Name:          "dolar amerykański",
	Code:          "USD",
	CurrentRate:   4.1234,
	Table:         domain.TableA,
	EffectiveDate: "2024-01-05",
	HistoricalRates: []domain.HistoricalRate{
		{EffectiveDate: "2024-01-05", Rate: 4.1234},
		{EffectiveDate: "2024-01-04", Rate: 3.0, IsHighlighted: true},
	},
}

func (suite *HandlersTestSuite) TestGetCurrencyDetails_Success() {
	suite.detailsSvc.On("LoadCurrencyDetails", mock.Anything, "USD", domain.TableA, 5).Return(usdDetails, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/USD?table=a&days=5")

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.CurrencyDetailsStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.CurrencyDetails)
	suite.Equal("USD", resp.CurrencyDetails.Code)
	suite.Equal("A", resp.CurrencyDetails.Table)
	suite.Equal("4.1234", resp.CurrencyDetails.FormattedRate)
	suite.Require().Len(resp.CurrencyDetails.HistoricalRates, 2)
	suite.False(resp.CurrencyDetails.HistoricalRates[0].IsHighlighted)
	suite.True(resp.CurrencyDetails.HistoricalRates[1].IsHighlighted)
	suite.Equal("3.0000", resp.CurrencyDetails.HistoricalRates[1].FormattedRate)
	suite.detailsSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetCurrencyDetails_DefaultsLeftToService() {
	suite.detailsSvc.On("LoadCurrencyDetails", mock.Anything, "EUR", domain.Table(""), 0).
		Return(&domain.CurrencyDetails{Code: "EUR", Table: domain.TableA, HistoricalRates: []domain.HistoricalRate{}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/EUR")

	suite.Equal(http.StatusOK, w.Code)
	suite.detailsSvc.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestGetCurrencyDetails_InvalidQuery() {
	for _, target := range []string{
		"/api/v1/currencies/USD?table=Z",
		"/api/v1/currencies/USD?days=-4",
		"/api/v1/currencies/USD?days=many",
	} {
		w := suite.do(http.MethodGet, target)
		suite.Equal(http.StatusBadRequest, w.Code, target)
	}
	suite.detailsSvc.AssertNotCalled(suite.T(), "LoadCurrencyDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestGetCurrencyDetails_FailureThenClearError() {
	suite.detailsSvc.On("LoadCurrencyDetails", mock.Anything, "USD", domain.TableA, 5).Return(usdDetails, nil).Once()
	suite.detailsSvc.On("LoadCurrencyDetails", mock.Anything, "USD", domain.TableA, 5).
		Return(nil, apperrors.NewUnknownTableError("Z")).Once()

	suite.Require().Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/currencies/USD?table=A&days=5").Code)
	w := suite.do(http.MethodGet, "/api/v1/currencies/USD?table=A&days=5")

	suite.Require().Equal(http.StatusBadGateway, w.Code)
	var resp dto.CurrencyDetailsStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Error)
	suite.Equal("Unknown table type: Z", *resp.Error)
	suite.Require().NotNil(resp.CurrencyDetails, "stale details are kept")
	suite.Equal("USD", resp.CurrencyDetails.Code)

	w = suite.do(http.MethodDelete, "/api/v1/currencies/usd/error")
	suite.Require().Equal(http.StatusOK, w.Code)
	var cleared dto.CurrencyDetailsStateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &cleared))
	suite.Nil(cleared.Error)
	suite.NotNil(cleared.CurrencyDetails)
}

func (suite *HandlersTestSuite) TestGetCurrencyDetails_FailedFirstLoadLeavesNoScreen() {
	suite.detailsSvc.On("LoadCurrencyDetails", mock.Anything, "XYZ", domain.Table(""), 0).
		Return(nil, &apperrors.UpstreamStatusError{StatusCode: http.StatusNotFound, Body: "404 NotFound"}).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies/XYZ")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(0, suite.screens.CurrencyDetails.Len())
	suite.Equal(http.StatusNotFound, suite.do(http.MethodDelete, "/api/v1/currencies/XYZ/error").Code)
}

func (suite *HandlersTestSuite) TestCurrencyDetails_InvalidCode() {
	for _, target := range []string{
		"/api/v1/currencies/toolong",
		"/api/v1/currencies/US",
		"/api/v1/currencies/U5D",
	} {
		w := suite.do(http.MethodGet, target)
		suite.Equal(http.StatusBadRequest, w.Code, target)
	}
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodDelete, "/api/v1/currencies/toolong/error").Code)

	suite.Equal(0, suite.screens.CurrencyDetails.Len())
	suite.detailsSvc.AssertNotCalled(suite.T(), "LoadCurrencyDetails", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestClearCurrencyDetailsError_NotOpened() {
	w := suite.do(http.MethodDelete, "/api/v1/currencies/GBP/error")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestSwaggerServedOutsideProduction() {
	w := suite.do(http.MethodGet, "/swagger/doc.json")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "/currencies/{code}")
}

func (suite *HandlersTestSuite) TestCORSPreflight() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/currencies", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

// --- Run Suite ---
func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	screens := viewstate.NewScreens(&portssvc.ServiceContainer{
		CurrencyRates:   new(MockLoadCurrencyRatesSvc),
		CurrencyDetails: new(MockLoadCurrencyDetailsSvc),
	})
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{IsProduction: true, RateLimit: "1000-M", CORSAllowedOrigins: []string{"*"}}, screens, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

// cancellationAwareRatesSvc fails the way a real fetch does when its context is cancelled.
type cancellationAwareRatesSvc struct{}

func (cancellationAwareRatesSvc) LoadCurrencyRates(ctx context.Context) ([]domain.Currency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return listCurrencies, nil
}

// cancellationAwareDetailsSvc fails the way a real fetch does when its context is cancelled.
type cancellationAwareDetailsSvc struct{}

func (cancellationAwareDetailsSvc) LoadCurrencyDetails(ctx context.Context, code string, table domain.Table, days int) (*domain.CurrencyDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return usdDetails, nil
}

func TestLoads_SurviveClientDisconnect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	screens := viewstate.NewScreens(&portssvc.ServiceContainer{
		CurrencyRates:   cancellationAwareRatesSvc{},
		CurrencyDetails: cancellationAwareDetailsSvc{},
	})
	router := gin.New()
	handlers.RegisterRoutes(router, &config.Config{RateLimit: "1000-M", CORSAllowedOrigins: []string{"*"}}, screens, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/currencies/reload", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	list := screens.CurrencyList.State()
	assert.Nil(t, list.Error)
	assert.Len(t, list.Currencies, 3)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/currencies/USD", nil).WithContext(ctx))
	require.Equal(t, http.StatusOK, w.Code)
	screen, found := screens.CurrencyDetails.Lookup("USD")
	require.True(t, found)
	assert.Nil(t, screen.State().Error)
}
