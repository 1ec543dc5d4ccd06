package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	portssvc "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
	"github.com/fxdeals/fx_deals_warehouse/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) SubmitDeal(ctx context.Context, req dto.SubmitDealRequest) (*domain.Deal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) GetDealByUniqueID(ctx context.Context, dealUniqueID string) (*domain.Deal, error) {
	args := m.Called(ctx, dealUniqueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) ListDeals(ctx context.Context) ([]domain.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealService) GetDealsByCurrencyPair(ctx context.Context, fromCurrency, toCurrency string) ([]domain.Deal, error) {
	args := m.Called(ctx, fromCurrency, toCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealService) GetDealsByTimeRange(ctx context.Context, start, end time.Time) ([]domain.Deal, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealService) GetRecentDeals(ctx context.Context, limit int) ([]domain.Deal, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deal), args.Error(1)
}

func (m *MockDealService) CountDeals(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealService) DealExists(ctx context.Context, dealUniqueID string) (bool, error) {
	args := m.Called(ctx, dealUniqueID)
	return args.Bool(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Test Suite ---
type DealHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDealService *MockDealService
}

func (suite *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockDealService = new(MockDealService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDealRoutes(v1, suite.mockDealService)
}

func (suite *DealHandlerTestSuite) performJSON(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DealHandlerTestSuite) decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleDeal() *domain.Deal {
	return &domain.Deal{
		ID:            42,
		DealUniqueID:  "DEAL-001",
		FromCurrency:  "USD",
		ToCurrency:    "EUR",
		DealTimestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		DealAmount:    decimal.RequireFromString("1500.25"),
		CreatedAt:     time.Date(2026, 3, 14, 9, 30, 1, 0, time.UTC),
	}
}

func sampleSubmitRequest() dto.SubmitDealRequest {
	return dto.SubmitDealRequest{
		DealUniqueID:  "DEAL-001",
		FromCurrency:  "USD",
		ToCurrency:    "EUR",
		DealTimestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		DealAmount:    decimal.RequireFromString("1500.25"),
	}
}

// --- SubmitDeal ---

func (suite *DealHandlerTestSuite) TestSubmitDeal_Created() {
	req := sampleSubmitRequest()
	deal := sampleDeal()
	suite.mockDealService.On("SubmitDeal", mock.Anything, req).Return(deal, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/deals", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(deal.DealUniqueID, resp.DealUniqueID)
	suite.Equal(deal.ID, resp.ID)
	suite.True(deal.DealAmount.Equal(resp.DealAmount))
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestSubmitDeal_ValidationErrorIs400() {
	req := sampleSubmitRequest()
	suite.mockDealService.On("SubmitDeal", mock.Anything, req).
		Return(nil, fmt.Errorf("%w: invalid currency code: ZZZ", apperrors.ErrValidation)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/deals", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("VALIDATION_ERROR", resp.Code)
	suite.Contains(resp.Message, "invalid currency code")
}

func (suite *DealHandlerTestSuite) TestSubmitDeal_DuplicateIs409() {
	req := sampleSubmitRequest()
	suite.mockDealService.On("SubmitDeal", mock.Anything, req).
		Return(nil, fmt.Errorf("%w: deal with unique ID DEAL-001 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/deals", req)

	suite.Equal(http.StatusConflict, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("DUPLICATE_DEAL", resp.Code)
	suite.Contains(resp.Message, "DEAL-001")
}

func (suite *DealHandlerTestSuite) TestSubmitDeal_ServiceFailureIs500() {
	req := sampleSubmitRequest()
	suite.mockDealService.On("SubmitDeal", mock.Anything, req).
		Return(nil, fmt.Errorf("insert failed: connection reset")).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/deals", req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("INTERNAL_ERROR", resp.Code)
	suite.NotContains(resp.Message, "connection reset")
}

func (suite *DealHandlerTestSuite) TestSubmitDeal_MalformedJSONIs400() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/deals", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("VALIDATION_ERROR", resp.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "SubmitDeal")
}

// --- GetDeal ---

func (suite *DealHandlerTestSuite) TestGetDeal_Found() {
	deal := sampleDeal()
	suite.mockDealService.On("GetDealByUniqueID", mock.Anything, "DEAL-001").Return(deal, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/DEAL-001", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DEAL-001", resp.DealUniqueID)
}

func (suite *DealHandlerTestSuite) TestGetDeal_NotFoundIs404() {
	suite.mockDealService.On("GetDealByUniqueID", mock.Anything, "MISSING").
		Return(nil, fmt.Errorf("%w: deal MISSING", apperrors.ErrNotFound)).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/MISSING", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("NOT_FOUND", resp.Code)
}

// --- ListDeals ---

func (suite *DealHandlerTestSuite) TestListDeals_EmptyListIsJSONArray() {
	suite.mockDealService.On("ListDeals", mock.Anything).Return([]domain.Deal{}, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("[]", w.Body.String())
}

func (suite *DealHandlerTestSuite) TestListDeals_ServiceFailureIs500() {
	suite.mockDealService.On("ListDeals", mock.Anything).
		Return(nil, fmt.Errorf("query failed")).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("INTERNAL_ERROR", resp.Code)
}

// --- Search endpoints ---

func (suite *DealHandlerTestSuite) TestGetDealsByCurrencyPair() {
	deals := []domain.Deal{*sampleDeal()}
	suite.mockDealService.On("GetDealsByCurrencyPair", mock.Anything, "usd", "eur").Return(deals, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/search/currency-pair?fromCurrency=usd&toCurrency=eur", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *DealHandlerTestSuite) TestGetDealsByCurrencyPair_InvalidCodeIs400() {
	suite.mockDealService.On("GetDealsByCurrencyPair", mock.Anything, "ZZ", "EUR").
		Return(nil, fmt.Errorf("%w: currency code must be exactly 3 characters: ZZ", apperrors.ErrValidation)).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/search/currency-pair?fromCurrency=ZZ&toCurrency=EUR", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("VALIDATION_ERROR", resp.Code)
}

func (suite *DealHandlerTestSuite) TestGetDealsByTimeRange() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockDealService.On("GetDealsByTimeRange", mock.Anything, start, end).
		Return([]domain.Deal{*sampleDeal()}, nil).Once()

	url := fmt.Sprintf("/api/v1/deals/search/time-range?startTime=%s&endTime=%s",
		start.Format(time.RFC3339), end.Format(time.RFC3339))
	w := suite.performJSON(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestGetDealsByTimeRange_BadTimestampIs400() {
	w := suite.performJSON(http.MethodGet, "/api/v1/deals/search/time-range?startTime=yesterday&endTime=2026-03-31T00:00:00Z", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := suite.decodeError(w)
	suite.Equal("VALIDATION_ERROR", resp.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "GetDealsByTimeRange")
}

// --- Recent / stats / exists ---

func (suite *DealHandlerTestSuite) TestGetRecentDeals_DefaultLimit() {
	suite.mockDealService.On("GetRecentDeals", mock.Anything, 10).
		Return([]domain.Deal{*sampleDeal()}, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/recent", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestGetRecentDeals_NonIntegerLimitIs400() {
	w := suite.performJSON(http.MethodGet, "/api/v1/deals/recent?limit=ten", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "GetRecentDeals")
}

func (suite *DealHandlerTestSuite) TestGetDealCount() {
	suite.mockDealService.On("CountDeals", mock.Anything).Return(int64(7), nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/stats/count", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DealCountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.TotalDeals)
}

func (suite *DealHandlerTestSuite) TestCheckDealExists() {
	suite.mockDealService.On("DealExists", mock.Anything, "DEAL-001").Return(true, nil).Once()

	w := suite.performJSON(http.MethodGet, "/api/v1/deals/exists/DEAL-001", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DealExistsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Exists)
}

// --- Run Test Suite ---
func TestDealHandler(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
