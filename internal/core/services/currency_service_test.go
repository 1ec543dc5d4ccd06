package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/domain"
	"github.com/fxdeals/fx_deals_warehouse/internal/core/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestIsValidCurrencyCode_KnownCode() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Name: "US Dollar", MinorUnits: 2}, nil)

	valid, err := suite.service.IsValidCurrencyCode(ctx, "USD")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), valid)
}

func (suite *CurrencyServiceTestSuite) TestIsValidCurrencyCode_UnknownCode() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "ZZZ").
		Return(nil, apperrors.ErrNotFound)

	valid, err := suite.service.IsValidCurrencyCode(ctx, "ZZZ")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), valid)
}

func (suite *CurrencyServiceTestSuite) TestIsValidCurrencyCode_RepositoryError() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(nil, errors.New("connection refused"))

	valid, err := suite.service.IsValidCurrencyCode(ctx, "USD")

	assert.Error(suite.T(), err)
	assert.False(suite.T(), valid)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Found() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Name: "Euro", MinorUnits: 2}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil)

	currency, err := suite.service.GetCurrencyByCode(ctx, "EUR")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, currency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound)

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Nil(suite.T(), currency)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies() {
	ctx := context.Background()
	catalog := []domain.Currency{
		{CurrencyCode: "USD", Name: "US Dollar", MinorUnits: 2},
		{CurrencyCode: "JPY", Name: "Yen", MinorUnits: 0},
	}
	suite.mockRepo.On("ListCurrencies", ctx).Return(catalog, nil)

	currencies, err := suite.service.ListCurrencies(ctx)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), currencies, 2)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil)

	currencies, err := suite.service.ListCurrencies(ctx)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), currencies)
	assert.Empty(suite.T(), currencies)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "XAU", Name: "Gold", MinorUnits: 0}
	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == "XAU" && c.Name == "Gold"
	})).Return(nil)

	currency, err := suite.service.CreateCurrency(ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "XAU", currency.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "USD", Name: "US Dollar", MinorUnits: 2}
	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).
		Return(apperrors.ErrDuplicate)

	currency, err := suite.service.CreateCurrency(ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
	assert.Nil(suite.T(), currency)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
