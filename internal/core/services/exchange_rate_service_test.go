package services_test

import (
	"context"
	"testing"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockExchangeRateRepository is a mock type for the ExchangeRateRepository interface
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

// --- Test Suite Setup ---

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  *services.ExchangeRateService
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRepo)
}

func (suite *ExchangeRateServiceTestSuite) expectRate(code string, rate float64) {
	suite.mockRepo.On("FindExchangeRate", mock.Anything, code).
		Return(&domain.ExchangeRate{CurrencyCode: code, Rate: decimal.NewFromFloat(rate)}, nil)
}

// --- Test Cases ---

func (suite *ExchangeRateServiceTestSuite) TestGetRate_Success() {
	suite.expectRate("GBP", 0.89)

	rate, err := suite.service.GetRate(context.Background(), "GBP")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromFloat(0.89)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_LowercaseCode() {
	suite.expectRate("GBP", 0.89)

	rate, err := suite.service.GetRate(context.Background(), "gbp")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromFloat(0.89)))
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_UnknownCurrency() {
	suite.mockRepo.On("FindExchangeRate", mock.Anything, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetRate(context.Background(), "XXX")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestGetRate_MalformedCode() {
	_, err := suite.service.GetRate(context.Background(), "EURO")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_Identity() {
	// Same-currency conversion must be exact and never touch the table.
	amount := decimal.RequireFromString("123.456789")

	converted, err := suite.service.Convert(context.Background(), amount, "EUR", "EUR")

	suite.Require().NoError(err)
	suite.True(amount.Equal(converted))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_CrossCurrency() {
	suite.expectRate("EUR", 1.0)
	suite.expectRate("GBP", 0.89)

	converted, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "EUR", "GBP")

	suite.Require().NoError(err)
	suite.True(converted.Equal(decimal.NewFromInt(89)), "100 EUR at rate 0.89 is 89 GBP, got %s", converted)
}

func (suite *ExchangeRateServiceTestSuite) TestConvert_UnknownDestination() {
	suite.expectRate("EUR", 1.0)
	suite.mockRepo.On("FindExchangeRate", mock.Anything, "ZZZ").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "EUR", "ZZZ")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestListRates() {
	rates := []domain.ExchangeRate{
		{CurrencyCode: "EUR", Rate: decimal.NewFromFloat(1.0)},
		{CurrencyCode: "GBP", Rate: decimal.NewFromFloat(0.89)},
	}
	suite.mockRepo.On("ListExchangeRates", mock.Anything).Return(rates, nil).Once()

	listed, err := suite.service.ListRates(context.Background())

	suite.Require().NoError(err)
	suite.Len(listed, 2)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
