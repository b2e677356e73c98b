package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fintrax/bank_transfer_app/internal/apperrors"
	"github.com/fintrax/bank_transfer_app/internal/core/domain"
	"github.com/fintrax/bank_transfer_app/internal/core/ports"
	"github.com/fintrax/bank_transfer_app/internal/dto"
	"github.com/fintrax/bank_transfer_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCurrencySvc *MockCurrencyService
	mockRateSvc     *MockExchangeRateService
}

func (suite *CurrencyHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	suite.mockCurrencySvc = new(MockCurrencyService)
	suite.mockRateSvc = new(MockExchangeRateService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &ports.ServiceContainer{
		Account:      new(MockAccountService),
		Currency:     suite.mockCurrencySvc,
		ExchangeRate: suite.mockRateSvc,
		Transfer:     new(MockTransferService),
	})
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies() {
	currencies := []domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	}
	suite.mockCurrencySvc.On("ListCurrencies", mock.Anything).Return(currencies, nil).Once()

	w := performJSONRequest(suite.router, http.MethodGet, "/currencies", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("EUR", resp[0].CurrencyCode)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotFound() {
	suite.mockCurrencySvc.On("GetCurrencyByCode", mock.Anything, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	w := performJSONRequest(suite.router, http.MethodGet, "/currencies/XXX", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListRates() {
	rates := []domain.ExchangeRate{
		{CurrencyCode: "EUR", Rate: decimal.NewFromFloat(1.0)},
		{CurrencyCode: "GBP", Rate: decimal.NewFromFloat(0.89)},
		{CurrencyCode: "USD", Rate: decimal.NewFromFloat(1.08)},
	}
	suite.mockRateSvc.On("ListRates", mock.Anything).Return(rates, nil).Once()

	w := performJSONRequest(suite.router, http.MethodGet, "/rates", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 3)
	suite.True(resp[1].Rate.Equal(decimal.NewFromFloat(0.89)))
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
