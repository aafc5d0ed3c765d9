package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/price_normalizer_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ParserService ---
type MockParserService struct {
	mock.Mock
}

func (m *MockParserService) ParseMoney(ctx context.Context, raw string) (domain.MonetaryAmount, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(domain.MonetaryAmount), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ParserSvcFacade = (*MockParserService)(nil)

// --- Test Suite ---
type NormalizerServiceTestSuite struct {
	suite.Suite
	service portssvc.NormalizerSvcFacade
}

func (suite *NormalizerServiceTestSuite) SetupTest() {
	table := domain.NewConventionTable(domain.DefaultConventions()...)
	suite.service = services.NewNormalizerService(services.NewParserService(table))
}

// --- Test Cases ---

func (suite *NormalizerServiceTestSuite) TestNormalizeAndSort_MixedBatch() {
	amounts, failures := suite.service.NormalizeAndSort(context.Background(), []string{"$10", "not a number", "€20"})

	suite.Require().Len(amounts, 2)
	suite.Equal("USD", amounts[0].CurrencyCode)
	suite.True(amounts[0].Amount.Equal(decimal.NewFromInt(10)))
	suite.Equal("EUR", amounts[1].CurrencyCode)
	suite.True(amounts[1].Amount.Equal(decimal.NewFromInt(20)))

	suite.Require().Len(failures, 1)
	suite.Equal("not a number", failures[0].Input)
	suite.Contains(failures[0].Reason, "unparsable amount")
}

func (suite *NormalizerServiceTestSuite) TestNormalizeAndSort_SortsAscending() {
	amounts, failures := suite.service.NormalizeAndSort(context.Background(), []string{"$30.50", "$2.99", "$10"})

	suite.Empty(failures)
	suite.Require().Len(amounts, 3)
	suite.True(amounts[0].Amount.Equal(decimal.RequireFromString("2.99")))
	suite.True(amounts[1].Amount.Equal(decimal.NewFromInt(10)))
	suite.True(amounts[2].Amount.Equal(decimal.RequireFromString("30.5")))
}

func (suite *NormalizerServiceTestSuite) TestNormalizeAndSort_StableForEqualAmounts() {
	// Equal numeric values keep their encounter order.
	amounts, failures := suite.service.NormalizeAndSort(context.Background(), []string{"GBP 5.00", "USD 5.00", "EUR 1.00"})

	suite.Empty(failures)
	suite.Require().Len(amounts, 3)
	suite.Equal("EUR", amounts[0].CurrencyCode)
	suite.Equal("GBP", amounts[1].CurrencyCode)
	suite.Equal("USD", amounts[2].CurrencyCode)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeAndSort_EmptyBatch() {
	amounts, failures := suite.service.NormalizeAndSort(context.Background(), nil)

	suite.NotNil(amounts)
	suite.NotNil(failures)
	suite.Empty(amounts)
	suite.Empty(failures)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeAndSort_AllFailuresNeverAbort() {
	mockParser := new(MockParserService)
	mockParser.On("ParseMoney", mock.Anything, mock.AnythingOfType("string")).
		Return(domain.MonetaryAmount{}, errors.New("boom")).Times(3)

	service := services.NewNormalizerService(mockParser)
	amounts, failures := service.NormalizeAndSort(context.Background(), []string{"a", "b", "c"})

	suite.Empty(amounts)
	suite.Require().Len(failures, 3)
	for i, input := range []string{"a", "b", "c"} {
		suite.Equal(input, failures[i].Input)
		suite.Equal("boom", failures[i].Reason)
	}
	mockParser.AssertExpectations(suite.T())
}

func TestNormalizerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerServiceTestSuite))
}
