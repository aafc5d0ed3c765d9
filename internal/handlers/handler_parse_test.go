package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/price_normalizer_app/internal/apperrors"
	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/price_normalizer_app/internal/dto"
	"github.com/SscSPs/price_normalizer_app/internal/handlers"
	"github.com/gin-gonic/gin"
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

var _ portssvc.ParserSvcFacade = (*MockParserService)(nil)

// --- Mock NormalizerService ---
type MockNormalizerService struct {
	mock.Mock
}

func (m *MockNormalizerService) NormalizeAndSort(ctx context.Context, raws []string) ([]domain.MonetaryAmount, []domain.ParseFailure) {
	args := m.Called(ctx, raws)
	return args.Get(0).([]domain.MonetaryAmount), args.Get(1).([]domain.ParseFailure)
}

var _ portssvc.NormalizerSvcFacade = (*MockNormalizerService)(nil)

// --- Test Suite ---
type ParseHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockParser     *MockParserService
	mockNormalizer *MockNormalizerService
}

func (suite *ParseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockParser = new(MockParserService)
	suite.mockNormalizer = new(MockNormalizerService)

	suite.router = gin.New()
	table := domain.NewConventionTable(domain.DefaultConventions()...)
	container := &portssvc.ServiceContainer{
		Parser:     suite.mockParser,
		Normalizer: suite.mockNormalizer,
	}
	handlers.RegisterRoutes(suite.router, container, table)
}

func (suite *ParseHandlerTestSuite) performJSON(method, path, body string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ParseHandlerTestSuite) TestParseMoney_Success() {
	parsed := domain.MonetaryAmount{Amount: decimal.RequireFromString("1234.56"), CurrencyCode: "USD"}
	suite.mockParser.On("ParseMoney", mock.Anything, "$1,234.56").Return(parsed, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/parse", `{"input":"$1,234.56"}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MonetaryAmountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal("1234.56", resp.Amount)
	suite.Equal("USD 1,234.56", resp.Display)
	suite.mockParser.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseMoney_Ambiguous() {
	ambErr := &apperrors.AmbiguousFormatError{
		Input:  "1.234",
		Labels: []string{"Format: de-DE (€)", "Format: en-US ($)"},
	}
	suite.mockParser.On("ParseMoney", mock.Anything, "1.234").Return(domain.MonetaryAmount{}, ambErr).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/parse", `{"input":"1.234"}`)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Error   string   `json:"error"`
		Formats []string `json:"formats"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Error, "ambiguous number format")
	suite.Equal(ambErr.Labels, resp.Formats)
	suite.mockParser.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseMoney_Unparsable() {
	suite.mockParser.On("ParseMoney", mock.Anything, "garbage").
		Return(domain.MonetaryAmount{}, apperrors.ErrUnparsableAmount).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/parse", `{"input":"garbage"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockParser.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestParseMoney_MissingInput() {
	w := suite.performJSON(http.MethodPost, "/api/v1/parse", `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockParser.AssertNotCalled(suite.T(), "ParseMoney")
}

func (suite *ParseHandlerTestSuite) TestNormalize_Success() {
	inputs := []string{"$10", "not a number", "€20"}
	amounts := []domain.MonetaryAmount{
		{Amount: decimal.NewFromInt(10), CurrencyCode: "USD"},
		{Amount: decimal.NewFromInt(20), CurrencyCode: "EUR"},
	}
	failures := []domain.ParseFailure{{Input: "not a number", Reason: `unparsable amount: "not a number"`}}
	suite.mockNormalizer.On("NormalizeAndSort", mock.Anything, inputs).Return(amounts, failures).Once()

	w := suite.performJSON(http.MethodPost, "/api/v1/normalize", `{"inputs":["$10","not a number","€20"]}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.NormalizeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Amounts, 2)
	suite.Equal("USD 10.00", resp.Amounts[0].Display)
	suite.Equal("EUR 20.00", resp.Amounts[1].Display)
	suite.Require().Len(resp.Failures, 1)
	suite.Equal("not a number", resp.Failures[0].Input)
	suite.mockNormalizer.AssertExpectations(suite.T())
}

func (suite *ParseHandlerTestSuite) TestListConventions() {
	w := suite.performJSON(http.MethodGet, "/api/v1/conventions", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ConventionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 7)
	suite.Equal("USD", resp[0].CurrencyCode)
}

func (suite *ParseHandlerTestSuite) TestGetConventionByCode() {
	w := suite.performJSON(http.MethodGet, "/api/v1/conventions/eur", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConventionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("EUR", resp.CurrencyCode)
	suite.Equal("de-DE", resp.Locale)
	suite.Equal(",", resp.DecimalSeparator)
}

func (suite *ParseHandlerTestSuite) TestGetConventionByCode_Unsupported() {
	w := suite.performJSON(http.MethodGet, "/api/v1/conventions/XYZ", "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestParseHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ParseHandlerTestSuite))
}
