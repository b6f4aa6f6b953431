package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/money_ops/internal/apperrors"
	"github.com/SscSPs/money_ops/internal/core/domain"
	"github.com/SscSPs/money_ops/internal/core/ports"
	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
	"github.com/SscSPs/money_ops/internal/core/services"
	"github.com/SscSPs/money_ops/internal/dto"
	"github.com/SscSPs/money_ops/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MoneyAuditPort ---
type MockMoneyAuditPort struct {
	mock.Mock
}

func (m *MockMoneyAuditPort) RecordOperation(operation string, source domain.Money, result domain.Money) {
	m.Called(operation, source, result)
}

var _ ports.MoneyAuditPort = (*MockMoneyAuditPort)(nil)

// --- Mock TransferSvc ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Transfer(source domain.Money, destination domain.Money, amount decimal.Decimal) (domain.TransferResult, error) {
	args := m.Called(source, destination, amount)
	return args.Get(0).(domain.TransferResult), args.Error(1)
}

var _ portssvc.TransferSvc = (*MockTransferService)(nil)

// --- Test Suite ---
type MoneyHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockAudit *MockMoneyAuditPort
}

func (suite *MoneyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAudit = new(MockMoneyAuditPort)

	handlers.RegisterRoutes(suite.router, services.NewContainer(suite.mockAudit))
}

func (suite *MoneyHandlerTestSuite) post(path string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeMoney(suite *MoneyHandlerTestSuite, raw []byte) dto.MoneyResponse {
	var resp dto.MoneyResponse
	suite.Require().NoError(json.Unmarshal(raw, &resp))
	return resp
}

func (suite *MoneyHandlerTestSuite) TestHealth() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *MoneyHandlerTestSuite) TestApplyGrowth_Success() {
	suite.mockAudit.On("RecordOperation", ports.OperationGrowth, mock.Anything, mock.Anything).Return().Once()

	w := suite.post("/api/v1/money/growth", `{"amount": 100.00, "currency": "usd", "ratePercent": 10}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeMoney(suite, w.Body.Bytes())
	suite.True(resp.Amount.Equal(decimal.NewFromInt(110)), "got %s", resp.Amount)
	suite.Equal("USD", resp.Currency)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *MoneyHandlerTestSuite) TestApplyGrowth_ValidationFailure() {
	w := suite.post("/api/v1/money/growth", `{"amount": -1, "currency": "   ", "ratePercent": -5}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Validation failed", resp.Message)
	suite.Len(resp.Errors, 3)
	suite.mockAudit.AssertNumberOfCalls(suite.T(), "RecordOperation", 0)
}

func (suite *MoneyHandlerTestSuite) TestApplyGrowth_RateAboveLimit() {
	w := suite.post("/api/v1/money/growth", `{"amount": 100, "currency": "USD", "ratePercent": 99999999999999999999999999999}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Message)
	suite.mockAudit.AssertNumberOfCalls(suite.T(), "RecordOperation", 0)
}

func (suite *MoneyHandlerTestSuite) TestApplyGrowth_MalformedJSON() {
	w := suite.post("/api/v1/money/growth", `{"amount": `)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp dto.ApiErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Message, "Invalid request format")
}

func (suite *MoneyHandlerTestSuite) TestApplyDiscount_Success() {
	suite.mockAudit.On("RecordOperation", ports.OperationDiscount, mock.Anything, mock.Anything).Return().Once()

	w := suite.post("/api/v1/money/discount", `{"amount": "200.00", "currency": "USD", "discountPercent": 25}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeMoney(suite, w.Body.Bytes())
	suite.True(resp.Amount.Equal(decimal.NewFromInt(150)), "got %s", resp.Amount)
}

func (suite *MoneyHandlerTestSuite) TestApplyDiscount_OutOfRange() {
	w := suite.post("/api/v1/money/discount", `{"amount": 200, "currency": "USD", "discountPercent": 101}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "discountPercent must be less than or equal to 100")
	suite.mockAudit.AssertNumberOfCalls(suite.T(), "RecordOperation", 0)
}

func (suite *MoneyHandlerTestSuite) TestTransfer_Success() {
	suite.mockAudit.On("RecordOperation", ports.OperationTransfer, mock.Anything, mock.Anything).Return().Once()

	w := suite.post("/api/v1/money/transfer", `{
		"source": {"amount": 100.00, "currency": "USD"},
		"destination": {"amount": 50.00, "currency": "usd"},
		"amount": 30.00
	}`)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TransferResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Source.Amount.Equal(decimal.NewFromInt(70)), "got %s", resp.Source.Amount)
	suite.True(resp.Destination.Amount.Equal(decimal.NewFromInt(80)), "got %s", resp.Destination.Amount)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *MoneyHandlerTestSuite) TestTransfer_DomainRejections() {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "insufficient funds",
			body:    `{"source": {"amount": 10, "currency": "USD"}, "destination": {"amount": 0, "currency": "USD"}, "amount": 10.01}`,
			message: services.MsgInsufficientFunds,
		},
		{
			name:    "currency mismatch",
			body:    `{"source": {"amount": 10, "currency": "USD"}, "destination": {"amount": 0, "currency": "EUR"}, "amount": 1}`,
			message: domain.MsgCurrencyMismatch,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.post("/api/v1/money/transfer", tt.body)

			suite.Equal(http.StatusBadRequest, w.Code)
			var resp dto.ApiErrorResponse
			suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
			suite.Equal(tt.message, resp.Message)
		})
	}
	suite.mockAudit.AssertNumberOfCalls(suite.T(), "RecordOperation", 0)
}

func (suite *MoneyHandlerTestSuite) TestTransfer_MissingDestination() {
	w := suite.post("/api/v1/money/transfer", `{"source": {"amount": 10, "currency": "USD"}, "amount": 1}`)

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	var resp dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Errors, 1)
	suite.Equal("destination", resp.Errors[0].Field)
}

func TestMoneyHandler(t *testing.T) {
	suite.Run(t, new(MoneyHandlerTestSuite))
}

func TestTransfer_UnexpectedServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	transferSvc := new(MockTransferService)
	transferSvc.On("Transfer", mock.Anything, mock.Anything, mock.Anything).Return(domain.TransferResult{}, assert.AnError).Once()
	handlers.RegisterMoneyRoutes(router.Group("/api/v1"), services.NewGrowthDiscountService(new(MockMoneyAuditPort)), transferSvc)

	body := `{"source": {"amount": 10, "currency": "USD"}, "destination": {"amount": 0, "currency": "USD"}, "amount": 1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/money/transfer", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to process money operation")
	transferSvc.AssertExpectations(t)
}

func TestTransfer_AppErrorKeepsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	transferSvc := new(MockTransferService)
	appErr := apperrors.NewAppError(http.StatusServiceUnavailable, "Transfer temporarily unavailable", assert.AnError)
	transferSvc.On("Transfer", mock.Anything, mock.Anything, mock.Anything).Return(domain.TransferResult{}, appErr).Once()
	handlers.RegisterMoneyRoutes(router.Group("/api/v1"), services.NewGrowthDiscountService(new(MockMoneyAuditPort)), transferSvc)

	body := `{"source": {"amount": 10, "currency": "USD"}, "destination": {"amount": 0, "currency": "USD"}, "amount": 1}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/money/transfer", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.ApiErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Transfer temporarily unavailable", resp.Message)
	transferSvc.AssertExpectations(t)
}
