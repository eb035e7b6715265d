package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gstnote/gstnote_backend/internal/apperrors"
	"github.com/gstnote/gstnote_backend/internal/core/domain"
	portssvc "github.com/gstnote/gstnote_backend/internal/core/ports/services"
	"github.com/gstnote/gstnote_backend/internal/dto"
	"github.com/gstnote/gstnote_backend/internal/handlers"
	"github.com/gstnote/gstnote_backend/internal/platform/config"
	"github.com/gstnote/gstnote_backend/internal/utils"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, companyID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, companyID int64) ([]domain.TransactionListing, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionListing), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, companyID int64, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, companyID int64, transactionID string, req dto.UpdateTransactionRequest) error {
	args := m.Called(ctx, companyID, transactionID, req)
	return args.Error(0)
}

func (m *MockTransactionService) CancelTransaction(ctx context.Context, companyID int64, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, companyID int64, transactionID string) error {
	args := m.Called(ctx, companyID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionService) GetItems(ctx context.Context, companyID int64, transactionID string) (*domain.ItemGroup, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemGroup), args.Error(1)
}

func (m *MockTransactionService) SaveItems(ctx context.Context, companyID int64, transactionID string, items []dto.NoteItemPayload) error {
	args := m.Called(ctx, companyID, transactionID, items)
	return args.Error(0)
}

func (m *MockTransactionService) AssembleNoteDocument(ctx context.Context, companyID int64, transactionID string) (*domain.NoteDocument, error) {
	args := m.Called(ctx, companyID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoteDocument), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID string, companyID int64) string {
	token, err := utils.GenerateJWT(userID, companyID, "test@example.com", "admin",
		suite.jwtSecret, "gstnote-test", time.Hour)
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockTransactionService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes in tests
	}
	services := &portssvc.ServiceContainer{Transaction: suite.mockService}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url string, token string, body *string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = strings.NewReader(*body)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_Success() {
	companyID := int64(7)
	token := suite.generateTestToken("USR001", companyID)

	suite.mockService.On("GetTransaction", mock.Anything, companyID, "DBN001").Return(&domain.Transaction{
		TransactionID: "DBN001",
		CompanyID:     companyID,
		VendorID:      3,
		Details: domain.NoteDetails{
			TransactionType: "Debit",
			Status:          domain.StatusCreated,
			TotalAmount:     decimal.NewFromInt(236),
		},
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/DBN001", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("DBN001", resp.TransactionID)
	suite.Equal(companyID, resp.CompanyID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFoundIsOpaque() {
	token := suite.generateTestToken("USR001", 7)

	suite.mockService.On("GetTransaction", mock.Anything, int64(7), "DBN999").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/DBN999", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Resource not found", resp.Error)
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_MissingTokenRejected() {
	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/DBN001", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCancelTransaction_CanceledIsConflict() {
	token := suite.generateTestToken("USR001", 7)

	suite.mockService.On("CancelTransaction", mock.Anything, int64(7), "DBN001").Return(apperrors.ErrImmutable).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions/DBN001/cancel", token, nil)

	suite.Equal(http.StatusConflict, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Transaction is canceled and cannot be modified", resp.Error)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	token := suite.generateTestToken("USR001", 7)
	body := `{"vendor_id": 3, "details": {"transaction_type": "Debit", "items": [{"particulars": "Cement", "qty": 2, "rate": 100, "tax": 18}]}}`

	suite.mockService.On("CreateTransaction", mock.Anything, int64(7), mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.VendorID == 3 && len(req.Details.Items) == 1
	})).Return(&domain.Transaction{TransactionID: "DBN002", CompanyID: 7, VendorID: 3}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", token, &body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.CreateTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Ok)
	suite.Equal("DBN002", resp.TransactionID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_InvalidTypeRejected() {
	token := suite.generateTestToken("USR001", 7)
	body := `{"vendor_id": 3, "details": {"transaction_type": "Refund"}}`

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", token, &body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestGeneratePDF_ReturnsInlineDocument() {
	token := suite.generateTestToken("USR001", 7)

	suite.mockService.On("AssembleNoteDocument", mock.Anything, int64(7), "DBN001").Return(&domain.NoteDocument{
		NoteType:      "Debit",
		NoteNo:        "DBN001",
		CompanyName:   "Sharma Constructions",
		TotalAmount:   decimal.NewFromInt(236),
		AmountInWords: "Two Hundred Thirty Six Rupees Only",
	}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/DBN001/pdf", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal("inline; filename=DBN001.pdf", w.Header().Get("Content-Disposition"))
	suite.Equal(strconv.Itoa(w.Body.Len()), w.Header().Get("Content-Length"))
	suite.Equal("%PDF", w.Body.String()[:4])
}

func (suite *TransactionHandlerTestSuite) TestSaveItems_BodyCarriesTransactionID() {
	token := suite.generateTestToken("USR001", 7)
	body := `{"transaction_id": "DBN001", "items": [{"item_id": "ITM001", "particulars": "Cement", "qty": 2, "rate": 100, "tax": 18}]}`

	suite.mockService.On("SaveItems", mock.Anything, int64(7), "DBN001", mock.MatchedBy(func(items []dto.NoteItemPayload) bool {
		return len(items) == 1 && items[0].ItemID == "ITM001"
	})).Return(nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/items", token, &body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
