package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
	"github.com/SscSPs/pres_finance_portal/internal/handlers"
	"github.com/SscSPs/pres_finance_portal/internal/middleware"
	"github.com/SscSPs/pres_finance_portal/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testSessionID = "sess-1"
	testWalletID  = "2026-02"
)

var testNow = time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router  *gin.Engine
	wallets *MockWalletService
	session *MockSessionService
	reports *MockReportService
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.wallets = new(MockWalletService)
	suite.session = new(MockSessionService)
	suite.reports = new(MockReportService)

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Wallet:  suite.wallets,
		Session: suite.session,
		Report:  suite.reports,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.wallets.AssertExpectations(suite.T())
	suite.session.AssertExpectations(suite.T())
	suite.reports.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, path, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), v))
}

func february() *domain.Wallet {
	w := domain.NewAcademicYearWallets(2025, testNow)[6]
	w.BeginningCash = decimal.NewFromInt(1000)
	w.EndingCash = decimal.NewFromInt(1000)
	return &w
}

func (suite *HandlersTestSuite) TestHealth() {
	for _, path := range []string{"/health", "/api/v1/health"} {
		w := suite.do(http.MethodGet, path, nil)
		suite.Equal(http.StatusOK, w.Code, path)
		suite.Equal("OK", w.Body.String(), path)
	}
}

func (suite *HandlersTestSuite) TestListWallets() {
	suite.wallets.On("ListWallets", mock.Anything).Return(domain.NewAcademicYearWallets(2025, testNow), nil)

	w := suite.do(http.MethodGet, "/api/v1/wallets", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListWalletsResponse
	suite.decode(w, &resp)
	suite.Len(resp.Wallets, domain.WalletCount)
	suite.Equal("AUGUST", resp.Wallets[0].Name)
}

func (suite *HandlersTestSuite) TestGetWallet_NotFound() {
	suite.wallets.On("GetWallet", mock.Anything, "2030-01").Return(nil, apperrors.ErrNotFound)

	w := suite.do(http.MethodGet, "/api/v1/wallets/2030-01", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListTransactions_Filter() {
	view := domain.TransactionView{
		WalletID: testWalletID,
		Filter:   domain.FilterExpense,
		Income:   []domain.Transaction{},
		Expenses: []domain.Transaction{{TransactionID: "t1", Amount: decimal.NewFromInt(-73), Type: domain.Expense}},
	}
	suite.wallets.On("ListTransactions", mock.Anything, testWalletID, domain.FilterExpense).Return(view, nil)

	w := suite.do(http.MethodGet, "/api/v1/wallets/2026-02/transactions?filter=expense", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionViewResponse
	suite.decode(w, &resp)
	suite.Equal("expense", resp.Filter)
	suite.Len(resp.Transactions, 1)
	suite.False(resp.Empty)

	w = suite.do(http.MethodGet, "/api/v1/wallets/2026-02/transactions?filter=refunds", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestSelectWallet() {
	session := &domain.Session{SessionID: testSessionID, SelectedWalletID: testWalletID, CreatedAt: testNow}
	suite.session.On("SelectWallet", mock.Anything, testSessionID, testWalletID).Return(session, february(), nil)
	suite.reports.On("Status", mock.Anything, testSessionID).Return(testWalletID, domain.ReportGenerated, nil)

	w := suite.do(http.MethodPut, "/api/v1/sessions/sess-1/wallet", dto.SelectWalletRequest{WalletID: testWalletID})
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SessionResponse
	suite.decode(w, &resp)
	suite.Equal(testWalletID, resp.SelectedWalletID)
	suite.Require().NotNil(resp.Wallet)
	suite.Equal("FEBRUARY", resp.Wallet.Name)
	suite.Equal("GENERATED", resp.ReportStatus)
}

func (suite *HandlersTestSuite) TestSelectWallet_MissingBody() {
	w := suite.do(http.MethodPut, "/api/v1/sessions/sess-1/wallet", map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestRecordTransaction_NoWalletSelected() {
	suite.session.On("RequireSelectedWallet", mock.Anything, testSessionID).Return("", apperrors.ErrNoWalletSelected)

	w := suite.do(http.MethodPost, "/api/v1/sessions/sess-1/transactions", dto.RecordTransactionRequest{Type: domain.Income})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Please select a wallet first.")
	suite.wallets.AssertNotCalled(suite.T(), "RecordTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRecordTransaction_ValidationFields() {
	req := dto.RecordTransactionRequest{Type: domain.Expense, Quantity: "1"}
	suite.session.On("RequireSelectedWallet", mock.Anything, testSessionID).Return(testWalletID, nil)
	suite.wallets.On("RecordTransaction", mock.Anything, testWalletID, req).
		Return(nil, nil, apperrors.NewValidationError(map[string]string{"particulars": "is required", "unitPrice": "is required"}))

	w := suite.do(http.MethodPost, "/api/v1/sessions/sess-1/transactions", req)
	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	suite.decode(w, &resp)
	suite.Equal("is required", resp.Fields["particulars"])
	suite.Equal("is required", resp.Fields["unitPrice"])
}

func (suite *HandlersTestSuite) TestRecordTransaction_Success() {
	req := dto.RecordTransactionRequest{
		Type: domain.Expense, Date: "2026-02-04", Quantity: "1",
		Particulars: "Snacks", Description: "assembly", UnitPrice: "73",
	}
	txn := &domain.Transaction{
		TransactionID: "t1", WalletID: testWalletID, EventLabel: "FEBRUARY",
		Description: "1 x Snacks - assembly", Amount: decimal.NewFromInt(-73),
		Date: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC), Type: domain.Expense,
	}
	wallet := february()
	wallet.TotalExpenses = decimal.NewFromInt(73)
	wallet.EndingCash = decimal.NewFromInt(927)
	suite.session.On("RequireSelectedWallet", mock.Anything, testSessionID).Return(testWalletID, nil)
	suite.wallets.On("RecordTransaction", mock.Anything, testWalletID, req).Return(txn, wallet, nil)

	w := suite.do(http.MethodPost, "/api/v1/sessions/sess-1/transactions", req)
	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.RecordTransactionResponse
	suite.decode(w, &resp)
	suite.Equal("Expense added successfully.", resp.Message)
	suite.Equal("2026-02-04", resp.Transaction.Date)
	suite.Equal("FEBRUARY", resp.Transaction.Event)
	suite.True(resp.Wallet.EndingCash.Equal(decimal.NewFromInt(927)))
}

func (suite *HandlersTestSuite) TestReportStatus() {
	suite.reports.On("Status", mock.Anything, testSessionID).Return(testWalletID, domain.ReportNotGenerated, nil)

	w := suite.do(http.MethodGet, "/api/v1/sessions/sess-1/report", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReportStatusResponse
	suite.decode(w, &resp)
	suite.Equal("NOT_GENERATED", resp.Status)
	suite.False(resp.CanPreview)
	suite.False(resp.CanSubmit)
	suite.True(resp.ShowActions)
}

func (suite *HandlersTestSuite) TestReportErrorsMapToConflict() {
	suite.reports.On("Preview", mock.Anything, testSessionID).Return(nil, apperrors.ErrReportNotGenerated)
	suite.reports.On("Generate", mock.Anything, testSessionID).Return(nil, apperrors.ErrReportInProgress)
	suite.reports.On("Submit", mock.Anything, testSessionID).Return(nil, apperrors.ErrReportAlreadySubmitted)

	w := suite.do(http.MethodGet, "/api/v1/sessions/sess-1/report/preview", nil)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "Please generate the report first.")

	w = suite.do(http.MethodPost, "/api/v1/sessions/sess-1/report/generate", nil)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/sessions/sess-1/report/submit", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlersTestSuite) TestReportPreviewAndPrint() {
	report := &domain.WalletReport{
		WalletID: testWalletID, WalletName: "FEBRUARY", YearMonth: testWalletID,
		EndingCash: decimal.NewFromInt(1000), Status: domain.ReportGenerated,
		Income: []domain.Transaction{}, Expenses: []domain.Transaction{}, Receipts: []domain.Receipt{},
		GeneratedAt: testNow,
	}
	suite.reports.On("Preview", mock.Anything, testSessionID).Return(report, nil)
	suite.reports.On("Print", mock.Anything, testSessionID).Return(report, []byte("xlsx-bytes"), nil)

	w := suite.do(http.MethodGet, "/api/v1/sessions/sess-1/report/preview", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.decode(w, &resp)
	suite.Equal("GENERATED", resp.Status)

	w = suite.do(http.MethodGet, "/api/v1/sessions/sess-1/report/preview?format=text", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "FINANCIAL REPORT - FEBRUARY (2026-02) - GENERATED")

	w = suite.do(http.MethodGet, "/api/v1/sessions/sess-1/report/print", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`attachment; filename="report-2026-02.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal("xlsx-bytes", w.Body.String())
}

func (suite *HandlersTestSuite) TestGenerate_Success() {
	report := &domain.WalletReport{WalletID: testWalletID, WalletName: "FEBRUARY", Status: domain.ReportGenerated}
	suite.reports.On("Generate", mock.Anything, testSessionID).Return(report, nil)

	w := suite.do(http.MethodPost, "/api/v1/sessions/sess-1/report/generate", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ReportActionResponse
	suite.decode(w, &resp)
	suite.Equal("Report for FEBRUARY generated successfully.", resp.Message)
	suite.True(resp.Status.CanSubmit)
}

func (suite *HandlersTestSuite) TestGetSession_WithSelection() {
	session := &domain.Session{SessionID: testSessionID, SelectedWalletID: testWalletID, CreatedAt: testNow}
	suite.session.On("GetSession", mock.Anything, testSessionID).Return(session, nil)
	suite.wallets.On("GetWallet", mock.Anything, testWalletID).Return(february(), nil)
	suite.reports.On("Status", mock.Anything, testSessionID).Return(testWalletID, domain.ReportSubmitted, nil)

	w := suite.do(http.MethodGet, "/api/v1/sessions/sess-1", nil)
	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SessionResponse
	suite.decode(w, &resp)
	suite.Equal("SUBMITTED", resp.ReportStatus)
	suite.Require().NotNil(resp.Wallet)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func TestSwaggerServedOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{}, &portssvc.ServiceContainer{
		Wallet:  new(MockWalletService),
		Session: new(MockSessionService),
		Report:  new(MockReportService),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Pres Finance Portal API")) {
		t.Fatalf("swagger doc missing title")
	}

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}
	if _, ok := doc.Paths["/health"]["get"]; !ok {
		t.Fatalf("swagger doc has no GET /health")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, doc.BasePath+"/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("documented health path %s/health returned %d", doc.BasePath, w.Code)
	}
}
