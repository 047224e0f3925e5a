package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/pres_finance_portal/internal/core/domain"
	portssvc "github.com/SscSPs/pres_finance_portal/internal/core/ports/services"
	"github.com/SscSPs/pres_finance_portal/internal/dto"
	"github.com/SscSPs/pres_finance_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler serves wallet selection and the mutations that act on the
// selected wallet.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
	walletService  portssvc.WalletSvcFacade
	reportService  portssvc.ReportSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade, ws portssvc.WalletSvcFacade, rs portssvc.ReportSvcFacade) *sessionHandler {
	return &sessionHandler{
		sessionService: ss,
		walletService:  ws,
		reportService:  rs,
	}
}

// registerSessionRoutes registers session routes. The report routes hang off the same group.
func registerSessionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) *gin.RouterGroup {
	h := newSessionHandler(services.Session, services.Wallet, services.Report)

	rg.POST("/sessions", h.createSession)

	session := rg.Group("/sessions/:sessionID")
	{
		session.GET("", h.getSession)
		session.PUT("/wallet", h.selectWallet)
		session.PUT("/budget", h.setBudget)
		session.GET("/transactions", h.listTransactions)
		session.POST("/transactions", h.recordTransaction)
		session.POST("/receipts", h.addReceipt)
	}
	return session
}

// createSession godoc
// @Summary Start a portal session
// @Description Creates a session with no wallet selected
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /sessions [post]
func (h *sessionHandler) createSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "create session")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a session
// @Description Returns the session with its selected wallet and that wallet's report status
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{sessionID} [get]
func (h *sessionHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	session, err := h.sessionService.GetSession(ctx, c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "get session")
		return
	}

	resp := dto.ToSessionResponse(session)
	if session.HasSelection() {
		wallet, err := h.walletService.GetWallet(ctx, session.SelectedWalletID)
		if err != nil {
			respondWithError(c, logger, err, "get session")
			return
		}
		walletResp := dto.ToWalletResponse(wallet)
		resp.Wallet = &walletResp

		_, status, err := h.reportService.Status(ctx, session.SessionID)
		if err != nil {
			respondWithError(c, logger, err, "get session")
			return
		}
		resp.ReportStatus = string(status)
	}
	c.JSON(http.StatusOK, resp)
}

// selectWallet godoc
// @Summary Select a wallet
// @Description Opens a wallet in the session; later mutations and report actions apply to it
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param wallet body dto.SelectWalletRequest true "Wallet to open"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Session or wallet not found"
// @Router /sessions/{sessionID}/wallet [put]
func (h *sessionHandler) selectWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var req dto.SelectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, wallet, err := h.sessionService.SelectWallet(ctx, c.Param("sessionID"), req.WalletID)
	if err != nil {
		respondWithError(c, logger, err, "select wallet")
		return
	}
	_, status, err := h.reportService.Status(ctx, session.SessionID)
	if err != nil {
		respondWithError(c, logger, err, "select wallet")
		return
	}

	resp := dto.ToSessionResponse(session)
	walletResp := dto.ToWalletResponse(wallet)
	resp.Wallet = &walletResp
	resp.ReportStatus = string(status)
	c.JSON(http.StatusOK, resp)
}

// setBudget godoc
// @Summary Set the selected wallet's budget
// @Description Replaces the beginning cash and recomputes the ending cash
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param budget body dto.SetBudgetRequest true "Budget amount"
// @Success 200 {object} dto.WalletActionResponse
// @Failure 400 {object} map[string]interface{} "Validation error with per-field messages"
// @Failure 409 {object} map[string]string "No wallet selected"
// @Router /sessions/{sessionID}/budget [put]
func (h *sessionHandler) setBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBudget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	walletID, err := h.sessionService.RequireSelectedWallet(ctx, c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "set budget")
		return
	}

	wallet, err := h.walletService.SetBudget(ctx, walletID, req)
	if err != nil {
		respondWithError(c, logger, err, "set budget")
		return
	}
	c.JSON(http.StatusOK, dto.WalletActionResponse{
		Message: "Budget updated successfully.",
		Wallet:  dto.ToWalletResponse(wallet),
	})
}

// recordTransaction godoc
// @Summary Record an income or expense
// @Description Validates the entry form, appends it to the selected wallet and updates its totals
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param transaction body dto.RecordTransactionRequest true "Entry form"
// @Success 201 {object} dto.RecordTransactionResponse
// @Failure 400 {object} map[string]interface{} "Validation error with per-field messages"
// @Failure 409 {object} map[string]string "No wallet selected"
// @Router /sessions/{sessionID}/transactions [post]
func (h *sessionHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	walletID, err := h.sessionService.RequireSelectedWallet(ctx, c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "record transaction")
		return
	}

	txn, wallet, err := h.walletService.RecordTransaction(ctx, walletID, req)
	if err != nil {
		respondWithError(c, logger, err, "record transaction")
		return
	}

	label := "Income"
	if txn.Type == domain.Expense {
		label = "Expense"
	}
	c.JSON(http.StatusCreated, dto.RecordTransactionResponse{
		Message:     label + " added successfully.",
		Transaction: dto.ToTransactionResponse(txn),
		Wallet:      dto.ToWalletResponse(wallet),
	})
}

// listTransactions godoc
// @Summary List the selected wallet's transactions
// @Tags sessions
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param filter query string false "all, income or expense" default(all)
// @Success 200 {object} dto.TransactionViewResponse
// @Failure 409 {object} map[string]string "No wallet selected"
// @Router /sessions/{sessionID}/transactions [get]
func (h *sessionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	walletID, err := h.sessionService.RequireSelectedWallet(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "list transactions")
		return
	}
	writeTransactionView(c, logger, h.walletService, walletID)
}

// addReceipt godoc
// @Summary File a receipt
// @Description Adds a receipt to the selected wallet
// @Tags sessions
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param receipt body dto.AddReceiptRequest true "Receipt form"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} map[string]interface{} "Validation error with per-field messages"
// @Failure 409 {object} map[string]string "No wallet selected"
// @Router /sessions/{sessionID}/receipts [post]
func (h *sessionHandler) addReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var req dto.AddReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	walletID, err := h.sessionService.RequireSelectedWallet(ctx, c.Param("sessionID"))
	if err != nil {
		respondWithError(c, logger, err, "add receipt")
		return
	}

	receipt, err := h.walletService.AddReceipt(ctx, walletID, req)
	if err != nil {
		respondWithError(c, logger, err, "add receipt")
		return
	}
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(receipt))
}
