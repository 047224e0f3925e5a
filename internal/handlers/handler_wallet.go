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

// walletHandler serves the read-only wallet overview.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.GET("", h.listWallets)
		wallets.GET("/:walletID", h.getWallet)
		wallets.GET("/:walletID/transactions", h.listTransactions)
		wallets.GET("/:walletID/receipts", h.listReceipts)
	}
}

// listWallets godoc
// @Summary List the month-wallets
// @Description Returns the ten wallets of the academic year in month order with their stat fields
// @Tags wallets
// @Produce json
// @Success 200 {object} dto.ListWalletsResponse
// @Failure 500 {object} map[string]string "Failed to list wallets"
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	wallets, err := h.walletService.ListWallets(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "list wallets")
		return
	}

	logger.Debug("Wallets listed", slog.Int("count", len(wallets)))
	c.JSON(http.StatusOK, dto.ToListWalletsResponse(wallets))
}

// getWallet godoc
// @Summary Get a wallet
// @Description Returns one wallet with its beginning cash, totals and ending cash
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID (YYYY-MM)"
// @Success 200 {object} dto.WalletResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Router /wallets/{walletID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	wallet, err := h.walletService.GetWallet(c.Request.Context(), walletID)
	if err != nil {
		respondWithError(c, logger, err, "get wallet")
		return
	}
	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// listTransactions godoc
// @Summary List a wallet's transactions
// @Description Returns the income group followed by the expense group, each in entry order
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID (YYYY-MM)"
// @Param filter query string false "all, income or expense" default(all)
// @Success 200 {object} dto.TransactionViewResponse
// @Failure 400 {object} map[string]string "Unknown filter"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Router /wallets/{walletID}/transactions [get]
func (h *walletHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	writeTransactionView(c, logger, h.walletService, c.Param("walletID"))
}

// listReceipts godoc
// @Summary List a wallet's receipts
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID (YYYY-MM)"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 404 {object} map[string]string "Wallet not found"
// @Router /wallets/{walletID}/receipts [get]
func (h *walletHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receipts, err := h.walletService.ListReceipts(c.Request.Context(), c.Param("walletID"))
	if err != nil {
		respondWithError(c, logger, err, "list receipts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts))
}

// writeTransactionView parses the filter query and writes the projected ledger.
func writeTransactionView(c *gin.Context, logger *slog.Logger, ws portssvc.WalletReaderSvc, walletID string) {
	filter, err := domain.ParseTransactionFilter(c.Query("filter"))
	if err != nil {
		logger.Warn("Invalid transaction filter", slog.String("filter", c.Query("filter")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := ws.ListTransactions(c.Request.Context(), walletID, filter)
	if err != nil {
		respondWithError(c, logger, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionViewResponse(view))
}
