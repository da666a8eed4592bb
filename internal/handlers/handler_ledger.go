package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
	"github.com/devdecrux/pocketr_api/internal/middleware"
)

// ledgerHandler handles posting and listing transactions and balance queries.
type ledgerHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	balanceService portssvc.BalanceSvc
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade, bs portssvc.BalanceSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService:  ls,
		balanceService: bs,
	}
}

// registerLedgerRoutes registers routes under /ledger. Reports share the prefix.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, balanceService portssvc.BalanceSvc, reportingService portssvc.ReportingService) {
	h := newLedgerHandler(ledgerService, balanceService)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/transactions", h.createTransaction)
		ledger.GET("/transactions", h.listTransactions)
		ledger.GET("/accounts/balances", h.getAccountBalances)
		ledger.GET("/accounts/:id/balance", h.getAccountBalance)

		registerReportingRoutes(ledger, reportingService)
	}
}

// createTransaction godoc
// @Summary Post a transaction
// @Description Posts a balanced multi-split transaction. Splits must share the transaction currency;
// @Description household mode allows splits on accounts shared into the household.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid transaction"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Account or household not accessible"
// @Failure 404 {object} map[string]string "Account or category not found"
// @Security BearerAuth
// @Router /ledger/transactions [post]
func (h *ledgerHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction posted", slog.String("transaction_id", txn.TransactionID), slog.Int("splits", len(txn.Splits)))
	c.JSON(http.StatusCreated, txn)
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first. INDIVIDUAL mode shows the caller's own postings;
// @Description HOUSEHOLD mode shows every transaction touching an account shared into the household.
// @Tags ledger
// @Produce  json
// @Param   mode query string false "INDIVIDUAL (default) or HOUSEHOLD"
// @Param   householdId query string false "Household ID (required for HOUSEHOLD mode)"
// @Param   dateFrom query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   dateTo query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   accountId query string false "Only transactions touching this account"
// @Param   categoryId query string false "Only transactions with a split tagged with this category"
// @Param   page query int false "Zero-based page" default(0)
// @Param   size query int false "Page size" default(15)
// @Success 200 {object} dto.PagedTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Not an active member of this household"
// @Security BearerAuth
// @Router /ledger/transactions [get]
func (h *ledgerHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Returns the normal-balance-aware balance of one account as of a date (inclusive).
// @Tags ledger
// @Produce  json
// @Param   id path string true "Account ID"
// @Param   asOf query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Param   householdId query string false "Household the account is shared into"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Account not accessible"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /ledger/accounts/{id}/balance [get]
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, err := pathUUID(c, "id", "Account ID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf, err := queryDate(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	householdID, err := queryOptionalUUID(c, "householdId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balance, err := h.balanceService.GetAccountBalance(c.Request.Context(), accountID, asOf, userID, householdID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", accountID)), err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, balance)
}

// getAccountBalances godoc
// @Summary Get several account balances
// @Description Returns balances for several accounts in one request, in the order requested.
// @Tags ledger
// @Produce  json
// @Param   accountIds query []string true "Account IDs (repeated or comma-separated)" collectionFormat(csv)
// @Param   asOf query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Param   householdId query string false "Household the accounts are shared into"
// @Success 200 {array} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Account not accessible"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /ledger/accounts/balances [get]
func (h *ledgerHandler) getAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accountIDs, err := queryUUIDList(c, "accountIds")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	asOf, err := queryDate(c, "asOf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	householdID, err := queryOptionalUUID(c, "householdId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	balances, err := h.balanceService.GetAccountBalances(c.Request.Context(), accountIDs, asOf, userID, householdID)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balances")
		return
	}

	c.JSON(http.StatusOK, balances)
}
