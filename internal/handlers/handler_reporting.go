package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
	"github.com/devdecrux/pocketr_api/internal/middleware"
)

// reportingHandler handles HTTP requests related to ledger reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers report routes under the given group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/balances", h.getAllAccountBalances)
		reportingGroup.GET("/monthly", h.getMonthlyExpenses)
		reportingGroup.GET("/timeseries", h.getBalanceTimeseries)
	}
}

// getAllAccountBalances godoc
// @Summary Balances of all owned accounts
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {array} dto.AccountBalanceSummaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /ledger/reports/balances [get]
func (h *reportingHandler) getAllAccountBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	asOf, err := queryDate(c, "asOf")
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", c.Query("asOf")))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.GetAllAccountBalances(c.Request.Context(), userID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// getMonthlyExpenses godoc
// @Summary Monthly expenses by account and category
// @Description Aggregates EXPENSE splits for one calendar month, grouped by expense account, category and currency.
// @Tags reports
// @Produce json
// @Param period query string true "Month (YYYY-MM)"
// @Param mode query string false "INDIVIDUAL (default) or HOUSEHOLD"
// @Param householdId query string false "Household ID (required for HOUSEHOLD mode)"
// @Success 200 {array} dto.MonthlyExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not an active member of this household"
// @Security BearerAuth
// @Router /ledger/reports/monthly [get]
func (h *reportingHandler) getMonthlyExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.MonthlyExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	report, err := h.reportingService.GetMonthlyExpenses(c.Request.Context(), userID, params.Period, params.Mode, params.HouseholdID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// getBalanceTimeseries godoc
// @Summary Daily balance timeseries
// @Description Returns one balance point per day in [dateFrom, dateTo] for an owned account.
// @Tags reports
// @Produce json
// @Param accountId query string true "Account ID"
// @Param dateFrom query string true "Inclusive start date (YYYY-MM-DD)"
// @Param dateTo query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceTimeseriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the owner of this account"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /ledger/reports/timeseries [get]
func (h *reportingHandler) getBalanceTimeseries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.BalanceTimeseriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "query parameters")
		return
	}

	series, err := h.reportingService.GetBalanceTimeseries(c.Request.Context(), params.AccountID, params.DateFrom, params.DateTo, userID)
	if err != nil {
		respondError(c, logger.With(slog.String("account_id", params.AccountID)), err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusOK, series)
}
