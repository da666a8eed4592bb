package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/dto"
	"github.com/devdecrux/pocketr_api/internal/middleware"
)

type householdHandler struct {
	households portssvc.HouseholdOracle
}

func registerHouseholdRoutes(rg *gin.RouterGroup, households portssvc.HouseholdOracle) {
	h := &householdHandler{households: households}

	rg.GET("/households/:id/accounts", h.listHouseholdAccounts)
}

// listHouseholdAccounts godoc
// @Summary Accounts usable in a household
// @Description Lists the caller's own accounts plus every account shared into the household.
// @Tags households
// @Produce json
// @Param id path string true "Household ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid household ID"
// @Failure 403 {object} map[string]string "Not an active member of this household"
// @Security BearerAuth
// @Router /households/{id}/accounts [get]
func (h *householdHandler) listHouseholdAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	householdID, err := pathUUID(c, "id", "Household ID")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.households.ListHouseholdAccounts(c.Request.Context(), householdID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list household accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
