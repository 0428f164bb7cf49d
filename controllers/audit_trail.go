package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"work-arrangement-api/services"
	"work-arrangement-api/utils"
)

// GetRequestAuditTrail returns the full status history of one request,
// oldest entry first.
// GET /audit/requests/:id
func GetRequestAuditTrail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := services.NewAuditService(getDB()).FindByRequestIDs([]int{id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entries": entries,
		"total":   len(entries),
	})
}

// GetAuditTrail lists audit entries joined with their request summary.
// GET /audit?staff_id=&from=&to=
func GetAuditTrail(c *gin.Context) {
	staffID := 0
	if raw := strings.TrimSpace(c.Query("staff_id")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff_id"})
			return
		}
		staffID = parsed
	}

	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if (from != "" && !utils.ValidateDateString(from)) || (to != "" && !utils.ValidateDateString(to)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dates must be YYYY-MM-DD"})
		return
	}

	rows, err := services.NewAuditService(getDB()).FindByDateRangeAndStaff(staffID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entries": rows,
		"total":   len(rows),
	})
}
