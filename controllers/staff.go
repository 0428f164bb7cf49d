package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"work-arrangement-api/services"
)

// GetDepartmentStaff maps staff ids to display names for one department.
// GET /staff/department/:dept
func GetDepartmentStaff(c *gin.Context) {
	dept := strings.TrimSpace(c.Param("dept"))
	if dept == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Department is required"})
		return
	}

	names, err := services.NewStaffService(getDB()).GetStaffIDsByDepartment(dept)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"staff":   names,
		"total":   len(names),
	})
}
