package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"work-arrangement-api/models"
	"work-arrangement-api/services"
	"work-arrangement-api/utils"
)

type createWorkRequestReq struct {
	Dates     []string `json:"dates"`
	StartDate string   `json:"start_date"`
	Recurring string   `json:"recurring"` // interval token, e.g. "1week"
	NumEvents int      `json:"num_events"`
	Slot      string   `json:"slot" binding:"required"`
	Reason    string   `json:"reason" binding:"required"`
}

// CreateWorkRequest submits one or more work arrangement requests: either
// explicit dates or a recurring definition expanded server-side.
func CreateWorkRequest(c *gin.Context) {
	staffID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req createWorkRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff, err := services.NewStaffService(getDB()).GetStaffByID(staffID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result, err := services.NewRequestService(getDB()).Create(staff, services.CreateCommand{
		Dates:             req.Dates,
		StartDate:         req.StartDate,
		RecurringInterval: req.Recurring,
		NumEvents:         req.NumEvents,
		Slot:              req.Slot,
		Reason:            utils.SanitizeInput(req.Reason),
	}, time.Time{})
	if err != nil {
		if services.IsValidationError(err) && result != nil && len(result.Checks) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "checks": result.Checks})
			return
		}
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"requests": result.Requests,
		"checks":   result.Checks,
		"notices":  result.Notices,
	})
}

// GetMyWorkRequests lists the caller's own requests.
// GET /requests?status=&from=&to=&page=&size=
func GetMyWorkRequests(c *gin.Context) {
	staffID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	q := getDB().Model(&models.WorkRequest{}).Where("staff_id = ?", staffID)

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		canonical, ok := models.CanonicalStatus(status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		q = q.Where("status = ?", canonical)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		q = q.Where("work_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		q = q.Where("work_date <= ?", to)
	}

	page := parsePositive(c.Query("page"), 1)
	size := parsePositive(c.Query("size"), 20)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var rows []models.WorkRequest
	if err := q.Order("work_date DESC, request_id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": rows,
		"meta": gin.H{
			"page":  page,
			"size":  size,
			"total": total,
		},
	})
}

// GetWorkRequest returns one request. Staff see their own, managers the
// ones they review, HR everything.
func GetWorkRequest(c *gin.Context) {
	staffID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.WorkRequest
	if err := getDB().First(&req, "request_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	roleID, _ := c.Get("roleID")
	if req.StaffID != staffID && req.ManagerID != staffID && roleID != models.RoleHR {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "request": req})
}

// CancelWorkRequest cancels the caller's own pending request.
func CancelWorkRequest(c *gin.Context) {
	staffID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !staffOwnsRequest(c, id, staffID) {
		return
	}

	if err := services.NewRequestService(getDB()).TransitionOne(id, services.ActionCancel, staffID, ""); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request cancelled"})
}

// WithdrawWorkRequest asks to withdraw an approved request; the manager
// still has to approve the withdrawal.
func WithdrawWorkRequest(c *gin.Context) {
	staffID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Withdraw reason is required"})
		return
	}
	if !staffOwnsRequest(c, id, staffID) {
		return
	}

	if err := services.NewRequestService(getDB()).TransitionOne(id, services.ActionStaffWithdraw, staffID, body.Reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Withdrawal requested"})
}

func staffOwnsRequest(c *gin.Context, requestID, staffID int) bool {
	var req models.WorkRequest
	if err := getDB().Select("request_id", "staff_id").First(&req, "request_id = ?", requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return false
	}
	if req.StaffID != staffID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your request"})
		return false
	}
	return true
}
