package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"work-arrangement-api/models"
	"work-arrangement-api/services"
)

// GetManagerRequests lists requests the caller reviews.
// GET /manager/requests?status=&from=&to=&page=&size=
func GetManagerRequests(c *gin.Context) {
	managerID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	q := getDB().Model(&models.WorkRequest{}).
		Preload("Staff").
		Where("manager_id = ?", managerID)

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
	if err := q.Order("work_date ASC, request_id ASC").
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

// GetManagerPendingCount returns the caller's open review counters.
func GetManagerPendingCount(c *gin.Context) {
	managerID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var pending, withdrawals int64
	if err := getDB().Model(&models.WorkRequest{}).
		Where("manager_id = ? AND status = ?", managerID, models.StatusPending).
		Count(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := getDB().Model(&models.WorkRequest{}).
		Where("manager_id = ? AND status = ?", managerID, models.StatusPendingWithdrawal).
		Count(&withdrawals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"pending":             pending,
		"pending_withdrawals": withdrawals,
	})
}

// ApproveRequest approves one pending request.
func ApproveRequest(c *gin.Context) {
	managerSingleTransition(c, services.ActionApprove, "", "Request approved")
}

// RejectRequest rejects one pending request; a reason is mandatory.
func RejectRequest(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	managerSingleTransition(c, services.ActionReject, body.Reason, "Request rejected")
}

// ManagerWithdrawRequest withdraws an approved request on the manager's own
// initiative, skipping the pending-withdrawal step.
func ManagerWithdrawRequest(c *gin.Context) {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	managerSingleTransition(c, services.ActionManagerWithdraw, body.Reason, "Request withdrawn")
}

// ApproveWithdrawal finalizes a staff-initiated withdrawal.
func ApproveWithdrawal(c *gin.Context) {
	managerSingleTransition(c, services.ActionApproveWithdrawal, "", "Withdrawal approved")
}

// RejectWithdrawal returns a pending-withdrawal request to Approved.
func RejectWithdrawal(c *gin.Context) {
	managerSingleTransition(c, services.ActionRejectWithdrawal, "", "Withdrawal rejected")
}

func managerSingleTransition(c *gin.Context, action services.TransitionAction, reason, message string) {
	managerID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !managerOwnsRequest(c, id, managerID) {
		return
	}

	if err := services.NewRequestService(getDB()).TransitionOne(id, action, managerID, reason); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

type bulkTransitionReq struct {
	RequestIDs []int  `json:"request_ids" binding:"required"`
	Reason     string `json:"reason"`
}

// BulkApproveRequests approves every listed request still pending. Ids in
// another state are skipped; the response reports only the changed count.
func BulkApproveRequests(c *gin.Context) {
	managerBulkTransition(c, services.ActionApprove)
}

// BulkRejectRequests rejects every listed request still pending.
func BulkRejectRequests(c *gin.Context) {
	managerBulkTransition(c, services.ActionReject)
}

func managerBulkTransition(c *gin.Context, action services.TransitionAction) {
	managerID, ok := getCurrentStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body bulkTransitionReq
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(body.RequestIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No request ids provided"})
		return
	}

	// Restrict the batch to requests this manager actually reviews.
	var owned []int
	if err := getDB().Model(&models.WorkRequest{}).
		Where("request_id IN ? AND manager_id = ?", body.RequestIDs, managerID).
		Pluck("request_id", &owned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(owned) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "updated": 0, "message": "Nothing eligible"})
		return
	}

	count, err := services.NewRequestService(getDB()).Transition(owned, action, managerID, body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	message := "Requests updated"
	if count == 0 {
		message = "Nothing eligible"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": count, "message": message})
}

func managerOwnsRequest(c *gin.Context, requestID, managerID int) bool {
	var req models.WorkRequest
	if err := getDB().Select("request_id", "manager_id").First(&req, "request_id = ?", requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return false
	}
	if req.ManagerID != managerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a request you review"})
		return false
	}
	return true
}
