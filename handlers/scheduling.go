package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"worklane/services/scheduling"
)

// SchedulingService is wired by main at startup.
var SchedulingService scheduling.SchedulingService

// GetEarliestBookableDate computes the earliest instant execution could
// start for the given spec and resources. Unschedulable requests are a
// normal outcome, not an error: the date comes back null.
func GetEarliestBookableDate(c *gin.Context) {
	var req scheduling.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	earliest, err := SchedulingService.EarliestBookableDate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnschedulable) {
			c.JSON(http.StatusOK, gin.H{"earliestBookableDate": nil, "unschedulable": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute earliest bookable date", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"earliestBookableDate": earliest})
}

// ComputeScheduleProposals runs the full proposal search and caches the
// result as a session for later confirmation.
func ComputeScheduleProposals(c *gin.Context) {
	var req scheduling.ProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := SchedulingService.ComputeProposals(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnschedulable) {
			c.JSON(http.StatusOK, gin.H{"session": nil, "unschedulable": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute proposals", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ValidateSelection re-checks a caller-chosen start instant against live
// availability data.
func ValidateSelection(c *gin.Context) {
	var req scheduling.ValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := SchedulingService.ValidateSelection(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, scheduling.ErrUnschedulable) {
			c.JSON(http.StatusOK, gin.H{"valid": false, "reason": "unschedulable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate selection", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProposalSession returns a cached proposal session by ID.
func GetProposalSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session ID"})
		return
	}

	session, err := SchedulingService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "proposal session not found", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}
