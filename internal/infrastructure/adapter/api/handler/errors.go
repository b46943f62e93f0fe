package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to the API error envelope. Business rule
// failures render as 400 with the rule's message; anything unclassified is a
// 500 with a generic message so internals never leak.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	kind, ok := errs.KindOf(err)
	if !ok || kind == errs.KindUpstream {
		logger.Error("Request failed with internal error", map[string]any{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"error":  err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Status: "failed",
			Error:  "Internal server error",
		})
		return
	}

	if kind == errs.KindUnauthorized {
		c.JSON(http.StatusUnauthorized, dto.FailMessageResponse{
			Status:  "failed",
			Message: "Unauthorized!",
		})
		return
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Status: "failed",
		Error:  err.Error(),
	})
}
