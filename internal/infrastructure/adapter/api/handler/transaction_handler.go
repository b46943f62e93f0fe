package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
)

// emptyListHint replaces the data array when the user has no transactions
const emptyListHint = "no transactions yet, try to add some income or expense"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// AddIncome handles the POST /api/transactions/addIncome endpoint
func (h *TransactionHandler) AddIncome(c *gin.Context) {
	h.record(c, "income")
}

// AddExpense handles the POST /api/transactions/addExpense endpoint
func (h *TransactionHandler) AddExpense(c *gin.Context) {
	h.record(c, "expense")
}

func (h *TransactionHandler) record(c *gin.Context, transactionType string) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailMessageResponse{
			Status:  "failed",
			Message: "Unauthorized!",
		})
		return
	}

	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	var err error
	var message string
	if transactionType == "income" {
		err = h.transactionUseCase.RecordIncome(c.Request.Context(), identity.ID, req.Amount.String(), req.Remarks)
		message = "Income added successfully!"
	} else {
		err = h.transactionUseCase.RecordExpense(c.Request.Context(), identity.ID, req.Amount.String(), req.Remarks)
		message = "Expense added successfully!"
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Status:  "success",
		Message: message,
	})
}

// List handles the GET /api/transactions/ endpoint
func (h *TransactionHandler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailMessageResponse{
			Status:  "failed",
			Message: "Unauthorized!",
		})
		return
	}

	transactionType := c.Query("transaction_type")

	transactions, err := h.transactionUseCase.List(c.Request.Context(), identity.ID, transactionType)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if len(transactions) == 0 {
		c.JSON(http.StatusOK, dto.ListTransactionsResponse{
			Status: "success",
			Data:   emptyListHint,
		})
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Status: "success",
		Data:   dto.TransactionsToData(transactions),
	})
}

// Edit handles the PATCH /api/transactions/ endpoint
func (h *TransactionHandler) Edit(c *gin.Context) {
	var req dto.EditTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	if err := h.transactionUseCase.Edit(c.Request.Context(), req.TransactionID, req.Remarks); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status: "Transaction updated successfully!",
	})
}

// Delete handles the DELETE /api/transactions/:transaction_id endpoint
func (h *TransactionHandler) Delete(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	if err := h.transactionUseCase.Delete(c.Request.Context(), transactionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status: "Deleted successfully!",
	})
}
