package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /api/users/register endpoint
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid register request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	_, token, err := h.userUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Balance:         req.Balance.String(),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Status:      "User registered successfully!",
		AccessToken: token,
	})
}

// Login handles the POST /api/users/login endpoint
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	_, token, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:      "success",
		Message:     "User logged in successfully!",
		AccessToken: token,
	})
}

// Dashboard handles the GET /api/users/dashboard endpoint
func (h *UserHandler) Dashboard(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.FailMessageResponse{
			Status:  "failed",
			Message: "Unauthorized!",
		})
		return
	}

	user, transactions, err := h.userUseCase.Dashboard(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Status:       "success",
		Data:         dto.UserToData(user),
		Transactions: dto.TransactionsToData(transactions),
	})
}

// ForgotPassword handles the POST /api/users/forgotpw endpoint
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	if err := h.userUseCase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Status: "Reset code sent to email successfully!",
	})
}

// ResetPassword handles the POST /api/users/resetpw endpoint
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status: "failed",
			Error:  "Invalid request format",
		})
		return
	}

	if err := h.userUseCase.ResetPassword(c.Request.Context(), req.Email, req.ResetCode, req.NewPassword); err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Message text kept from the original client contract
	c.JSON(http.StatusOK, dto.MessageResponse{
		Status:  "success",
		Message: "Password reseted succesfully!",
	})
}
