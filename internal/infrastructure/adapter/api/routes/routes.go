package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
	tokenIssuer coreport.TokenIssuer,
	logger coreport.Logger,
) {
	auth := middleware.Auth(tokenIssuer, logger)

	userRoutes := router.Group("/api/users")
	{
		userRoutes.POST("/register", userHandler.Register)
		userRoutes.POST("/login", userHandler.Login)
		userRoutes.GET("/dashboard", auth, userHandler.Dashboard)
		userRoutes.POST("/forgotpw", userHandler.ForgotPassword)
		userRoutes.POST("/resetpw", userHandler.ResetPassword)
	}

	transactionRoutes := router.Group("/api/transactions")
	transactionRoutes.Use(auth)
	{
		transactionRoutes.POST("/addIncome", transactionHandler.AddIncome)
		transactionRoutes.POST("/addExpense", transactionHandler.AddExpense)
		transactionRoutes.GET("/", transactionHandler.List)
		transactionRoutes.PATCH("/", transactionHandler.Edit)
		transactionRoutes.DELETE("/:transaction_id", transactionHandler.Delete)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.FailMessageResponse{
			Status:  "failed",
			Message: "Error 404 not found",
		})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
