package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mafalia/teranga-network/controllers"
	"github.com/mafalia/teranga-network/middleware"
)

// RegisterPartnerRoutes sets up the JWT-protected partner API
func RegisterPartnerRoutes(
	e *echo.Echo,
	authController *controllers.AuthController,
	clientController *controllers.ClientController,
	orderController *controllers.OrderController,
	commissionController *controllers.CommissionController,
	partnerController *controllers.PartnerController,
	leaderboardController *controllers.LeaderboardController,
	certificationController *controllers.CertificationController,
) {
	api := e.Group("/api")
	api.Use(middleware.JWTMiddleware())

	// Profile
	api.GET("/auth/me", authController.GetMe)

	// Clients
	api.POST("/clients", clientController.EnrollClient)
	api.GET("/clients", clientController.GetClients)
	api.PUT("/clients/:id/status", clientController.UpdateClientStatus)

	// Orders and ledger
	api.POST("/orders", orderController.CreateOrder)
	api.GET("/orders", orderController.GetOrders)
	api.PUT("/orders/:id/status", orderController.UpdateOrderStatus)
	api.GET("/transactions", orderController.GetTransactions)

	// Commissions and withdrawals
	api.GET("/commissions/balance", commissionController.GetBalance)
	api.POST("/withdrawals", commissionController.RequestWithdrawal)
	api.GET("/withdrawals", commissionController.GetWithdrawals)
	api.PUT("/withdrawals/:id/process", commissionController.ProcessWithdrawal)

	// Dashboard, scoring and referral
	api.GET("/partners/stats", partnerController.GetStats)
	api.GET("/partners/rank", partnerController.GetRankInfo)
	api.POST("/partners/recompute", partnerController.RecomputeScore)
	api.GET("/partners/referral-qrcode", partnerController.GetReferralQRCode)
	api.GET("/leaderboard", leaderboardController.GetLeaderboard)

	// Certification
	api.GET("/certification/questions", certificationController.GetQuestions)
	api.POST("/certification/submit", certificationController.SubmitQuiz)
}
