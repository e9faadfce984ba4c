package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mafalia/teranga-network/controllers"
)

// RegisterAuthRoutes sets up the authentication and public routes
func RegisterAuthRoutes(
	e *echo.Echo,
	authController *controllers.AuthController,
	certificationController *controllers.CertificationController,
) {
	// Public authentication routes
	e.POST("/api/auth/signup", authController.Signup)
	e.POST("/api/auth/login", authController.Login)

	// Public certificate verification (the QR code on a certificate points here)
	e.GET("/verify/:id", certificationController.VerifyCertificate)
}
