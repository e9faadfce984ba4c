package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/mafalia/teranga-network/controllers"
)

// Controllers bundles the handler set the router wires up.
type Controllers struct {
	Auth          *controllers.AuthController
	Client        *controllers.ClientController
	Order         *controllers.OrderController
	Commission    *controllers.CommissionController
	Partner       *controllers.PartnerController
	Leaderboard   *controllers.LeaderboardController
	Certification *controllers.CertificationController
}

// SetupRoutes configures all API routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, ctrl Controllers) {
	RegisterAuthRoutes(e, ctrl.Auth, ctrl.Certification)
	RegisterPartnerRoutes(e, ctrl.Auth, ctrl.Client, ctrl.Order, ctrl.Commission,
		ctrl.Partner, ctrl.Leaderboard, ctrl.Certification)
}
