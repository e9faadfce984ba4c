// controllers/commission_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/services"
	"github.com/mafalia/teranga-network/storage"
	"github.com/mafalia/teranga-network/utils"
)

// CommissionController exposes the commission balance and the withdrawal
// workflow.
type CommissionController struct {
	store       *storage.Store
	commissions *services.CommissionService
}

// NewCommissionController creates a new commission controller
func NewCommissionController(store *storage.Store, commissions *services.CommissionService) *CommissionController {
	return &CommissionController{store: store, commissions: commissions}
}

// GetBalance returns the partner's commission balance and whether the
// available portion clears the withdrawal minimum.
func (cc *CommissionController) GetBalance(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	balance, err := cc.commissions.Balance(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve commission balance",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Commission balance retrieved successfully",
		Data: map[string]interface{}{
			"balance":           balance,
			"canWithdraw":       services.CanWithdraw(balance.Available),
			"minimumWithdrawal": models.MinimumWithdrawal,
		},
	})
}

// RequestWithdrawal creates a pending withdrawal request for the partner.
func (cc *CommissionController) RequestWithdrawal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	var req models.WithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Data:    err.Error(),
		})
	}

	withdrawal, err := cc.commissions.CreateWithdrawalRequest(ctx, partnerID, req.Amount, req.Method, req.AccountDetails)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBelowMinimum),
			errors.Is(err, services.ErrInsufficientBalance),
			errors.Is(err, models.ErrMissingAccountDetails),
			errors.Is(err, models.ErrUnknownWithdrawalMethod):
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create withdrawal request",
		})
	}

	if partner, err := cc.store.PartnerByID(ctx, partnerID); err == nil && partner != nil {
		go utils.NotifyWithdrawalRequested(partner, withdrawal)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Withdrawal request created successfully",
		Data:    withdrawal,
	})
}

// GetWithdrawals lists the partner's withdrawal requests, newest first.
func (cc *CommissionController) GetWithdrawals(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	withdrawals, err := cc.store.WithdrawalsByPartner(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve withdrawals",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Withdrawals retrieved successfully",
		Data:    withdrawals,
	})
}

// ProcessWithdrawal approves or rejects a pending withdrawal request.
func (cc *CommissionController) ProcessWithdrawal(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	withdrawalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid withdrawal ID",
		})
	}

	var req models.ProcessWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if !req.Approve && req.RejectionReason == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Rejection reason is required",
		})
	}

	withdrawal, err := cc.commissions.ProcessWithdrawal(ctx, withdrawalID, req.Approve, req.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalNotFound):
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: err.Error(),
			})
		case errors.Is(err, services.ErrWithdrawalNotPending),
			errors.Is(err, services.ErrInsufficientBalance):
			return c.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: err.Error(),
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to process withdrawal",
		})
	}

	if partner, err := cc.store.PartnerByID(ctx, withdrawal.PartnerID); err == nil && partner != nil {
		go utils.NotifyWithdrawalProcessed(partner, withdrawal)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Withdrawal processed successfully",
		Data:    withdrawal,
	})
}
