// controllers/partner_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/services"
	"github.com/mafalia/teranga-network/storage"
	"github.com/mafalia/teranga-network/utils"
)

// PartnerController exposes the dashboard views: stats, rank progress, score
// recomputation and the referral QR code.
type PartnerController struct {
	store  *storage.Store
	stats  *services.StatsService
	scores *services.ScoreService
}

// NewPartnerController creates a new partner controller
func NewPartnerController(store *storage.Store, stats *services.StatsService, scores *services.ScoreService) *PartnerController {
	return &PartnerController{store: store, stats: stats, scores: scores}
}

// GetStats aggregates the partner's dashboard statistics from the four source
// collections.
func (pc *PartnerController) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	stats, err := pc.stats.ComputeStats(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to compute partner stats",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Partner stats retrieved successfully",
		Data:    stats,
	})
}

// GetRankInfo returns the partner's current rank, the next rank and the
// progress towards it.
func (pc *PartnerController) GetRankInfo(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	partner, err := pc.store.PartnerByID(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve partner",
		})
	}
	if partner == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Partner not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Rank info retrieved successfully",
		Data:    pc.scores.RankInfo(partner.Score),
	})
}

// RecomputeScore rescores the partner from fresh stats and persists the
// result. The stored rank only moves up.
func (pc *PartnerController) RecomputeScore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	result, err := pc.scores.Recompute(ctx, partnerID)
	if err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Partner not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to recompute score",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Score recomputed successfully",
		Data:    result,
	})
}

// GetReferralQRCode returns the partner's referral code and a QR data URI
// encoding the enrollment link.
func (pc *PartnerController) GetReferralQRCode(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	partner, err := pc.store.PartnerByID(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve partner",
		})
	}
	if partner == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Partner not found",
		})
	}

	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "https://teranga.mafalia.com"
	}
	referralLink := baseURL + "/join?ref=" + partner.ReferralCode

	qrCode, err := utils.GenerateQRCode(referralLink)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate QR code",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Referral QR code generated successfully",
		Data: map[string]interface{}{
			"referralCode": partner.ReferralCode,
			"referralLink": referralLink,
			"qrCode":       qrCode,
		},
	})
}
