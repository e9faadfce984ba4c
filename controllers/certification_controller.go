// controllers/certification_controller.go
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
	"github.com/mafalia/teranga-network/utils"
)

// CertificationController exposes the certification exam and the public
// certificate verification endpoint.
type CertificationController struct {
	certification *services.CertificationService
}

// NewCertificationController creates a new certification controller
func NewCertificationController(certification *services.CertificationService) *CertificationController {
	return &CertificationController{certification: certification}
}

// GetQuestions returns the exam questions without the correct answers.
func (cc *CertificationController) GetQuestions(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Questions retrieved successfully",
		Data:    cc.certification.Questions(),
	})
}

// SubmitQuiz grades the partner's answers. A pass issues a certificate and a
// QR code pointing at the public verification URL.
func (cc *CertificationController) SubmitQuiz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	var submission models.QuizSubmission
	if err := c.Bind(&submission); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if len(submission.Answers) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Answers are required",
		})
	}

	result, err := cc.certification.Submit(ctx, partnerID, submission.Answers)
	if err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Partner not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to grade submission",
		})
	}

	data := map[string]interface{}{"result": result}
	if result.Passed {
		verifyURL := verifyBaseURL() + "/verify/" + result.CertificateID
		if qrCode, err := utils.GenerateQRCode(verifyURL); err == nil {
			data["verifyUrl"] = verifyURL
			data["qrCode"] = qrCode
		}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Submission graded successfully",
		Data:    data,
	})
}

// VerifyCertificate checks a certificate id. Public endpoint: the QR code on a
// certificate resolves here.
func (cc *CertificationController) VerifyCertificate(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	certificateID := c.Param("id")
	if certificateID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Certificate ID is required",
		})
	}

	certificate, err := cc.certification.Verify(ctx, certificateID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to verify certificate",
		})
	}
	if certificate == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Certificate not found",
			Data:    map[string]interface{}{"valid": false},
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Certificate is valid",
		Data: map[string]interface{}{
			"valid":       true,
			"certificate": certificate,
		},
	})
}

func verifyBaseURL() string {
	if baseURL := os.Getenv("APP_BASE_URL"); baseURL != "" {
		return baseURL
	}
	return "https://teranga.mafalia.com"
}
