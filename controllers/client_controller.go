// controllers/client_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/storage"
	"github.com/mafalia/teranga-network/utils"
)

// ClientController handles client enrollment and lifecycle for the
// authenticated partner.
type ClientController struct {
	store *storage.Store
}

// NewClientController creates a new client controller
func NewClientController(store *storage.Store) *ClientController {
	return &ClientController{store: store}
}

// EnrollClient registers a new client under the authenticated partner.
func (cc *ClientController) EnrollClient(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	var req models.EnrollClientRequest
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

	// Each client type carries its own identity fields.
	switch req.Type {
	case models.ClientTypeMafalia:
		if req.FirstName == "" || req.LastName == "" {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "First name and last name are required for mafalia clients",
			})
		}
	case models.ClientTypeCommercia:
		if req.BusinessName == "" {
			return c.JSON(http.StatusBadRequest, models.Response{
				Status:  http.StatusBadRequest,
				Message: "Business name is required for commercia clients",
			})
		}
	}

	client := models.Client{
		PartnerID:    partnerID,
		Type:         req.Type,
		Status:       models.ClientStatusPending,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		BusinessType: req.BusinessType,
		Ninea:        req.Ninea,
		Email:        req.Email,
		Phone:        req.Phone,
		Country:      req.Country,
		Region:       req.Region,
		Address:      req.Address,
		CreatedAt:    time.Now(),
	}

	id, err := cc.store.CreateDocument(ctx, storage.CollectionClients, client)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to enroll client",
		})
	}
	client.ID = id

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Client enrolled successfully",
		Data:    client,
	})
}

// GetClients lists the authenticated partner's clients, newest first.
func (cc *ClientController) GetClients(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	clients, err := cc.store.ClientsByPartner(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve clients",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Clients retrieved successfully",
		Data:    clients,
	})
}

// UpdateClientStatus changes a client's lifecycle status.
func (cc *ClientController) UpdateClientStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	clientID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid client ID",
		})
	}

	var req models.UpdateClientStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if !models.ValidClientStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid client status",
		})
	}

	matched, err := cc.store.UpdateClientStatus(ctx, partnerID, clientID, req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update client status",
		})
	}
	if !matched {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Client not found",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Client status updated successfully",
	})
}
