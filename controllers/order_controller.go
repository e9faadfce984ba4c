// controllers/order_controller.go
package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mafalia/teranga-network/models"
	"github.com/mafalia/teranga-network/storage"
	"github.com/mafalia/teranga-network/utils"
)

// OrderController handles order recording and status transitions for the
// authenticated partner.
type OrderController struct {
	store *storage.Store
}

// NewOrderController creates a new order controller
func NewOrderController(store *storage.Store) *OrderController {
	return &OrderController{store: store}
}

// CreateOrder records a new order for one of the partner's clients.
func (oc *OrderController) CreateOrder(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	var req models.CreateOrderRequest
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

	clientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid client ID",
		})
	}

	client, err := storage.GetDocument[models.Client](ctx, oc.store, storage.CollectionClients, clientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to look up client",
		})
	}
	if client == nil || client.PartnerID != partnerID {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Client not found",
		})
	}

	now := time.Now()
	order := models.Order{
		ClientID:  clientID,
		PartnerID: partnerID,
		Amount:    req.Amount,
		Status:    models.OrderStatusPending,
		Items:     req.Items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := oc.store.CreateDocument(ctx, storage.CollectionOrders, order)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}
	order.ID = id

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Order created successfully",
		Data:    order,
	})
}

// GetOrders lists the authenticated partner's orders, newest first.
func (oc *OrderController) GetOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	orders, err := oc.store.OrdersByPartner(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Orders retrieved successfully",
		Data:    orders,
	})
}

// UpdateOrderStatus changes an order's lifecycle status. Completing an order
// records the payment in the ledger and credits a pending commission to the
// partner.
func (oc *OrderController) UpdateOrderStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req models.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if !models.ValidOrderStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid order status",
		})
	}

	order, err := storage.GetDocument[models.Order](ctx, oc.store, storage.CollectionOrders, orderID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to look up order",
		})
	}
	if order == nil || order.PartnerID != partnerID {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Order not found",
		})
	}

	alreadyCompleted := order.Status == models.OrderStatusCompleted

	matched, err := oc.store.UpdateOrderStatus(ctx, partnerID, orderID, req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update order status",
		})
	}
	if !matched {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Order not found",
		})
	}

	if req.Status == models.OrderStatusCompleted && !alreadyCompleted {
		oc.recordCompletion(ctx, order)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order status updated successfully",
	})
}

// recordCompletion writes the payment ledger entry and the pending commission
// for a freshly completed order. Failures are logged so the status update
// itself is not rolled back.
func (oc *OrderController) recordCompletion(ctx context.Context, order *models.Order) {
	now := time.Now()

	payment := models.Transaction{
		PartnerID:   order.PartnerID,
		ClientID:    &order.ClientID,
		OrderID:     &order.ID,
		Type:        models.TransactionTypePayment,
		Amount:      order.Amount,
		Status:      models.TransactionStatusCompleted,
		CreatedAt:   now,
		CompletedAt: &now,
		Description: fmt.Sprintf("Payment for order %s", order.ID.Hex()),
	}
	if _, err := oc.store.CreateDocument(ctx, storage.CollectionTransactions, payment); err != nil {
		log.Printf("Failed to record payment for order %s: %v", order.ID.Hex(), err)
	}

	commission := models.Commission{
		PartnerID:  order.PartnerID,
		ClientID:   order.ClientID,
		OrderID:    order.ID,
		Amount:     order.Amount * models.DefaultCommissionRate,
		Percentage: models.DefaultCommissionRate * 100,
		Status:     models.CommissionStatusPending,
		CreatedAt:  now,
	}
	if _, err := oc.store.CreateDocument(ctx, storage.CollectionCommissions, commission); err != nil {
		log.Printf("Failed to record commission for order %s: %v", order.ID.Hex(), err)
	}
}

// GetTransactions lists the authenticated partner's ledger entries, newest
// first.
func (oc *OrderController) GetTransactions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	partnerID, err := utils.GetPartnerIDFromToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid token",
		})
	}

	transactions, err := oc.store.TransactionsByPartner(ctx, partnerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to retrieve transactions",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Transactions retrieved successfully",
		Data:    transactions,
	})
}
