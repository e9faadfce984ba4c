// models/auth.go

package models

// SignupRequest is the payload for partner registration.
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Region    string `json:"region,omitempty"`
	Address   string `json:"address,omitempty"`
}

// LoginRequest is the payload for partner login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and the partner profile.
type LoginResponse struct {
	Token   string  `json:"token"`
	Partner Partner `json:"partner"`
}

// EnrollClientRequest is the payload for enrolling a new client.
type EnrollClientRequest struct {
	Type         ClientType `json:"type" validate:"required,oneof=mafalia commercia"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	BusinessName string     `json:"businessName,omitempty"`
	BusinessType string     `json:"businessType,omitempty"`
	Ninea        string     `json:"ninea,omitempty"`
	Email        string     `json:"email" validate:"required,email"`
	Phone        string     `json:"phone" validate:"required"`
	Country      string     `json:"country" validate:"required"`
	Region       string     `json:"region,omitempty"`
	Address      string     `json:"address,omitempty"`
}

// UpdateClientStatusRequest changes a client's lifecycle status.
type UpdateClientStatusRequest struct {
	Status ClientStatus `json:"status" validate:"required"`
}

// CreateOrderRequest is the payload for recording a new order.
type CreateOrderRequest struct {
	ClientID string      `json:"clientId" validate:"required"`
	Amount   float64     `json:"amount" validate:"required,gt=0"`
	Items    []OrderItem `json:"items,omitempty"`
}

// UpdateOrderStatusRequest changes an order's lifecycle status.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

// WithdrawalRequest is the payload for requesting a payout.
type WithdrawalRequest struct {
	Amount         float64          `json:"amount" validate:"required,gt=0"`
	Method         WithdrawalMethod `json:"method" validate:"required,oneof=bank_transfer mobile_money cash"`
	AccountDetails AccountDetails   `json:"accountDetails"`
}

// ProcessWithdrawalRequest approves or rejects a pending withdrawal.
type ProcessWithdrawalRequest struct {
	Approve         bool   `json:"approve"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}
