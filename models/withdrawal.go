// models/withdrawal.go
package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MinimumWithdrawal is the minimum amount, in FCFA, a partner may request.
const MinimumWithdrawal = 25000

// WithdrawalStatus is the lifecycle status of a withdrawal request. The
// portal moves requests from pending to approved or rejected; the
// approved -> processing -> completed transitions (and CompletedAt) belong to
// the external payout operator.
type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusApproved   WithdrawalStatus = "approved"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

// WithdrawalMethod is the payout channel requested by the partner.
type WithdrawalMethod string

const (
	MethodBankTransfer WithdrawalMethod = "bank_transfer"
	MethodMobileMoney  WithdrawalMethod = "mobile_money"
	MethodCash         WithdrawalMethod = "cash"
)

// AccountDetails carries the account fields for the chosen payout method.
// bank_transfer needs IBAN and bank name, mobile_money needs a phone number,
// cash needs nothing.
type AccountDetails struct {
	IBAN     string `json:"iban,omitempty" bson:"iban,omitempty"`
	BankName string `json:"bankName,omitempty" bson:"bankName,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
}

var (
	ErrUnknownWithdrawalMethod = errors.New("unknown withdrawal method")
	ErrMissingAccountDetails   = errors.New("missing account details for withdrawal method")
)

// Validate checks the account details against the requested method.
func (d AccountDetails) Validate(method WithdrawalMethod) error {
	switch method {
	case MethodBankTransfer:
		if d.IBAN == "" || d.BankName == "" {
			return ErrMissingAccountDetails
		}
	case MethodMobileMoney:
		if d.Phone == "" {
			return ErrMissingAccountDetails
		}
	case MethodCash:
		// no account details required
	default:
		return ErrUnknownWithdrawalMethod
	}
	return nil
}

// Withdrawal is a partner-initiated request to convert available commission
// into a payout.
type Withdrawal struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PartnerID       primitive.ObjectID `json:"partnerId" bson:"partnerId"`
	Reference       string             `json:"reference" bson:"reference"`
	Amount          float64            `json:"amount" bson:"amount"`
	Method          WithdrawalMethod   `json:"method" bson:"method"`
	Status          WithdrawalStatus   `json:"status" bson:"status"`
	AccountDetails  AccountDetails     `json:"accountDetails" bson:"accountDetails"`
	RequestedAt     time.Time          `json:"requestedAt" bson:"requestedAt"`
	ProcessedAt     *time.Time         `json:"processedAt,omitempty" bson:"processedAt,omitempty"`
	CompletedAt     *time.Time         `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	RejectionReason string             `json:"rejectionReason,omitempty" bson:"rejectionReason,omitempty"`
}
