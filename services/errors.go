// services/errors.go
package services

import "errors"

var (
	// ErrBelowMinimum means the requested withdrawal amount is under the
	// system minimum.
	ErrBelowMinimum = errors.New("withdrawal amount below minimum")
	// ErrInsufficientBalance means the requested withdrawal amount exceeds
	// the partner's available commission balance.
	ErrInsufficientBalance = errors.New("insufficient available commission balance")
	// ErrPartnerNotFound means the referenced partner does not exist.
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrWithdrawalNotFound means the referenced withdrawal does not exist.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	// ErrWithdrawalNotPending means the withdrawal was already processed.
	ErrWithdrawalNotPending = errors.New("withdrawal is not pending")
)
