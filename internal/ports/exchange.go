// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never wire payloads or infrastructure types
//   - Error returns are *domain.Error values classified by domain.Kind
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// ExchangeClient is the contract for a ShapeShift-compatible exchange.
// Each method performs at most one upstream round-trip. Arguments are
// validated first; a validation failure is a domain.KindInvalidArgument
// error and no request is made.
//
// Example usage in application layer:
//
//	type ExchangeService struct {
//	    exchange ports.ExchangeClient
//	}
type ExchangeClient interface {
	// GetRate returns how many coin2 one coin1 buys.
	GetRate(ctx context.Context, coin1, coin2 string) (float64, error)

	// GetLimit returns the maximum deposit for the pair, in coin1.
	GetLimit(ctx context.Context, coin1, coin2 string) (float64, error)

	// GetMarketInfo returns one pair, or every pair when both coins are empty.
	GetMarketInfo(ctx context.Context, coin1, coin2 string) (*domain.MarketInfo, error)

	// GetRecentTransactions returns up to limit recent shifts. limit must be positive.
	GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error)

	// GetTransactionStatus returns the status of the last deposit to address.
	GetTransactionStatus(ctx context.Context, address string) (*domain.TransactionStatus, error)

	// GetTimeRemaining returns the validity left on a fixed-amount deposit address.
	GetTimeRemaining(ctx context.Context, address string) (time.Duration, error)

	// GetSupportedCoins returns the supported coins keyed by symbol.
	GetSupportedCoins(ctx context.Context) (map[string]domain.Coin, error)

	// GetTransactionsByAPIKey returns the shifts made with apiKey.
	GetTransactionsByAPIKey(ctx context.Context, apiKey string) ([]domain.Transaction, error)

	// GetTransactionsByAddress returns the shifts made with apiKey paying out to address.
	GetTransactionsByAddress(ctx context.Context, address, apiKey string) ([]domain.Transaction, error)

	// ValidateAddress checks a withdrawal address for coin.
	ValidateAddress(ctx context.Context, address, coin string) (*domain.AddressValidation, error)

	// CreateTransaction opens a shift.
	CreateTransaction(ctx context.Context, req domain.ShiftRequest) (*domain.ShiftResult, error)

	// RequestEmailReceipt mails a receipt for txid.
	RequestEmailReceipt(ctx context.Context, email, txid string) error

	// CreateFixedAmountTransaction opens a shift for an exact withdrawal amount.
	CreateFixedAmountTransaction(ctx context.Context, req domain.FixedAmountRequest) (*domain.FixedAmountResult, error)

	// CancelTransaction cancels the pending shift on address.
	// Upstream failures are domain.KindTransactionNotCancelled.
	CancelTransaction(ctx context.Context, address string) error
}
