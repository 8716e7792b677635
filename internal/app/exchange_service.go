// Package app contains application services that orchestrate use cases.
// This is the application layer: it coordinates the exchange port with the
// gateway and adds composite use cases on top of the single-call operations.
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters/http)
//   - Wire payloads and error classification (that's adapters/clients/shapeshift)
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
	"github.com/jsamuelsen/shapeshift-gateway/internal/ports"
)

// defaultQuoteConcurrency bounds the pairs quoted at once by GetQuotes.
const defaultQuoteConcurrency = 4

// ExchangeService orchestrates exchange use cases.
// It depends on the ExchangeClient port, not on the ShapeShift adapter.
type ExchangeService struct {
	exchange         ports.ExchangeClient
	apiKey           string
	quoteConcurrency int
	logger           *slog.Logger
}

// ExchangeServiceConfig contains configuration for the exchange service.
type ExchangeServiceConfig struct {
	Exchange ports.ExchangeClient

	// APIKey is the affiliate key attached to shifts and used for
	// transaction history. Optional.
	APIKey string

	// QuoteConcurrency bounds GetQuotes. Defaults to 4.
	QuoteConcurrency int

	Logger *slog.Logger
}

// NewExchangeService creates a new exchange service.
// Panics if Exchange is nil. Defaults logger to slog.Default() if nil.
func NewExchangeService(cfg ExchangeServiceConfig) *ExchangeService {
	if cfg.Exchange == nil {
		panic("app.ExchangeService: Exchange is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.QuoteConcurrency
	if concurrency <= 0 {
		concurrency = defaultQuoteConcurrency
	}

	return &ExchangeService{
		exchange:         cfg.Exchange,
		apiKey:           cfg.APIKey,
		quoteConcurrency: concurrency,
		logger:           logger.With(slog.String("component", "app.ExchangeService")),
	}
}

// observe runs one use case with uniform logging. Caller mistakes are logged
// at debug, upstream refusals at warn, and infrastructure failures at error.
func observe[T any](ctx context.Context, s *ExchangeService, op string, fn func() (T, error)) (T, error) {
	logger := logging.FromContextOr(ctx, s.logger).With(slog.String("operation", op))

	start := time.Now()

	result, err := fn()
	if err != nil {
		kind := domain.KindOf(err)
		attrs := []any{slog.String("kind", kind.String()), slog.Any("error", err)}

		switch {
		case kind == domain.KindInvalidArgument:
			logger.DebugContext(ctx, "rejected exchange request", attrs...)
		case domain.IsUpstreamError(err), kind == domain.KindOutOfBounds, kind == domain.KindTransactionNotCancelled:
			logger.WarnContext(ctx, "exchange refused request", attrs...)
		default:
			logger.ErrorContext(ctx, "exchange request failed", attrs...)
		}

		return result, err
	}

	logger.DebugContext(ctx, "exchange request complete", slog.Duration("duration", time.Since(start)))

	return result, nil
}

// observeErr is observe for use cases without a result.
func observeErr(ctx context.Context, s *ExchangeService, op string, fn func() error) error {
	_, err := observe(ctx, s, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})

	return err
}

// GetRate returns how many coin2 one coin1 buys.
func (s *ExchangeService) GetRate(ctx context.Context, coin1, coin2 string) (float64, error) {
	return observe(ctx, s, "GetRate", func() (float64, error) {
		return s.exchange.GetRate(ctx, coin1, coin2)
	})
}

// GetLimit returns the deposit limit for the pair.
func (s *ExchangeService) GetLimit(ctx context.Context, coin1, coin2 string) (float64, error) {
	return observe(ctx, s, "GetLimit", func() (float64, error) {
		return s.exchange.GetLimit(ctx, coin1, coin2)
	})
}

// GetMarketInfo returns market data for every pair.
func (s *ExchangeService) GetMarketInfo(ctx context.Context) (*domain.MarketInfo, error) {
	return observe(ctx, s, "GetMarketInfo", func() (*domain.MarketInfo, error) {
		return s.exchange.GetMarketInfo(ctx, "", "")
	})
}

// GetMarketPair returns the market entry for one pair.
// Upstream keys single-pair replies in either case, so the uppercase token
// is tried first and the lowercase one second.
func (s *ExchangeService) GetMarketPair(ctx context.Context, coin1, coin2 string) (domain.MarketPair, error) {
	return observe(ctx, s, "GetMarketPair", func() (domain.MarketPair, error) {
		return s.marketPair(ctx, coin1, coin2)
	})
}

func (s *ExchangeService) marketPair(ctx context.Context, coin1, coin2 string) (domain.MarketPair, error) {
	info, err := s.exchange.GetMarketInfo(ctx, coin1, coin2)
	if err != nil {
		return domain.MarketPair{}, err
	}

	upper, err := domain.BuildPair(coin1, coin2, domain.PairUpper)
	if err != nil {
		return domain.MarketPair{}, err
	}

	lower, err := domain.BuildPair(coin1, coin2, domain.PairLower)
	if err != nil {
		return domain.MarketPair{}, err
	}

	if info.Has(lower) && !info.Has(upper) {
		return info.Get(lower)
	}

	return info.Get(upper)
}

// GetQuote fetches rate, limit and market data for one pair concurrently.
// The first failure cancels the other calls and is returned.
func (s *ExchangeService) GetQuote(ctx context.Context, coin1, coin2 string) (*domain.Quote, error) {
	return observe(ctx, s, "GetQuote", func() (*domain.Quote, error) {
		return s.quote(ctx, coin1, coin2)
	})
}

func (s *ExchangeService) quote(ctx context.Context, coin1, coin2 string) (*domain.Quote, error) {
	// A bad pair is rejected before any request.
	if _, err := domain.BuildPair(coin1, coin2, domain.PairUpper); err != nil {
		return nil, err
	}

	if coin1 == "" {
		return nil, domain.NewInvalidArgumentError("quote", "pair", "is required")
	}

	rate, limit, market, err := Parallel3(ctx,
		func(ctx context.Context) (float64, error) { return s.exchange.GetRate(ctx, coin1, coin2) },
		func(ctx context.Context) (float64, error) { return s.exchange.GetLimit(ctx, coin1, coin2) },
		func(ctx context.Context) (domain.MarketPair, error) { return s.marketPair(ctx, coin1, coin2) },
	)
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		Pair:   market.Pair,
		Rate:   rate,
		Limit:  limit,
		Market: market,
	}, nil
}

// QuoteResult is the outcome of quoting one pair in a batch.
type QuoteResult struct {
	Pair  string
	Quote *domain.Quote
	Err   error
}

// GetQuotes quotes several "coin1_coin2" pairs with bounded concurrency.
// Each pair succeeds or fails on its own; results keep the input order.
func (s *ExchangeService) GetQuotes(ctx context.Context, pairs []string) []QuoteResult {
	fns := make([]func(context.Context) (*domain.Quote, error), len(pairs))
	for i, pair := range pairs {
		fns[i] = func(ctx context.Context) (*domain.Quote, error) {
			coin1, coin2, err := domain.SplitPair(pair)
			if err != nil {
				return nil, err
			}

			return s.GetQuote(ctx, coin1, coin2)
		}
	}

	partial := ParallelPartialLimit(ctx, s.quoteConcurrency, fns...)

	results := make([]QuoteResult, len(pairs))
	for i, r := range partial {
		results[i] = QuoteResult{Pair: pairs[i], Quote: r.Value, Err: r.Err}
	}

	return results
}

// GetRecentTransactions returns up to limit recent shifts.
func (s *ExchangeService) GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error) {
	return observe(ctx, s, "GetRecentTransactions", func() ([]domain.RecentTransaction, error) {
		return s.exchange.GetRecentTransactions(ctx, limit)
	})
}

// GetTransactionStatus returns the status of the last deposit to address.
func (s *ExchangeService) GetTransactionStatus(ctx context.Context, address string) (*domain.TransactionStatus, error) {
	return observe(ctx, s, "GetTransactionStatus", func() (*domain.TransactionStatus, error) {
		return s.exchange.GetTransactionStatus(ctx, address)
	})
}

// GetTimeRemaining returns the validity left on a fixed-amount deposit address.
func (s *ExchangeService) GetTimeRemaining(ctx context.Context, address string) (time.Duration, error) {
	return observe(ctx, s, "GetTimeRemaining", func() (time.Duration, error) {
		return s.exchange.GetTimeRemaining(ctx, address)
	})
}

// GetSupportedCoins returns the supported coins keyed by symbol.
func (s *ExchangeService) GetSupportedCoins(ctx context.Context) (map[string]domain.Coin, error) {
	return observe(ctx, s, "GetSupportedCoins", func() (map[string]domain.Coin, error) {
		return s.exchange.GetSupportedCoins(ctx)
	})
}

// ErrNoAPIKey is returned by history use cases when no API key is configured.
var ErrNoAPIKey = errors.New("no ShapeShift API key configured")

// ListTransactions returns the shifts made with the configured API key,
// restricted to one withdrawal address when address is not empty.
func (s *ExchangeService) ListTransactions(ctx context.Context, address string) ([]domain.Transaction, error) {
	return observe(ctx, s, "ListTransactions", func() ([]domain.Transaction, error) {
		if s.apiKey == "" {
			return nil, domain.WrapError(domain.KindInvalidArgument, "transactions", "apiKey is required", ErrNoAPIKey)
		}

		if address == "" {
			return s.exchange.GetTransactionsByAPIKey(ctx, s.apiKey)
		}

		return s.exchange.GetTransactionsByAddress(ctx, address, s.apiKey)
	})
}

// ValidateAddress checks a withdrawal address for coin.
func (s *ExchangeService) ValidateAddress(ctx context.Context, address, coin string) (*domain.AddressValidation, error) {
	return observe(ctx, s, "ValidateAddress", func() (*domain.AddressValidation, error) {
		return s.exchange.ValidateAddress(ctx, address, coin)
	})
}

// CreateShift opens a shift. The configured API key is attached when the
// request carries none.
func (s *ExchangeService) CreateShift(ctx context.Context, req domain.ShiftRequest) (*domain.ShiftResult, error) {
	return observe(ctx, s, "CreateShift", func() (*domain.ShiftResult, error) {
		return s.exchange.CreateTransaction(ctx, s.withAPIKey(req))
	})
}

// CreateFixedAmountShift opens a shift for an exact withdrawal amount.
func (s *ExchangeService) CreateFixedAmountShift(ctx context.Context, req domain.FixedAmountRequest) (*domain.FixedAmountResult, error) {
	return observe(ctx, s, "CreateFixedAmountShift", func() (*domain.FixedAmountResult, error) {
		req.ShiftRequest = s.withAPIKey(req.ShiftRequest)
		return s.exchange.CreateFixedAmountTransaction(ctx, req)
	})
}

// CancelShift cancels the pending shift on a deposit address.
func (s *ExchangeService) CancelShift(ctx context.Context, address string) error {
	return observeErr(ctx, s, "CancelShift", func() error {
		return s.exchange.CancelTransaction(ctx, address)
	})
}

// RequestReceipt mails a receipt for txid.
func (s *ExchangeService) RequestReceipt(ctx context.Context, email, txid string) error {
	return observeErr(ctx, s, "RequestReceipt", func() error {
		return s.exchange.RequestEmailReceipt(ctx, email, txid)
	})
}

func (s *ExchangeService) withAPIKey(req domain.ShiftRequest) domain.ShiftRequest {
	if req.APIKey == "" {
		req.APIKey = s.apiKey
	}

	return req
}
