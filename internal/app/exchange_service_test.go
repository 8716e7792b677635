package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
	"github.com/jsamuelsen/shapeshift-gateway/internal/mocks"
	"github.com/jsamuelsen/shapeshift-gateway/internal/platform/logging"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(t *testing.T, apiKey string) (*ExchangeService, *mocks.MockExchangeClient) {
	t.Helper()

	exchange := mocks.NewMockExchangeClient(t)
	svc := NewExchangeService(ExchangeServiceConfig{
		Exchange: exchange,
		APIKey:   apiKey,
		Logger:   discardLogger(),
	})

	return svc, exchange
}

func TestNewExchangeService_PanicsWithoutExchange(t *testing.T) {
	assert.Panics(t, func() {
		NewExchangeService(ExchangeServiceConfig{Logger: slog.Default()})
	})
}

func TestNewExchangeService_Defaults(t *testing.T) {
	svc := NewExchangeService(ExchangeServiceConfig{Exchange: mocks.NewMockExchangeClient(t)})

	require.NotNil(t, svc)
	assert.Equal(t, defaultQuoteConcurrency, svc.quoteConcurrency)
	assert.NotNil(t, svc.logger)
}

func TestExchangeService_GetRate(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockExchangeClient)
		want      float64
		wantKind  domain.Kind
	}{
		{
			name: "success",
			setupMock: func(m *mocks.MockExchangeClient) {
				m.EXPECT().GetRate(mock.Anything, "btc", "ltc").Return(130.5, nil)
			},
			want: 130.5,
		},
		{
			name: "unknown pair",
			setupMock: func(m *mocks.MockExchangeClient) {
				m.EXPECT().GetRate(mock.Anything, "btc", "ltc").
					Return(0.0, domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair"))
			},
			wantKind: domain.KindUnknownPair,
		},
		{
			name: "request failed",
			setupMock: func(m *mocks.MockExchangeClient) {
				m.EXPECT().GetRate(mock.Anything, "btc", "ltc").
					Return(0.0, domain.WrapError(domain.KindRequestFailed, "rate", "request failed", errors.New("refused")))
			},
			wantKind: domain.KindRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, exchange := newService(t, "")
			tt.setupMock(exchange)

			rate, err := svc.GetRate(context.Background(), "btc", "ltc")

			if tt.wantKind != domain.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, rate, 1e-9)
		})
	}
}

func TestExchangeService_GetMarketPair(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.MarketPair
		wantPair string
		wantErr  bool
	}{
		{"uppercase key", []domain.MarketPair{{Pair: "BTC_LTC"}}, "BTC_LTC", false},
		{"lowercase key", []domain.MarketPair{{Pair: "btc_ltc"}}, "btc_ltc", false},
		{"both keys prefer uppercase", []domain.MarketPair{{Pair: "btc_ltc"}, {Pair: "BTC_LTC"}}, "BTC_LTC", false},
		{"missing", []domain.MarketPair{{Pair: "ETH_LTC"}}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, exchange := newService(t, "")
			exchange.EXPECT().GetMarketInfo(mock.Anything, "btc", "ltc").
				Return(domain.NewMarketInfo(tt.entries), nil)

			pair, err := svc.GetMarketPair(context.Background(), "btc", "ltc")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindOutOfBounds, domain.KindOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPair, pair.Pair)
		})
	}
}

func TestExchangeService_GetQuote(t *testing.T) {
	svc, exchange := newService(t, "")

	exchange.EXPECT().GetRate(mock.Anything, "btc", "ltc").Return(130.5, nil)
	exchange.EXPECT().GetLimit(mock.Anything, "btc", "ltc").Return(1.25, nil)
	exchange.EXPECT().GetMarketInfo(mock.Anything, "btc", "ltc").
		Return(domain.NewMarketInfo([]domain.MarketPair{{
			Pair:     "BTC_LTC",
			Rate:     decimal.RequireFromString("130.4"),
			MinerFee: decimal.RequireFromString("0.003"),
		}}), nil)

	quote, err := svc.GetQuote(context.Background(), "btc", "ltc")
	require.NoError(t, err)

	assert.Equal(t, "BTC_LTC", quote.Pair)
	assert.InDelta(t, 130.5, quote.Rate, 1e-9)
	assert.InDelta(t, 1.25, quote.Limit, 1e-9)
	assert.Equal(t, "0.003", quote.Market.MinerFee.String())
}

func TestExchangeService_GetQuote_FailureCancelsOthers(t *testing.T) {
	svc, exchange := newService(t, "")

	exchange.EXPECT().GetRate(mock.Anything, "btc", "zzz").
		Return(0.0, domain.NewError(domain.KindUnknownPair, "rate", "Unknown pair"))
	exchange.EXPECT().GetLimit(mock.Anything, "btc", "zzz").
		RunAndReturn(func(ctx context.Context, _, _ string) (float64, error) {
			select {
			case <-ctx.Done():
				return 0, domain.WrapError(domain.KindRequestFailed, "limit", "request failed", ctx.Err())
			case <-time.After(time.Second):
				return 1, nil
			}
		})
	exchange.EXPECT().GetMarketInfo(mock.Anything, "btc", "zzz").
		Return(nil, domain.NewError(domain.KindUnknownPair, "marketinfo", "Unknown pair"))

	_, err := svc.GetQuote(context.Background(), "btc", "zzz")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnknownPair, domain.KindOf(err))
}

func TestExchangeService_GetQuote_InvalidPairMakesNoCalls(t *testing.T) {
	svc, _ := newService(t, "")

	for _, coins := range [][2]string{{"btc", ""}, {"", ""}} {
		_, err := svc.GetQuote(context.Background(), coins[0], coins[1])
		require.Error(t, err)
		assert.True(t, domain.IsInvalidArgument(err))
	}
}

func TestExchangeService_GetQuotes(t *testing.T) {
	svc, exchange := newService(t, "")

	exchange.EXPECT().GetRate(mock.Anything, "btc", "ltc").Return(130.5, nil)
	exchange.EXPECT().GetLimit(mock.Anything, "btc", "ltc").Return(1.25, nil)
	exchange.EXPECT().GetMarketInfo(mock.Anything, "btc", "ltc").
		Return(domain.NewMarketInfo([]domain.MarketPair{{Pair: "BTC_LTC"}}), nil)

	results := svc.GetQuotes(context.Background(), []string{"btc_ltc", "garbage"})

	require.Len(t, results, 2)

	assert.Equal(t, "btc_ltc", results[0].Pair)
	require.NoError(t, results[0].Err)
	assert.Equal(t, "BTC_LTC", results[0].Quote.Pair)

	assert.Equal(t, "garbage", results[1].Pair)
	require.Error(t, results[1].Err)
	assert.True(t, domain.IsInvalidArgument(results[1].Err))
	assert.Nil(t, results[1].Quote)
}

func TestExchangeService_ListTransactions(t *testing.T) {
	t.Run("by api key", func(t *testing.T) {
		svc, exchange := newService(t, "secret")
		exchange.EXPECT().GetTransactionsByAPIKey(mock.Anything, "secret").
			Return([]domain.Transaction{{InputTxID: "in1"}}, nil)

		txs, err := svc.ListTransactions(context.Background(), "")
		require.NoError(t, err)
		assert.Len(t, txs, 1)
	})

	t.Run("by address", func(t *testing.T) {
		svc, exchange := newService(t, "secret")
		exchange.EXPECT().GetTransactionsByAddress(mock.Anything, "Lxyz", "secret").
			Return(nil, domain.NewError(domain.KindNoTransactionFound, "txbyaddress", "No transaction found."))

		_, err := svc.ListTransactions(context.Background(), "Lxyz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNoTransactionFound))
	})

	t.Run("without api key", func(t *testing.T) {
		svc, _ := newService(t, "")

		_, err := svc.ListTransactions(context.Background(), "")
		require.Error(t, err)
		assert.True(t, domain.IsInvalidArgument(err))
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})
}

func TestExchangeService_CreateShift_AttachesAPIKey(t *testing.T) {
	svc, exchange := newService(t, "secret")

	exchange.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(req domain.ShiftRequest) bool {
		return req.APIKey == "secret" && req.Withdrawal == "Lxyz"
	})).Return(&domain.ShiftResult{Deposit: "1dep"}, nil)

	res, err := svc.CreateShift(context.Background(), domain.ShiftRequest{
		Withdrawal: "Lxyz", Coin1: "btc", Coin2: "ltc",
	})
	require.NoError(t, err)
	assert.Equal(t, "1dep", res.Deposit)
}

func TestExchangeService_CreateShift_KeepsCallerAPIKey(t *testing.T) {
	svc, exchange := newService(t, "secret")

	exchange.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(req domain.ShiftRequest) bool {
		return req.APIKey == "callers"
	})).Return(&domain.ShiftResult{Deposit: "1dep"}, nil)

	_, err := svc.CreateShift(context.Background(), domain.ShiftRequest{
		Withdrawal: "Lxyz", Coin1: "btc", Coin2: "ltc", APIKey: "callers",
	})
	require.NoError(t, err)
}

func TestExchangeService_CreateFixedAmountShift(t *testing.T) {
	svc, exchange := newService(t, "secret")

	exchange.EXPECT().CreateFixedAmountTransaction(mock.Anything, mock.MatchedBy(func(req domain.FixedAmountRequest) bool {
		return req.APIKey == "secret" && req.Amount.Equal(decimal.NewFromInt(10))
	})).Return(&domain.FixedAmountResult{OrderID: "o-1"}, nil)

	res, err := svc.CreateFixedAmountShift(context.Background(), domain.FixedAmountRequest{
		ShiftRequest: domain.ShiftRequest{Withdrawal: "Lxyz", Coin1: "btc", Coin2: "ltc"},
		Amount:       decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "o-1", res.OrderID)
}

func TestExchangeService_CancelShift(t *testing.T) {
	svc, exchange := newService(t, "")

	notCancelled := domain.WrapError(domain.KindTransactionNotCancelled, "cancelpending", "transaction not cancelled",
		domain.NewError(domain.KindNoPendingTransaction, "cancelpending", "Unable to find pending transaction"))
	exchange.EXPECT().CancelTransaction(mock.Anything, "1dep").Return(notCancelled)

	err := svc.CancelShift(context.Background(), "1dep")
	require.Error(t, err)
	assert.Equal(t, domain.KindTransactionNotCancelled, domain.KindOf(err))
}

func TestExchangeService_PassThroughs(t *testing.T) {
	svc, exchange := newService(t, "")
	ctx := context.Background()

	exchange.EXPECT().GetLimit(mock.Anything, "btc", "ltc").Return(2.0, nil)
	exchange.EXPECT().GetMarketInfo(mock.Anything, "", "").Return(domain.NewMarketInfo(nil), nil)
	exchange.EXPECT().GetRecentTransactions(mock.Anything, 5).Return([]domain.RecentTransaction{}, nil)
	exchange.EXPECT().GetTransactionStatus(mock.Anything, "1dep").
		Return(&domain.TransactionStatus{Status: domain.DepositStatusNoDeposits}, nil)
	exchange.EXPECT().GetTimeRemaining(mock.Anything, "1dep").Return(90*time.Second, nil)
	exchange.EXPECT().GetSupportedCoins(mock.Anything).Return(map[string]domain.Coin{}, nil)
	exchange.EXPECT().ValidateAddress(mock.Anything, "1abc", "BTC").
		Return(&domain.AddressValidation{IsValid: true}, nil)
	exchange.EXPECT().RequestEmailReceipt(mock.Anything, "me@example.com", "tx1").Return(nil)

	limit, err := svc.GetLimit(ctx, "btc", "ltc")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, limit, 1e-9)

	info, err := svc.GetMarketInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, info.Len())

	_, err = svc.GetRecentTransactions(ctx, 5)
	require.NoError(t, err)

	status, err := svc.GetTransactionStatus(ctx, "1dep")
	require.NoError(t, err)
	assert.True(t, status.IsNoDeposits())

	remaining, err := svc.GetTimeRemaining(ctx, "1dep")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, remaining)

	_, err = svc.GetSupportedCoins(ctx)
	require.NoError(t, err)

	v, err := svc.ValidateAddress(ctx, "1abc", "BTC")
	require.NoError(t, err)
	assert.True(t, v.IsValid)

	require.NoError(t, svc.RequestReceipt(ctx, "me@example.com", "tx1"))
}

func TestExchangeService_LogsWithContextLogger(t *testing.T) {
	var buf bytes.Buffer
	ctxLogger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc, exchange := newService(t, "")
	exchange.EXPECT().GetRate(mock.Anything, "btc", "ltc").
		Return(0.0, domain.NewError(domain.KindAPIError, "rate", "Service busy"))

	ctx := logging.WithContext(context.Background(), ctxLogger)
	_, err := svc.GetRate(ctx, "btc", "ltc")
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"operation":"GetRate"`)
	assert.Contains(t, buf.String(), `"kind":"api_error"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
