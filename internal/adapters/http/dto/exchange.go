package dto

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// DefaultRecentMax is the number of recent transactions returned when max is omitted.
const DefaultRecentMax = 5

// ErrSamePair is returned when both sides of a pair name the same coin.
var ErrSamePair = errors.New("pair must name two different coins")

// RecentTransactionsQuery is the query of GET /transactions/recent.
type RecentTransactionsQuery struct {
	Max int `form:"max" json:"max" validate:"omitempty,min=1,max=50"`
}

// GetMax returns max with the default applied.
func (q *RecentTransactionsQuery) GetMax() int {
	if q.Max <= 0 {
		return DefaultRecentMax
	}

	return q.Max
}

// QuotesQuery is the query of GET /quotes.
type QuotesQuery struct {
	// Pairs is a comma-separated list of coin1_coin2 tokens.
	Pairs string `form:"pairs" json:"pairs" validate:"required,notempty"`
}

// List splits Pairs, dropping empty entries.
func (q *QuotesQuery) List() []string {
	var pairs []string

	for _, p := range strings.Split(q.Pairs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			pairs = append(pairs, p)
		}
	}

	return pairs
}

// TransactionsQuery is the query of GET /transactions.
type TransactionsQuery struct {
	Address string `form:"address" json:"address"`
}

// ShiftRequest is the body of POST /shifts.
type ShiftRequest struct {
	Withdrawal     string `json:"withdrawal"     validate:"required,notempty"`
	Pair           string `json:"pair"           validate:"required,pair"`
	ReturnAddress  string `json:"returnAddress"`
	DestinationTag string `json:"destTag"`
	RSAddress      string `json:"rsAddress"`
}

// Validate rejects a pair naming the same coin twice.
func (r *ShiftRequest) Validate() error {
	coin1, coin2, err := domain.SplitPair(r.Pair)
	if err != nil {
		return err
	}

	if strings.EqualFold(coin1, coin2) {
		return ErrSamePair
	}

	return nil
}

// ToDomain converts the request. The pair must already be validated.
func (r *ShiftRequest) ToDomain() domain.ShiftRequest {
	coin1, coin2, _ := domain.SplitPair(r.Pair)

	return domain.ShiftRequest{
		Withdrawal:     r.Withdrawal,
		Coin1:          coin1,
		Coin2:          coin2,
		ReturnAddress:  r.ReturnAddress,
		DestinationTag: r.DestinationTag,
		RSAddress:      r.RSAddress,
	}
}

// FixedAmountRequest is the body of POST /shifts/fixed.
type FixedAmountRequest struct {
	ShiftRequest

	// Amount is the exact withdrawal amount, as a decimal string.
	Amount string `json:"amount" validate:"required,positive_decimal"`
}

// ToDomain converts the request. Amount must already be validated.
func (r *FixedAmountRequest) ToDomain() domain.FixedAmountRequest {
	return domain.FixedAmountRequest{
		ShiftRequest: r.ShiftRequest.ToDomain(),
		Amount:       decimal.RequireFromString(r.Amount),
	}
}

// CancelRequest is the body of POST /shifts/cancel.
type CancelRequest struct {
	Address string `json:"address" validate:"required,notempty"`
}

// ReceiptRequest is the body of POST /receipts.
type ReceiptRequest struct {
	Email string `json:"email" validate:"required,email"`
	TxID  string `json:"txid"  validate:"required,notempty"`
}

// RateResponse is returned by GET /rates/:pair.
type RateResponse struct {
	Pair string  `json:"pair"`
	Rate float64 `json:"rate"`
}

// LimitResponse is returned by GET /limits/:pair.
type LimitResponse struct {
	Pair  string  `json:"pair"`
	Limit float64 `json:"limit"`
}

// MarketPairResponse is one market entry. Amounts are decimal strings.
type MarketPairResponse struct {
	Pair     string          `json:"pair"`
	Rate     decimal.Decimal `json:"rate"`
	Limit    decimal.Decimal `json:"limit"`
	Minimum  decimal.Decimal `json:"minimum"`
	MaxLimit decimal.Decimal `json:"maxLimit"`
	MinerFee decimal.Decimal `json:"minerFee"`
}

// NewMarketPairResponse converts a market entry.
func NewMarketPairResponse(p domain.MarketPair) MarketPairResponse {
	return MarketPairResponse{
		Pair:     p.Pair,
		Rate:     p.Rate,
		Limit:    p.Limit,
		Minimum:  p.MinimumLimit,
		MaxLimit: p.MaxLimit,
		MinerFee: p.MinerFee,
	}
}

// NewMarketInfoResponse converts market info to a list ordered by pair.
func NewMarketInfoResponse(info *domain.MarketInfo) []MarketPairResponse {
	pairs := info.Pairs()
	out := make([]MarketPairResponse, 0, len(pairs))

	for _, name := range pairs {
		p, err := info.Get(name)
		if err != nil {
			continue
		}

		out = append(out, NewMarketPairResponse(p))
	}

	return out
}

// QuoteResponse is a composite pair quote.
type QuoteResponse struct {
	Pair   string             `json:"pair"`
	Rate   float64            `json:"rate"`
	Limit  float64            `json:"limit"`
	Market MarketPairResponse `json:"market"`
}

// NewQuoteResponse converts a quote.
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		Pair:   q.Pair,
		Rate:   q.Rate,
		Limit:  q.Limit,
		Market: NewMarketPairResponse(q.Market),
	}
}

// BatchQuoteItem is one entry of GET /quotes. Exactly one of Quote and Error is set.
type BatchQuoteItem struct {
	Pair  string         `json:"pair"`
	Quote *QuoteResponse `json:"quote,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// RecentTransactionResponse is one entry of the recent transactions feed.
type RecentTransactionResponse struct {
	CurrencyIn  string          `json:"curIn"`
	CurrencyOut string          `json:"curOut"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	TxID        string          `json:"txid,omitempty"`
}

// NewRecentTransactionsResponse converts the recent transactions feed.
func NewRecentTransactionsResponse(txs []domain.RecentTransaction) []RecentTransactionResponse {
	out := make([]RecentTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, RecentTransactionResponse{
			CurrencyIn:  tx.CurrencyIn,
			CurrencyOut: tx.CurrencyOut,
			Amount:      tx.Amount,
			Timestamp:   tx.Timestamp,
			TxID:        tx.TxID,
		})
	}

	return out
}

// TransactionStatusResponse is returned by GET /deposits/:address/status.
// Completion fields are omitted unless the shift completed.
type TransactionStatusResponse struct {
	Status       string           `json:"status"`
	Address      string           `json:"address"`
	Error        string           `json:"error,omitempty"`
	Withdraw     string           `json:"withdraw,omitempty"`
	IncomingCoin *decimal.Decimal `json:"incomingCoin,omitempty"`
	IncomingType string           `json:"incomingType,omitempty"`
	OutgoingCoin *decimal.Decimal `json:"outgoingCoin,omitempty"`
	OutgoingType string           `json:"outgoingType,omitempty"`
	Transaction  string           `json:"transaction,omitempty"`
}

// NewTransactionStatusResponse converts a deposit status.
func NewTransactionStatusResponse(s *domain.TransactionStatus) *TransactionStatusResponse {
	resp := &TransactionStatusResponse{
		Status:  string(s.Status),
		Address: s.Address,
		Error:   s.ErrorText,
	}

	if s.IsComplete() {
		incoming, outgoing := s.IncomingCoinAmount, s.OutgoingCoinAmount
		resp.Withdraw = s.WithdrawalAddress
		resp.IncomingCoin = &incoming
		resp.IncomingType = s.IncomingCoinName
		resp.OutgoingCoin = &outgoing
		resp.OutgoingType = s.OutgoingCoinName
		resp.Transaction = s.TransactionID
	}

	return resp
}

// TimeRemainingResponse is returned by GET /deposits/:address/time-remaining.
type TimeRemainingResponse struct {
	Address          string `json:"address"`
	SecondsRemaining int64  `json:"secondsRemaining"`
}

// CoinResponse is one supported coin.
type CoinResponse struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	ImageSmall string `json:"imageSmall,omitempty"`
	Status     string `json:"status"`
	Available  bool   `json:"available"`
}

// NewCoinsResponse converts the coin map to a list ordered by symbol.
func NewCoinsResponse(coins map[string]domain.Coin) []CoinResponse {
	out := make([]CoinResponse, 0, len(coins))
	for _, c := range coins {
		out = append(out, CoinResponse{
			Symbol:     c.Symbol,
			Name:       c.Name,
			Image:      c.Image,
			ImageSmall: c.ImageSmall,
			Status:     c.Status,
			Available:  c.Available(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })

	return out
}

// TransactionResponse is one shift made with the configured API key.
type TransactionResponse struct {
	InputTxID      string          `json:"inputTXID"`
	InputAddress   string          `json:"inputAddress"`
	InputCurrency  string          `json:"inputCurrency"`
	InputAmount    decimal.Decimal `json:"inputAmount"`
	OutputTxID     string          `json:"outputTXID"`
	OutputAddress  string          `json:"outputAddress"`
	OutputCurrency string          `json:"outputCurrency"`
	OutputAmount   decimal.Decimal `json:"outputAmount"`
	ShiftRate      decimal.Decimal `json:"shiftRate"`
	Status         string          `json:"status"`
}

// NewTransactionsResponse converts transaction history.
func NewTransactionsResponse(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse(tx))
	}

	return out
}

// AddressValidationResponse is returned by GET /addresses/:coin/:address.
type AddressValidationResponse struct {
	Address string `json:"address"`
	Coin    string `json:"coin"`
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

// ShiftResponse is returned by POST /shifts.
type ShiftResponse struct {
	OrderID        string `json:"orderId,omitempty"`
	Deposit        string `json:"deposit"`
	DepositType    string `json:"depositType"`
	Withdrawal     string `json:"withdrawal"`
	WithdrawalType string `json:"withdrawalType"`
	Public         string `json:"public,omitempty"`
	XRPDestTag     string `json:"xrpDestTag,omitempty"`
	APIPubKey      string `json:"apiPubKey,omitempty"`
}

// NewShiftResponse converts a shift result.
func NewShiftResponse(r *domain.ShiftResult) *ShiftResponse {
	resp := ShiftResponse(*r)
	return &resp
}

// FixedAmountResponse is returned by POST /shifts/fixed.
type FixedAmountResponse struct {
	OrderID          string          `json:"orderId"`
	Pair             string          `json:"pair"`
	Withdrawal       string          `json:"withdrawal"`
	WithdrawalAmount decimal.Decimal `json:"withdrawalAmount"`
	Deposit          string          `json:"deposit"`
	DepositAmount    decimal.Decimal `json:"depositAmount"`
	Expiration       time.Time       `json:"expiration"`
	QuotedRate       decimal.Decimal `json:"quotedRate"`
	MaxLimit         decimal.Decimal `json:"maxLimit"`
	ReturnAddress    string          `json:"returnAddress,omitempty"`
	APIPubKey        string          `json:"apiPubKey,omitempty"`
	MinerFee         decimal.Decimal `json:"minerFee"`
}

// NewFixedAmountResponse converts a fixed-amount result.
func NewFixedAmountResponse(r *domain.FixedAmountResult) *FixedAmountResponse {
	resp := FixedAmountResponse(*r)
	return &resp
}

// StatusResponse acknowledges an operation without a result.
type StatusResponse struct {
	Status string `json:"status"`
}
