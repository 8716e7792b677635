package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus is the lifecycle state of a deposit address.
type DepositStatus string

const (
	// DepositStatusNoDeposits means nothing was sent to the address yet.
	DepositStatusNoDeposits DepositStatus = "no_deposits"

	// DepositStatusReceived means the deposit arrived and is being processed.
	DepositStatusReceived DepositStatus = "received"

	// DepositStatusComplete means the withdrawal was sent.
	DepositStatusComplete DepositStatus = "complete"

	// DepositStatusFailed means the shift failed; see ErrorText.
	DepositStatusFailed DepositStatus = "failed"
)

// TransactionStatus is the state of the most recent deposit to an address.
// Completion fields are only populated when the status is complete,
// and ErrorText only when it failed.
type TransactionStatus struct {
	Status  DepositStatus
	Address string

	// ErrorText is never set by the ShapeShift client: a failed /txStat reply
	// carries an error field and is returned as an APIError instead.
	ErrorText string

	WithdrawalAddress  string
	IncomingCoinAmount decimal.Decimal
	IncomingCoinName   string
	OutgoingCoinAmount decimal.Decimal
	OutgoingCoinName   string
	TransactionID      string
}

// NewTransactionStatus builds a TransactionStatus from everything upstream
// reported, dropping the fields that do not apply to the status.
func NewTransactionStatus(reported TransactionStatus) *TransactionStatus {
	ts := &TransactionStatus{
		Status:  reported.Status,
		Address: reported.Address,
	}

	if ts.IsFailed() {
		ts.ErrorText = reported.ErrorText
	}

	if ts.IsComplete() {
		ts.WithdrawalAddress = reported.WithdrawalAddress
		ts.IncomingCoinAmount = reported.IncomingCoinAmount
		ts.IncomingCoinName = reported.IncomingCoinName
		ts.OutgoingCoinAmount = reported.OutgoingCoinAmount
		ts.OutgoingCoinName = reported.OutgoingCoinName
		ts.TransactionID = reported.TransactionID
	}

	return ts
}

// IsNoDeposits reports whether nothing has been deposited yet.
func (t *TransactionStatus) IsNoDeposits() bool { return t.Status == DepositStatusNoDeposits }

// IsReceived reports whether the deposit was received.
func (t *TransactionStatus) IsReceived() bool { return t.Status == DepositStatusReceived }

// IsComplete reports whether the shift completed.
func (t *TransactionStatus) IsComplete() bool { return t.Status == DepositStatusComplete }

// IsFailed reports whether the shift failed.
func (t *TransactionStatus) IsFailed() bool { return t.Status == DepositStatusFailed }

// RecentTransaction is one entry of the public recent-transactions feed.
type RecentTransaction struct {
	CurrencyIn  string
	CurrencyOut string
	Amount      decimal.Decimal
	Timestamp   time.Time
	TxID        string
}

// Transaction is a shift made with a given API key.
type Transaction struct {
	InputTxID      string
	InputAddress   string
	InputCurrency  string
	InputAmount    decimal.Decimal
	OutputTxID     string
	OutputAddress  string
	OutputCurrency string
	OutputAmount   decimal.Decimal
	ShiftRate      decimal.Decimal
	Status         string
}

// Coin describes a currency supported by the exchange.
type Coin struct {
	Name       string
	Symbol     string
	Image      string
	ImageSmall string
	Status     string
}

// Available reports whether the coin can currently be shifted.
func (c Coin) Available() bool {
	return c.Status == "available"
}

// AddressValidation is the verdict on a withdrawal address for a coin.
type AddressValidation struct {
	IsValid bool

	// Error is upstream's explanation when the address is invalid.
	Error string
}

// ShiftRequest describes a new shift. Empty optional fields are not sent.
type ShiftRequest struct {
	// Withdrawal is the address the output coin is sent to. Required.
	Withdrawal string

	// Coin1 and Coin2 name the direction; both are required.
	Coin1 string
	Coin2 string

	ReturnAddress  string
	DestinationTag string
	RSAddress      string

	// APIKey is opaque and passed through verbatim.
	APIKey string
}

// FixedAmountRequest describes a shift for an exact withdrawal amount.
type FixedAmountRequest struct {
	ShiftRequest

	// Amount is the withdrawal amount, in Coin2.
	Amount decimal.Decimal
}

// ShiftResult is the deposit instruction returned for a new shift.
type ShiftResult struct {
	OrderID        string
	Deposit        string
	DepositType    string
	Withdrawal     string
	WithdrawalType string
	Public         string
	XRPDestTag     string
	APIPubKey      string
}

// FixedAmountResult is the quote returned for a fixed-amount shift.
type FixedAmountResult struct {
	OrderID          string
	Pair             string
	Withdrawal       string
	WithdrawalAmount decimal.Decimal
	Deposit          string
	DepositAmount    decimal.Decimal
	Expiration       time.Time
	QuotedRate       decimal.Decimal
	MaxLimit         decimal.Decimal
	ReturnAddress    string
	APIPubKey        string
	MinerFee         decimal.Decimal
}
