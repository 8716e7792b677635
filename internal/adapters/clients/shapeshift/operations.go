package shapeshift

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// CancelledMessage is the exact "success" value of a cancelled transaction,
// surrounding spaces included.
const CancelledMessage = " Pending Transaction cancelled "

// GetRate returns how many coin2 one coin1 buys.
func (c *Client) GetRate(ctx context.Context, coin1, coin2 string) (float64, error) {
	op := EndpointRate.Name

	pair, err := requirePair(op, coin1, coin2, domain.PairUpper)
	if err != nil {
		return 0, err
	}

	p, err := c.call(ctx, EndpointRate, nil, pair)
	if err != nil {
		return 0, err
	}

	rate, err := numberField(p, "rate")
	if err != nil {
		return 0, malformed(op, err)
	}

	return rate, nil
}

// GetLimit returns the maximum deposit accepted for the pair, in coin1.
func (c *Client) GetLimit(ctx context.Context, coin1, coin2 string) (float64, error) {
	op := EndpointLimit.Name

	pair, err := requirePair(op, coin1, coin2, domain.PairUpper)
	if err != nil {
		return 0, err
	}

	p, err := c.call(ctx, EndpointLimit, nil, pair)
	if err != nil {
		return 0, err
	}

	limit, err := numberField(p, "limit")
	if err != nil {
		return 0, malformed(op, err)
	}

	return limit, nil
}

// GetMarketInfo returns market data for one pair, or for every pair when
// both coins are empty.
func (c *Client) GetMarketInfo(ctx context.Context, coin1, coin2 string) (*domain.MarketInfo, error) {
	op := EndpointMarketInfo.Name

	pair, err := domain.BuildPair(coin1, coin2, domain.PairUpper)
	if err != nil {
		return nil, invalidPair(op, err)
	}

	var segments []string
	if pair != "" {
		segments = append(segments, pair)
	}

	p, err := c.call(ctx, EndpointMarketInfo, nil, segments...)
	if err != nil {
		return nil, err
	}

	info, err := translateMarketInfo(p)
	if err != nil {
		return nil, malformed(op, err)
	}

	return info, nil
}

// GetRecentTransactions returns up to limit of the most recent shifts.
func (c *Client) GetRecentTransactions(ctx context.Context, limit int) ([]domain.RecentTransaction, error) {
	op := EndpointRecentTransactions.Name

	if limit < 1 {
		return nil, domain.NewInvalidArgumentError(op, "max", "must be positive")
	}

	p, err := c.call(ctx, EndpointRecentTransactions, nil, strconv.Itoa(limit))
	if err != nil {
		return nil, err
	}

	txs, err := TranslateElements(p, translateRecentTransaction)
	if err != nil {
		return nil, malformed(op, err)
	}

	return txs, nil
}

// GetTransactionStatus returns the status of the most recent deposit to address.
func (c *Client) GetTransactionStatus(ctx context.Context, address string) (*domain.TransactionStatus, error) {
	op := EndpointTransactionStatus.Name

	if err := requireArg(op, "address", address); err != nil {
		return nil, err
	}

	p, err := c.call(ctx, EndpointTransactionStatus, nil, address)
	if err != nil {
		return nil, err
	}

	status, err := translateTransactionStatus(p)
	if err != nil {
		return nil, malformed(op, err)
	}

	return status, nil
}

// GetTimeRemaining returns how long the fixed-amount quote on address stays valid.
func (c *Client) GetTimeRemaining(ctx context.Context, address string) (time.Duration, error) {
	op := EndpointTimeRemaining.Name

	if err := requireArg(op, "address", address); err != nil {
		return 0, err
	}

	p, err := c.call(ctx, EndpointTimeRemaining, nil, address)
	if err != nil {
		return 0, err
	}

	remaining, err := translateTimeRemaining(p)
	if err != nil {
		return 0, malformed(op, err)
	}

	return remaining, nil
}

// GetSupportedCoins returns the supported coins keyed by symbol.
func (c *Client) GetSupportedCoins(ctx context.Context) (map[string]domain.Coin, error) {
	p, err := c.call(ctx, EndpointSupportedCoins, nil)
	if err != nil {
		return nil, err
	}

	coins, err := translateCoins(p)
	if err != nil {
		return nil, malformed(EndpointSupportedCoins.Name, err)
	}

	return coins, nil
}

// GetTransactionsByAPIKey returns every shift made with apiKey.
func (c *Client) GetTransactionsByAPIKey(ctx context.Context, apiKey string) ([]domain.Transaction, error) {
	op := EndpointTransactionsByKey.Name

	if err := requireArg(op, "apiKey", apiKey); err != nil {
		return nil, err
	}

	p, err := c.call(ctx, EndpointTransactionsByKey, nil, apiKey)
	if err != nil {
		return nil, err
	}

	txs, err := TranslateElements(p, translateTransaction)
	if err != nil {
		return nil, malformed(op, err)
	}

	return txs, nil
}

// GetTransactionsByAddress returns the shifts made with apiKey that paid out to address.
func (c *Client) GetTransactionsByAddress(ctx context.Context, address, apiKey string) ([]domain.Transaction, error) {
	op := EndpointTransactionsByAddr.Name

	if err := requireArg(op, "address", address); err != nil {
		return nil, err
	}

	if err := requireArg(op, "apiKey", apiKey); err != nil {
		return nil, err
	}

	p, err := c.call(ctx, EndpointTransactionsByAddr, nil, address, apiKey)
	if err != nil {
		return nil, err
	}

	txs, err := TranslateElements(p, translateTransaction)
	if err != nil {
		return nil, malformed(op, err)
	}

	return txs, nil
}

// ValidateAddress asks whether address is a valid withdrawal address for coin.
// An upstream explanation of an invalid address is returned in the result,
// not as an error.
func (c *Client) ValidateAddress(ctx context.Context, address, coin string) (*domain.AddressValidation, error) {
	op := EndpointValidateAddress.Name

	if err := requireArg(op, "address", address); err != nil {
		return nil, err
	}

	if err := requireArg(op, "coin", coin); err != nil {
		return nil, err
	}

	p, err := c.call(ctx, EndpointValidateAddress, nil, address, coin)
	if err != nil {
		return nil, err
	}

	v, err := translateAddressValidation(NormalizeAddressValidation(p))
	if err != nil {
		return nil, malformed(op, err)
	}

	return v, nil
}

// CreateTransaction opens a shift and returns its deposit instructions.
func (c *Client) CreateTransaction(ctx context.Context, req domain.ShiftRequest) (*domain.ShiftResult, error) {
	op := EndpointCreateTransaction.Name

	form, err := shiftForm(op, req)
	if err != nil {
		return nil, err
	}

	p, err := c.call(ctx, EndpointCreateTransaction, form)
	if err != nil {
		return nil, err
	}

	res, err := translateShiftResult(p)
	if err != nil {
		return nil, malformed(op, err)
	}

	return res, nil
}

// RequestEmailReceipt asks upstream to mail a receipt for txid to email.
func (c *Client) RequestEmailReceipt(ctx context.Context, email, txid string) error {
	op := EndpointEmailReceipt.Name

	if err := requireArg(op, "email", email); err != nil {
		return err
	}

	if err := requireArg(op, "txid", txid); err != nil {
		return err
	}

	_, err := c.call(ctx, EndpointEmailReceipt, url.Values{
		"email": {email},
		"txid":  {txid},
	})

	return err
}

// CreateFixedAmountTransaction opens a shift for an exact withdrawal amount.
// A reply without a "success" object is a MalformedResponse.
func (c *Client) CreateFixedAmountTransaction(ctx context.Context, req domain.FixedAmountRequest) (*domain.FixedAmountResult, error) {
	op := EndpointFixedAmount.Name

	if !req.Amount.IsPositive() {
		return nil, domain.NewInvalidArgumentError(op, "amount", "must be positive")
	}

	form, err := shiftForm(op, req.ShiftRequest)
	if err != nil {
		return nil, err
	}

	form.Set("amount", req.Amount.String())

	p, err := c.call(ctx, EndpointFixedAmount, form)
	if err != nil {
		return nil, err
	}

	success, ok := p.Field("success")
	if !ok || success.IsNull() {
		return nil, domain.NewError(domain.KindMalformedResponse, op, "API responded with invalid structure")
	}

	res, err := translateFixedAmountResult(success)
	if err != nil {
		return nil, malformed(op, err)
	}

	return res, nil
}

// CancelTransaction cancels the pending fixed-amount shift on address.
//
// A failure signalled in the upstream payload is returned as
// TransactionNotCancelled wrapping the original error. Transport failures
// and undecodable replies are returned unchanged.
// A reply whose "success" field is not CancelledMessage is an APIError.
func (c *Client) CancelTransaction(ctx context.Context, address string) error {
	op := EndpointCancelPending.Name

	if err := requireArg(op, "address", address); err != nil {
		return err
	}

	p, err := c.call(ctx, EndpointCancelPending, url.Values{"address": {address}})
	if err != nil {
		if !domain.IsUpstreamError(err) {
			return err
		}

		return domain.WrapError(domain.KindTransactionNotCancelled, op, "transaction not cancelled", err)
	}

	if msg, _ := successText(p); msg != CancelledMessage {
		return domain.NewError(domain.KindAPIError, op, "Canceling transaction failed.")
	}

	return nil
}

// successText returns the string "success" field of an object payload.
func successText(p Payload) (string, bool) {
	f, ok := p.Field("success")
	if !ok {
		return "", false
	}

	s, ok := f.scalar.(string)

	return s, ok
}

// shiftForm builds the form shared by /shift and /sendamount. Empty optional
// fields are left out of the body.
func shiftForm(op string, req domain.ShiftRequest) (url.Values, error) {
	if err := requireArg(op, "withdrawal", req.Withdrawal); err != nil {
		return nil, err
	}

	pair, err := requirePair(op, req.Coin1, req.Coin2, domain.PairLower)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("withdrawal", req.Withdrawal)
	form.Set("pair", pair)

	optional := []struct{ key, value string }{
		{"returnAddress", req.ReturnAddress},
		{"destTag", req.DestinationTag},
		{"rsAddress", req.RSAddress},
		{"apiKey", req.APIKey},
	}
	for _, o := range optional {
		if o.value != "" {
			form.Set(o.key, o.value)
		}
	}

	return form, nil
}

// requirePair builds a pair for an operation that cannot run without one.
func requirePair(op, coin1, coin2 string, pc domain.PairCase) (string, error) {
	pair, err := domain.BuildPair(coin1, coin2, pc)
	if err != nil {
		return "", invalidPair(op, err)
	}

	if pair == "" {
		return "", domain.NewInvalidArgumentError(op, "pair", "is required")
	}

	return pair, nil
}

// invalidPair re-attributes a pair builder error to op.
func invalidPair(op string, err error) error {
	return domain.WrapError(domain.KindInvalidArgument, op, "invalid pair", err)
}

// requireArg fails with InvalidArgument when a mandatory argument is empty.
func requireArg(op, name, value string) error {
	if value == "" {
		return domain.NewInvalidArgumentError(op, name, "is required")
	}

	return nil
}
