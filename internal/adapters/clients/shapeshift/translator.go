package shapeshift

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen/shapeshift-gateway/internal/domain"
)

// Translator shapes a success payload into a domain value.
// It returns a plain error; callers attach the operation and kind.
type Translator[D any] func(p Payload) (D, error)

// TranslateElements applies translate to every element of an array payload.
// If any translation fails, returns the first error encountered.
func TranslateElements[D any](p Payload, translate Translator[D]) ([]D, error) {
	if !p.IsArray() {
		return nil, fmt.Errorf("expected array, got %s", p.describe())
	}

	elements := p.Elements()
	result := make([]D, 0, len(elements))

	for i, el := range elements {
		translated, err := translate(el)
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}

// malformed reports a success payload that does not have the operation's shape.
func malformed(op string, err error) error {
	return domain.WrapError(domain.KindMalformedResponse, op, "unexpected response shape", err)
}

// requireObject fails unless p is an object.
func requireObject(p Payload) error {
	if !p.IsObject() {
		return fmt.Errorf("expected object, got %s", p.describe())
	}

	return nil
}

// numberField parses a required numeric field as float64.
func numberField(p Payload, name string) (float64, error) {
	f, ok := p.Field(name)
	if !ok || f.IsNull() {
		return 0, fmt.Errorf("missing field %q", name)
	}

	v, err := f.Float()
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", name, err)
	}

	return v, nil
}

// decimalField parses an optional amount field. Absent and null are zero.
func decimalField(p Payload, name string) (decimal.Decimal, error) {
	f, ok := p.Field(name)
	if !ok || f.IsNull() {
		return decimal.Zero, nil
	}

	if s, _ := f.Text(); s == "" {
		return decimal.Zero, nil
	}

	d, err := f.Decimal()
	if err != nil {
		return decimal.Zero, fmt.Errorf("field %q: %w", name, err)
	}

	return d, nil
}

// unixField parses an optional epoch timestamp. Values above 1e12 are taken
// as milliseconds, others as (possibly fractional) seconds.
func unixField(p Payload, name string) (time.Time, error) {
	f, ok := p.Field(name)
	if !ok || f.IsNull() {
		return time.Time{}, nil
	}

	v, err := f.Float()
	if err != nil {
		return time.Time{}, fmt.Errorf("field %q: %w", name, err)
	}

	if v > 1e12 { //nolint:mnd // millisecond epochs
		return time.UnixMilli(int64(v)).UTC(), nil
	}

	sec, frac := math.Modf(v)

	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
}

// translateMarketPair translates one /marketinfo entry.
func translateMarketPair(p Payload) (domain.MarketPair, error) {
	if err := requireObject(p); err != nil {
		return domain.MarketPair{}, err
	}

	pair := p.StringField("pair")
	if pair == "" {
		return domain.MarketPair{}, fmt.Errorf("missing field %q", "pair")
	}

	mp := domain.MarketPair{Pair: pair}

	fields := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"rate", &mp.Rate},
		{"limit", &mp.Limit},
		{"minimum", &mp.MinimumLimit},
		{"maxLimit", &mp.MaxLimit},
		{"minerFee", &mp.MinerFee},
	}

	for _, f := range fields {
		v, err := decimalField(p, f.name)
		if err != nil {
			return domain.MarketPair{}, err
		}

		*f.dst = v
	}

	return mp, nil
}

// translateMarketInfo accepts the array form and, for single-pair queries,
// a bare object, which is treated as a one-element array.
func translateMarketInfo(p Payload) (*domain.MarketInfo, error) {
	if p.IsObject() {
		p = NewArray(p)
	}

	entries, err := TranslateElements(p, translateMarketPair)
	if err != nil {
		return nil, err
	}

	return domain.NewMarketInfo(entries), nil
}

// translateRecentTransaction translates one /recenttx entry.
func translateRecentTransaction(p Payload) (domain.RecentTransaction, error) {
	if err := requireObject(p); err != nil {
		return domain.RecentTransaction{}, err
	}

	amount, err := decimalField(p, "amount")
	if err != nil {
		return domain.RecentTransaction{}, err
	}

	ts, err := unixField(p, "timestamp")
	if err != nil {
		return domain.RecentTransaction{}, err
	}

	return domain.RecentTransaction{
		CurrencyIn:  p.StringField("curIn"),
		CurrencyOut: p.StringField("curOut"),
		Amount:      amount,
		Timestamp:   ts,
		TxID:        p.StringField("txid"),
	}, nil
}

// translateTransactionStatus translates a /txStat reply.
func translateTransactionStatus(p Payload) (*domain.TransactionStatus, error) {
	if err := requireObject(p); err != nil {
		return nil, err
	}

	status := p.StringField("status")
	if status == "" {
		return nil, fmt.Errorf("missing field %q", "status")
	}

	incoming, err := decimalField(p, "incomingCoin")
	if err != nil {
		return nil, err
	}

	outgoing, err := decimalField(p, "outgoingCoin")
	if err != nil {
		return nil, err
	}

	return domain.NewTransactionStatus(domain.TransactionStatus{
		Status:             domain.DepositStatus(status),
		Address:            p.StringField("address"),
		ErrorText:          p.StringField("error"),
		WithdrawalAddress:  p.StringField("withdraw"),
		IncomingCoinAmount: incoming,
		IncomingCoinName:   p.StringField("incomingType"),
		OutgoingCoinAmount: outgoing,
		OutgoingCoinName:   p.StringField("outgoingType"),
		TransactionID:      p.StringField("transaction"),
	}), nil
}

// translateTimeRemaining reads seconds_remaining.
func translateTimeRemaining(p Payload) (time.Duration, error) {
	secs, err := numberField(p, "seconds_remaining")
	if err != nil {
		return 0, err
	}

	return time.Duration(secs * float64(time.Second)), nil
}

// translateCoin translates one /getcoins entry.
func translateCoin(p Payload) (domain.Coin, error) {
	if err := requireObject(p); err != nil {
		return domain.Coin{}, err
	}

	return domain.Coin{
		Name:       p.StringField("name"),
		Symbol:     p.StringField("symbol"),
		Image:      p.StringField("image"),
		ImageSmall: p.StringField("imageSmall"),
		Status:     p.StringField("status"),
	}, nil
}

// translateCoins translates the /getcoins object keyed by symbol.
func translateCoins(p Payload) (map[string]domain.Coin, error) {
	if err := requireObject(p); err != nil {
		return nil, err
	}

	fields := p.Fields()
	coins := make(map[string]domain.Coin, len(fields))

	for symbol, entry := range fields {
		coin, err := translateCoin(entry)
		if err != nil {
			return nil, fmt.Errorf("translating coin %s: %w", symbol, err)
		}

		if coin.Symbol == "" {
			coin.Symbol = symbol
		}

		coins[symbol] = coin
	}

	return coins, nil
}

// translateTransaction translates one /txbyapikey or /txbyaddress entry.
func translateTransaction(p Payload) (domain.Transaction, error) {
	if err := requireObject(p); err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.Transaction{
		InputTxID:      p.StringField("inputTXID"),
		InputAddress:   p.StringField("inputAddress"),
		InputCurrency:  p.StringField("inputCurrency"),
		OutputTxID:     p.StringField("outputTXID"),
		OutputAddress:  p.StringField("outputAddress"),
		OutputCurrency: p.StringField("outputCurrency"),
		Status:         p.StringField("status"),
	}

	var err error
	if tx.InputAmount, err = decimalField(p, "inputAmount"); err != nil {
		return domain.Transaction{}, err
	}

	if tx.OutputAmount, err = decimalField(p, "outputAmount"); err != nil {
		return domain.Transaction{}, err
	}

	if tx.ShiftRate, err = decimalField(p, "shiftRate"); err != nil {
		return domain.Transaction{}, err
	}

	return tx, nil
}

// NormalizeAddressValidation renames a legacy "isvalid" field to "isValid"
// when the canonical field is absent. Other payloads are returned unchanged.
func NormalizeAddressValidation(p Payload) Payload {
	if !p.IsObject() || p.Has("isValid") || !p.Has("isvalid") {
		return p
	}

	fields := p.Fields()
	fields["isValid"] = fields["isvalid"]
	delete(fields, "isvalid")

	return NewObject(fields)
}

// translateAddressValidation translates a normalised /validateAddress reply.
// A reply without a verdict is an invalid address carrying upstream's error text.
func translateAddressValidation(p Payload) (*domain.AddressValidation, error) {
	if err := requireObject(p); err != nil {
		return nil, err
	}

	f, ok := p.Field("isValid")
	if !ok {
		return &domain.AddressValidation{Error: p.StringField("error")}, nil
	}

	valid, ok := f.Bool()
	if !ok {
		return nil, fmt.Errorf("field %q is not a boolean", "isValid")
	}

	return &domain.AddressValidation{
		IsValid: valid,
		Error:   p.StringField("error"),
	}, nil
}

// translateShiftResult translates a /shift reply.
func translateShiftResult(p Payload) (*domain.ShiftResult, error) {
	if err := requireObject(p); err != nil {
		return nil, err
	}

	deposit := p.StringField("deposit")
	if deposit == "" {
		return nil, fmt.Errorf("missing field %q", "deposit")
	}

	return &domain.ShiftResult{
		OrderID:        p.StringField("orderId"),
		Deposit:        deposit,
		DepositType:    p.StringField("depositType"),
		Withdrawal:     p.StringField("withdrawal"),
		WithdrawalType: p.StringField("withdrawalType"),
		Public:         p.StringField("public"),
		XRPDestTag:     p.StringField("xrpDestTag"),
		APIPubKey:      p.StringField("apiPubKey"),
	}, nil
}

// translateFixedAmountResult translates the "success" object of a /sendamount reply.
func translateFixedAmountResult(p Payload) (*domain.FixedAmountResult, error) {
	if err := requireObject(p); err != nil {
		return nil, err
	}

	res := &domain.FixedAmountResult{
		OrderID:       p.StringField("orderId"),
		Pair:          p.StringField("pair"),
		Withdrawal:    p.StringField("withdrawal"),
		Deposit:       p.StringField("deposit"),
		ReturnAddress: p.StringField("returnAddress"),
		APIPubKey:     p.StringField("apiPubKey"),
	}

	amounts := []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"withdrawalAmount", &res.WithdrawalAmount},
		{"depositAmount", &res.DepositAmount},
		{"quotedRate", &res.QuotedRate},
		{"maxLimit", &res.MaxLimit},
		{"minerFee", &res.MinerFee},
	}

	for _, a := range amounts {
		v, err := decimalField(p, a.name)
		if err != nil {
			return nil, err
		}

		*a.dst = v
	}

	expiration, err := unixField(p, "expiration")
	if err != nil {
		return nil, err
	}

	res.Expiration = expiration

	return res, nil
}
