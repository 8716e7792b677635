package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// MarketPair is the market data of a single exchange direction.
type MarketPair struct {
	// Pair is the uppercase "COIN1_COIN2" token.
	Pair string

	// Rate is how many COIN2 one COIN1 buys.
	Rate decimal.Decimal

	// Limit is the maximum deposit accepted, in COIN1.
	Limit decimal.Decimal

	// MinimumLimit is the minimum deposit accepted, in COIN1.
	MinimumLimit decimal.Decimal

	// MaxLimit is the upper bound on Limit, when upstream reports one.
	MaxLimit decimal.Decimal

	// MinerFee is charged on the withdrawal, in COIN2.
	MinerFee decimal.Decimal
}

// MarketInfo is an immutable set of market pairs keyed by pair token.
type MarketInfo struct {
	pairs map[string]MarketPair
}

// NewMarketInfo builds a MarketInfo from entries in upstream order.
// A later entry with the same pair replaces an earlier one.
func NewMarketInfo(entries []MarketPair) *MarketInfo {
	pairs := make(map[string]MarketPair, len(entries))
	for _, e := range entries {
		pairs[e.Pair] = e
	}

	return &MarketInfo{pairs: pairs}
}

// Get returns the market data for pair.
// Returns an OutOfBounds error if the pair is not in the set.
func (m *MarketInfo) Get(pair string) (MarketPair, error) {
	p, ok := m.pairs[pair]
	if !ok {
		return MarketPair{}, NewError(KindOutOfBounds, "marketinfo", fmt.Sprintf("pair %s is not valid", pair))
	}

	return p, nil
}

// Has reports whether the set contains pair.
func (m *MarketInfo) Has(pair string) bool {
	_, ok := m.pairs[pair]
	return ok
}

// Len returns the number of distinct pairs.
func (m *MarketInfo) Len() int {
	return len(m.pairs)
}

// Pairs returns the pair tokens in lexical order.
func (m *MarketInfo) Pairs() []string {
	keys := make([]string, 0, len(m.pairs))
	for k := range m.pairs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
