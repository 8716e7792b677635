package domain

import (
	"strings"
)

// PairCase selects the letter case of a pair token on the wire.
// The upstream API is case-sensitive per endpoint family: read endpoints
// take uppercase pairs, transaction bodies take lowercase ones.
type PairCase int

const (
	// PairUpper renders "BTC_ETH" and is used in GET paths.
	PairUpper PairCase = iota

	// PairLower renders "btc_eth" and is used in POST form bodies.
	PairLower
)

// pairSeparator joins the two coin symbols of a pair.
const pairSeparator = "_"

// BuildPair joins two coin symbols into a pair token.
// An empty symbol means absent. Either both symbols are given or neither is;
// one without the other is an InvalidArgument error. Both absent yields "".
func BuildPair(coin1, coin2 string, c PairCase) (string, error) {
	if (coin1 == "") != (coin2 == "") {
		return "", NewError(KindInvalidArgument, "pair", "you must provide both or none of the coins")
	}

	if coin1 == "" {
		return "", nil
	}

	pair := coin1 + pairSeparator + coin2
	if c == PairLower {
		return strings.ToLower(pair), nil
	}

	return strings.ToUpper(pair), nil
}

// SplitPair splits a "coin1_coin2" token back into its symbols.
// Returns an InvalidArgument error if the token is not exactly two non-empty symbols.
func SplitPair(pair string) (coin1, coin2 string, err error) {
	parts := strings.Split(pair, pairSeparator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" { //nolint:mnd // two coins
		return "", "", NewInvalidArgumentError("pair", "pair", "must look like COIN1_COIN2")
	}

	return parts[0], parts[1], nil
}
