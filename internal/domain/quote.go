package domain

// Quote is a consolidated view of one pair: the instant rate and deposit
// limit next to the full market entry.
type Quote struct {
	// Pair is the pair token as upstream keyed the market entry.
	Pair string

	Rate  float64
	Limit float64

	Market MarketPair
}
