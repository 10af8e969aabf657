package correlation

// Params tunes the engine without touching its internals. Zero values are
// not usable; start from DefaultParams and override fields as needed.
type Params struct {
	// MinPerSide is the minimum trade count required on BOTH sides of a
	// partition before a habit is considered at all. Guards against
	// reporting "improvement" off a single lucky trade.
	MinPerSide int

	// FullCreditSample is the combined sample size at which the size
	// factor of the confidence score saturates.
	FullCreditSample int

	// StrongConfidence and ModerateConfidence are the band edges for the
	// qualitative strength label in secondary insights.
	StrongConfidence   int
	ModerateConfidence int

	// LargeSample is the sample size at or above which a strength label
	// is added to the secondary insights.
	LargeSample int

	// PnLScale normalizes avg P&L deltas onto the same footing as
	// win-rate deltas for ranking. A $100/trade swing counts like a
	// 100-point win-rate swing divided by 100, i.e. a full unit of effect.
	PnLScale float64

	// OvertradePerDay is the number of trades in a single day above which
	// the day counts as overtraded.
	OvertradePerDay int
}

// DefaultParams returns the tuning the journal ships with.
func DefaultParams() Params {
	return Params{
		MinPerSide:         3,
		FullCreditSample:   30,
		StrongConfidence:   75,
		ModerateConfidence: 40,
		LargeSample:        30,
		PnLScale:           100,
		OvertradePerDay:    6,
	}
}

// Valid reports whether the parameters are internally consistent.
func (p Params) Valid() bool {
	if p.MinPerSide < 1 || p.FullCreditSample < 1 || p.LargeSample < 1 {
		return false
	}
	if p.ModerateConfidence < 0 || p.StrongConfidence > 100 ||
		p.ModerateConfidence > p.StrongConfidence {
		return false
	}
	return p.PnLScale > 0 && p.OvertradePerDay > 0
}
