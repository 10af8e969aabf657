package correlation

import "math"

// confidence scores how much the sample justifies trusting the observed
// improvement, on a 0-100 scale. Two factors multiply:
//
//   - size: linear ramp to full credit at FullCreditSample total trades.
//   - balance: penalizes lopsided partitions. 58 habit trades against 2
//     control trades is not a trustworthy comparison no matter the volume.
//
// Holding the with/without ratio fixed, growing the sample never lowers
// the score.
func confidence(with, without PartitionStats, p Params) int {
	sample := with.Count + without.Count
	if sample == 0 {
		return 0
	}

	sizeFactor := math.Min(1, float64(sample)/float64(p.FullCreditSample))

	minSide := with.Count
	if without.Count < minSide {
		minSide = without.Count
	}
	balanceFactor := math.Min(1, 2*float64(minSide)/float64(sample))

	return int(math.Round(100 * sizeFactor * balanceFactor))
}
