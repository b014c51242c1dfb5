package scoring

// Component caps. Standard sections cap the P+Q sum at dayCap; hybrid
// sections cap each component first (7+5+3) and then the sum.
const (
	dayCap    = 15
	maxPScore = 7
	maxQScore = 5
	maxCScore = 3
)

// DayScore caps p+q at 15 and reports the overflow separately.
func DayScore(p, q int) (day, overflow int) {
	sum := p + q
	if sum > dayCap {
		return dayCap, sum - dayCap
	}
	return sum, 0
}

// DayScoreHybrid caps the three sub-scores at 7/5/3, then the sum at 15.
// Overflow counts everything shaved off, component caps included.
func DayScoreHybrid(p, q, c int) (day, overflow int) {
	if p < 0 {
		p = 0
	}
	if q < 0 {
		q = 0
	}
	if c < 0 {
		c = 0
	}
	raw := p + q + c
	p = clamp(p, maxPScore)
	q = clamp(q, maxQScore)
	c = clamp(c, maxCScore)
	sum := p + q + c
	if sum > dayCap {
		sum = dayCap
	}
	return sum, raw - sum
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
