package scoring

import "factory-kpi/app/models"

// Result carries every derived field of one entry evaluation.
type Result struct {
	PScore     int `json:"p_score"`
	QScore     int `json:"q_score"`
	CScore     int `json:"c_score"`
	DayScore   int `json:"day_score"`
	Overflow   int `json:"overflow"`
	Violations int `json:"violations"`
}

// Evaluate computes the full score set for one entry against a section's
// active rule table. This is the single scoring path shared by submission,
// preview and the approval recompute, so the per-form copies of these
// formulas cannot drift apart.
func Evaluate(section *models.Section, rules []*models.ScoringRule, metric float64, defects int, complianceCode string) Result {
	var res Result
	res.PScore = ProductivityScore(metric, rules, section.Fallback)
	res.QScore = QualityScoreFor(section.Kind, defects)
	res.Violations = ViolationWeight(section.Kind, complianceCode)

	if section.Kind == models.KindHybrid {
		res.CScore = ComplianceScore(complianceCode)
		res.DayScore, res.Overflow = DayScoreHybrid(res.PScore, res.QScore, res.CScore)
		return res
	}
	res.DayScore, res.Overflow = DayScore(res.PScore, res.QScore)
	return res
}
