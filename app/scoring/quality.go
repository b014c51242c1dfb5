package scoring

import "factory-kpi/app/models"

// QualityScore maps a defect count onto the standard 10-point band table.
// Bands are inclusive: 0 -> 10, 1-2 -> 8, 3-4 -> 6, 5-6 -> 4, 7+ -> 0.
func QualityScore(defects int) int {
	switch {
	case defects <= 0:
		return 10
	case defects <= 2:
		return 8
	case defects <= 4:
		return 6
	case defects <= 6:
		return 4
	default:
		return 0
	}
}

// QualityScoreScale5 is the 5-point variant used by Molding and the hybrid
// sections: 0 -> 5, then one point lost per defect, floor 0.
func QualityScoreScale5(defects int) int {
	if defects < 0 {
		defects = 0
	}
	if defects >= 5 {
		return 0
	}
	return 5 - defects
}

// QualityScoreFor picks the band table for a section kind.
func QualityScoreFor(kind models.SectionKind, defects int) int {
	if kind == models.KindStandard {
		return QualityScore(defects)
	}
	return QualityScoreScale5(defects)
}
