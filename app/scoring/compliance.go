package scoring

import "factory-kpi/app/models"

// Compliance codes recognised by the entry forms. Severity feeds the hybrid
// sections' compliance sub-score and the violation weight used by the
// monthly penalty.
const (
	severityMinor    = 1
	severityMajor    = 2
	severityCritical = 3
)

var complianceSeverity = map[string]int{
	models.ComplianceNone: 0,
	"LATE_REPORT":         severityMinor,
	"MISSING_PPE":         severityMinor,
	"UNLOGGED_STOP":       severityMajor,
	"PROCESS_SKIP":        severityMajor,
	"SAFETY_BREACH":       severityCritical,
	"FALSIFIED_RECORD":    severityCritical,
}

// ComplianceSeverity returns the severity for a code. Unknown non-NONE codes
// are treated as minor so a new category on the floor still counts.
func ComplianceSeverity(code string) int {
	if code == "" || code == models.ComplianceNone {
		return 0
	}
	if sev, ok := complianceSeverity[code]; ok {
		return sev
	}
	return severityMinor
}

// ComplianceScore is the hybrid sections' third sub-score: 3 minus severity,
// floor 0.
func ComplianceScore(code string) int {
	c := maxCScore - ComplianceSeverity(code)
	if c < 0 {
		return 0
	}
	return c
}

// ViolationWeight is how many violations an entry contributes to the monthly
// penalty count. Standard and Molding sections weigh every non-NONE code as
// one; hybrid sections weigh by severity.
func ViolationWeight(kind models.SectionKind, code string) int {
	sev := ComplianceSeverity(code)
	if sev == 0 {
		return 0
	}
	if kind == models.KindHybrid {
		return sev
	}
	return 1
}

// KnownComplianceCodes lists the codes offered by the entry forms,
// NONE first.
func KnownComplianceCodes() []string {
	return []string{
		models.ComplianceNone,
		"LATE_REPORT",
		"MISSING_PPE",
		"UNLOGGED_STOP",
		"PROCESS_SKIP",
		"SAFETY_BREACH",
		"FALSIFIED_RECORD",
	}
}
