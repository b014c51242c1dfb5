package scoring

import (
	"testing"

	"factory-kpi/app/models"
)

func TestComplianceSeverity(t *testing.T) {
	if got := ComplianceSeverity(models.ComplianceNone); got != 0 {
		t.Fatalf("NONE severity = %d, want 0", got)
	}
	if got := ComplianceSeverity(""); got != 0 {
		t.Fatalf("empty code severity = %d, want 0", got)
	}
	if got := ComplianceSeverity("SAFETY_BREACH"); got != 3 {
		t.Fatalf("SAFETY_BREACH severity = %d, want 3", got)
	}
	if got := ComplianceSeverity("SOMETHING_NEW"); got != 1 {
		t.Fatalf("unknown code severity = %d, want 1 (minor)", got)
	}
}

func TestComplianceScore(t *testing.T) {
	cases := map[string]int{
		models.ComplianceNone: 3,
		"MISSING_PPE":         2,
		"PROCESS_SKIP":        1,
		"FALSIFIED_RECORD":    0,
	}
	for code, want := range cases {
		if got := ComplianceScore(code); got != want {
			t.Fatalf("C(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestViolationWeightByKind(t *testing.T) {
	if got := ViolationWeight(models.KindStandard, "SAFETY_BREACH"); got != 1 {
		t.Fatalf("standard weight = %d, want 1", got)
	}
	if got := ViolationWeight(models.KindHybrid, "SAFETY_BREACH"); got != 3 {
		t.Fatalf("hybrid weight = %d, want severity 3", got)
	}
	if got := ViolationWeight(models.KindMolding, models.ComplianceNone); got != 0 {
		t.Fatalf("NONE weight = %d, want 0", got)
	}
}
