package scoring

import (
	"testing"

	"factory-kpi/app/models"
)

func TestQualityScoreBandBoundaries(t *testing.T) {
	cases := map[int]int{0: 10, 1: 8, 2: 8, 3: 6, 4: 6, 5: 4, 6: 4, 7: 0, 20: 0}
	for defects, want := range cases {
		if got := QualityScore(defects); got != want {
			t.Fatalf("Q(%d) = %d, want %d", defects, got, want)
		}
	}
}

func TestQualityScoreMonotonic(t *testing.T) {
	prev := QualityScore(0)
	for d := 1; d <= 12; d++ {
		cur := QualityScore(d)
		if cur > prev {
			t.Fatalf("Q not non-increasing: Q(%d)=%d > Q(%d)=%d", d, cur, d-1, prev)
		}
		prev = cur
	}
}

func TestQualityScoreScale5(t *testing.T) {
	cases := map[int]int{0: 5, 1: 4, 2: 3, 3: 2, 4: 1, 5: 0, 9: 0, -1: 5}
	for defects, want := range cases {
		if got := QualityScoreScale5(defects); got != want {
			t.Fatalf("Q5(%d) = %d, want %d", defects, got, want)
		}
	}
}

func TestQualityScoreForSectionKind(t *testing.T) {
	if got := QualityScoreFor(models.KindStandard, 1); got != 8 {
		t.Fatalf("standard Q(1) = %d, want 8", got)
	}
	if got := QualityScoreFor(models.KindMolding, 1); got != 4 {
		t.Fatalf("molding Q(1) = %d, want 4", got)
	}
	if got := QualityScoreFor(models.KindHybrid, 1); got != 4 {
		t.Fatalf("hybrid Q(1) = %d, want 4", got)
	}
}
