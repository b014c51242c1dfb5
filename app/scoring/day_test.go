package scoring

import "testing"

func TestDayScoreCapAndOverflow(t *testing.T) {
	cases := []struct {
		p, q, day, overflow int
	}{
		{10, 10, 15, 5},
		{7, 8, 15, 0},
		{10, 4, 14, 0},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		day, overflow := DayScore(c.p, c.q)
		if day != c.day || overflow != c.overflow {
			t.Fatalf("DayScore(%d,%d) = (%d,%d), want (%d,%d)", c.p, c.q, day, overflow, c.day, c.overflow)
		}
	}
}

func TestDayScoreHybridComponentCaps(t *testing.T) {
	// 7+5+3 component maxima, sum capped at 15.
	day, overflow := DayScoreHybrid(7, 5, 3)
	if day != 15 || overflow != 0 {
		t.Fatalf("full marks = (%d,%d), want (15,0)", day, overflow)
	}

	// P over its cap is shaved into overflow.
	day, overflow = DayScoreHybrid(10, 5, 3)
	if day != 15 || overflow != 3 {
		t.Fatalf("P over cap = (%d,%d), want (15,3)", day, overflow)
	}

	day, overflow = DayScoreHybrid(3, 2, 0)
	if day != 5 || overflow != 0 {
		t.Fatalf("partial = (%d,%d), want (5,0)", day, overflow)
	}

	day, overflow = DayScoreHybrid(-2, 6, 1)
	if day != 6 || overflow != 1 {
		t.Fatalf("negative P, Q over cap = (%d,%d), want (6,1)", day, overflow)
	}
}
