package models

// EntryStatus is the approval state of a KPI entry.
type EntryStatus string

const (
	StatusPending  EntryStatus = "pending"
	StatusApproved EntryStatus = "approved"
	StatusRejected EntryStatus = "rejected"
)

// IsTerminal reports whether the status can no longer change.
// Entries only ever move pending -> approved or pending -> rejected.
func (s EntryStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s EntryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// SectionKind selects which scoring scheme a section uses.
type SectionKind string

const (
	// KindStandard: P from the section rule table, Q from the 10-point
	// band table, day score capped at 15.
	KindStandard SectionKind = "standard"
	// KindMolding: per-category rule tables, Q on the 5-point scale.
	KindMolding SectionKind = "molding"
	// KindHybrid: three sub-scores capped at 7/5/3 (Lamination, Prefitting).
	KindHybrid SectionKind = "hybrid"
)

// FallbackPolicy is what ProductivityScore returns when no threshold
// in the table is <= the metric.
type FallbackPolicy string

const (
	FallbackZero   FallbackPolicy = "zero"
	FallbackLowest FallbackPolicy = "lowest"
)

// ComplianceNone marks an entry with no rule violation.
const ComplianceNone = "NONE"
