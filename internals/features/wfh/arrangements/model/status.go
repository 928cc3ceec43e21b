package model

/* ===================== ENUMS ===================== */

// Request status values. Stored as-is; API matching is case-sensitive.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusRevoked   = "Revoked"
	StatusWithdrawn = "Withdrawn"
)

// Derived group-level display status, never stored.
const StatusPartiallyApproved = "Partially Approved"

// Session types.
const (
	SessionWorkHome        = "Work home"
	SessionDayOff          = "Day off"
	SessionVacation        = "Vacation"
	SessionOfficialHoliday = "Official holiday"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRevoked, StatusWithdrawn:
		return true
	}
	return false
}

func IsValidSessionType(s string) bool {
	switch s {
	case SessionWorkHome, SessionDayOff, SessionVacation, SessionOfficialHoliday:
		return true
	}
	return false
}

// GroupStatus projects the display status of a request group from the
// status multiset of its children. A mix of Approved and Rejected children
// is surfaced as Partially Approved.
func GroupStatus(requests []ArrangementRequestModel) string {
	if len(requests) == 0 {
		return StatusPending
	}

	counts := map[string]int{}
	for _, r := range requests {
		counts[r.RequestStatus]++
	}

	if len(counts) == 1 {
		return requests[0].RequestStatus
	}
	if counts[StatusApproved] > 0 && counts[StatusRejected] > 0 {
		return StatusPartiallyApproved
	}
	if counts[StatusPending] > 0 {
		return StatusPending
	}
	// Heterogeneous terminal states; report the majority-ish first child.
	return requests[0].RequestStatus
}
