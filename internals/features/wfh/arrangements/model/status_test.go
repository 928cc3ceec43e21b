package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withStatuses(statuses ...string) []ArrangementRequestModel {
	requests := make([]ArrangementRequestModel, 0, len(statuses))
	for _, s := range statuses {
		requests = append(requests, ArrangementRequestModel{RequestStatus: s})
	}
	return requests
}

func TestGroupStatusUniform(t *testing.T) {
	assert.Equal(t, StatusApproved, GroupStatus(withStatuses(StatusApproved, StatusApproved)))
	assert.Equal(t, StatusRejected, GroupStatus(withStatuses(StatusRejected)))
	assert.Equal(t, StatusPending, GroupStatus(withStatuses(StatusPending, StatusPending, StatusPending)))
}

func TestGroupStatusPartiallyApproved(t *testing.T) {
	assert.Equal(t, StatusPartiallyApproved,
		GroupStatus(withStatuses(StatusApproved, StatusRejected)))
	assert.Equal(t, StatusPartiallyApproved,
		GroupStatus(withStatuses(StatusRejected, StatusApproved, StatusApproved)))
	// A Pending child does not block the projection once both decisions exist.
	assert.Equal(t, StatusPartiallyApproved,
		GroupStatus(withStatuses(StatusApproved, StatusRejected, StatusPending)))
}

func TestGroupStatusPendingWins(t *testing.T) {
	assert.Equal(t, StatusPending, GroupStatus(withStatuses(StatusApproved, StatusPending)))
	assert.Equal(t, StatusPending, GroupStatus(withStatuses(StatusPending, StatusRejected)))
}

func TestGroupStatusEmpty(t *testing.T) {
	assert.Equal(t, StatusPending, GroupStatus(nil))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(StatusWithdrawn))
	assert.False(t, IsValidStatus(StatusPartiallyApproved)) // derived, never stored
	assert.False(t, IsValidStatus("pending"))               // matching is case-sensitive
}

func TestIsValidSessionType(t *testing.T) {
	assert.True(t, IsValidSessionType(SessionWorkHome))
	assert.True(t, IsValidSessionType(SessionOfficialHoliday))
	assert.False(t, IsValidSessionType("Work Home"))
}
