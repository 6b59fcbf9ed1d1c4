package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{"pending to approved", RequestPending, RequestApproved, true},
		{"pending to rejected", RequestPending, RequestRejected, true},
		{"pending to cancelled", RequestPending, RequestCancelled, true},
		{"pending to returned", RequestPending, RequestReturned, false},
		{"approved to returned", RequestApproved, RequestReturned, true},
		{"approved to lost", RequestApproved, RequestLost, true},
		{"approved to overdue", RequestApproved, RequestOverdue, true},
		{"approved to pending", RequestApproved, RequestPending, false},
		{"overdue to returned", RequestOverdue, RequestReturned, true},
		{"overdue to lost", RequestOverdue, RequestLost, true},
		{"overdue to approved", RequestOverdue, RequestApproved, false},
		{"lost book resurfaces", RequestLost, RequestReturned, true},
		{"returned is terminal", RequestReturned, RequestApproved, false},
		{"rejected is terminal", RequestRejected, RequestApproved, false},
		{"cancelled is terminal", RequestCancelled, RequestPending, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanCreateWith(t *testing.T) {
	t.Parallel()
	require.True(t, CanCreateWith(RequestPending))
	require.True(t, CanCreateWith(RequestApproved))
	require.True(t, CanCreateWith(RequestRejected))
	require.False(t, CanCreateWith(RequestReturned))
	require.False(t, CanCreateWith(RequestOverdue))
	require.False(t, CanCreateWith(RequestLost))
	require.False(t, CanCreateWith(RequestCancelled))
}

func TestBorrowRequest_Due(t *testing.T) {
	t.Parallel()
	today := time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)

	overdue := BorrowRequest{Status: RequestApproved, RequestedTo: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)}
	require.True(t, overdue.Due(today))

	dueToday := BorrowRequest{Status: RequestApproved, RequestedTo: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}
	require.False(t, dueToday.Due(today))

	pending := BorrowRequest{Status: RequestPending, RequestedTo: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)}
	require.False(t, pending.Due(today))
}
