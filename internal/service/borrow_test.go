package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
)

type fakeBorrowRepo struct {
	available int
	created   model.BorrowRequest
	items     []model.BorrowRequestItem
	profile   string
	approved  model.BorrowRequest
	swept     int64
	sweepAt   time.Time
}

func (f *fakeBorrowRepo) CreateBorrowRequest(_ context.Context, req model.BorrowRequest, items []model.BorrowRequestItem) (model.BorrowRequest, error) {
	f.created, f.items = req, items
	req.ID = 1
	req.RequestUID = "3f9d6a1e-0000-0000-0000-000000000001"
	return req, nil
}

func (f *fakeBorrowRepo) GetBorrowRequest(context.Context, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{}, errs.ErrNotFound
}

func (f *fakeBorrowRepo) ListBorrowRequests(context.Context, string) ([]model.BorrowRequestInfo, error) {
	return nil, nil
}

func (f *fakeBorrowRepo) ListBorrowRequestsByStatus(context.Context, model.RequestStatus) ([]model.BorrowRequestInfo, error) {
	return nil, nil
}

func (f *fakeBorrowRepo) CancelBorrowRequest(context.Context, string, string) (model.BorrowRequest, error) {
	return model.BorrowRequest{Status: model.RequestCancelled}, nil
}

func (f *fakeBorrowRepo) AvailableItems(context.Context, int64) (int, error) {
	return f.available, nil
}

func (f *fakeBorrowRepo) ApproveBorrowRequest(_ context.Context, uid string, itemID int64, now time.Time) (model.BorrowRequest, error) {
	f.approved = model.BorrowRequest{
		RequestUID: uid,
		BookItemID: &itemID,
		Status:     model.RequestApproved,
		DecisionAt: &now,
	}
	return f.approved, nil
}

func (f *fakeBorrowRepo) RejectBorrowRequest(_ context.Context, uid string, now time.Time) (model.BorrowRequest, error) {
	return model.BorrowRequest{RequestUID: uid, Status: model.RequestRejected, DecisionAt: &now}, nil
}

func (f *fakeBorrowRepo) ReturnBorrowRequest(_ context.Context, uid string, _ time.Time) (model.BorrowRequest, error) {
	return model.BorrowRequest{RequestUID: uid, Status: model.RequestReturned}, nil
}

func (f *fakeBorrowRepo) MarkBorrowRequestLost(_ context.Context, uid string, _ time.Time) (model.BorrowRequest, error) {
	return model.BorrowRequest{RequestUID: uid, Status: model.RequestLost}, nil
}

func (f *fakeBorrowRepo) SweepOverdue(_ context.Context, today time.Time) (int64, error) {
	f.sweepAt = today
	return f.swept, nil
}

func (f *fakeBorrowRepo) EnsureProfile(_ context.Context, username, _ string) (model.MemberProfile, error) {
	f.profile = username
	return model.MemberProfile{Username: username, Status: model.ProfileActive}, nil
}

type fakeMailer struct {
	events []string
}

func (f *fakeMailer) EnqueueDecision(_ context.Context, _ model.BorrowRequest, event string) error {
	f.events = append(f.events, event)
	return nil
}

func newBorrowSvc(repo *fakeBorrowRepo, mail Mailer) *BorrowService {
	svc := NewBorrowService(repo, mail, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestBorrowService_CreateBorrowRequest(t *testing.T) {
	t.Parallel()
	repo := &fakeBorrowRepo{available: 3}
	svc := newBorrowSvc(repo, nil)

	req, err := svc.CreateBorrowRequest(context.Background(), model.CreateBorrowRequest{
		BookID:        7,
		Quantity:      1,
		RequestedFrom: model.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		DurationDays:  7,
		Username:      "reader",
	})
	require.NoError(t, err)

	require.Equal(t, model.RequestPending, req.Status)
	require.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), req.RequestedTo)
	require.Equal(t, "reader", repo.profile)
	require.Len(t, repo.items, 1)
	require.Equal(t, int64(7), repo.items[0].BookID)
}

func TestBorrowService_CreateBorrowRequest_validation(t *testing.T) {
	t.Parallel()
	from := model.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name    string
		req     model.CreateBorrowRequest
		repo    *fakeBorrowRepo
		wantErr error
	}{
		{
			name: "no inventory",
			req:  model.CreateBorrowRequest{BookID: 7, Quantity: 2, RequestedFrom: from, DurationDays: 7, Username: "reader"},
			repo: &fakeBorrowRepo{available: 1},
			wantErr: errs.ErrNoInventory,
		},
		{
			name: "start date in the past",
			req: model.CreateBorrowRequest{
				BookID: 7, Quantity: 1, DurationDays: 7, Username: "reader",
				RequestedFrom: model.Date{Time: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
			},
			repo:    &fakeBorrowRepo{available: 1},
			wantErr: errs.ErrBadDateRange,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newBorrowSvc(tt.repo, nil)
			_, err := svc.CreateBorrowRequest(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("zero quantity", func(t *testing.T) {
		t.Parallel()
		svc := newBorrowSvc(&fakeBorrowRepo{available: 1}, nil)
		_, err := svc.CreateBorrowRequest(context.Background(), model.CreateBorrowRequest{
			BookID: 7, Quantity: 0, RequestedFrom: from, DurationDays: 7, Username: "reader",
		})
		require.True(t, errs.IsValidation(err))
	})
}

func TestBorrowService_ApproveEnqueuesMail(t *testing.T) {
	t.Parallel()
	repo := &fakeBorrowRepo{}
	mail := &fakeMailer{}
	svc := newBorrowSvc(repo, mail)

	approved, err := svc.ApproveBorrowRequest(context.Background(), "uid-1", 42)
	require.NoError(t, err)
	require.Equal(t, model.RequestApproved, approved.Status)
	require.NotNil(t, approved.DecisionAt)
	require.Equal(t, []string{"request_approved"}, mail.events)

	_, err = svc.RejectBorrowRequest(context.Background(), "uid-2")
	require.NoError(t, err)
	require.Equal(t, []string{"request_approved", "request_rejected"}, mail.events)
}

func TestBorrowService_SweepOverdue(t *testing.T) {
	t.Parallel()
	repo := &fakeBorrowRepo{swept: 3}
	svc := newBorrowSvc(repo, nil)

	swept, err := svc.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 3, swept)
	require.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), repo.sweepAt)
}

func TestResolveRequestedTo(t *testing.T) {
	t.Parallel()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), ResolveRequestedTo(from, 7))
	require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), ResolveRequestedTo(from, 31))
}
