package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bookward/library-management/internal/errs"
	"github.com/bookward/library-management/internal/model"
	"github.com/bookward/library-management/internal/repository"
)

// Mailer queues a decision notification; delivery happens out of band.
type Mailer interface {
	EnqueueDecision(ctx context.Context, req model.BorrowRequest, event string) error
}

type BorrowService struct {
	log  *zap.Logger
	repo repository.BorrowRepository
	mail Mailer
	now  func() time.Time
}

func NewBorrowService(repo repository.BorrowRepository, mail Mailer, log *zap.Logger) *BorrowService {
	return &BorrowService{
		log:  log,
		repo: repo,
		mail: mail,
		now:  time.Now,
	}
}

// CreateBorrowRequest validates the ask and persists it PENDING.
// requested_to is always derived as requested_from + duration.
func (s *BorrowService) CreateBorrowRequest(ctx context.Context, req model.CreateBorrowRequest) (model.BorrowRequest, error) {
	if req.RequestedFrom.IsZero() {
		return model.BorrowRequest{}, errs.Validation("requestedFrom", "is required")
	}
	if req.DurationDays <= 0 {
		return model.BorrowRequest{}, errs.Validation("durationDays", "must be positive")
	}
	if req.Quantity <= 0 {
		return model.BorrowRequest{}, errs.Validation("quantity", "must be positive")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if req.RequestedFrom.Time.Before(today) {
		return model.BorrowRequest{}, fmt.Errorf("%w: requestedFrom is in the past", errs.ErrBadDateRange)
	}

	available, err := s.repo.AvailableItems(ctx, req.BookID)
	if err != nil {
		return model.BorrowRequest{}, err
	}
	if req.Quantity > available {
		return model.BorrowRequest{}, fmt.Errorf("%w: %d available", errs.ErrNoInventory, available)
	}

	// explicit profile bootstrap; replaces the implicit on-signup hook
	if _, err := s.repo.EnsureProfile(ctx, req.Username, req.Username); err != nil {
		return model.BorrowRequest{}, err
	}

	request := model.BorrowRequest{
		Username:      req.Username,
		RequestedFrom: req.RequestedFrom.Time,
		DurationDays:  req.DurationDays,
		RequestedTo:   ResolveRequestedTo(req.RequestedFrom.Time, req.DurationDays),
		Status:        model.RequestPending,
	}
	items := []model.BorrowRequestItem{{BookID: req.BookID, Quantity: req.Quantity}}
	return s.repo.CreateBorrowRequest(ctx, request, items)
}

// ResolveRequestedTo derives the return date from the start date and
// duration in days. Recomputed on every save path.
func ResolveRequestedTo(from time.Time, durationDays int) time.Time {
	return from.AddDate(0, 0, durationDays)
}

func (s *BorrowService) GetBorrowRequests(ctx context.Context, username string) ([]model.BorrowRequestInfo, error) {
	return s.repo.ListBorrowRequests(ctx, username)
}

func (s *BorrowService) ListByStatus(ctx context.Context, status model.RequestStatus) ([]model.BorrowRequestInfo, error) {
	return s.repo.ListBorrowRequestsByStatus(ctx, status)
}

func (s *BorrowService) CancelBorrowRequest(ctx context.Context, username, requestUID string) (model.BorrowRequest, error) {
	return s.repo.CancelBorrowRequest(ctx, username, requestUID)
}

// ApproveBorrowRequest moves PENDING -> APPROVED, flips the item to LOANED
// and opens a Loan, all inside one locked transaction.
func (s *BorrowService) ApproveBorrowRequest(ctx context.Context, requestUID string, bookItemID int64) (model.BorrowRequest, error) {
	approved, err := s.repo.ApproveBorrowRequest(ctx, requestUID, bookItemID, s.now().UTC())
	if err != nil {
		return model.BorrowRequest{}, err
	}
	s.notify(ctx, approved, "request_approved")
	return approved, nil
}

func (s *BorrowService) RejectBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error) {
	rejected, err := s.repo.RejectBorrowRequest(ctx, requestUID, s.now().UTC())
	if err != nil {
		return model.BorrowRequest{}, err
	}
	s.notify(ctx, rejected, "request_rejected")
	return rejected, nil
}

func (s *BorrowService) ReturnBorrowRequest(ctx context.Context, requestUID string) (model.BorrowRequest, error) {
	return s.repo.ReturnBorrowRequest(ctx, requestUID, s.now().UTC())
}

func (s *BorrowService) MarkBorrowRequestLost(ctx context.Context, requestUID string) (model.BorrowRequest, error) {
	return s.repo.MarkBorrowRequestLost(ctx, requestUID, s.now().UTC())
}

// SweepOverdue flips APPROVED requests whose return date is strictly before
// today to OVERDUE. Safe to run repeatedly.
func (s *BorrowService) SweepOverdue(ctx context.Context) (int64, error) {
	swept, err := s.repo.SweepOverdue(ctx, s.now().UTC())
	if err != nil {
		return 0, err
	}
	if swept > 0 {
		s.log.Info("overdue sweep", zap.Int64("requests", swept))
	}
	return swept, nil
}

// notify is fire-and-forget: a failed enqueue must not fail the decision.
func (s *BorrowService) notify(ctx context.Context, req model.BorrowRequest, event string) {
	if s.mail == nil {
		return
	}
	if err := s.mail.EnqueueDecision(ctx, req, event); err != nil {
		s.log.Error("enqueue decision mail", zap.String("event", event), zap.Error(err))
	}
}
