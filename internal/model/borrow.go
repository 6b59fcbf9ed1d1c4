package model

import (
	"time"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestApproved  RequestStatus = "APPROVED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestReturned  RequestStatus = "RETURNED"
	RequestLost      RequestStatus = "LOST"
	RequestOverdue   RequestStatus = "OVERDUE"
	RequestCancelled RequestStatus = "CANCELLED"
)

// requestTransitions is the whole lifecycle. RETURNED, REJECTED and
// CANCELLED are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending:  {RequestApproved, RequestRejected, RequestCancelled},
	RequestApproved: {RequestReturned, RequestLost, RequestOverdue},
	RequestOverdue:  {RequestReturned, RequestLost},
	RequestLost:     {RequestReturned},
}

func CanTransition(from, to RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanCreateWith reports whether a brand-new request may carry the status.
func CanCreateWith(status RequestStatus) bool {
	switch status {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

type BorrowRequest struct {
	ID            int64         `json:"id" db:"id"`
	RequestUID    string        `json:"requestUid" db:"request_uid"`
	Username      string        `json:"username" db:"username"`
	BookItemID    *int64        `json:"bookItemId,omitempty" db:"book_item_id"`
	RequestedFrom time.Time     `json:"requestedFrom" db:"requested_from"`
	DurationDays  int           `json:"durationDays" db:"duration_days"`
	RequestedTo   time.Time     `json:"requestedTo" db:"requested_to"`
	Status        RequestStatus `json:"status" db:"status"`
	DecisionAt    *time.Time    `json:"decisionAt,omitempty" db:"decision_at"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// Due reports whether the request is past its return date as of today.
func (r BorrowRequest) Due(today time.Time) bool {
	return r.Status == RequestApproved && r.RequestedTo.Before(today.Truncate(24*time.Hour))
}

type BorrowRequestItem struct {
	ID        int64 `json:"id" db:"id"`
	RequestID int64 `json:"requestId" db:"request_id"`
	BookID    int64 `json:"bookId" db:"book_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}

type LoanStatus string

const (
	LoanBorrowed LoanStatus = "BORROWED"
	LoanReturned LoanStatus = "RETURNED"
	LoanOverdue  LoanStatus = "OVERDUE"
)

// Loan is a concrete approved checkout of one physical item.
type Loan struct {
	ID            int64      `json:"id" db:"id"`
	RequestItemID int64      `json:"requestItemId" db:"request_item_id"`
	BookItemID    int64      `json:"bookItemId" db:"book_item_id"`
	ApprovedFrom  time.Time  `json:"approvedFrom" db:"approved_from"`
	DueDate       time.Time  `json:"dueDate" db:"due_date"`
	ReturnedAt    *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
	Status        LoanStatus `json:"status" db:"status"`
}

type CreateBorrowRequest struct {
	BookID        int64 `json:"bookId" validate:"required"`
	Quantity      int   `json:"quantity" validate:"required,gt=0"`
	RequestedFrom Date  `json:"requestedFrom" validate:"required"`
	DurationDays  int   `json:"durationDays" validate:"required,gt=0"`
	Username      string
}

// BorrowRequestInfo is the history projection joining request items to
// their book titles.
type BorrowRequestInfo struct {
	BorrowRequest
	BookID    int64  `json:"bookId" db:"book_id"`
	BookTitle string `json:"bookTitle" db:"book_title"`
	Quantity  int    `json:"quantity" db:"quantity"`
}

type ApproveRequest struct {
	BookItemID int64 `json:"bookItemId" validate:"required"`
}
