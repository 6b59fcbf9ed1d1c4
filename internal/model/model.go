package model

import (
	"strings"
	"time"
)

// Date marshals as yyyy-mm-dd, matching the form fields the web UI posts.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type Author struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Biography *string    `json:"biography,omitempty" db:"biography"`
	BirthDate *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	DeathDate *time.Time `json:"deathDate,omitempty" db:"death_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Publisher struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	FoundedYear *int      `json:"foundedYear,omitempty" db:"founded_year"`
	Website     *string   `json:"website,omitempty" db:"website"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Category struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Slug        string  `json:"slug" db:"slug"`
	Description *string `json:"description,omitempty" db:"description"`
	ParentID    *int64  `json:"parentId,omitempty" db:"parent_id"`
}

type Book struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"`
	ISBN13       *string   `json:"isbn13,omitempty" db:"isbn13"`
	PublishYear  *int      `json:"publishYear,omitempty" db:"publish_year"`
	Pages        *int      `json:"pages,omitempty" db:"pages"`
	CoverURL     *string   `json:"coverUrl,omitempty" db:"cover_url"`
	LanguageCode *string   `json:"languageCode,omitempty" db:"language_code"`
	PublisherID  *int64    `json:"publisherId,omitempty" db:"publisher_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// BookInfo is the listing projection with joined names rolled up.
type BookInfo struct {
	Book
	PublisherName *string `json:"publisher,omitempty" db:"publisher_name"`
	Authors       *string `json:"authors,omitempty" db:"authors"`
	Categories    *string `json:"categories,omitempty" db:"categories"`
}

type BookAuthor struct {
	BookID      int64 `json:"bookId" db:"book_id"`
	AuthorID    int64 `json:"authorId" db:"author_id"`
	AuthorOrder int   `json:"authorOrder" db:"author_order"`
}

type BookCategory struct {
	BookID     int64 `json:"bookId" db:"book_id"`
	CategoryID int64 `json:"categoryId" db:"category_id"`
}

type ItemStatus string

const (
	ItemAvailable ItemStatus = "AVAILABLE"
	ItemReserved  ItemStatus = "RESERVED"
	ItemLoaned    ItemStatus = "LOANED"
	ItemLost      ItemStatus = "LOST"
	ItemDamaged   ItemStatus = "DAMAGED"
)

// BookItem is one physical, barcoded copy of a Book. Its status is a
// projection of the latest borrow event touching it.
type BookItem struct {
	ID           int64      `json:"id" db:"id"`
	BookID       int64      `json:"bookId" db:"book_id"`
	Barcode      string     `json:"barcode" db:"barcode"`
	Status       ItemStatus `json:"status" db:"status"`
	LocationCode *string    `json:"locationCode,omitempty" db:"location_code"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "PENDING"
	ProfileActive   ProfileStatus = "ACTIVE"
	ProfileInactive ProfileStatus = "INACTIVE"
)

type MemberProfile struct {
	ID        int64         `json:"id" db:"id"`
	Username  string        `json:"username" db:"username"`
	FullName  string        `json:"fullName" db:"full_name"`
	Email     *string       `json:"email,omitempty" db:"email"`
	AvatarURL *string       `json:"avatarUrl,omitempty" db:"avatar_url"`
	Status    ProfileStatus `json:"status" db:"status"`
	Role      string        `json:"role" db:"role"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}

type MailStatus string

const (
	MailQueued    MailStatus = "QUEUED"
	MailSent      MailStatus = "SENT"
	MailFailed    MailStatus = "FAILED"
	MailCancelled MailStatus = "CANCELLED"
)

// MailQueue is the outbox row for a pending email; delivery is decoupled
// from the request that produced it.
type MailQueue struct {
	ID        int64      `json:"id" db:"id"`
	Type      string     `json:"type" db:"type"`
	Recipient string     `json:"recipient" db:"recipient"`
	Subject   string     `json:"subject" db:"subject"`
	Body      string     `json:"body" db:"body"`
	Status    MailStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	SentAt    *time.Time `json:"sentAt,omitempty" db:"sent_at"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookInfo `json:"items"`
}
