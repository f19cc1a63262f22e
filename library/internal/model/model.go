package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LoanPeriod is the fixed interval between checkout and due date.
const LoanPeriod = 7 * 24 * time.Hour

// BooksPageSize is the page size of the book listing.
const BooksPageSize = 5

// Status replaces a boolean soft-delete flag.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

func (s Status) IsDeleted() bool {
	return s == StatusDeleted
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Status       Status    `json:"status" db:"status"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
}

func (u User) Identity() Identity {
	return Identity{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin}
}

// Identity is the authenticated projection of a user carried through a session.
type Identity struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"isAdmin"`
}

type Author struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Status Status `json:"-" db:"status"`
}

type Publisher struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Status Status `json:"-" db:"status"`
}

type Book struct {
	ISBN             int64  `json:"isbn" db:"isbn"`
	Title            string `json:"title" db:"title"`
	AuthorID         int64  `json:"authorId" db:"author_id"`
	PublisherID      int64  `json:"publisherId" db:"publisher_id"`
	PublicationYear  int    `json:"publicationYear" db:"publication_year"`
	PublicationMonth int    `json:"publicationMonth" db:"publication_month"`
	Status           Status `json:"-" db:"status"`
}

type BookDetail struct {
	ISBN                 int64  `json:"isbn" db:"isbn"`
	Title                string `json:"title" db:"title"`
	AuthorName           string `json:"author" db:"author_name"`
	PublisherName        string `json:"publisher" db:"publisher_name"`
	PublicationYear      int    `json:"-" db:"publication_year"`
	PublicationMonth     int    `json:"-" db:"publication_month"`
	PublicationYearMonth string `json:"publication_year_month" db:"-"`
}

type BookItem struct {
	ISBN                 int64  `json:"isbn" db:"isbn"`
	Title                string `json:"title" db:"title"`
	AuthorName           string `json:"author" db:"author_name"`
	PublicationYear      int    `json:"-" db:"publication_year"`
	PublicationMonth     int    `json:"-" db:"publication_month"`
	PublicationYearMonth string `json:"publication_year_month" db:"-"`
}

func YearMonth(year, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

type ListBooks struct {
	Current  int        `json:"current"`
	LastPage int        `json:"last_page"`
	Items    []BookItem `json:"books"`
}

// LastPage is ceil(total/size).
func LastPage(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

type EntityKind string

const (
	KindAuthor    EntityKind = "author"
	KindPublisher EntityKind = "publisher"
)

type NamedEntity struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type RentalRecord struct {
	ID           int64      `json:"id" db:"id"`
	BookISBN     int64      `json:"bookIsbn" db:"book_isbn"`
	BookTitle    string     `json:"title" db:"title"`
	AuthorName   string     `json:"author" db:"author_name"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	CheckoutDate time.Time  `json:"checkoutDate" db:"checkout_date"`
	DueDate      time.Time  `json:"dueDate" db:"due_date"`
	ReturnedDate *time.Time `json:"returnedDate,omitempty" db:"returned_date"`
}

func (r RentalRecord) Active() bool {
	return r.ReturnedDate == nil
}

type CreateRental struct {
	BookISBN     int64
	UserID       uuid.UUID
	CheckoutDate time.Time
	DueDate      time.Time
}

type ReturnRental struct {
	RentalID     int64
	UserID       uuid.UUID
	AnyUser      bool
	ReturnedDate time.Time
}
