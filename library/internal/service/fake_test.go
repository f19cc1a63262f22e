package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
)

var _ repository.Repository = (*memRepo)(nil)

// memRepo mirrors the PostgreSQL repository under a single mutex, including the
// one-active-rental-per-book constraint.
type memRepo struct {
	mu         sync.Mutex
	users      map[uuid.UUID]model.User
	emails     map[string]uuid.UUID
	authors    map[int64]model.Author
	publishers map[int64]model.Publisher
	books      map[int64]model.Book
	rentals    []model.RentalRecord
	active     map[int64]int64
	seq        int64
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:      make(map[uuid.UUID]model.User),
		emails:     make(map[string]uuid.UUID),
		authors:    make(map[int64]model.Author),
		publishers: make(map[int64]model.Publisher),
		books:      make(map[int64]model.Book),
		active:     make(map[int64]int64),
	}
}

func (r *memRepo) next() int64 {
	r.seq++
	return r.seq
}

func (r *memRepo) CreateUser(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[user.Email]; ok {
		return errs.Conflict("email")
	}
	r.users[user.ID] = user
	r.emails[user.Email] = user.ID
	return nil
}

func (r *memRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.emails[email]
	if !ok {
		return model.User{}, errs.NotFound("user")
	}
	return r.users[id], nil
}

func (r *memRepo) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return model.User{}, errs.NotFound("user")
	}
	return user, nil
}

func (r *memRepo) deleteUser(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := r.users[id]
	user.Status = model.StatusDeleted
	r.users[id] = user
}

func (r *memRepo) CreateAuthor(_ context.Context, name string) (model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := model.Author{ID: r.next(), Name: name, Status: model.StatusActive}
	r.authors[a.ID] = a
	return a, nil
}

func (r *memRepo) UpdateAuthor(_ context.Context, id int64, name string) (model.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[id]
	if !ok || a.Status.IsDeleted() {
		return model.Author{}, errs.NotFound("author")
	}
	a.Name = name
	r.authors[id] = a
	return a, nil
}

func (r *memRepo) DeleteAuthor(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.authors[id]
	if !ok {
		return errs.NotFound("author")
	}
	a.Status = model.StatusDeleted
	r.authors[id] = a
	return nil
}

func (r *memRepo) CreatePublisher(_ context.Context, name string) (model.Publisher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := model.Publisher{ID: r.next(), Name: name, Status: model.StatusActive}
	r.publishers[p.ID] = p
	return p, nil
}

func (r *memRepo) UpdatePublisher(_ context.Context, id int64, name string) (model.Publisher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.publishers[id]
	if !ok || p.Status.IsDeleted() {
		return model.Publisher{}, errs.NotFound("publisher")
	}
	p.Name = name
	r.publishers[id] = p
	return p, nil
}

func (r *memRepo) DeletePublisher(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.publishers[id]
	if !ok {
		return errs.NotFound("publisher")
	}
	p.Status = model.StatusDeleted
	r.publishers[id] = p
	return nil
}

func (r *memRepo) checkReferences(book model.Book) error {
	if a, ok := r.authors[book.AuthorID]; !ok || a.Status.IsDeleted() {
		return errs.Validation("author_id")
	}
	if p, ok := r.publishers[book.PublisherID]; !ok || p.Status.IsDeleted() {
		return errs.Validation("publisher_id")
	}
	return nil
}

func (r *memRepo) CreateBook(_ context.Context, book model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[book.ISBN]; ok {
		return model.Book{}, errs.Conflict("isbn")
	}
	if err := r.checkReferences(book); err != nil {
		return model.Book{}, err
	}
	book.Status = model.StatusActive
	r.books[book.ISBN] = book
	return book, nil
}

func (r *memRepo) UpdateBook(_ context.Context, book model.Book) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.books[book.ISBN]; !ok || b.Status.IsDeleted() {
		return model.Book{}, errs.NotFound("book")
	}
	if err := r.checkReferences(book); err != nil {
		return model.Book{}, err
	}
	book.Status = model.StatusActive
	r.books[book.ISBN] = book
	return book, nil
}

func (r *memRepo) DeleteBook(_ context.Context, isbn int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[isbn]
	if !ok {
		return errs.NotFound("book")
	}
	b.Status = model.StatusDeleted
	r.books[isbn] = b
	return nil
}

func (r *memRepo) GetBook(_ context.Context, isbn int64) (model.BookDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[isbn]
	if !ok || b.Status.IsDeleted() {
		return model.BookDetail{}, errs.NotFound("book")
	}
	return model.BookDetail{
		ISBN:                 b.ISBN,
		Title:                b.Title,
		AuthorName:           r.authors[b.AuthorID].Name,
		PublisherName:        r.publishers[b.PublisherID].Name,
		PublicationYear:      b.PublicationYear,
		PublicationMonth:     b.PublicationMonth,
		PublicationYearMonth: model.YearMonth(b.PublicationYear, b.PublicationMonth),
	}, nil
}

func (r *memRepo) activeBooks() []model.Book {
	books := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		if !b.Status.IsDeleted() {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		a, b := books[i], books[j]
		if a.PublicationYear != b.PublicationYear {
			return a.PublicationYear > b.PublicationYear
		}
		if a.PublicationMonth != b.PublicationMonth {
			return a.PublicationMonth > b.PublicationMonth
		}
		return a.ISBN < b.ISBN
	})
	return books
}

func (r *memRepo) ListBooks(_ context.Context, limit, offset int) ([]model.BookItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	books := r.activeBooks()
	if offset >= len(books) {
		return nil, nil
	}
	books = books[offset:]
	if len(books) > limit {
		books = books[:limit]
	}
	items := make([]model.BookItem, 0, len(books))
	for _, b := range books {
		items = append(items, model.BookItem{
			ISBN:                 b.ISBN,
			Title:                b.Title,
			AuthorName:           r.authors[b.AuthorID].Name,
			PublicationYear:      b.PublicationYear,
			PublicationMonth:     b.PublicationMonth,
			PublicationYearMonth: model.YearMonth(b.PublicationYear, b.PublicationMonth),
		})
	}
	return items, nil
}

func (r *memRepo) CountBooks(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activeBooks()), nil
}

func (r *memRepo) Search(_ context.Context, kind model.EntityKind, keyword string) ([]model.NamedEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []model.NamedEntity
	switch kind {
	case model.KindAuthor:
		for _, a := range r.authors {
			if !a.Status.IsDeleted() {
				all = append(all, model.NamedEntity{ID: a.ID, Name: a.Name})
			}
		}
	case model.KindPublisher:
		for _, p := range r.publishers {
			if !p.Status.IsDeleted() {
				all = append(all, model.NamedEntity{ID: p.ID, Name: p.Name})
			}
		}
	default:
		return nil, errs.Validation("kind")
	}
	var out []model.NamedEntity
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Name), strings.ToLower(keyword)) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) CreateRental(_ context.Context, req model.CreateRental) (model.RentalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.books[req.BookISBN]
	if !ok || b.Status.IsDeleted() {
		return model.RentalRecord{}, errs.NotFound("book")
	}
	if _, ok = r.users[req.UserID]; !ok {
		return model.RentalRecord{}, errs.NotFound("user")
	}
	if _, ok = r.active[req.BookISBN]; ok {
		return model.RentalRecord{}, errs.ErrAlreadyRented
	}
	rec := model.RentalRecord{
		ID:           r.next(),
		BookISBN:     b.ISBN,
		UserID:       req.UserID,
		CheckoutDate: req.CheckoutDate,
		DueDate:      req.DueDate,
	}
	r.rentals = append(r.rentals, rec)
	r.active[b.ISBN] = rec.ID
	return r.decorate(rec), nil
}

func (r *memRepo) ReturnRental(_ context.Context, req model.ReturnRental) (model.RentalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.rentals {
		if rec.ID != req.RentalID {
			continue
		}
		if !rec.Active() || (rec.UserID != req.UserID && !req.AnyUser) {
			break
		}
		returned := req.ReturnedDate
		if returned.Before(rec.CheckoutDate) {
			returned = rec.CheckoutDate
		}
		rec.ReturnedDate = &returned
		r.rentals[i] = rec
		delete(r.active, rec.BookISBN)
		return r.decorate(rec), nil
	}
	return model.RentalRecord{}, errs.NotFound("rental")
}

func (r *memRepo) ListRentals(_ context.Context, userID uuid.UUID) ([]model.RentalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.RentalRecord
	for _, rec := range r.rentals {
		if rec.UserID == userID {
			out = append(out, r.decorate(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckoutDate.Equal(out[j].CheckoutDate) {
			return out[i].CheckoutDate.After(out[j].CheckoutDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// decorate joins book and author regardless of their status, as history does.
func (r *memRepo) decorate(rec model.RentalRecord) model.RentalRecord {
	b := r.books[rec.BookISBN]
	rec.BookTitle = b.Title
	rec.AuthorName = r.authors[b.AuthorID].Name
	return rec
}
