package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

func (s *Service) CreateAuthor(ctx context.Context, who *model.Identity, name string) (model.Author, error) {
	if err := requireAdmin(who); err != nil {
		return model.Author{}, err
	}
	name, err := requireName(name)
	if err != nil {
		return model.Author{}, err
	}
	return s.repo.CreateAuthor(ctx, name)
}

func (s *Service) UpdateAuthor(ctx context.Context, who *model.Identity, id int64, name string) (model.Author, error) {
	if err := requireAdmin(who); err != nil {
		return model.Author{}, err
	}
	name, err := requireName(name)
	if err != nil {
		return model.Author{}, err
	}
	return s.repo.UpdateAuthor(ctx, id, name)
}

// DeleteAuthor soft-deletes the author. Repeating it succeeds.
func (s *Service) DeleteAuthor(ctx context.Context, who *model.Identity, id int64) error {
	if err := requireAdmin(who); err != nil {
		return err
	}
	if err := s.repo.DeleteAuthor(ctx, id); err != nil {
		return err
	}
	s.log.Info("author deleted", zap.Int64("id", id))
	return nil
}

func (s *Service) CreatePublisher(ctx context.Context, who *model.Identity, name string) (model.Publisher, error) {
	if err := requireAdmin(who); err != nil {
		return model.Publisher{}, err
	}
	name, err := requireName(name)
	if err != nil {
		return model.Publisher{}, err
	}
	return s.repo.CreatePublisher(ctx, name)
}

func (s *Service) UpdatePublisher(ctx context.Context, who *model.Identity, id int64, name string) (model.Publisher, error) {
	if err := requireAdmin(who); err != nil {
		return model.Publisher{}, err
	}
	name, err := requireName(name)
	if err != nil {
		return model.Publisher{}, err
	}
	return s.repo.UpdatePublisher(ctx, id, name)
}

func (s *Service) DeletePublisher(ctx context.Context, who *model.Identity, id int64) error {
	if err := requireAdmin(who); err != nil {
		return err
	}
	if err := s.repo.DeletePublisher(ctx, id); err != nil {
		return err
	}
	s.log.Info("publisher deleted", zap.Int64("id", id))
	return nil
}

func (s *Service) CreateBook(ctx context.Context, who *model.Identity, book model.Book) (model.Book, error) {
	if err := requireAdmin(who); err != nil {
		return model.Book{}, err
	}
	if err := validateBook(book); err != nil {
		return model.Book{}, err
	}
	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book created", zap.Int64("isbn", created.ISBN))
	return created, nil
}

func (s *Service) UpdateBook(ctx context.Context, who *model.Identity, book model.Book) (model.Book, error) {
	if err := requireAdmin(who); err != nil {
		return model.Book{}, err
	}
	if err := validateBook(book); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, book)
}

// DeleteBook soft-deletes the book; its rental history is kept.
func (s *Service) DeleteBook(ctx context.Context, who *model.Identity, isbn int64) error {
	if err := requireAdmin(who); err != nil {
		return err
	}
	if err := s.repo.DeleteBook(ctx, isbn); err != nil {
		return err
	}
	s.log.Info("book deleted", zap.Int64("isbn", isbn))
	return nil
}

func (s *Service) GetBook(ctx context.Context, who *model.Identity, isbn int64) (model.BookDetail, error) {
	if err := requireIdentity(who); err != nil {
		return model.BookDetail{}, err
	}
	return s.repo.GetBook(ctx, isbn)
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.Validation("name")
	}
	return name, nil
}

func validateBook(book model.Book) error {
	switch {
	case book.ISBN <= 0:
		return errs.Validation("isbn")
	case strings.TrimSpace(book.Title) == "":
		return errs.Validation("title")
	case book.AuthorID <= 0:
		return errs.Validation("author_id")
	case book.PublisherID <= 0:
		return errs.Validation("publisher_id")
	case book.PublicationMonth < 1 || book.PublicationMonth > 12:
		return errs.Validation("publication_month")
	}
	return nil
}
