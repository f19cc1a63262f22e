package service

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

// ListBooks returns one page of active books. Any page number is accepted;
// pages outside [1, last_page] come back empty.
func (s *Service) ListBooks(ctx context.Context, who *model.Identity, page int) (model.ListBooks, error) {
	if err := requireIdentity(who); err != nil {
		return model.ListBooks{}, err
	}

	const size = model.BooksPageSize
	var (
		total int
		items []model.BookItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.repo.CountBooks(gctx)
		return err
	})
	if page >= 1 && page <= math.MaxInt32 {
		g.Go(func() error {
			var err error
			items, err = s.repo.ListBooks(gctx, size, (page-1)*size)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.ListBooks{}, err
	}
	if items == nil {
		items = []model.BookItem{}
	}

	return model.ListBooks{
		Current:  page,
		LastPage: model.LastPage(total, size),
		Items:    items,
	}, nil
}

// Search matches active authors or publishers whose name contains keyword.
func (s *Service) Search(ctx context.Context, kind model.EntityKind, keyword string) ([]model.NamedEntity, error) {
	if kind != model.KindAuthor && kind != model.KindPublisher {
		return nil, errs.Validation("kind")
	}
	items, err := s.repo.Search(ctx, kind, keyword)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.NamedEntity{}
	}
	return items, nil
}
