package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/model"
)

// Checkout lends the book to who. The storage layer decides the race between
// concurrent checkouts of the same book: exactly one succeeds, the rest get
// errs.ErrAlreadyRented.
func (s *Service) Checkout(ctx context.Context, who *model.Identity, isbn int64) (rec model.RentalRecord, err error) {
	ctx, end := s.startSpan(ctx, "Checkout", attribute.Int64("isbn", isbn))
	defer end(&err)

	if err = requireIdentity(who); err != nil {
		return model.RentalRecord{}, err
	}

	now := s.timestamp()
	rec, err = s.repo.CreateRental(ctx, model.CreateRental{
		BookISBN:     isbn,
		UserID:       who.ID,
		CheckoutDate: now,
		DueDate:      now.Add(model.LoanPeriod),
	})
	if err != nil {
		return model.RentalRecord{}, err
	}
	s.log.Info("book checked out",
		zap.Int64("rental", rec.ID), zap.Int64("isbn", isbn), zap.Stringer("user", who.ID), zap.Time("due", rec.DueDate))
	return rec, nil
}

// Return closes an active rental owned by who; admins may close any rental.
// A rental that is unknown, already returned, or owned by someone else is NotFound.
func (s *Service) Return(ctx context.Context, who *model.Identity, rentalID int64) (rec model.RentalRecord, err error) {
	ctx, end := s.startSpan(ctx, "Return", attribute.Int64("rental", rentalID))
	defer end(&err)

	if err = requireIdentity(who); err != nil {
		return model.RentalRecord{}, err
	}

	rec, err = s.repo.ReturnRental(ctx, model.ReturnRental{
		RentalID:     rentalID,
		UserID:       who.ID,
		AnyUser:      who.IsAdmin,
		ReturnedDate: s.timestamp(),
	})
	if err != nil {
		return model.RentalRecord{}, err
	}
	s.log.Info("book returned", zap.Int64("rental", rec.ID), zap.Int64("isbn", rec.BookISBN), zap.Stringer("user", who.ID))
	return rec, nil
}

// History lists the caller's rentals, newest checkout first.
func (s *Service) History(ctx context.Context, who *model.Identity) ([]model.RentalRecord, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	return s.history(ctx, who.ID)
}

func (s *Service) UserHistory(ctx context.Context, who *model.Identity, userID uuid.UUID) ([]model.RentalRecord, error) {
	if err := requireAdmin(who); err != nil {
		return nil, err
	}
	return s.history(ctx, userID)
}

func (s *Service) history(ctx context.Context, userID uuid.UUID) (items []model.RentalRecord, err error) {
	ctx, end := s.startSpan(ctx, "History", attribute.String("user", userID.String()))
	defer end(&err)

	items, err = s.repo.ListRentals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.RentalRecord{}
	}
	return items, nil
}
