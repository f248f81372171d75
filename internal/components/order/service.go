package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("order not found")

type (
	servicer interface {
		Quote(ctx context.Context, in QuoteIn) Summary
		Submit(ctx context.Context, userID uuid.UUID, branchID string, in SubmitOrderIn) (*SubmitOrderOut, error)
		Get(ctx context.Context, userID, id uuid.UUID) (*Order, error)
	}

	service struct {
		repo   repoer
		rates  Rates
		logger zerolog.Logger
	}
)

func NewService(repo repoer, rates Rates, logger zerolog.Logger) servicer {
	return &service{
		repo:   repo,
		rates:  rates,
		logger: logger.With().Str("component", "order").Logger(),
	}
}

// Quote computes the review-screen summary without persisting anything.
func (s *service) Quote(_ context.Context, in QuoteIn) Summary {
	return Summarize(in.Items, s.rates)
}

// Submit recomputes the summary server-side (client totals are never
// trusted) and persists the order as pending.
func (s *service) Submit(ctx context.Context, userID uuid.UUID, branchID string, in SubmitOrderIn) (*SubmitOrderOut, error) {
	o := &Order{
		ID:       uuid.New(),
		UserID:   userID,
		BranchID: branchID,
		Status:   StatusPending,
		Items:    in.Items,
		Summary:  Summarize(in.Items, s.rates),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("order_id", o.ID.String()).
		Str("user_id", userID.String()).
		Int64("total_cents", o.Summary.TotalCents).
		Msg("Order submitted")

	return &SubmitOrderOut{
		ID:      o.ID.String(),
		Status:  o.Status,
		Summary: o.Summary,
	}, nil
}

// Get returns the stored order, scoped to its owner. Missing rows and
// other users' orders are both ErrNotFound.
func (s *service) Get(ctx context.Context, userID, id uuid.UUID) (*Order, error) {
	o, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}
