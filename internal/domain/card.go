package domain

import (
	"context"
	"time"
)

// Card is a single diary entry. Every card belongs to exactly one user,
// set at creation and never changed afterwards.
type Card struct {
	ID        int64
	UserID    int64
	Title     string
	Subtitle  string
	Text      string
	CreatedAt time.Time
}

// CardRepository defines persistence operations for cards.
type CardRepository interface {
	Create(ctx context.Context, card *Card) error
	GetByID(ctx context.Context, id int64) (*Card, error)
	ListByUser(ctx context.Context, userID int64) ([]Card, error)
}
