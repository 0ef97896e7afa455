package service

import (
	"context"
	"fmt"

	"diarycard/internal/domain"
)

// CardService handles card creation and owner-scoped reads. All reads and
// writes are filtered to the requesting user's own records.
type CardService struct {
	cards domain.CardRepository
}

// NewCardService creates a new CardService.
func NewCardService(cards domain.CardRepository) *CardService {
	return &CardService{cards: cards}
}

// Create creates a card owned by the given user. Title and text are
// required; subtitle is optional.
func (s *CardService) Create(ctx context.Context, ownerID int64, title, subtitle, text string) (*domain.Card, error) {
	if title == "" || text == "" {
		return nil, fmt.Errorf("%w: title and text are required", domain.ErrInvalidInput)
	}

	card := &domain.Card{
		UserID:   ownerID,
		Title:    title,
		Subtitle: subtitle,
		Text:     text,
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// ListOwnedBy returns all cards owned by the given user, oldest first.
func (s *CardService) ListOwnedBy(ctx context.Context, ownerID int64) ([]domain.Card, error) {
	return s.cards.ListByUser(ctx, ownerID)
}

// GetOwned returns the card with the given ID if it is owned by ownerID.
// A missing card yields domain.ErrNotFound; a card owned by a different
// user yields domain.ErrForbidden.
func (s *CardService) GetOwned(ctx context.Context, ownerID, cardID int64) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != ownerID {
		return nil, domain.ErrForbidden
	}
	return card, nil
}
