package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"diarycard/internal/domain"
)

// CardRepository implements domain.CardRepository using SQLite.
type CardRepository struct {
	db *sql.DB
}

// NewCardRepository creates a new SQLite-backed CardRepository.
func NewCardRepository(db *DB) *CardRepository {
	return &CardRepository{db: db.SqlDB}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (user_id, title, subtitle, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		card.UserID, card.Title, card.Subtitle, card.Text, now,
	)
	if err != nil {
		return fmt.Errorf("insert card: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	card.ID = id
	card.CreatedAt = now
	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	card := &domain.Card{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, subtitle, text, created_at
		 FROM cards WHERE id = ?`, id,
	).Scan(&card.ID, &card.UserID, &card.Title, &card.Subtitle, &card.Text, &card.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query card by id: %w", err)
	}
	return card, nil
}

// ListByUser returns all cards owned by the given user in insertion order.
func (r *CardRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, subtitle, text, created_at
		 FROM cards WHERE user_id = ? ORDER BY id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query cards by user: %w", err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		var c domain.Card
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.Subtitle, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}
