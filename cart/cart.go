// Package cart owns the session cart: a list of merged line items persisted
// write-through to the session store. Persistence failures are logged and
// swallowed; callers always see the in-memory result of their mutation.
package cart

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/models"
	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
	"github.com/Aswin-004/restaurant-ordering-platform/session"
)

const keyPrefix = "cart:"

// document is the persisted cart layout: { "items": [...] }
type document struct {
	Items []models.CartLine `json:"items"`
}

// Store reads and mutates per-session carts.
type Store struct {
	sessions session.Store
	logger   *zap.Logger
}

func NewStore(sessions session.Store, logger *zap.Logger) *Store {
	return &Store{sessions: sessions, logger: logger}
}

// Lines returns the current cart lines for the session. A missing,
// unreadable or corrupt document is treated as an empty cart.
func (s *Store) Lines(ctx context.Context, sessionID string) []models.CartLine {
	data, err := s.sessions.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		s.logger.Warn("cart load failed", zap.String("session", sessionID), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("discarding corrupt cart document", zap.String("session", sessionID), zap.Error(err))
		return nil
	}
	return doc.Items
}

// AddItem merges the candidate into the cart: an existing line with the
// same identity gains quantity 1, otherwise a new line is appended.
func (s *Store) AddItem(ctx context.Context, sessionID string, in models.CartLineInput) []models.CartLine {
	lines := s.Lines(ctx, sessionID)
	id := pricing.LineID(in.Name, in.Customization)

	found := false
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, models.CartLine{
			ID:       id,
			Name:     in.Name,
			Price:    in.Price,
			Quantity: 1,
			Image:    in.Image,
			Category: in.Category,
		})
	}

	s.save(ctx, sessionID, lines)
	return lines
}

// RemoveItem deletes the line with the given identity. Unknown identities
// are a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID, id string) []models.CartLine {
	lines := s.Lines(ctx, sessionID)
	kept := lines[:0]
	for _, line := range lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	s.save(ctx, sessionID, kept)
	return kept
}

// UpdateQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line. Unknown identities are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) []models.CartLine {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, id)
	}
	lines := s.Lines(ctx, sessionID)
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Quantity = quantity
			break
		}
	}
	s.save(ctx, sessionID, lines)
	return lines
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(ctx, keyPrefix+sessionID); err != nil {
		s.logger.Warn("cart clear failed", zap.String("session", sessionID), zap.Error(err))
	}
}

// Summary builds the aggregate view handlers return to the client.
func (s *Store) Summary(ctx context.Context, sessionID string) models.CartSummary {
	return Summarize(s.Lines(ctx, sessionID))
}

func (s *Store) save(ctx context.Context, sessionID string, lines []models.CartLine) {
	data, err := json.Marshal(document{Items: lines})
	if err != nil {
		s.logger.Warn("cart encode failed", zap.String("session", sessionID), zap.Error(err))
		return
	}
	if err := s.sessions.Set(ctx, keyPrefix+sessionID, data); err != nil {
		s.logger.Warn("cart persist failed", zap.String("session", sessionID), zap.Error(err))
	}
}

// ItemCount sums quantities across all lines, as distinct from line count.
func ItemCount(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

// Summarize derives the totals for a set of lines.
func Summarize(lines []models.CartLine) models.CartSummary {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return models.CartSummary{
		Items:     lines,
		ItemCount: ItemCount(lines),
		Subtotal:  pricing.Subtotal(lines),
	}
}
