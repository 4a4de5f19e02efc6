// Package location tracks the session's fulfillment choice: delivery to a
// serviceable area, or pickup. The selection gates every ordering entry
// point and is persisted independently of the cart.
package location

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/pricing"
	"github.com/Aswin-004/restaurant-ordering-platform/session"
)

const keyPrefix = "location:"

var (
	ErrInvalidMode    = errors.New("delivery type must be delivery or pickup")
	ErrNotServiceable = errors.New("delivery not available in this area")
)

// Selection is the persisted location document.
type Selection struct {
	DeliveryType string `json:"deliveryType"`
	SelectedArea string `json:"selectedArea"`
}

// Store reads and mutates per-session location selections.
type Store struct {
	sessions session.Store
	logger   *zap.Logger
}

func NewStore(sessions session.Store, logger *zap.Logger) *Store {
	return &Store{sessions: sessions, logger: logger}
}

// Get returns the current selection and whether one has been made. A
// missing or corrupt document reads as "never chosen".
func (s *Store) Get(ctx context.Context, sessionID string) (Selection, bool) {
	data, err := s.sessions.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		s.logger.Warn("location load failed", zap.String("session", sessionID), zap.Error(err))
		return Selection{}, false
	}
	if data == nil {
		return Selection{}, false
	}
	var sel Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		s.logger.Warn("discarding corrupt location document", zap.String("session", sessionID), zap.Error(err))
		return Selection{}, false
	}
	if sel.DeliveryType == "" {
		return Selection{}, false
	}
	return sel, true
}

// IsSet reports whether the session has completed location selection.
func (s *Store) IsSet(ctx context.Context, sessionID string) bool {
	_, ok := s.Get(ctx, sessionID)
	return ok
}

// Set records the fulfillment choice. Pickup is accepted immediately; a
// delivery selection is rejected without state change when the area is not
// serviceable.
func (s *Store) Set(ctx context.Context, sessionID, mode, area string) error {
	switch mode {
	case pricing.ModePickup:
		// area optional, recorded for display only
	case pricing.ModeDelivery:
		if !pricing.IsAreaServiceable(area) {
			return ErrNotServiceable
		}
	default:
		return ErrInvalidMode
	}

	data, err := json.Marshal(Selection{DeliveryType: mode, SelectedArea: area})
	if err != nil {
		s.logger.Warn("location encode failed", zap.String("session", sessionID), zap.Error(err))
		return nil
	}
	if err := s.sessions.Set(ctx, keyPrefix+sessionID, data); err != nil {
		s.logger.Warn("location persist failed", zap.String("session", sessionID), zap.Error(err))
	}
	return nil
}

// Clear removes the persisted selection. The HTTP layer clears the cart
// afterwards so stale-area pricing never carries into a new area.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	if err := s.sessions.Delete(ctx, keyPrefix+sessionID); err != nil {
		s.logger.Warn("location clear failed", zap.String("session", sessionID), zap.Error(err))
	}
}
