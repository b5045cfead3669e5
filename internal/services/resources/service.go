package resources

import (
	"log/slog"

	"github.com/tinkergames/tinkerdeck/internal/model"
)

// Service accumulates the resource value of cards played during the current
// hand. It is the hand manager's resource-effect collaborator: totals grow
// as cards are played and drop to zero on the round-boundary reset.
type Service struct {
	totals model.ResourceTotals
	logger *slog.Logger
}

// New creates a new resource tracker
func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// AddCard accumulates a played card's aggregate value on every track
func (s *Service) AddCard(card *model.Card) {
	s.totals.Add(card.Totals())
}

// Totals returns the per-hand resource totals accumulated so far
func (s *Service) Totals() model.ResourceTotals {
	return s.totals
}

// ResetHandResources clears the per-hand totals. Called by the hand manager
// at every round boundary, whether or not anything was accumulated.
func (s *Service) ResetHandResources() {
	if s.totals != (model.ResourceTotals{}) {
		s.logger.Debug("hand resources reset",
			slog.Int("power", s.totals.Power),
			slog.Int("construction", s.totals.Construction),
			slog.Int("invention", s.totals.Invention),
		)
	}
	s.totals = model.ResourceTotals{}
}
