package game

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
)

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

// roundConfig holds the optional collaborators of a round.
type roundConfig struct {
	deck   *deck.Deck // If provided, dealt as-is without shuffling
	logger *log.Logger
	clock  quartz.Clock
}

// WithDeck uses a prepared deck instead of building and shuffling a fresh one.
// The cards are dealt in the deck's current order.
func WithDeck(d *deck.Deck) RoundOption {
	return func(c *roundConfig) { c.deck = d }
}

// WithLogger sets the logger used for round diagnostics
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) { c.logger = logger }
}

// WithClock sets the clock used to time the round
func WithClock(clock quartz.Clock) RoundOption {
	return func(c *roundConfig) { c.clock = clock }
}
