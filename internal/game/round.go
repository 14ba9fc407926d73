package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Round owns the deck and both hands for a single round of blackjack.
// A Round is played once and then discarded.
type Round struct {
	deck    *deck.Deck
	stacked bool
	dealer  *Hand
	player  *Hand
	in      Input
	out     Output
	logger  *log.Logger
	clock   quartz.Clock
}

// NewRound creates a round with a fresh 52-card deck drawn from rng.
// The rng may be nil when WithDeck supplies the deck.
//
// Example usage:
//
//	// Production - time-seeded RNG
//	r := NewRound(randutil.New(time.Now().UnixNano()), console, console)
//
//	// Testing - stacked deck and scripted input
//	r := NewRound(nil, NewScriptedInput("n"), &Transcript{},
//	    WithDeck(deck.NewDeckFromCards(deck.MustParseCards("10,9,7,K"))))
func NewRound(rng *rand.Rand, in Input, out Output, opts ...RoundOption) *Round {
	if in == nil || out == nil {
		panic("input and output are required for a round")
	}

	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Round{
		deck:    cfg.deck,
		stacked: cfg.deck != nil,
		dealer:  NewHand(),
		player:  NewHand(),
		in:      in,
		out:     out,
		logger:  cfg.logger,
		clock:   cfg.clock,
	}

	if r.deck == nil {
		r.deck = deck.NewDeck(rng)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if r.clock == nil {
		r.clock = quartz.NewReal()
	}

	return r
}

// Dealer returns the dealer's hand
func (r *Round) Dealer() *Hand {
	return r.dealer
}

// Player returns the player's hand
func (r *Round) Player() *Hand {
	return r.player
}

// Deck returns the deck being dealt from
func (r *Round) Deck() *deck.Deck {
	return r.deck
}

// Play runs the whole round: shuffle, initial deal, player loop, dealer loop
// and score comparison. The result announcement and both hands are written to
// the output before returning. Errors are fatal for the round.
func (r *Round) Play() (Result, error) {
	start := r.clock.Now()

	if !r.stacked {
		r.deck.Shuffle()
	}

	if err := r.Deal(); err != nil {
		return resultInvalid, err
	}
	r.announce("Game started!")

	result, err := r.resolve()
	if err != nil {
		r.logger.Error("Round aborted", "error", err)
		return resultInvalid, err
	}

	r.announce(result.Message())
	r.logger.Info("Round complete",
		"result", result,
		"player_points", r.player.Points(),
		"dealer_points", r.dealer.Points(),
		"cards_remaining", r.deck.CardsRemaining(),
		"duration", r.clock.Since(start))

	return result, nil
}

// Deal gives two cards each to the dealer and the player, alternating and
// starting with the dealer
func (r *Round) Deal() error {
	for range 2 {
		if _, err := r.draw(r.dealer); err != nil {
			return fmt.Errorf("initial deal to dealer: %w", err)
		}
		if _, err := r.draw(r.player); err != nil {
			return fmt.Errorf("initial deal to player: %w", err)
		}
	}

	r.logger.Debug("Initial deal",
		"dealer", r.dealer.String(),
		"player", r.player.String())
	return nil
}

func (r *Round) resolve() (Result, error) {
	outcome, err := r.PlayPlayer()
	if err != nil {
		return resultInvalid, err
	}

	switch outcome {
	case Won:
		return PlayerBlackjack, nil
	case Lost:
		return PlayerLoss, nil
	}

	outcome, err = r.PlayDealer()
	if err != nil {
		return resultInvalid, err
	}

	switch outcome {
	case Won:
		return DealerBlackjack, nil
	case Lost:
		return PlayerWin, nil
	default:
		return Compare(r.player.Points(), r.dealer.Points()), nil
	}
}

// announce writes a message followed by both hands
func (r *Round) announce(message string) {
	r.out.WriteLine(message)
	r.out.WriteLine("Dealer's cards are: " + r.dealer.String())
	r.out.WriteLine("Your cards are: " + r.player.String())
}

// draw moves the top card of the deck into hand
func (r *Round) draw(hand *Hand) (deck.Card, error) {
	card, err := r.deck.Deal()
	if err != nil {
		return deck.Card{}, err
	}
	hand.Add(card)
	return card, nil
}
