package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// BlackjackPoints is the score that wins a round outright
const BlackjackPoints = 21

// Hand is the ordered set of cards held by the dealer or the player.
// Cards are only ever appended.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{cards: make([]deck.Card, 0, len(cards)+4)}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a drawn card to the hand
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns a copy of the cards in the hand, in the order they were dealt
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Points returns the blackjack score of the hand. When the raw sum exceeds 21
// every Ace is demoted to 1 in one step, not one Ace at a time.
func (h *Hand) Points() uint8 {
	total := 0
	aces := 0
	for _, card := range h.cards {
		total += int(card.Value())
		if card.IsAce() {
			aces++
		}
	}

	if total > BlackjackPoints {
		total -= aces * 10
	}

	return uint8(total)
}

// Outcome classifies the hand's current score
func (h *Hand) Outcome() Outcome {
	points := h.Points()
	switch {
	case points == BlackjackPoints:
		return Won
	case points > BlackjackPoints:
		return Lost
	default:
		return Unknown
	}
}

// String renders the rank labels joined by commas, e.g. "A,10"
func (h *Hand) String() string {
	labels := make([]string, len(h.cards))
	for i, card := range h.cards {
		labels[i] = card.String()
	}
	return strings.Join(labels, ",")
}
