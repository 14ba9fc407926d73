package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack-cli/internal/deck"
)

// NewTestRound creates a round over a stacked deck written in hand notation
// ("10,9,7,K"), driven by the scripted input lines. Cards are dealt dealer,
// player, dealer, player and then in order to whoever draws.
func NewTestRound(cards string, inputs ...string) (*Round, *Transcript) {
	transcript := &Transcript{}
	r := NewRound(nil, NewScriptedInput(inputs...), transcript,
		WithDeck(deck.NewDeckFromCards(deck.MustParseCards(cards))),
		WithLogger(quietLogger()))
	return r, transcript
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}
