package game

import (
	"fmt"
	"strings"
)

// Lines the player loop writes when asking for and rejecting a choice
const (
	PromptMoreCards      = "Do you want one more card: y/n"
	InvalidChoiceMessage = "Wrong choice: y/n"
)

// PlayPlayer runs the player's decision loop. Each pass checks the player's
// score first: 21 wins and anything above busts. Otherwise the player is asked
// whether to take another card; "y" draws, "n" stands and any other answer is
// rejected and asked again without touching the hand or the deck.
func (r *Round) PlayPlayer() (Outcome, error) {
	for {
		if outcome := r.player.Outcome(); outcome != Unknown {
			r.logger.Debug("Player loop finished",
				"outcome", outcome,
				"points", r.player.Points(),
				"hand", r.player.String())
			return outcome, nil
		}

		r.out.WriteLine(PromptMoreCards)
		line, err := r.in.ReadLine()
		if err != nil {
			return Unknown, fmt.Errorf("reading player choice: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			card, err := r.draw(r.player)
			if err != nil {
				return Unknown, fmt.Errorf("player draw: %w", err)
			}
			r.logger.Debug("Player hit", "card", card, "points", r.player.Points())
			r.out.WriteLine("Your card is " + card.String())
		case "n":
			r.logger.Debug("Player stands", "points", r.player.Points())
			return Unknown, nil
		default:
			r.logger.Debug("Invalid choice", "input", line)
			r.out.WriteLine(InvalidChoiceMessage)
		}
	}
}
