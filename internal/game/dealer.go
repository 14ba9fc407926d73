package game

import "fmt"

// DealerStandPoints is the score at which the dealer stops drawing
const DealerStandPoints = 17

// PlayDealer runs the dealer's fixed policy: draw while under 17, then stop.
// The resulting score decides the outcome: 21 wins, above 21 busts and 17-20
// is left for comparison.
func (r *Round) PlayDealer() (Outcome, error) {
	for r.dealer.Points() < DealerStandPoints {
		card, err := r.draw(r.dealer)
		if err != nil {
			return Unknown, fmt.Errorf("dealer draw: %w", err)
		}
		r.logger.Debug("Dealer hit", "card", card, "points", r.dealer.Points())
		r.out.WriteLine("Dealer's card is " + card.String())
	}

	outcome := r.dealer.Outcome()
	r.logger.Debug("Dealer loop finished",
		"outcome", outcome,
		"points", r.dealer.Points(),
		"hand", r.dealer.String())
	return outcome, nil
}
