// Package game implements the blackjack round engine played against a fixed
// policy dealer.
//
// The main type is Round, which owns the deck and both hands for a single
// round: it shuffles, deals two cards each, runs the player's decision loop,
// runs the dealer's policy loop when the player has not already won or bust,
// and compares the final scores.
//
// # Basic Usage
//
//	rng := randutil.New(time.Now().UnixNano())
//	r := game.NewRound(rng, input, output)
//	result, err := r.Play()
//
// # Deterministic Testing
//
// Console interaction is abstracted behind the Input and Output interfaces so
// rounds can be driven by scripted input. A stacked deck deals its cards in
// the order given and is not shuffled:
//
//	d := deck.NewDeckFromCards(deck.MustParseCards("10,9,7,5,3"))
//	r := game.NewRound(nil, game.NewScriptedInput("n"), &game.Transcript{},
//	    game.WithDeck(d))
//
// # Scoring
//
// Hand.Points sums card values and, only when the sum exceeds 21, counts every
// Ace in the hand as 1 instead of 11 at once. A hand holding many Aces can still
// exceed 21 after that adjustment and is then bust.
package game
