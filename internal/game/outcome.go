package game

// Outcome is the result of a single party's loop. Won means that party hit
// exactly 21, Lost means it bust and Unknown means the scores still have to be
// compared.
type Outcome int

const (
	Unknown Outcome = iota
	Won
	Lost
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Result is the final resolution of a round from the player's point of view
type Result int

const (
	// resultInvalid is returned alongside errors so a zero Result never reads as a win
	resultInvalid Result = iota
	PlayerBlackjack
	PlayerLoss
	DealerBlackjack
	PlayerWin
	Draw
)

// String returns a short identifier for logging
func (r Result) String() string {
	switch r {
	case PlayerBlackjack:
		return "player_blackjack"
	case PlayerLoss:
		return "player_loss"
	case DealerBlackjack:
		return "dealer_blackjack"
	case PlayerWin:
		return "player_win"
	case Draw:
		return "draw"
	default:
		return "invalid"
	}
}

// Message returns the announcement printed when the round ends with this result
func (r Result) Message() string {
	switch r {
	case PlayerBlackjack:
		return "Blackjack! You won!"
	case PlayerLoss:
		return "You lose."
	case DealerBlackjack:
		return "Blackjack! Computer won!"
	case PlayerWin:
		return "You won!"
	case Draw:
		return "That's a draw."
	default:
		return ""
	}
}

// Compare resolves a round where neither side hit 21 or bust
func Compare(player, dealer uint8) Result {
	switch {
	case player > dealer:
		return PlayerWin
	case dealer > player:
		return PlayerLoss
	default:
		return Draw
	}
}
