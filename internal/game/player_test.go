package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack-cli/internal/deck"
)

func TestPlayPlayer(t *testing.T) {
	t.Run("hits twice then stands", func(t *testing.T) {
		// dealer 10,7 / player 10,2 then 3 and 4 are drawn
		r, out := NewTestRound("10,10,7,2,3,4,9", "y", "y", "n")
		require.NoError(t, r.Deal())
		require.Equal(t, uint8(12), r.Player().Points())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Unknown, outcome)
		assert.Equal(t, 4, r.Player().Len())
		assert.Equal(t, "10,2,3,4", r.Player().String())
		assert.Equal(t, 1, r.Deck().CardsRemaining())
		assert.Equal(t, []string{
			"Do you want one more card: y/n",
			"Your card is 3",
			"Do you want one more card: y/n",
			"Your card is 4",
			"Do you want one more card: y/n",
		}, out.Lines)
	})

	t.Run("invalid choice re-prompts without drawing", func(t *testing.T) {
		r, out := NewTestRound("10,10,7,2,3", "x", "n")
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Unknown, outcome)
		assert.Equal(t, 2, r.Player().Len())
		assert.Equal(t, 1, r.Deck().CardsRemaining())
		assert.True(t, out.Contains("Wrong choice: y/n"))
	})

	t.Run("stops reading once the player stands", func(t *testing.T) {
		in := NewScriptedInput("x", "n", "y")
		out := &Transcript{}
		r := NewRound(nil, in, out,
			WithDeck(deck.NewDeckFromCards(deck.MustParseCards("10,10,7,2,3"))),
			WithLogger(quietLogger()))
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Unknown, outcome)
		assert.Equal(t, 1, in.Remaining())
		assert.Equal(t, []string{PromptMoreCards, InvalidChoiceMessage, PromptMoreCards}, out.Lines)
	})

	t.Run("input is trimmed and case folded", func(t *testing.T) {
		r, _ := NewTestRound("10,10,7,2,3", "  Y \n", " N")
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Unknown, outcome)
		assert.Equal(t, "10,2,3", r.Player().String())
	})

	t.Run("twenty one wins without prompting", func(t *testing.T) {
		r, out := NewTestRound("10,A,9,K")
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Won, outcome)
		assert.Empty(t, out.Lines)
	})

	t.Run("hitting to twenty one wins", func(t *testing.T) {
		r, _ := NewTestRound("10,10,9,5,6", "y")
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)
		assert.Equal(t, Won, outcome)
	})

	t.Run("bust loses", func(t *testing.T) {
		r, out := NewTestRound("9,10,8,6,K", "y")
		require.NoError(t, r.Deal())

		outcome, err := r.PlayPlayer()
		require.NoError(t, err)

		assert.Equal(t, Lost, outcome)
		assert.Equal(t, uint8(26), r.Player().Points())
		assert.Equal(t, "Your card is K", out.Lines[len(out.Lines)-1])
	})

	t.Run("end of input is fatal", func(t *testing.T) {
		r, _ := NewTestRound("10,10,7,6,3", "x")
		require.NoError(t, r.Deal())

		_, err := r.PlayPlayer()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEndOfInput))
		assert.Equal(t, 2, r.Player().Len())
	})

	t.Run("empty deck on hit is fatal", func(t *testing.T) {
		r, _ := NewTestRound("10,10,7,6", "y")
		require.NoError(t, r.Deal())

		_, err := r.PlayPlayer()
		require.Error(t, err)
		assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	})
}

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput("y", "n")
	assert.Equal(t, 2, in.Remaining())

	line, err := in.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "y", line)
	assert.Equal(t, 1, in.Remaining())

	_, err = in.ReadLine()
	require.NoError(t, err)

	_, err = in.ReadLine()
	assert.True(t, errors.Is(err, ErrEndOfInput))
	assert.Equal(t, 0, in.Remaining())
}
