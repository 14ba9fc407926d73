package deck

import (
	"errors"
	"testing"

	"github.com/lox/blackjack-cli/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck(randutil.New(42))

	if deck.CardsRemaining() != 52 {
		t.Fatalf("Expected 52 cards, got %d", deck.CardsRemaining())
	}

	counts := make(map[Rank]int)
	total := 0
	for _, card := range deck.Cards() {
		counts[card.Rank]++
		total += int(card.Value())
	}

	if len(counts) != 13 {
		t.Errorf("Expected 13 distinct ranks, got %d", len(counts))
	}
	for _, rank := range Ranks {
		if counts[rank] != 4 {
			t.Errorf("Expected 4 of rank %s, got %d", rank, counts[rank])
		}
	}
	if total != 380 {
		t.Errorf("Expected total value 380, got %d", total)
	}
}

func TestDeckShuffleIsPermutation(t *testing.T) {
	deck := NewDeck(randutil.New(7))
	before := deck.Cards()

	deck.Shuffle()
	after := deck.Cards()

	if len(after) != len(before) {
		t.Fatalf("Shuffle changed deck size: %d -> %d", len(before), len(after))
	}

	counts := make(map[Rank]int)
	for _, card := range before {
		counts[card.Rank]++
	}
	for _, card := range after {
		counts[card.Rank]--
	}
	for rank, n := range counts {
		if n != 0 {
			t.Errorf("Shuffle changed count of %s by %d", rank, -n)
		}
	}

	if cardsEqual(before, after) {
		t.Error("Shuffle left the deck in its original order")
	}
}

func TestDeckShuffleDeterministic(t *testing.T) {
	deck1 := NewDeck(randutil.New(42))
	deck2 := NewDeck(randutil.New(42))
	deck1.Shuffle()
	deck2.Shuffle()

	if !cardsEqual(deck1.Cards(), deck2.Cards()) {
		t.Error("Decks with the same seed should shuffle identically")
	}
}

func TestDeckDealAll(t *testing.T) {
	deck := NewDeck(randutil.New(42))

	for i := 0; i < 52; i++ {
		if _, err := deck.Deal(); err != nil {
			t.Fatalf("Deal failed at card %d: %v", i+1, err)
		}
	}

	if !deck.IsEmpty() {
		t.Error("Deck should be empty after dealing all cards")
	}

	_, err := deck.Deal()
	if !errors.Is(err, ErrEmptyDeck) {
		t.Errorf("Expected ErrEmptyDeck, got %v", err)
	}
}

func TestDeckFromCardsDealsInOrder(t *testing.T) {
	deck := NewDeckFromCards(MustParseCards("K,5,A"))

	top, ok := deck.Peek()
	if !ok || top.Rank != King {
		t.Fatalf("Peek() = %v, %v; want K", top, ok)
	}

	for _, want := range []Rank{King, Five, Ace} {
		card, err := deck.Deal()
		if err != nil {
			t.Fatalf("Deal() error: %v", err)
		}
		if card.Rank != want {
			t.Errorf("Deal() = %s, want %s", card, want)
		}
	}

	if deck.CardsRemaining() != 0 {
		t.Errorf("Expected empty deck, %d cards remain", deck.CardsRemaining())
	}
}
