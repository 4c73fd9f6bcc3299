package uno_test

import (
	"errors"
	"testing"

	"uno-server/internal/game"
	"uno-server/internal/uno"
)

// playWildDrawFour sets up a table where seat 0 plays a Wild Draw Four on a
// Red 3 with accusedLeftover still in hand, leaving seat 1 holding the
// challenge choice.
func playWildDrawFour(t *testing.T, accusedLeftover game.Card) *uno.Game {
	t.Helper()
	g := scripted([4][]game.Card{{108, accusedLeftover}, {7, 8}, {9}, {10}}, 3, game.Red, 0)

	eff, err := g.Apply(uno.Action{Seat: 0, Type: uno.ActionWildDrawFour, Card: 108, Color: game.Blue})
	if err != nil {
		t.Fatalf("wildDrawFour: %v", err)
	}
	if !eff.OfferChallenge {
		t.Fatal("no challenge offer after a wild draw four")
	}
	if g.Status != uno.StatusAwaitingChallenge {
		t.Fatalf("status %v, awaiting challenge expected", g.Status)
	}
	if g.CurrentTurn != 1 {
		t.Fatalf("turn at seat %d, the victim at seat 1 expected", g.CurrentTurn)
	}
	return g
}

func TestChallengeOnlyAcceptsCatchActions(t *testing.T) {
	g := playWildDrawFour(t, 5)

	if _, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionNumber, Card: 7}); !errors.Is(err, uno.ErrAwaitingChallenge) {
		t.Errorf("Apply returned %v, want ErrAwaitingChallenge", err)
	}
}

func TestDeclineChallenge(t *testing.T) {
	g := playWildDrawFour(t, 5)

	if _, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionNotCatch}); err != nil {
		t.Fatalf("notCatch: %v", err)
	}
	if g.Hands[1].Count() != 6 {
		t.Errorf("victim holds %d cards, 6 expected", g.Hands[1].Count())
	}
	if g.CurrentTurn != 2 {
		t.Errorf("turn at seat %d, seat 2 expected", g.CurrentTurn)
	}
	if g.Status != uno.StatusPlaying {
		t.Errorf("status %v, playing expected", g.Status)
	}
}

func TestSuccessfulChallenge(t *testing.T) {
	// Seat 0 kept a Red 5, a legal color play on the Red 3 beneath the
	// wild, so the wild was a bluff.
	g := playWildDrawFour(t, 5)

	eff, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionCatch})
	if err != nil {
		t.Fatalf("catch: %v", err)
	}
	if g.Hands[0].Count() != 5 {
		t.Errorf("accused holds %d cards, 5 expected", g.Hands[0].Count())
	}
	if g.Hands[1].Count() != 2 {
		t.Errorf("challenger holds %d cards, 2 expected", g.Hands[1].Count())
	}
	if g.CurrentTurn != 1 {
		t.Errorf("turn at seat %d, back with the challenger at seat 1 expected", g.CurrentTurn)
	}
	if !eff.HandsChanged[0] {
		t.Errorf("hand change flags %v, seat 0 expected", eff.HandsChanged)
	}
}

func TestFailedChallenge(t *testing.T) {
	// Seat 0 kept only a Green card that matched neither color nor rank,
	// so the wild was honest and the challenger pays six.
	g := playWildDrawFour(t, 60)

	eff, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionCatch})
	if err != nil {
		t.Fatalf("catch: %v", err)
	}
	if g.Hands[0].Count() != 1 {
		t.Errorf("accused holds %d cards, 1 expected", g.Hands[0].Count())
	}
	if g.Hands[1].Count() != 8 {
		t.Errorf("challenger holds %d cards, 8 expected", g.Hands[1].Count())
	}
	if g.CurrentTurn != 2 {
		t.Errorf("turn at seat %d, seat 2 expected after the challenger is skipped", g.CurrentTurn)
	}
	if !eff.HandsChanged[1] {
		t.Errorf("hand change flags %v, seat 1 expected", eff.HandsChanged)
	}
}

func TestRankMatchConvictsAcrossColors(t *testing.T) {
	// A Yellow 3 shares the rank of the Red 3 beneath the wild, which is
	// enough to convict.
	g := playWildDrawFour(t, 28)

	if _, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionCatch}); err != nil {
		t.Fatalf("catch: %v", err)
	}
	if g.Hands[0].Count() != 5 {
		t.Errorf("accused holds %d cards, 5 expected", g.Hands[0].Count())
	}
	if g.CurrentTurn != 1 {
		t.Errorf("turn at seat %d, seat 1 expected", g.CurrentTurn)
	}
}

func TestWildBeneathCarriesNoRank(t *testing.T) {
	// The card beneath the played wild is itself a wild. Wild 105 and the
	// Green 5 share an identifier residue, but a wild has no rank to
	// match, so the leftover cannot convict.
	g := scripted([4][]game.Card{{108, 55}, {7, 8}, {9}, {10}}, 105, game.Red, 0)

	if _, err := g.Apply(uno.Action{Seat: 0, Type: uno.ActionWildDrawFour, Card: 108, Color: game.Blue}); err != nil {
		t.Fatalf("wildDrawFour: %v", err)
	}
	if _, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionCatch}); err != nil {
		t.Fatalf("catch: %v", err)
	}
	if g.Hands[0].Count() != 1 {
		t.Errorf("accused holds %d cards, 1 expected", g.Hands[0].Count())
	}
	if g.Hands[1].Count() != 8 {
		t.Errorf("challenger holds %d cards, 8 expected", g.Hands[1].Count())
	}
	if g.CurrentTurn != 2 {
		t.Errorf("turn at seat %d, seat 2 expected after the challenger is skipped", g.CurrentTurn)
	}
}

func TestChallengeWithBareDiscardUsesActiveColor(t *testing.T) {
	// Only the played wild sits on the discard, so the lookup falls back
	// to the active color. The accused kept a Blue card matching the
	// declared Blue, which convicts.
	g := &uno.Game{
		Pile:      game.NewPile(),
		Occupied:  [4]bool{true, true, true, true},
		Direction: 1,
		TopCard:   3,
		TopColor:  game.Red,
		Status:    uno.StatusPlaying,
	}
	g.Hands[0].Cards = []game.Card{108, 80}
	g.Hands[1].Cards = []game.Card{7, 8}
	g.Hands[2].Cards = []game.Card{9}
	g.Hands[3].Cards = []game.Card{10}

	if _, err := g.Apply(uno.Action{Seat: 0, Type: uno.ActionWildDrawFour, Card: 108, Color: game.Blue}); err != nil {
		t.Fatalf("wildDrawFour: %v", err)
	}
	if _, err := g.Apply(uno.Action{Seat: 1, Type: uno.ActionCatch}); err != nil {
		t.Fatalf("catch: %v", err)
	}
	if g.Hands[0].Count() != 5 {
		t.Errorf("accused holds %d cards, 5 expected", g.Hands[0].Count())
	}
	if g.Hands[1].Count() != 2 {
		t.Errorf("challenger holds %d cards, 2 expected", g.Hands[1].Count())
	}
	if g.CurrentTurn != 1 {
		t.Errorf("turn at seat %d, back with the challenger at seat 1 expected", g.CurrentTurn)
	}
}

func TestWildDrawFourOnLastCardWinsWithoutChallenge(t *testing.T) {
	g := scripted([4][]game.Card{{108}, {7, 8}, {9}, {10}}, 3, game.Red, 0)

	eff, err := g.Apply(uno.Action{Seat: 0, Type: uno.ActionWildDrawFour, Card: 108, Color: game.Blue})
	if err != nil {
		t.Fatalf("wildDrawFour: %v", err)
	}
	if !eff.GameOver || eff.OfferChallenge {
		t.Errorf("effect %+v, want a game over with no challenge", eff)
	}
	if eff.WinnerSeat != 0 {
		t.Errorf("winner seat %d, 0 expected", eff.WinnerSeat)
	}
}
