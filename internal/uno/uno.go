package uno

import (
	"errors"

	"uno-server/internal/game"
)

const NumSeats = 4

// Status is the game-level state. It replaces the loose status-integer /
// boolean-flag combination with a single tagged value, so the table can
// never be both awaiting a challenge and awaiting a drawn-card decision.
type Status int

const (
	StatusPlaying Status = iota
	StatusAwaitingDrawDecision
	StatusAwaitingChallenge
)

var statusString = map[Status]string{
	StatusPlaying:              "playing",
	StatusAwaitingDrawDecision: "awaiting_draw_decision",
	StatusAwaitingChallenge:    "awaiting_challenge",
}

func (s Status) String() string {
	return statusString[s]
}

// Game is one table session: the pile, the four seat hands, and the turn
// state. It owns no I/O and expects its caller to serialize access; the
// room layer applies one action at a time.
type Game struct {
	Pile        *game.Pile
	Hands       [NumSeats]Hand
	Occupied    [NumSeats]bool
	TopCard     game.Card
	TopColor    game.Color
	Direction   int
	CurrentTurn int
	Status      Status
	DrawnCard   game.Card // pending offer, only meaningful in StatusAwaitingDrawDecision
	Over        bool
}

// NewGame builds a shuffled pile, deals 7 cards to every occupied seat and
// flips a non-wild opening card. At least two seats must be occupied; the
// first occupied seat leads.
func NewGame(occupied [NumSeats]bool) (*Game, error) {
	count := 0
	lead := -1
	for i, taken := range occupied {
		if taken {
			count++
			if lead == -1 {
				lead = i
			}
		}
	}
	if count < 2 {
		return nil, errors.New("NOT_ENOUGH_PLAYERS: need at least 2 seated players")
	}

	g := &Game{
		Pile:        game.NewPile(),
		Occupied:    occupied,
		Direction:   1,
		CurrentTurn: lead,
		Status:      StatusPlaying,
	}
	g.Pile.Shuffle()

	for range 7 {
		for seat := range NumSeats {
			if !occupied[seat] {
				continue
			}
			card, ok := g.Pile.Draw()
			if !ok {
				return nil, errors.New("DECK_EXHAUSTED: ran out of cards during the deal")
			}
			g.Hands[seat].Add(card)
		}
	}
	for seat := range NumSeats {
		g.Hands[seat].Sort()
	}

	// Flip the opening card, requeueing wilds until a colored card shows.
	for {
		card, ok := g.Pile.Draw()
		if !ok {
			return nil, errors.New("DECK_EXHAUSTED: no non-wild opening card")
		}
		if card.IsWild() {
			g.Pile.Requeue(card)
			continue
		}
		g.TopCard = card
		g.TopColor = card.Color()
		break
	}
	g.Pile.Discard(g.TopCard)

	return g, nil
}

// Advance moves the turn one step in the current direction, skipping
// unoccupied seats. Bounded to a full lap so an (unreachable) empty table
// cannot hang it.
func (g *Game) Advance() {
	for range NumSeats {
		g.CurrentTurn = ((g.CurrentTurn+g.Direction)%NumSeats + NumSeats) % NumSeats
		if g.Occupied[g.CurrentTurn] {
			return
		}
	}
}

// StepBack moves one step against the direction without skipping empty
// seats. Only the challenge resolution uses it, to recover the seat that
// played the Wild Draw Four.
func (g *Game) StepBack() {
	g.CurrentTurn = ((g.CurrentTurn-g.Direction)%NumSeats + NumSeats) % NumSeats
}

func (g *Game) FlipDirection() {
	g.Direction = -g.Direction
}

// drawInto draws up to n cards into a seat's hand. A short draw means both
// deck and discard ran dry, which the 112-card invariant rules out; the
// engine simply stops rather than crash.
func (g *Game) drawInto(seat, n int) {
	for range n {
		card, ok := g.Pile.Draw()
		if !ok {
			return
		}
		g.Hands[seat].Add(card)
	}
}
