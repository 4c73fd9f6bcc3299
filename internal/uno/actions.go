package uno

import (
	"errors"

	"uno-server/internal/game"
)

var (
	ErrGameOver           = errors.New("GAME_OVER: the game has ended")
	ErrOutOfTurn          = errors.New("OUT_OF_TURN: not this seat's turn")
	ErrAwaitingChallenge  = errors.New("AWAITING_CHALLENGE: only catch or notCatch is allowed")
	ErrAwaitingDecision   = errors.New("AWAITING_DECISION: resolve the drawn card first")
	ErrCardNotHeld        = errors.New("CARD_NOT_HELD: card is not in hand")
	ErrWrongCard          = errors.New("WRONG_CARD: card does not match the pending drawn card")
	ErrActionCardMismatch = errors.New("ACTION_CARD_MISMATCH: card kind does not match the action")
	ErrBadColor           = errors.New("BAD_COLOR: wild plays must declare red, yellow, green or blue")
	ErrUnknownAction      = errors.New("UNKNOWN_ACTION: unrecognized action type")
	ErrNobodyCaught       = errors.New("NOBODY_CAUGHT: no seat is missing an UNO call")
)

// Action is one decoded player intent.
type Action struct {
	Seat       int
	Type       ActionType
	Card       game.Card
	Color      game.Color
	WantToPlay bool
}

// Effect tells the caller what an applied action changed, so the room layer
// knows which hands to re-push and which offers to deliver.
type Effect struct {
	HandsChanged   [NumSeats]bool
	OfferDrawn     bool      // send the draw play/keep choice to the actor
	DrawnCard      game.Card // card behind OfferDrawn
	OfferChallenge bool      // send the challenge choice to the current seat
	UnoShout       bool      // actor declared UNO; no table state change
	StateChanged   bool
	GameOver       bool
	WinnerSeat     int
	Results        []SeatResult
}

// Apply runs one action against the game. Validation is layered: ended
// game, turn ownership, status gating, then per-action checks. A non-nil
// error leaves the game untouched.
func (g *Game) Apply(a Action) (Effect, error) {
	var eff Effect

	if g.Over {
		return eff, ErrGameOver
	}
	if a.Seat != g.CurrentTurn {
		return eff, ErrOutOfTurn
	}
	switch g.Status {
	case StatusAwaitingChallenge:
		if a.Type != ActionCatch && a.Type != ActionNotCatch {
			return eff, ErrAwaitingChallenge
		}
	case StatusAwaitingDrawDecision:
		if a.Type != ActionPlayDrawnCard && a.Type != ActionKeepCard && a.Type != ActionSayUno {
			return eff, ErrAwaitingDecision
		}
	}

	if a.Type.IsCardAction() || a.Type == ActionPlayDrawnCard {
		if !g.Hands[a.Seat].Contains(a.Card) {
			return eff, ErrCardNotHeld
		}
	}

	if a.Type == ActionSayUno {
		g.Hands[a.Seat].HasSaidUno = true
		eff.UnoShout = true
		return eff, nil
	}

	switch a.Type {
	case ActionDraw:
		g.Status = StatusPlaying
		card, ok := g.Pile.Draw()
		if !ok {
			break
		}
		g.Hands[a.Seat].Add(card)
		g.Hands[a.Seat].Sort()
		eff.HandsChanged[a.Seat] = true
		if IsLegalPlay(card, g.TopCard, g.TopColor) {
			g.Status = StatusAwaitingDrawDecision
			g.DrawnCard = card
			eff.OfferDrawn = true
			eff.DrawnCard = card
			eff.StateChanged = true
			return eff, nil
		}

	case ActionPlayDrawnCard:
		if a.Card != g.DrawnCard {
			return eff, ErrWrongCard
		}
		if a.Card.IsWild() && !a.Color.IsPlayable() {
			return eff, ErrBadColor
		}
		if a.WantToPlay {
			// The drawn card is placed as-is, with no skip, reverse, draw
			// or challenge effect. Only a direct play from the hand fires
			// those.
			color := a.Card.Color()
			if a.Card.IsWild() {
				color = a.Color
			}
			g.placeCard(a.Seat, a.Card, color)
			eff.HandsChanged[a.Seat] = true
		}
		g.Status = StatusPlaying
		g.DrawnCard = 0

	case ActionKeepCard:
		g.Status = StatusPlaying
		g.DrawnCard = 0

	case ActionNumber:
		if a.Card.Kind() != game.Number {
			return eff, ErrActionCardMismatch
		}
		g.placeCard(a.Seat, a.Card, a.Card.Color())
		eff.HandsChanged[a.Seat] = true

	case ActionReverse:
		if a.Card.Kind() != game.Reverse {
			return eff, ErrActionCardMismatch
		}
		g.placeCard(a.Seat, a.Card, a.Card.Color())
		g.FlipDirection()
		eff.HandsChanged[a.Seat] = true

	case ActionSkip:
		if a.Card.Kind() != game.Skip {
			return eff, ErrActionCardMismatch
		}
		g.placeCard(a.Seat, a.Card, a.Card.Color())
		g.Advance()
		eff.HandsChanged[a.Seat] = true

	case ActionDrawTwo:
		if a.Card.Kind() != game.DrawTwo {
			return eff, ErrActionCardMismatch
		}
		g.placeCard(a.Seat, a.Card, a.Card.Color())
		eff.HandsChanged[a.Seat] = true
		g.Advance()
		victim := g.CurrentTurn
		g.drawInto(victim, 2)
		g.Hands[victim].Sort()
		eff.HandsChanged[victim] = true

	case ActionWild:
		if a.Card.Kind() != game.Wild {
			return eff, ErrActionCardMismatch
		}
		if !a.Color.IsPlayable() {
			return eff, ErrBadColor
		}
		g.placeCard(a.Seat, a.Card, a.Color)
		eff.HandsChanged[a.Seat] = true

	case ActionWildDrawFour:
		if a.Card.Kind() != game.WildDrawFour {
			return eff, ErrActionCardMismatch
		}
		if !a.Color.IsPlayable() {
			return eff, ErrBadColor
		}
		g.placeCard(a.Seat, a.Card, a.Color)
		eff.HandsChanged[a.Seat] = true
		if g.Hands[a.Seat].Count() == 0 {
			g.finish(a.Seat, &eff)
			return eff, nil
		}
		g.Advance()
		g.Status = StatusAwaitingChallenge
		eff.OfferChallenge = true
		eff.StateChanged = true
		return eff, nil

	case ActionNotCatch:
		victim := g.CurrentTurn
		g.drawInto(victim, 4)
		g.Hands[victim].Sort()
		eff.HandsChanged[victim] = true
		g.Status = StatusPlaying

	case ActionCatch:
		g.resolveChallenge(&eff)
		g.Status = StatusPlaying

	default:
		return eff, ErrUnknownAction
	}

	if g.Hands[a.Seat].Count() == 0 {
		g.finish(a.Seat, &eff)
		return eff, nil
	}

	g.Advance()
	eff.StateChanged = true
	return eff, nil
}

// placeCard moves a held card to the discard and updates the table.
// Apply checks membership before calling; a miss leaves the table untouched.
func (g *Game) placeCard(seat int, c game.Card, color game.Color) {
	if !g.Hands[seat].Remove(c) {
		return
	}
	g.Pile.Discard(c)
	g.TopCard = c
	g.TopColor = color
}

// resolveChallenge handles a catch against the Wild Draw Four just played.
// The turn steps back to the accused seat against the direction, without
// skipping, mirroring how it advanced. The accused is guilty when the
// discard beneath the wild left them a normal play.
func (g *Game) resolveChallenge(eff *Effect) {
	g.StepBack()
	accused := g.CurrentTurn

	priorColor := g.TopColor
	priorTop := game.Card(-1)
	if beneath, ok := g.Pile.BeneathTop(); ok {
		priorTop = beneath
		priorColor = beneath.Color()
	}

	if HasNormalPlay(g.Hands[accused].Cards, priorTop, priorColor) {
		// Caught bluffing: the accused eats the four cards and the turn
		// stays with the challenger via the normal advance.
		g.drawInto(accused, 4)
		g.Hands[accused].Sort()
		eff.HandsChanged[accused] = true
		return
	}

	// The wild was honest. The challenger takes six instead of four and
	// still loses the turn.
	g.Advance()
	challenger := g.CurrentTurn
	g.drawInto(challenger, 6)
	g.Hands[challenger].Sort()
	eff.HandsChanged[challenger] = true
}

// CatchMissedUno scans the table for the first seat sitting on a single
// card without having declared UNO, excluding the catcher. The offender
// draws two penalty cards and has its flag reset.
func (g *Game) CatchMissedUno(catcher int) (int, Effect, error) {
	var eff Effect
	if g.Over {
		return -1, eff, ErrGameOver
	}
	for seat := range NumSeats {
		if !g.Occupied[seat] || seat == catcher {
			continue
		}
		h := &g.Hands[seat]
		if h.Count() == 1 && !h.HasSaidUno {
			g.drawInto(seat, 2)
			h.Sort()
			h.HasSaidUno = false
			eff.HandsChanged[seat] = true
			eff.StateChanged = true
			return seat, eff, nil
		}
	}
	return -1, eff, ErrNobodyCaught
}

// finish ends the game with the given winner and computes the standings.
func (g *Game) finish(winner int, eff *Effect) {
	g.Over = true
	eff.GameOver = true
	eff.WinnerSeat = winner
	eff.Results = g.Results(winner)
	eff.StateChanged = true
}
