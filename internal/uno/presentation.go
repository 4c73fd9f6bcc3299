package uno

import "uno-server/internal/game"

// SeatPublic is what every client may know about a seat.
type SeatPublic struct {
	Seat      int `json:"seat"`
	HandCount int `json:"handCount"`
}

// TableState is the shared view of the table, safe to broadcast.
type TableState struct {
	TopCard   game.Card    `json:"topCard"`
	TopColor  game.Color   `json:"topColor"`
	Turn      int          `json:"turn"`
	Direction int          `json:"direction"`
	Players   []SeatPublic `json:"players"`
}

// PublicState snapshots the table without any hand contents.
func (g *Game) PublicState() TableState {
	players := make([]SeatPublic, NumSeats)
	for seat := range NumSeats {
		players[seat] = SeatPublic{Seat: seat, HandCount: g.Hands[seat].Count()}
	}
	return TableState{
		TopCard:   g.TopCard,
		TopColor:  g.TopColor,
		Turn:      g.CurrentTurn,
		Direction: g.Direction,
		Players:   players,
	}
}

// HandOf copies a seat's cards so callers cannot reach into the hand.
func (g *Game) HandOf(seat int) []game.Card {
	if seat < 0 || seat >= NumSeats {
		return nil
	}
	out := make([]game.Card, len(g.Hands[seat].Cards))
	copy(out, g.Hands[seat].Cards)
	return out
}
