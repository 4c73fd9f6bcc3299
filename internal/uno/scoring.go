package uno

import (
	"sort"

	"uno-server/internal/game"
)

// HandScore totals the penalty value of a hand: number cards count their
// face, Skip, Reverse and Draw Two count 20, wilds count 50.
func HandScore(cards []game.Card) int {
	score := 0
	for _, c := range cards {
		switch c.Kind() {
		case game.Number:
			score += c.Face()
		case game.Skip, game.Reverse, game.DrawTwo:
			score += 20
		default:
			score += 50
		}
	}
	return score
}

// SeatResult is one seat's final standing.
type SeatResult struct {
	Seat      int  `json:"seat"`
	Winner    bool `json:"isWinner"`
	HandCount int  `json:"handCount"`
	Score     int  `json:"score"`
}

// Results computes the standings for every occupied seat, ordered by
// ascending penalty score. The winner holds nothing and sorts first; ties
// keep seat order.
func (g *Game) Results(winner int) []SeatResult {
	results := make([]SeatResult, 0, NumSeats)
	for seat := range NumSeats {
		if !g.Occupied[seat] {
			continue
		}
		results = append(results, SeatResult{
			Seat:      seat,
			Winner:    seat == winner,
			HandCount: g.Hands[seat].Count(),
			Score:     HandScore(g.Hands[seat].Cards),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}
