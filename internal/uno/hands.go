package uno

import (
	"slices"

	"uno-server/internal/game"
)

// Hand holds one seat's cards plus its UNO declaration flag. The flag only
// matters while the hand has exactly one card; every mutation that leaves a
// different size clears it.
type Hand struct {
	Cards      []game.Card
	HasSaidUno bool
}

func (h *Hand) Add(c game.Card) {
	h.Cards = append(h.Cards, c)
	h.resetUno()
}

// Remove deletes one copy of c and reports whether it was held.
func (h *Hand) Remove(c game.Card) bool {
	i := slices.Index(h.Cards, c)
	if i == -1 {
		return false
	}
	h.Cards = slices.Delete(h.Cards, i, i+1)
	h.resetUno()
	return true
}

func (h *Hand) Contains(c game.Card) bool {
	return slices.Contains(h.Cards, c)
}

func (h *Hand) Count() int {
	return len(h.Cards)
}

// Sort groups cards by color with wilds last, ordered by face value within
// each group.
func (h *Hand) Sort() {
	slices.SortFunc(h.Cards, func(a, b game.Card) int {
		if a.Color() != b.Color() {
			return int(a.Color() - b.Color())
		}
		return a.SortKey() - b.SortKey()
	})
}

func (h *Hand) resetUno() {
	if len(h.Cards) != 1 {
		h.HasSaidUno = false
	}
}
