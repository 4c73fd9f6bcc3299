package uno

import "uno-server/internal/game"

// IsLegalPlay reports whether candidate may be placed on the faced card.
// Wilds always play; otherwise the candidate must match the active color
// or share a symbol with the faced card. Symbol matching collapses the
// duplicate copies, so the second Green 7 matches a Red 7 the same as the
// first copy does.
func IsLegalPlay(candidate, top game.Card, topColor game.Color) bool {
	if candidate.IsWild() {
		return true
	}
	if candidate.Color() == topColor {
		return true
	}
	// A wild on top has no symbol to match against; only the declared
	// color counts.
	if top.IsWild() {
		return false
	}
	return candidate.Symbol() == top.Symbol()
}

// HasNormalPlay reports whether any card in cards could have been played
// legally on the prior discard without resorting to a wild. It backs the
// Wild Draw Four challenge: a hit means the accused seat bluffed.
// A wild or absent priorTop carries no rank, so only the color can convict.
func HasNormalPlay(cards []game.Card, priorTop game.Card, priorColor game.Color) bool {
	priorRaw := -1
	if priorTop.Valid() && !priorTop.IsWild() {
		priorRaw = priorTop.Raw()
	}
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		if c.Color() == priorColor || c.Raw() == priorRaw {
			return true
		}
	}
	return false
}
