package uno_test

import (
	"testing"

	"uno-server/internal/game"
	"uno-server/internal/uno"
)

func TestIsLegalPlay(t *testing.T) {
	tests := []struct {
		name      string
		candidate game.Card
		top       game.Card
		topColor  game.Color
		legal     bool
	}{
		{"same color number", 5, 8, game.Red, true},
		{"same face across colors", 30, 5, game.Red, true},
		{"duplicate copy matches primary", 39, 5, game.Red, true},
		{"primary matches duplicate copy", 30, 14, game.Red, true},
		{"skip on skip", 44, 19, game.Red, true},
		{"reverse on skip", 46, 19, game.Red, false},
		{"draw two on draw two", 48, 23, game.Red, true},
		{"color beats face mismatch", 3, 8, game.Red, true},
		{"no color no face", 30, 8, game.Red, false},
		{"wild always plays", 100, 8, game.Red, true},
		{"wild draw four always plays", 111, 19, game.Blue, true},
		{"declared color overrides card color", 27, 103, game.Yellow, true},
		{"declared color blocks others", 3, 103, game.Yellow, false},
		{"no symbol match against a wild", 19, 100, game.Yellow, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uno.IsLegalPlay(tt.candidate, tt.top, tt.topColor); got != tt.legal {
				t.Errorf("IsLegalPlay(%d, %d, %v) = %v, want %v", tt.candidate, tt.top, tt.topColor, got, tt.legal)
			}
		})
	}
}

func TestHasNormalPlay(t *testing.T) {
	tests := []struct {
		name       string
		hand       []game.Card
		priorTop   game.Card
		priorColor game.Color
		want       bool
	}{
		{"color match", []game.Card{3, 60}, 8, game.Red, true},
		{"rank match other color", []game.Card{33, 60}, 8, game.Red, true},
		{"wilds never count", []game.Card{100, 108}, 8, game.Red, false},
		{"nothing playable", []game.Card{30, 76}, 8, game.Red, false},
		{"wild prior has no rank", []game.Card{55}, 105, game.Black, false},
		{"empty discard history", []game.Card{77}, -1, game.Blue, true},
		{"empty discard history no color", []game.Card{52}, -1, game.Blue, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uno.HasNormalPlay(tt.hand, tt.priorTop, tt.priorColor); got != tt.want {
				t.Errorf("HasNormalPlay(%v, %d, %v) = %v, want %v", tt.hand, tt.priorTop, tt.priorColor, got, tt.want)
			}
		})
	}
}
