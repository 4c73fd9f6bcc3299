package game

import (
	"fmt"
	"math/rand"
)

// The deck is 112 fixed card identifiers, 0..111. Identifiers below 100
// carry a printed color in blocks of 25; 100..107 are Wild, 108..111 are
// Wild Draw Four.
const (
	DeckSize      = 112
	wildStart     = 100
	wildFourStart = 108
	colorBlock    = 25
)

type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	Black // wilds; matched via the chosen table color instead
)

var colorString = map[Color]string{
	Red:    "Red",
	Yellow: "Yellow",
	Green:  "Green",
	Blue:   "Blue",
	Black:  "Black",
}

func (c Color) String() string {
	return colorString[c]
}

// IsPlayable reports whether c is one of the four matchable table colors.
func (c Color) IsPlayable() bool {
	return c >= Red && c <= Blue
}

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var kindString = map[Kind]string{
	Number:       "Number",
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "DrawTwo",
	Wild:         "Wild",
	WildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	return kindString[k]
}

// Card is a deck identifier. Each color block of 25 holds one copy of the
// numbers 0-9 (raw 0-9), a second copy of 1-9 (raw 10-18), and two copies
// each of Skip (19-20), Reverse (21-22) and Draw Two (23-24).
type Card int

func (c Card) Valid() bool {
	return c >= 0 && c < DeckSize
}

func (c Card) IsWild() bool {
	return c >= wildStart
}

func (c Card) Color() Color {
	if c >= wildStart {
		return Black
	}
	return Color(c / colorBlock)
}

// Raw returns the rank index within a color block (0-24). The value is
// meaningless for wilds.
func (c Card) Raw() int {
	return int(c) % colorBlock
}

func (c Card) Kind() Kind {
	switch {
	case c >= wildFourStart:
		return WildDrawFour
	case c >= wildStart:
		return Wild
	}
	switch raw := c.Raw(); {
	case raw <= 18:
		return Number
	case raw <= 20:
		return Skip
	case raw <= 22:
		return Reverse
	default:
		return DrawTwo
	}
}

// Face returns the printed value of a number card (0-9), collapsing the
// second copy range. Non-number cards return -1.
func (c Card) Face() int {
	if c.Kind() != Number {
		return -1
	}
	raw := c.Raw()
	if raw >= 10 {
		return raw - 9
	}
	return raw
}

// Symbol values for the non-numeric ranks. Number cards use their face
// value 0-9 directly.
const (
	SymbolSkip    = 100
	SymbolReverse = 101
	SymbolDrawTwo = 102
)

// Symbol returns the canonical matching value of a card: the two physical
// copies of every rank compare equal. Wilds return their own identifier;
// they never participate in symbol matching.
func (c Card) Symbol() int {
	if c.IsWild() {
		return int(c)
	}
	switch c.Kind() {
	case Skip:
		return SymbolSkip
	case Reverse:
		return SymbolReverse
	case DrawTwo:
		return SymbolDrawTwo
	default:
		return c.Face()
	}
}

// SortKey orders cards within a color group for hand display: numbers by
// face value ahead of the action ranks. Wilds sort by identifier.
func (c Card) SortKey() int {
	if c.IsWild() {
		return int(c)
	}
	raw := c.Raw()
	if raw >= 10 && raw <= 18 {
		return raw - 9
	}
	return raw
}

func (c Card) String() string {
	switch c.Kind() {
	case Wild:
		return "Wild"
	case WildDrawFour:
		return "Wild Draw Four"
	case Number:
		return fmt.Sprintf("%s %d", c.Color(), c.Face())
	default:
		return fmt.Sprintf("%s %s", c.Color(), c.Kind())
	}
}

// Pile owns the draw deck and the discard pile. Cards are drawn from the
// deck's tail; the discard pile's last element is always the faced card.
type Pile struct {
	deck    []Card
	discard []Card
}

// NewPile builds the full 112-card deck in identifier order with an empty
// discard pile. Call Shuffle before dealing.
func NewPile() *Pile {
	deck := make([]Card, DeckSize)
	for i := range deck {
		deck[i] = Card(i)
	}
	return &Pile{deck: deck}
}

func (p *Pile) Shuffle() {
	rand.Shuffle(len(p.deck), func(i, j int) {
		p.deck[i], p.deck[j] = p.deck[j], p.deck[i]
	})
}

// Draw pops a card from the deck tail. When the deck is empty, the discard
// pile minus its faced card is reshuffled into the deck and the faced card
// stays behind as the singleton pile. With both empty there is no card to
// give and ok is false; with all 112 identifiers in circulation that state
// is unreachable.
func (p *Pile) Draw() (Card, bool) {
	if len(p.deck) == 0 {
		if len(p.discard) == 0 {
			return 0, false
		}
		top := p.discard[len(p.discard)-1]
		p.deck = p.discard[:len(p.discard)-1]
		p.discard = []Card{top}
		p.Shuffle()
		if len(p.deck) == 0 {
			return 0, false
		}
	}
	card := p.deck[len(p.deck)-1]
	p.deck = p.deck[:len(p.deck)-1]
	return card, true
}

// Discard places a card face up on the pile.
func (p *Pile) Discard(c Card) {
	p.discard = append(p.discard, c)
}

// Requeue puts a card back at the deck's front, behind every card still to
// be drawn. Used when the opening flip turns up a wild.
func (p *Pile) Requeue(c Card) {
	p.deck = append([]Card{c}, p.deck...)
}

// Top returns the faced discard card.
func (p *Pile) Top() (Card, bool) {
	if len(p.discard) == 0 {
		return 0, false
	}
	return p.discard[len(p.discard)-1], true
}

// BeneathTop returns the discard card under the faced one: the table state
// before the faced card was played.
func (p *Pile) BeneathTop() (Card, bool) {
	if len(p.discard) < 2 {
		return 0, false
	}
	return p.discard[len(p.discard)-2], true
}

func (p *Pile) DeckCount() int {
	return len(p.deck)
}

func (p *Pile) DiscardCount() int {
	return len(p.discard)
}

// Cards returns copies of the deck and discard sequences, deck in draw
// order. Used by snapshotting and the conservation tests.
func (p *Pile) Cards() (deck, discard []Card) {
	deck = make([]Card, len(p.deck))
	copy(deck, p.deck)
	discard = make([]Card, len(p.discard))
	copy(discard, p.discard)
	return deck, discard
}
