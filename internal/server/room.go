package server

import (
	"errors"
	"sync"

	"uno-server/internal/game"
	"uno-server/internal/uno"
)

var (
	ErrRoomFull       = errors.New("ROOM_FULL: all four seats are taken")
	ErrGameInProgress = errors.New("GAME_IN_PROGRESS: cannot join or start while a game is running")
	ErrNotSeated      = errors.New("NOT_SEATED: connection holds no seat")
	ErrNotHost        = errors.New("NOT_HOST: only seat 0 may start the game")
	ErrNoGame         = errors.New("NO_GAME: no game is running")
)

// Room is the single four-seat table a server process hosts. All game and
// seating mutations run under one mutex, so actions apply strictly one at a
// time and the engine below needs no locking of its own.
type Room struct {
	mu    sync.Mutex
	seats [uno.NumSeats]string // seat → connectionID, "" when empty
	game  *uno.Game
}

func NewRoom() *Room {
	return &Room{}
}

// Join seats a connection in the lowest empty seat. Seat 0 is the host.
func (r *Room) Join(connectionID string) (seat int, isHost bool, count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.playingLocked() {
		return -1, false, r.countLocked(), ErrGameInProgress
	}
	for i := range r.seats {
		if r.seats[i] == "" {
			r.seats[i] = connectionID
			return i, i == 0, r.countLocked(), nil
		}
	}
	return -1, false, r.countLocked(), ErrRoomFull
}

// Leave frees the connection's seat. When a game is running the table is
// wiped: there is no reconnection, so the game cannot continue.
func (r *Room) Leave(connectionID string) (seat int, aborted bool, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat = r.seatOfLocked(connectionID)
	if seat == -1 {
		return -1, false, r.countLocked()
	}
	r.seats[seat] = ""
	if r.playingLocked() {
		r.game = nil
		aborted = true
	}
	return seat, aborted, r.countLocked()
}

// SeatOf returns the connection's seat, or -1.
func (r *Room) SeatOf(connectionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seatOfLocked(connectionID)
}

// Count returns the number of occupied seats.
func (r *Room) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countLocked()
}

// Playing reports whether a game is running.
func (r *Room) Playing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playingLocked()
}

// Start deals a new game. Only the host may start, and only between games.
func (r *Room) Start(connectionID string) (uno.TableState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seatOfLocked(connectionID) != 0 {
		return uno.TableState{}, ErrNotHost
	}
	if r.playingLocked() {
		return uno.TableState{}, ErrGameInProgress
	}

	var occupied [uno.NumSeats]bool
	for i := range r.seats {
		occupied[i] = r.seats[i] != ""
	}
	g, err := uno.NewGame(occupied)
	if err != nil {
		return uno.TableState{}, err
	}
	r.game = g
	return g.PublicState(), nil
}

// Apply runs one player action through the engine and snapshots the table.
func (r *Room) Apply(connectionID string, req PlayerActionRequest) (uno.Effect, uno.TableState, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return uno.Effect{}, uno.TableState{}, -1, ErrNoGame
	}
	seat := r.seatOfLocked(connectionID)
	if seat == -1 {
		return uno.Effect{}, uno.TableState{}, -1, ErrNotSeated
	}

	eff, err := r.game.Apply(uno.Action{
		Seat:       seat,
		Type:       uno.ActionType(req.Action),
		Card:       req.CardID,
		Color:      req.Color,
		WantToPlay: req.WantToPlay,
	})
	return eff, r.game.PublicState(), seat, err
}

// CatchMissedUno runs an out-of-turn missed-UNO accusation.
func (r *Room) CatchMissedUno(connectionID string) (caught, catcher int, eff uno.Effect, state uno.TableState, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return -1, -1, uno.Effect{}, uno.TableState{}, ErrNoGame
	}
	catcher = r.seatOfLocked(connectionID)
	if catcher == -1 {
		return -1, -1, uno.Effect{}, uno.TableState{}, ErrNotSeated
	}

	caught, eff, err = r.game.CatchMissedUno(catcher)
	return caught, catcher, eff, r.game.PublicState(), err
}

// HandOf copies one seat's cards, or nil when no game is running.
func (r *Room) HandOf(seat int) []game.Card {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return nil
	}
	return r.game.HandOf(seat)
}

// HandFor copies the connection's own cards.
func (r *Room) HandFor(connectionID string) ([]game.Card, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return nil, ErrNoGame
	}
	seat := r.seatOfLocked(connectionID)
	if seat == -1 {
		return nil, ErrNotSeated
	}
	return r.game.HandOf(seat), nil
}

// ConnectionAt returns the connection seated at seat, or "".
func (r *Room) ConnectionAt(seat int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seat < 0 || seat >= uno.NumSeats {
		return ""
	}
	return r.seats[seat]
}

// SeatedConnections returns every seated connection ID.
func (r *Room) SeatedConnections() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, uno.NumSeats)
	for _, id := range r.seats {
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}

// State snapshots the table, or reports that no game is running.
func (r *Room) State() (uno.TableState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.game == nil {
		return uno.TableState{}, false
	}
	return r.game.PublicState(), true
}

func (r *Room) seatOfLocked(connectionID string) int {
	for i, id := range r.seats {
		if id != "" && id == connectionID {
			return i
		}
	}
	return -1
}

func (r *Room) countLocked() int {
	count := 0
	for _, id := range r.seats {
		if id != "" {
			count++
		}
	}
	return count
}

func (r *Room) playingLocked() bool {
	return r.game != nil && !r.game.Over
}
