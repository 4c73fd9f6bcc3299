package server

import (
	"uno-server/internal/game"
	"uno-server/internal/uno"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

// PlayerActionRequest is the payload of a player_action message. CardID and
// Color only matter for card plays, WantToPlay only for playDrawnCard.
type PlayerActionRequest struct {
	Action     string     `json:"action"`
	CardID     game.Card  `json:"cardId"`
	Color      game.Color `json:"color"`
	WantToPlay bool       `json:"wantToPlay"`
}

type SeatAssignedResponse struct {
	Seat   int  `json:"seat"`
	IsHost bool `json:"isHost"`
}

type PlayerJoinedNotification struct {
	Seat int `json:"seat"`
}

type PlayerLeftNotification struct {
	Seat int `json:"seat"`
}

type RoomCountNotification struct {
	Count int `json:"count"`
}

type GameStartedNotification struct {
	TopCard  game.Card        `json:"topCard"`
	TopColor game.Color       `json:"topColor"`
	Turn     int              `json:"turn"`
	Players  []uno.SeatPublic `json:"players"`
}

// StateUpdate is the shared table view broadcast after every applied
// action, tagged with the seat that acted.
type StateUpdate struct {
	uno.TableState
	LastSeat int `json:"lastPlayer"`
}

// HandUpdate is private to one seat.
type HandUpdate struct {
	Cards []game.Card `json:"cards"`
}

// DrawOptionOffer goes only to a drawer whose drawn card is playable.
type DrawOptionOffer struct {
	CardID game.Card `json:"cardId"`
}

// ChallengeOffer goes only to the seat facing a Wild Draw Four.
type ChallengeOffer struct{}

type UnoShoutNotification struct {
	Seat int `json:"seat"`
}

type CatchNotification struct {
	TargetSeat  int `json:"targetSeat"`
	CatcherSeat int `json:"catcherSeat"`
}

type GameOverNotification struct {
	WinnerSeat int              `json:"winnerSeat"`
	Results    []uno.SeatResult `json:"results"`
}

type GameAbortedNotification struct {
	Seat    int    `json:"seat"`
	Message string `json:"message"`
}
