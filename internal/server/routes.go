package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"uno-server/internal/uno"
)

func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/websocket", s.websocketHandler)

	return s.corsMiddleware(mux)
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-CSRF-Token")
		w.Header().Set("Access-Control-Allow-Credentials", "false")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "up"}
	if s.db != nil {
		health = s.db.Health()
	}

	resp, err := json.Marshal(health)
	if err != nil {
		http.Error(w, "Failed to marshal health check response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	socket, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		http.Error(w, "Failed to open websocket", http.StatusInternalServerError)
		return
	}
	defer socket.Close(websocket.StatusGoingAway, "Server closing")

	ctx := r.Context()

	connectionID := uuid.New().String()
	log.Printf("New connection: %s", connectionID)
	s.connectionManager.AddConnection(connectionID, socket)
	defer s.closeConnection(connectionID)

	for {
		msgType, data, err := socket.Read(ctx)
		if err != nil {
			log.Printf("Connection %s read error: %v", connectionID, err)
			return
		}

		if msgType != websocket.MessageText {
			log.Printf("Non-text input from %s", connectionID)
			continue
		}

		s.health.UpdateActivity(connectionID)

		if !s.rateLimiter.Allow(connectionID) {
			log.Printf("Rate limit exceeded for %s", connectionID)
			s.sendError(socket, ctx, "RATE_LIMITED: Too many messages, slow down")
			continue
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("Invalid JSON from %s: %v", connectionID, err)
			s.sendError(socket, ctx, "Invalid JSON")
			continue
		}

		if err := ValidateMessageType(msg.Type); err != nil {
			log.Printf("Unknown message type '%s' from %s", msg.Type, connectionID)
			s.sendError(socket, ctx, err.Error())
			continue
		}

		log.Printf("Message Type '%s' from %s", msg.Type, connectionID)

		switch msg.Type {
		case "ping":
			s.handlePing(socket, ctx, connectionID)

		case "join_game":
			s.handleJoinGame(socket, ctx, connectionID)

		case "request_start":
			s.handleRequestStart(socket, ctx, connectionID)

		case "request_hand":
			s.handleRequestHand(socket, ctx, connectionID)

		case "player_action":
			s.handlePlayerAction(socket, ctx, connectionID, msg.Payload)

		case "catch_missed_uno":
			s.handleCatchMissedUno(socket, ctx, connectionID)
		}
	}
}

// closeConnection tears down everything a socket owned. A seat freed
// mid-game takes the whole game with it; the remaining players get told.
func (s *Server) closeConnection(connectionID string) {
	s.connectionManager.RemoveConnection(connectionID)
	s.rateLimiter.RemoveConnection(connectionID)
	s.health.RemoveConnection(connectionID)
	log.Printf("Connection closed: %s", connectionID)

	seat, aborted, count := s.room.Leave(connectionID)
	if seat == -1 {
		return
	}

	log.Printf("Seat %d left the room", seat)
	s.broadcastToRoom("player_left", PlayerLeftNotification{Seat: seat})

	if aborted {
		log.Printf("Game aborted: seat %d disconnected mid-game", seat)
		s.broadcastToRoom("game_aborted", GameAbortedNotification{
			Seat:    seat,
			Message: fmt.Sprintf("Seat %d disconnected. Game aborted.", seat),
		})
	}

	s.broadcastToRoom("room_count", RoomCountNotification{Count: count})
}

func (s *Server) handlePing(socket *websocket.Conn, ctx context.Context, connectionID string) {
	response := ServerMessage{
		Type:    "pong",
		Payload: struct{}{},
	}
	if err := s.sendMessage(socket, ctx, response); err != nil {
		log.Printf("Failed to send pong to %s: %v", connectionID, err)
	}
}

func (s *Server) handleJoinGame(socket *websocket.Conn, ctx context.Context, connectionID string) {
	seat, isHost, count, err := s.room.Join(connectionID)
	if err != nil {
		s.sendError(socket, ctx, err.Error())
		return
	}

	log.Printf("Connection %s seated at %d", connectionID, seat)

	response := ServerMessage{
		Type: "seat_assigned",
		Payload: SeatAssignedResponse{
			Seat:   seat,
			IsHost: isHost,
		},
	}
	if err := s.sendMessage(socket, ctx, response); err != nil {
		log.Printf("Failed to send seat_assigned: %v", err)
		return
	}

	s.broadcastToRoom("player_joined", PlayerJoinedNotification{Seat: seat})
	s.broadcastToRoom("room_count", RoomCountNotification{Count: count})
}

func (s *Server) handleRequestStart(socket *websocket.Conn, ctx context.Context, connectionID string) {
	state, err := s.room.Start(connectionID)
	if err != nil {
		s.sendError(socket, ctx, err.Error())
		return
	}

	log.Printf("Game started, seat %d leads", state.Turn)

	s.broadcastToRoom("game_started", GameStartedNotification{
		TopCard:  state.TopCard,
		TopColor: state.TopColor,
		Turn:     state.Turn,
		Players:  state.Players,
	})

	// Every seat gets its dealt hand privately.
	for seat := range uno.NumSeats {
		s.sendHandToSeat(seat)
	}
}

func (s *Server) handleRequestHand(socket *websocket.Conn, ctx context.Context, connectionID string) {
	cards, err := s.room.HandFor(connectionID)
	if err != nil {
		s.sendError(socket, ctx, err.Error())
		return
	}

	response := ServerMessage{
		Type:    "hand_update",
		Payload: HandUpdate{Cards: cards},
	}
	if err := s.sendMessage(socket, ctx, response); err != nil {
		log.Printf("Failed to send hand_update: %v", err)
	}
}

func (s *Server) handlePlayerAction(socket *websocket.Conn, ctx context.Context, connectionID string, payload json.RawMessage) {
	var req PlayerActionRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		s.sendError(socket, ctx, "INVALID_PAYLOAD: Invalid player_action payload")
		return
	}

	eff, state, seat, err := s.room.Apply(connectionID, req)
	if err != nil {
		// A rejected action gets the error plus a forced hand resync, so a
		// client that tried to play a phantom card snaps back in line.
		s.sendError(socket, ctx, err.Error())
		if seat != -1 {
			s.sendHandToSeat(seat)
		}
		return
	}

	if eff.UnoShout {
		s.broadcastToRoom("player_shouted_uno", UnoShoutNotification{Seat: seat})
		return
	}

	for changed := range uno.NumSeats {
		if eff.HandsChanged[changed] {
			s.sendHandToSeat(changed)
		}
	}

	if eff.GameOver {
		s.broadcastToRoom("game_over", GameOverNotification{
			WinnerSeat: eff.WinnerSeat,
			Results:    eff.Results,
		})
		s.recordMatch(eff.WinnerSeat, eff.Results)
		return
	}

	s.broadcastToRoom("state_update", StateUpdate{
		TableState: state,
		LastSeat:   seat,
	})

	if eff.OfferDrawn {
		s.sendToSeat(seat, "draw_option", DrawOptionOffer{CardID: eff.DrawnCard})
	}
	if eff.OfferChallenge {
		s.sendToSeat(state.Turn, "challenge_option", ChallengeOffer{})
	}
}

func (s *Server) handleCatchMissedUno(socket *websocket.Conn, ctx context.Context, connectionID string) {
	caught, catcher, eff, state, err := s.room.CatchMissedUno(connectionID)
	if err != nil {
		s.sendError(socket, ctx, err.Error())
		return
	}

	log.Printf("Seat %d caught seat %d without an UNO call", catcher, caught)

	s.broadcastToRoom("missed_uno_caught", CatchNotification{
		TargetSeat:  caught,
		CatcherSeat: catcher,
	})

	for changed := range uno.NumSeats {
		if eff.HandsChanged[changed] {
			s.sendHandToSeat(changed)
		}
	}

	s.broadcastToRoom("state_update", StateUpdate{
		TableState: state,
		LastSeat:   catcher,
	})
}

func (s *Server) sendMessage(socket *websocket.Conn, ctx context.Context, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return socket.Write(ctx, websocket.MessageText, data)
}

func (s *Server) sendError(socket *websocket.Conn, ctx context.Context, msg string) {
	response := ServerMessage{
		Type: "error",
		Payload: ErrorMessage{
			Message: msg,
		},
	}
	if err := s.sendMessage(socket, ctx, response); err != nil {
		log.Printf("Failed to send error message: %v", err)
	}
}

func (s *Server) broadcastToRoom(messageType string, payload interface{}) {
	msg := ServerMessage{
		Type:    messageType,
		Payload: payload,
	}
	for _, connID := range s.room.SeatedConnections() {
		conn := s.connectionManager.GetConnection(connID)
		if conn == nil {
			continue
		}
		if err := s.sendMessage(conn, context.Background(), msg); err != nil {
			log.Printf("Failed to broadcast to %s: %v", connID, err)
		}
	}
}

func (s *Server) sendToSeat(seat int, messageType string, payload interface{}) {
	connID := s.room.ConnectionAt(seat)
	if connID == "" {
		return
	}
	conn := s.connectionManager.GetConnection(connID)
	if conn == nil {
		return
	}
	msg := ServerMessage{
		Type:    messageType,
		Payload: payload,
	}
	if err := s.sendMessage(conn, context.Background(), msg); err != nil {
		log.Printf("Failed to send %s to seat %d: %v", messageType, seat, err)
	}
}

func (s *Server) sendHandToSeat(seat int) {
	cards := s.room.HandOf(seat)
	if cards == nil {
		return
	}
	s.sendToSeat(seat, "hand_update", HandUpdate{Cards: cards})
}

func (s *Server) recordMatch(winner int, results []uno.SeatResult) {
	if s.matchStore == nil {
		return
	}
	if err := s.matchStore.SaveMatch(context.Background(), winner, results); err != nil {
		log.Printf("Failed to record match result: %v", err)
	}
}
