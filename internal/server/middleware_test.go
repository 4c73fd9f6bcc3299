package server

import (
	"fmt"
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(10, time.Second)
	connID := "test-conn-1"

	for i := 0; i < 10; i++ {
		if !limiter.Allow(connID) {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	if limiter.Allow(connID) {
		t.Error("11th request should be denied")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	limiter := NewRateLimiter(2, 100*time.Millisecond)
	connID := "test-conn-2"

	if !limiter.Allow(connID) {
		t.Error("First request should be allowed")
	}
	if !limiter.Allow(connID) {
		t.Error("Second request should be allowed")
	}
	if limiter.Allow(connID) {
		t.Error("Third request should be denied")
	}

	time.Sleep(150 * time.Millisecond)

	if !limiter.Allow(connID) {
		t.Error("Request after window reset should be allowed")
	}
}

func TestRateLimiter_MultipleConnections(t *testing.T) {
	limiter := NewRateLimiter(5, time.Second)
	conn1 := "conn-1"
	conn2 := "conn-2"

	for i := 0; i < 5; i++ {
		limiter.Allow(conn1)
	}
	if limiter.Allow(conn1) {
		t.Error("conn1 should be rate limited")
	}

	for i := 0; i < 5; i++ {
		if !limiter.Allow(conn2) {
			t.Errorf("conn2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := NewRateLimiter(10, 50*time.Millisecond)

	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("conn-%d", i))
	}

	time.Sleep(100 * time.Millisecond)
	limiter.Cleanup()

	limiter.mu.Lock()
	remaining := len(limiter.requests)
	limiter.mu.Unlock()

	if remaining != 0 {
		t.Errorf("%d connections left after cleanup, 0 expected", remaining)
	}
}

func TestRateLimiter_RemoveConnection(t *testing.T) {
	limiter := NewRateLimiter(1, time.Second)
	connID := "test-conn-3"

	limiter.Allow(connID)
	if limiter.Allow(connID) {
		t.Error("Second request should be denied")
	}

	limiter.RemoveConnection(connID)

	if !limiter.Allow(connID) {
		t.Error("Request after removal should be allowed")
	}
}

func TestConnectionHealth_Tracking(t *testing.T) {
	health := NewConnectionHealth()
	connID := "health-conn"

	if health.IsInactive(connID, time.Millisecond) {
		t.Error("Untracked connection should not be inactive")
	}

	health.UpdateActivity(connID)
	if health.IsInactive(connID, time.Second) {
		t.Error("Fresh connection should not be inactive")
	}

	time.Sleep(20 * time.Millisecond)
	if !health.IsInactive(connID, 10*time.Millisecond) {
		t.Error("Stale connection should be inactive")
	}

	inactive := health.GetInactiveConnections(10 * time.Millisecond)
	if len(inactive) != 1 || inactive[0] != connID {
		t.Errorf("GetInactiveConnections returned %v", inactive)
	}

	health.RemoveConnection(connID)
	if health.IsInactive(connID, time.Millisecond) {
		t.Error("Removed connection should not be inactive")
	}
}

func TestValidateMessageType(t *testing.T) {
	valid := []string{"ping", "join_game", "request_start", "request_hand", "player_action", "catch_missed_uno"}
	for _, msgType := range valid {
		if err := ValidateMessageType(msgType); err != nil {
			t.Errorf("ValidateMessageType(%q) = %v, want nil", msgType, err)
		}
	}

	invalid := []string{"", "join", "playerAction", "reconnect", "create_game"}
	for _, msgType := range invalid {
		if err := ValidateMessageType(msgType); err == nil {
			t.Errorf("ValidateMessageType(%q) accepted an unknown type", msgType)
		}
	}
}
