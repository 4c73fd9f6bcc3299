package server

import "testing"

func TestConnectionManager(t *testing.T) {
	cm := NewConnectionManager()

	if cm.Count() != 0 {
		t.Errorf("fresh manager tracks %d connections", cm.Count())
	}
	if cm.GetConnection("missing") != nil {
		t.Error("GetConnection returned a socket for an unknown id")
	}

	// nil sockets are fine for bookkeeping tests; the manager never
	// dereferences what it stores.
	cm.AddConnection("a", nil)
	cm.AddConnection("b", nil)
	if cm.Count() != 2 {
		t.Errorf("manager tracks %d connections, 2 expected", cm.Count())
	}

	cm.RemoveConnection("a")
	if cm.Count() != 1 {
		t.Errorf("manager tracks %d connections after removal, 1 expected", cm.Count())
	}

	cm.RemoveConnection("a") // removing twice is harmless
	if cm.Count() != 1 {
		t.Errorf("double removal changed the count to %d", cm.Count())
	}
}
