package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"demondeduce/internal/solver"
)

func TestHandleCreateTable(t *testing.T) {
	h := NewHandlers(solver.DefaultOptions())
	defer h.Shutdown()

	rec := httptest.NewRecorder()
	h.HandleCreateTable(rec, httptest.NewRequest(http.MethodPost, "/api/create", nil))

	id := rec.Body.String()
	if len(id) != 8 {
		t.Fatalf("table id %q should be 8 hex chars", id)
	}
	if h.TableMgr.Get(id) == nil {
		t.Error("created table not registered")
	}
	if h.Hubs[id] == nil {
		t.Error("created hub not registered")
	}
}

func TestShutdownStopsHubs(t *testing.T) {
	h := NewHandlers(solver.DefaultOptions())

	ids := make([]string, 2)
	for i := range ids {
		rec := httptest.NewRecorder()
		h.HandleCreateTable(rec, httptest.NewRequest(http.MethodPost, "/api/create", nil))
		ids[i] = rec.Body.String()
	}

	h.Shutdown()

	for _, id := range ids {
		select {
		case <-h.Hubs[id].quit:
		case <-time.After(time.Second):
			t.Fatalf("hub %s still running after shutdown", id)
		}
	}
}
