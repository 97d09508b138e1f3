package server

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	qr "demondeduce/internal/qrcode"
	"demondeduce/internal/solver"
	"demondeduce/internal/table"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	mu       sync.Mutex
	TableMgr *table.Manager
	Hubs     map[string]*Hub
	Opts     solver.Options
}

func NewHandlers(opts solver.Options) *Handlers {
	return &Handlers{
		TableMgr: table.NewManager(),
		Hubs:     make(map[string]*Hub),
		Opts:     opts,
	}
}

// Shutdown stops every hub loop and any in-flight solves.
func (h *Handlers) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, hub := range h.Hubs {
		hub.Stop()
	}
}

// HandleCreateTable creates a new table and returns its ID.
func (h *Handlers) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	tableID := h.TableMgr.Create()
	hub := NewHub(tableID, h.TableMgr.Get(tableID), h.Opts)

	h.mu.Lock()
	h.Hubs[tableID] = hub
	h.mu.Unlock()
	go hub.Run()

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, tableID)
}

// HandleQR generates a QR code PNG for joining the table.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}
	url := fmt.Sprintf("http://%s/ws?table=%s", r.Host, tableID)
	png, err := qr.Generate(url)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleWS handles WebSocket connections.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	tableID := r.URL.Query().Get("table")
	if tableID == "" {
		http.Error(w, "missing table parameter", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	hub, ok := h.Hubs[tableID]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "table not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	viewerID := r.URL.Query().Get("viewer")
	if viewerID == "" {
		viewerID = GenerateViewerID()
	}

	client := NewClient(hub, conn, viewerID)
	hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}

// HandleViewerID returns a new viewer ID.
func (h *Handlers) HandleViewerID(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(GenerateViewerID()))
}
