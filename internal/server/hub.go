package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"demondeduce/internal/protocol"
	"demondeduce/internal/scenario"
	"demondeduce/internal/solver"
	"demondeduce/internal/table"
)

// Hub manages WebSocket connections and solving for one table. Every
// scenario edit cancels any in-flight solve, re-solves against the new
// version and broadcasts the result to all clients.
type Hub struct {
	mu          sync.Mutex
	tableID     string
	table       *table.Table
	opts        solver.Options
	clients     map[*Client]bool
	register    chan *Client
	unregister  chan *Client
	incoming    chan IncomingMessage
	quit        chan struct{}
	cancelSolve context.CancelFunc
}

func NewHub(tableID string, tbl *table.Table, opts solver.Options) *Hub {
	return &Hub{
		tableID:    tableID,
		table:      tbl,
		opts:       opts,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		incoming:   make(chan IncomingMessage, 256),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.sendStateToClient(client)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case msg := <-h.incoming:
			h.handleMessage(msg)

		case <-h.quit:
			h.stopSolve()
			return
		}
	}
}

// Stop shuts down the hub loop and any in-flight solve.
func (h *Hub) Stop() {
	close(h.quit)
}

func (h *Hub) handleMessage(msg IncomingMessage) {
	switch msg.Envelope.Type {
	case protocol.MsgSetScenario:
		h.handleSetScenario(msg)
	case protocol.MsgObserve:
		h.handleObserve(msg)
	default:
		h.sendError(msg.Client, fmt.Sprintf("unknown message type %q", msg.Envelope.Type))
	}
}

func (h *Hub) handleSetScenario(msg IncomingMessage) {
	var set protocol.SetScenarioMsg
	if err := msg.Envelope.Decode(&set); err != nil {
		h.sendError(msg.Client, "invalid set_scenario message")
		return
	}

	p, err := scenario.ParseLine(set.Line)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	version, err := h.table.SetScenario(p)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.scenarioChanged(version)
}

func (h *Hub) handleObserve(msg IncomingMessage) {
	var obs protocol.ObserveMsg
	if err := msg.Envelope.Decode(&obs); err != nil {
		h.sendError(msg.Client, "invalid observe message")
		return
	}

	card, err := cardFromObserve(obs)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	version, err := h.table.Observe(obs.Seat, card)
	if err != nil {
		h.sendError(msg.Client, err.Error())
		return
	}
	h.scenarioChanged(version)
}

func cardFromObserve(obs protocol.ObserveMsg) (solver.Card, error) {
	var card solver.Card
	if s := strings.TrimSpace(obs.Shown); s != "" {
		r, ok := solver.ParseRole(s)
		if !ok {
			return card, fmt.Errorf("unknown role %q", s)
		}
		card.Shown = r
	}
	if s := strings.TrimSpace(obs.Confirmed); s != "" {
		r, ok := solver.ParseRole(s)
		if !ok {
			return card, fmt.Errorf("unknown role %q", s)
		}
		card.Confirmed = r
	}
	if s := strings.TrimSpace(obs.Statement); s != "" {
		st, err := scenario.ParseStatement(s)
		if err != nil {
			return card, err
		}
		card.Statement = st
	}
	return card, nil
}

// scenarioChanged broadcasts the new state and kicks off a fresh solve.
func (h *Hub) scenarioChanged(version int) {
	p, v := h.table.Snapshot()
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgTableState, protocol.TableStateFrom(h.tableID, v, p)))
	h.broadcastAll(protocol.MustEnvelope(protocol.MsgPending, protocol.PendingMsg{Version: version}))
	h.startSolve(version)
}

func (h *Hub) startSolve(version int) {
	h.stopSolve()

	ctx, cancel := context.WithCancel(context.Background())
	h.mu.Lock()
	h.cancelSolve = cancel
	h.mu.Unlock()

	go func() {
		p, v := h.table.Snapshot()
		if p == nil || v != version {
			return
		}
		res, err := solver.Solve(ctx, p, h.opts)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Str("table", h.tableID).Msg("solve failed")
				h.broadcastAll(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: err.Error()}))
			}
			return
		}
		if !h.table.SetResult(version, res) {
			return
		}
		log.Info().Str("table", h.tableID).Int("version", version).
			Int("worlds", res.Worlds).Stringer("status", res.Status).Msg("solve finished")
		h.broadcastAll(protocol.MustEnvelope(protocol.MsgResult, protocol.ResultMsg{Version: version, Result: res}))
	}()
}

func (h *Hub) stopSolve() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelSolve != nil {
		h.cancelSolve()
		h.cancelSolve = nil
	}
}

func (h *Hub) sendStateToClient(client *Client) {
	p, v := h.table.Snapshot()
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgTableState, protocol.TableStateFrom(h.tableID, v, p)))
	if res, rv := h.table.Result(); res != nil {
		client.SendEnvelope(protocol.MustEnvelope(protocol.MsgResult, protocol.ResultMsg{Version: rv, Result: res}))
	}
}

func (h *Hub) broadcastAll(env protocol.Envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("broadcast marshal error")
		return
	}
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Warn().Str("client", client.ID).Msg("client buffer full")
		}
	}
}

func (h *Hub) sendError(client *Client, message string) {
	client.SendEnvelope(protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: message}))
}
