// Package live pushes tournament updates to websocket subscribers.
// Each tournament is a room; a client joins exactly one room for the life of its connection.
package live

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

const (
	MessageStandingsUpdated = "STANDINGS_UPDATED"

	defaultSendBuffer = 256
)

// Message is the envelope every push uses.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
	RoomID  string `json:"room_id,omitempty"`
}

// StandingsPayload is sent with MessageStandingsUpdated.
type StandingsPayload struct {
	TournamentID int64               `json:"tournament_id"`
	Standings    []model.StandingRow `json:"standings"`
}

// RoomForTournament names the room subscribers of a tournament join.
func RoomForTournament(tournamentID int64) string {
	return "tournament_" + strconv.FormatInt(tournamentID, 10)
}

// Hub tracks rooms and fans messages out to their clients.
// Only the Run loop closes a client's send channel, always under the write lock,
// so broadcasts holding the read lock never write to a closed channel.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}

	sendBuffer int
	log        zerolog.Logger
}

func NewHub(sendBuffer int, logger zerolog.Logger) *Hub {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		sendBuffer: sendBuffer,
		log:        logger.With().Str("module", "live").Str("component", "hub").Logger(),
	}
}

// Run serves registrations until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[c.room]
			if !ok {
				room = make(map[*Client]struct{})
				h.rooms[c.room] = room
			}
			room[c] = struct{}{}
			size := len(room)
			h.mu.Unlock()
			h.log.Debug().Str("room", c.room).Str("client_id", c.ID).Int("clients", size).Msg("client registered")

		case c := <-h.unregister:
			h.mu.Lock()
			h.remove(c)
			h.mu.Unlock()

		case <-ctx.Done():
			h.mu.Lock()
			for _, room := range h.rooms {
				for c := range room {
					h.remove(c)
				}
			}
			h.mu.Unlock()
			h.log.Info().Msg("hub stopped")
			return
		}
	}
}

// remove must be called with the write lock held.
func (h *Hub) remove(c *Client) {
	room, ok := h.rooms[c.room]
	if !ok {
		return
	}
	if _, ok := room[c]; !ok {
		return
	}
	delete(room, c)
	close(c.send)
	if len(room) == 0 {
		delete(h.rooms, c.room)
	}
	h.log.Debug().Str("room", c.room).Str("client_id", c.ID).Int("clients", len(room)).Msg("client unregistered")
}

// Register adds c to its room. It reports false once the hub has stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// RoomSize returns the number of connected clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// BroadcastToRoom delivers msg to every client of room and returns how many received it.
// Clients whose buffer is full miss the message rather than stall the broadcast.
func (h *Hub) BroadcastToRoom(room string, msg Message) int {
	msg.RoomID = room
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error().Err(err).Str("room", room).Msg("marshal broadcast message")
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for c := range h.rooms[room] {
		select {
		case c.send <- data:
			delivered++
		default:
			h.log.Warn().Str("room", room).Str("client_id", c.ID).Msg("client send buffer full, message dropped")
		}
	}
	return delivered
}

// PublishStandings notifies subscribers of a tournament that its table changed.
func (h *Hub) PublishStandings(tournamentID int64, rows []model.StandingRow) {
	n := h.BroadcastToRoom(RoomForTournament(tournamentID), Message{
		Type:    MessageStandingsUpdated,
		Payload: StandingsPayload{TournamentID: tournamentID, Standings: rows},
	})
	h.log.Debug().Int64("tournament_id", tournamentID).Int("delivered", n).Msg("standings published")
}
