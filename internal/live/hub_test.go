package live_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/tournament-standings-service/internal/live"
	"github.com/maxviazov/tournament-standings-service/internal/model"
)

func startHub(t *testing.T) (*live.Hub, context.CancelFunc) {
	t.Helper()
	hub := live.NewHub(8, zerolog.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

// dial connects a websocket client to a test server that joins room on the hub.
func dial(t *testing.T, hub *live.Hub, room string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.NewClient(conn, room).Serve()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PublishStandingsReachesRoom(t *testing.T) {
	hub, _ := startHub(t)
	room := live.RoomForTournament(42)
	conn := dial(t, hub, room)
	other := dial(t, hub, live.RoomForTournament(7))

	require.Eventually(t, func() bool {
		return hub.RoomSize(room) == 1 && hub.RoomSize(live.RoomForTournament(7)) == 1
	}, time.Second, 10*time.Millisecond)

	rows := []model.StandingRow{{Key: "1:Reds", Rank: 1, TeamName: "Reds", Points: 3}}
	hub.PublishStandings(42, rows)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got struct {
		Type    string                `json:"type"`
		RoomID  string                `json:"room_id"`
		Payload live.StandingsPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, live.MessageStandingsUpdated, got.Type)
	assert.Equal(t, room, got.RoomID)
	assert.Equal(t, int64(42), got.Payload.TournamentID)
	assert.Equal(t, rows, got.Payload.Standings)

	// the other room hears nothing
	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestHub_DisconnectLeavesRoom(t *testing.T) {
	hub, _ := startHub(t)
	room := live.RoomForTournament(1)
	conn := dial(t, hub, room)

	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.RoomSize(room) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_BroadcastToEmptyRoom(t *testing.T) {
	hub, _ := startHub(t)
	assert.Equal(t, 0, hub.BroadcastToRoom("nobody", live.Message{Type: "PING"}))
}

func TestHub_StopClosesClients(t *testing.T) {
	hub, cancel := startHub(t)
	room := live.RoomForTournament(3)
	conn := dial(t, hub, room)
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "connection must be closed by the hub")
	assert.Equal(t, 0, hub.RoomSize(room))
}

func TestRoomForTournament(t *testing.T) {
	assert.Equal(t, "tournament_15", live.RoomForTournament(15))
}
