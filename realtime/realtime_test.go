package realtime_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"api/models"
	"api/realtime"
	"api/testutil"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startHub sync.Once

func dialFeed(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	// Wait out listeners left over from a previous test
	deadline := time.Now().Add(2 * time.Second)
	for realtime.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("stale client never left the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws/rsvps"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	// Wait until the hub has registered the new client
	deadline = time.Now().Add(2 * time.Second)
	for realtime.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered with the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestBroadcastReachesConnectedClient(t *testing.T) {
	testutil.SetupTestDB(t)
	startHub.Do(func() { go realtime.HandleBroadcasts() })

	srv := httptest.NewServer(testutil.SetupRouter())
	defer srv.Close()

	conn := dialFeed(t, srv)
	defer conn.Close()

	rsvp := models.Rsvp{ID: "r-1", Name: "Ocean", Attendees: 4, CreatedAt: time.Now()}
	realtime.NotifyRsvpCreated(rsvp)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update realtime.RsvpUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "new", update.Type)
	assert.Equal(t, "r-1", update.Rsvp.ID)
	assert.Equal(t, "Ocean", update.Rsvp.Name)
}

func TestRsvpSubmissionIsBroadcast(t *testing.T) {
	testutil.SetupTestDB(t)
	startHub.Do(func() { go realtime.HandleBroadcasts() })

	srv := httptest.NewServer(testutil.SetupRouter())
	defer srv.Close()

	conn := dialFeed(t, srv)
	defer conn.Close()

	body := bytes.NewBufferString(`{"name": "River", "attendees": 2}`)
	resp, err := http.Post(srv.URL+"/api/rsvp", "application/json", body)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update realtime.RsvpUpdate
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "new", update.Type)
	assert.Equal(t, "River", update.Rsvp.Name)
	assert.Equal(t, 2, update.Rsvp.Attendees)
}
