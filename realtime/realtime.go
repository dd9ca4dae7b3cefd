package realtime

import (
	"log"
	"net/http"
	"sync"

	"api/metrics"
	"api/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	clients   = make(map[*websocket.Conn]bool) // Connected listeners
	broadcast = make(chan RsvpUpdate, 16)      // Broadcast channel for updates
	mutex     sync.Mutex                       // Mutex to protect the clients map
)

// RsvpUpdate represents a newly created RSVP pushed to listeners
type RsvpUpdate struct {
	Type string      `json:"type"` // currently always "new"
	Rsvp models.Rsvp `json:"rsvp"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the request and registers the client for updates
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("websocket upgrade failed: ", err)
		return
	}

	mutex.Lock()
	clients[conn] = true
	metrics.RealtimeClients.Set(float64(len(clients)))
	mutex.Unlock()

	go func() {
		defer removeClient(conn)
		for {
			// Listeners never send application data; this drains control
			// frames and detects disconnect
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// ClientCount reports the number of registered listeners
func ClientCount() int {
	mutex.Lock()
	defer mutex.Unlock()
	return len(clients)
}

func removeClient(conn *websocket.Conn) {
	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := clients[conn]; ok {
		delete(clients, conn)
		conn.Close()
		metrics.RealtimeClients.Set(float64(len(clients)))
	}
}

// NotifyRsvpCreated queues a broadcast for a newly stored RSVP. Non-blocking:
// if the queue is full the update is dropped.
func NotifyRsvpCreated(rsvp models.Rsvp) {
	select {
	case broadcast <- RsvpUpdate{Type: "new", Rsvp: rsvp}:
	default:
		log.Println("realtime broadcast queue full, dropping update")
	}
}

// HandleBroadcasts fans queued updates out to every connected client.
// Run once from main in its own goroutine.
func HandleBroadcasts() {
	for update := range broadcast {
		mutex.Lock()
		for conn := range clients {
			if err := conn.WriteJSON(update); err != nil {
				conn.Close()
				delete(clients, conn)
			}
		}
		metrics.RealtimeClients.Set(float64(len(clients)))
		mutex.Unlock()
	}
}
