package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/event"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/domain/identity"
	"github.com/MUHULILAMRI/DoneFastAdmin/internal/transport/httpx"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn   *websocket.Conn
	topics map[event.Topic]bool
}

// Hub fans events out to websocket clients. Clients pick topics at connect
// time via ?topics=distribution,orders; the admin topic is only granted to
// admin callers.
type Hub struct {
	clients map[*client]bool
	mu      sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

func (h *Hub) Register(rg *gin.RouterGroup) {
	rg.GET("", h.handleWS)
}

func (h *Hub) handleWS(c *gin.Context) {
	topics := parseTopics(c.Query("topics"), httpx.Caller(c))
	if len(topics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no subscribable topics"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{conn: conn, topics: topics}
	h.mu.Lock()
	h.clients[cl] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, cl)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) Broadcast(e event.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		slog.Error("websocket broadcast marshal failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.clients {
		if !cl.topics[e.Topic] {
			continue
		}
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Error("websocket write failed", "error", err)
		}
	}
}

func parseTopics(raw string, caller identity.Caller) map[event.Topic]bool {
	requested := map[event.Topic]bool{}
	if raw == "" {
		requested[event.TopicDistribution] = true
		requested[event.TopicOrders] = true
	} else {
		for _, t := range strings.Split(raw, ",") {
			requested[event.Topic(strings.TrimSpace(t))] = true
		}
	}

	granted := map[event.Topic]bool{}
	for t := range requested {
		switch t {
		case event.TopicDistribution, event.TopicOrders:
			granted[t] = true
		case event.TopicAdmin:
			if caller.IsAdmin() {
				granted[t] = true
			}
		}
	}
	return granted
}
