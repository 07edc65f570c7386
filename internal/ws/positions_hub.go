package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 256
)

// PositionPayload is pushed to every live subscriber whenever a room's
// position changes.
type PositionPayload struct {
	ID             uint    `json:"id"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	RoomNumber     string  `json:"room_number"`
	RoomCategoryID int     `json:"room_category_id"`
	FloorID        int     `json:"floor_id"`
}

// PositionHub owns the set of live-update subscribers. Membership and
// fan-out are handled only on the Run goroutine, so the set is never
// touched from two goroutines at once.
type PositionHub struct {
	register   chan *positionClient
	unregister chan *positionClient
	broadcast  chan []byte
	clients    map[*positionClient]struct{}
	log        *zap.Logger
}

func NewPositionHub(log *zap.Logger) *PositionHub {
	if log == nil {
		log = zap.NewNop()
	}
	return &PositionHub{
		register:   make(chan *positionClient),
		unregister: make(chan *positionClient),
		broadcast:  make(chan []byte, 256),
		clients:    make(map[*positionClient]struct{}),
		log:        log,
	}
}

func (h *PositionHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.log.Info("subscriber joined",
				zap.String("conn_id", client.id),
				zap.Int("subscribers", len(h.clients)))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				client.close()
				h.log.Info("subscriber left",
					zap.String("conn_id", client.id),
					zap.Int("subscribers", len(h.clients)))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow or dead subscriber: evict it so the rest
					// still get the message.
					delete(h.clients, client)
					close(client.send)
					client.close()
					h.log.Warn("subscriber evicted",
						zap.String("conn_id", client.id))
				}
			}
		}
	}
}

// Broadcast fans payload out to every currently registered subscriber.
// Delivery is asynchronous; the caller's request never waits on a
// subscriber.
func (h *PositionHub) Broadcast(payload PositionPayload) {
	if h == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Error("marshal position payload", zap.Error(err))
		return
	}
	h.broadcast <- data
}

type positionClient struct {
	hub  *PositionHub
	conn *websocket.Conn
	send chan []byte
	id   string
}

func (c *positionClient) close() {
	if c.conn != nil {
		c.conn.Close()
	}
}

// readPump discards inbound frames; client traffic on this channel is
// only a keepalive signal. Exits when the remote side goes away.
func (c *positionClient) readPump() {
	defer func() {
		c.hub.unregister <- c
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *positionClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			if _, err := w.Write(msg); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
