package ws

import (
	"encoding/json"
	"sync"
	"time"

	"voyago/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hub fans live navigation progress out to trip watchers. Each trip gets a
// room; a navigating client publishes, watchers subscribe.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mutex      sync.RWMutex
	log        *logger.Logger
}

type Message struct {
	Type      string                 `json:"type"`
	TripID    string                 `json:"trip_id,omitempty"`
	UserID    primitive.ObjectID     `json:"user_id,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

const (
	MessagePosition  = "position"
	MessageStep      = "step"
	MessageTripEnded = "trip_ended"
	MessageWelcome   = "welcome"
)

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.sendToRoom(tripRoom(message.TripID), message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.joinRoom(client, tripRoom(client.TripID))

	h.log.WithUserID(client.UserID).WithField("trip_id", client.TripID).Debug("Trip watcher connected")

	h.sendToClient(client, Message{
		Type:      MessageWelcome,
		TripID:    client.TripID,
		UserID:    client.UserID,
		Timestamp: time.Now().Unix(),
	})
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)

	for roomID, room := range h.rooms {
		if _, exists := room[client]; exists {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}

	h.log.WithUserID(client.UserID).Debug("Trip watcher disconnected")
}

func (h *Hub) sendToRoom(roomID string, message Message) {
	// Full lock: slow consumers are evicted inline.
	h.mutex.Lock()
	defer h.mutex.Unlock()

	room, exists := h.rooms[roomID]
	if !exists {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		h.log.WithError(err).Error("Failed to marshal hub message")
		return
	}

	for client := range room {
		select {
		case client.send <- data:
		default:
			// Slow consumer; drop it rather than block the room.
			close(client.send)
			delete(h.clients, client)
			delete(room, client)
		}
	}
}

func (h *Hub) sendToClient(client *Client, message Message) {
	data, err := json.Marshal(message)
	if err != nil {
		return
	}
	select {
	case client.send <- data:
	default:
	}
}

func (h *Hub) joinRoom(client *Client, roomID string) {
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
}

// PublishPosition broadcasts a live position and the current step pointer to
// everyone watching the trip. Implements navigation.ProgressSink.
func (h *Hub) PublishPosition(tripID string, lat, lng float64, stepIndex int) {
	h.broadcast <- Message{
		Type:      MessagePosition,
		TripID:    tripID,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"lat":        lat,
			"lng":        lng,
			"step_index": stepIndex,
		},
	}
}

// PublishStep broadcasts a step-pointer advance.
func (h *Hub) PublishStep(tripID string, stepIndex int, instruction string) {
	h.broadcast <- Message{
		Type:      MessageStep,
		TripID:    tripID,
		Timestamp: time.Now().Unix(),
		Data: map[string]interface{}{
			"step_index":  stepIndex,
			"instruction": instruction,
		},
	}
}

// PublishTripEnded tells watchers the trip finished.
func (h *Hub) PublishTripEnded(tripID string) {
	h.broadcast <- Message{
		Type:      MessageTripEnded,
		TripID:    tripID,
		Timestamp: time.Now().Unix(),
	}
}

func tripRoom(tripID string) string {
	return "trip_" + tripID
}
