package debug

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// WebSocketHub fans log and event messages out to connected dashboard clients.
type WebSocketHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
}

var Hub *WebSocketHub

func init() {
	Hub = &WebSocketHub{
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		clients:    make(map[*websocket.Conn]bool),
	}
	go Hub.run()
}

func (h *WebSocketHub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("🔌 Dashboard connected. Total clients: %d", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()
			log.Printf("🔌 Dashboard disconnected. Total clients: %d", len(h.clients))

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				err := client.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("Error sending message to dashboard: %v", err)
					client.Close()
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// HandleWebSocketFiber registers a dashboard connection and blocks until the
// client goes away.
func HandleWebSocketFiber(conn *websocket.Conn) {
	Hub.register <- conn

	defer func() {
		Hub.unregister <- conn
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}

func (h *WebSocketHub) send(data []byte) {
	select {
	case h.broadcast <- data:
	default:
		// channel full, drop the message
	}
}

// LogMessage represents a request log line for the dashboard.
type LogMessage struct {
	Type     string                 `json:"type"`
	Source   string                 `json:"source"`
	Level    string                 `json:"level"`
	Message  string                 `json:"message"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SendLog broadcasts a log line to connected dashboards.
func SendLog(source, level, message string, metadata map[string]interface{}) {
	if Hub == nil || len(Hub.clients) == 0 {
		return
	}

	msg := LogMessage{
		Type:     "log",
		Source:   source,
		Level:    level,
		Message:  message,
		Metadata: metadata,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error serializing log for dashboard: %v", err)
		return
	}
	Hub.send(data)
}

// EventMessage reports a notable account event (registration, login, search).
type EventMessage struct {
	Type     string `json:"type"`
	Event    string `json:"event"`
	Username string `json:"username,omitempty"`
	Outcome  string `json:"outcome"`
}

// SendEvent broadcasts an account event to connected dashboards.
func SendEvent(event, username, outcome string) {
	if Hub == nil || len(Hub.clients) == 0 {
		return
	}

	msg := EventMessage{
		Type:     "event",
		Event:    event,
		Username: username,
		Outcome:  outcome,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error serializing event for dashboard: %v", err)
		return
	}
	Hub.send(data)
}
