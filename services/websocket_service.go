package services

import (
	"log"
	"net/http"
	"strings"
	"sync"

	"gg-note/ggnote/broker"
	"gg-note/ggnote/config"
	"gg-note/ggnote/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketServiceInterface defines the operations provided by the
// WebSocket service.
type WebSocketServiceInterface interface {
	Start(cfg config.Config)
	Stop()
	HandleConnection(c *gin.Context)
	BroadcastMessage(message []byte)
	SetBrokerChannel(ch <-chan *nats.Msg)
}

// Client represents a connected WebSocket client.
type Client struct {
	ID   string
	Hub  *WebSocketService
	Conn *websocket.Conn
	Send chan []byte
}

// WebSocketService relays broker change notifications to connected UI
// clients as "folders-updated" / "notes-updated" events, the same names
// the desktop shells listened for over their process channels.
type WebSocketService struct {
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	broadcast    chan []byte
	clientsMutex sync.RWMutex

	upgrader websocket.Upgrader
	consumer *broker.Consumer

	brokerInput <-chan *nats.Msg

	isRunning bool
	stopChan  chan struct{}
}

func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		stopChan: make(chan struct{}),
	}
}

// SetBrokerChannel injects a message source in place of a live broker
// connection - useful for testing.
func (ws *WebSocketService) SetBrokerChannel(ch <-chan *nats.Msg) {
	ws.brokerInput = ch
}

// Start runs the hub and begins forwarding broker messages. When the
// broker is unreachable the hub still runs; clients just see no pushes.
func (ws *WebSocketService) Start(cfg config.Config) {
	if ws.isRunning {
		return
	}
	ws.isRunning = true

	go ws.run()

	if ws.brokerInput != nil {
		go ws.forwardBrokerMessages(ws.brokerInput)
		return
	}

	consumer, err := broker.InitConsumer(cfg, []string{broker.FolderSubject, broker.NoteSubject}, "websocket-group")
	if err != nil {
		log.Printf("Failed to initialize broker consumer: %v", err)
		log.Println("WebSocket service will run without change notifications")
		return
	}
	ws.consumer = consumer
	go ws.forwardBrokerMessages(consumer.GetMessageChannel())
}

func (ws *WebSocketService) Stop() {
	if !ws.isRunning {
		return
	}
	ws.isRunning = false
	close(ws.stopChan)
	if ws.consumer != nil {
		ws.consumer.Close()
	}

	ws.clientsMutex.Lock()
	for _, client := range ws.clients {
		close(client.Send)
		client.Conn.Close()
	}
	ws.clients = make(map[string]*Client)
	ws.clientsMutex.Unlock()
}

// BroadcastMessage sends a message to all connected clients.
func (ws *WebSocketService) BroadcastMessage(message []byte) {
	ws.broadcast <- message
}

func (ws *WebSocketService) run() {
	for {
		select {
		case client := <-ws.register:
			ws.clientsMutex.Lock()
			ws.clients[client.ID] = client
			ws.clientsMutex.Unlock()
			log.Printf("WebSocket client connected: %s", client.ID)
		case client := <-ws.unregister:
			ws.clientsMutex.Lock()
			if _, ok := ws.clients[client.ID]; ok {
				delete(ws.clients, client.ID)
				close(client.Send)
			}
			ws.clientsMutex.Unlock()
			log.Printf("WebSocket client disconnected: %s", client.ID)
		case message := <-ws.broadcast:
			ws.clientsMutex.RLock()
			for _, client := range ws.clients {
				select {
				case client.Send <- message:
				default:
					// Slow client; drop the message rather than block the hub.
				}
			}
			ws.clientsMutex.RUnlock()
		case <-ws.stopChan:
			return
		}
	}
}

// forwardBrokerMessages converts broker subjects into the UI-facing
// change-notification events and broadcasts them.
func (ws *WebSocketService) forwardBrokerMessages(ch <-chan *nats.Msg) {
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			serverMessage, ok := ws.translate(msg)
			if !ok {
				continue
			}
			data, err := serverMessage.ToJSON()
			if err != nil {
				log.Printf("Failed to marshal server message: %v", err)
				continue
			}
			ws.BroadcastMessage(data)
		case <-ws.stopChan:
			return
		}
	}
}

func (ws *WebSocketService) translate(msg *nats.Msg) (models.ServerMessage, bool) {
	var standard models.StandardMessage
	if err := standard.FromJSON(msg.Data); err != nil {
		log.Printf("Failed to unmarshal broker message on %s: %v", msg.Subject, err)
		return models.ServerMessage{}, false
	}

	var event string
	switch {
	case strings.HasPrefix(msg.Subject, "folder."):
		event = "folders-updated"
	case strings.HasPrefix(msg.Subject, "note."):
		event = "notes-updated"
	default:
		return models.ServerMessage{}, false
	}

	return models.ServerMessage{
		Type:    "event",
		Event:   event,
		Payload: standard.Payload,
	}, true
}

// HandleConnection upgrades an HTTP request and runs the client pumps.
func (ws *WebSocketService) HandleConnection(c *gin.Context) {
	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		ID:   uuid.New().String(),
		Hub:  ws,
		Conn: conn,
		Send: make(chan []byte, 64),
	}
	ws.register <- client

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
		// Clients only listen; inbound frames are drained and ignored.
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

var WebSocketServiceInstance WebSocketServiceInterface
