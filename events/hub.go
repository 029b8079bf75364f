package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/deepakkumar0818/foodify/models"
	"github.com/deepakkumar0818/foodify/utils"
)

// Event types pushed to connected admin dashboards.
const (
	EventBookingCreate = "booking_create"
	EventBookingUpdate = "booking_update"
	EventTableCreate   = "table_create"
	EventTableUpdate   = "table_update"
	EventTableDelete   = "table_delete"
	EventOrderCreate   = "order_create"
	EventOrderUpdate   = "order_update"
	EventPaymentUpdate = "payment_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds the admin dashboard websocket connections.
type Hub struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]bool),
}

// RegisterClient adds a connection to the broadcast set.
func RegisterClient(conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.clients[conn] = true
}

// UnregisterClient removes and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastBookingCreate(booking models.Booking) {
	broadcast(Message{Event: EventBookingCreate, Data: booking})
}

func BroadcastBookingUpdate(booking models.Booking) {
	broadcast(Message{Event: EventBookingUpdate, Data: booking})
}

func BroadcastTableCreate(table models.Table) {
	broadcast(Message{Event: EventTableCreate, Data: table})
}

func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

func BroadcastTableDelete(tableID string) {
	broadcast(Message{Event: EventTableDelete, Data: map[string]string{"tableId": tableID}})
}

func BroadcastOrderCreate(order models.Order) {
	broadcast(Message{Event: EventOrderCreate, Data: order})
}

func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

func BroadcastPaymentUpdate(data interface{}) {
	broadcast(Message{Event: EventPaymentUpdate, Data: data})
}

func broadcast(msg Message) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Printf("Error marshaling event: %v", err)
		}
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// Dead client, drop it.
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
