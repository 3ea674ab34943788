package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/cafe-pos/models"
)

// Event types
const (
	EventOrderUpdate     = "order_update"
	EventOrderFinalized  = "order_finalized"
	EventTableUpdate     = "table_update"
	EventTableCreate     = "table_create"
	EventTableDelete     = "table_delete"
	EventMenuUpdate      = "menu_update"
	EventStaffNotif      = "staff_notification"
	EventReceiptUpdate   = "receipt_generated"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client websocket (kasir/admin) untuk refresh layar
// secara live di satu lokasi.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient menambahkan connection ke set dengan role-nya
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate menyiarkan perubahan order berjalan
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{
		Event: EventOrderUpdate,
		Data:  order,
	})
}

// BroadcastOrderFinalized menyiarkan order yang masuk riwayat
func BroadcastOrderFinalized(order models.Order) {
	broadcast(Message{
		Event: EventOrderFinalized,
		Data:  order,
	})
}

// BroadcastTableUpdate menyiarkan perubahan meja
func BroadcastTableUpdate(table models.Table) {
	broadcast(Message{
		Event: EventTableUpdate,
		Data:  table,
	})
}

// BroadcastStaffNotification untuk notifikasi teks ke semua client
func BroadcastStaffNotification(message string) {
	broadcast(Message{
		Event: EventStaffNotif,
		Data:  message,
	})
}

// BroadcastMessage untuk event dengan payload bebas
func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling event %s: %v", msg.Event, err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(hub.clients, conn)
		}
	}
}
