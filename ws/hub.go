package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	UserClients       map[string]map[*websocket.Conn]*Client // kênh thông báo theo từng userID
	ModerationClients map[*websocket.Conn]*Client            // feed hàng chờ duyệt cho admin
	Mutex             sync.RWMutex
}

var H = Hub{
	UserClients:       make(map[string]map[*websocket.Conn]*Client),
	ModerationClients: make(map[*websocket.Conn]*Client),
}

// RegisterUser đăng ký kênh riêng cho user và khởi động write pump.
// Mỗi connection chỉ có đúng một goroutine đọc (handler) và một
// goroutine ghi (write pump); mọi message gửi đi đều qua kênh Send.
func (h *Hub) RegisterUser(userID string, conn *websocket.Conn) *Client {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.UserClients[userID]; !ok {
		h.UserClients[userID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.UserClients[userID][conn] = client

	go writePump(client)
	return client
}

func (h *Hub) UnregisterUser(userID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.UserClients[userID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.UserClients, userID)
		}
	}
}

// BroadcastToUser gửi message tới mọi kết nối của một user
func (h *Hub) BroadcastToUser(userID string, messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.UserClients[userID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// RegisterModeration đăng ký feed duyệt tin (admin)
func (h *Hub) RegisterModeration(conn *websocket.Conn) *Client {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}
	h.ModerationClients[conn] = client

	go writePump(client)
	return client
}

func (h *Hub) UnregisterModeration(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.ModerationClients[conn]; ok {
		close(client.Send)
		delete(h.ModerationClients, conn)
	}
}

// BroadcastModeration gửi tới toàn bộ admin đang mở hàng chờ duyệt
func (h *Hub) BroadcastModeration(messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.ModerationClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// SendNotification đẩy một thông báo realtime tới user
func SendNotification(userID string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.BroadcastToUser(userID, websocket.TextMessage, data)
}

// SendBadgeUpdate cập nhật số thông báo chưa đọc
func SendBadgeUpdate(userID string, count int64) {
	data, err := json.Marshal(map[string]interface{}{
		"type":  "badge_update",
		"count": count,
	})
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.BroadcastToUser(userID, websocket.TextMessage, data)
}

// BroadcastModerationChanged báo hàng chờ duyệt có thay đổi
func BroadcastModerationChanged() {
	data := []byte(`{"type": "moderation_queue_changed"}`)
	H.BroadcastModeration(websocket.TextMessage, data)
}

// GetStats trả về số kết nối hiện tại (cho health check)
func (h *Hub) GetStats() map[string]int {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	userConns := 0
	for _, clients := range h.UserClients {
		userConns += len(clients)
	}
	return map[string]int{
		"user_connections":       userConns,
		"moderation_connections": len(h.ModerationClients),
	}
}

// writePump là goroutine ghi duy nhất của một connection.
// Thoát khi kênh Send bị đóng (unregister) hoặc ghi lỗi.
func writePump(client *Client) {
	defer func() {
		client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		client.Conn.Close()
	}()
	for msg := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
