package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // chỉ để phát triển, nên giới hạn ở production
	},
}

// queueJSON xếp message JSON vào kênh Send của client. Không ghi
// thẳng vào conn vì write pump là goroutine ghi duy nhất.
func queueJSON(client *Client, data interface{}) {
	msg, err := json.Marshal(data)
	if err != nil {
		log.Println("Lỗi JSON marshal:", err)
		return
	}
	select {
	case client.Send <- msg:
	default:
	}
}

// WebSocket thông báo riêng cho user (báo kết quả duyệt tin).
// Handler là goroutine đọc duy nhất của connection: vòng lặp
// ReadMessage giữ kết nối và phát hiện client ngắt.
func HandleNotificationWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Thiếu token"})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc hết hạn"})
		return
	}

	userID := claims.UserID
	log.Printf("Notification WS connected: userID=%s\n", userID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}
	client := H.RegisterUser(userID, conn)
	defer H.UnregisterUser(userID, conn)

	queueJSON(client, gin.H{"type": "connected", "message": "Connected to notifications"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Printf("Notification WS disconnected: userID=%s\n", userID)
}

// WebSocket hàng chờ duyệt, chỉ dành cho admin
func HandleModerationWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Thiếu token"})
		return
	}
	claims, err := utils.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc hết hạn"})
		return
	}
	if claims.Role != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Chỉ admin mới xem được hàng chờ duyệt"})
		return
	}

	log.Printf("Moderation WS connected: userID=%s\n", claims.UserID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade thất bại:", err)
		return
	}
	client := H.RegisterModeration(conn)
	defer H.UnregisterModeration(conn)

	queueJSON(client, gin.H{"type": "connected", "message": "Connected to moderation feed"})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	log.Printf("Moderation WS disconnected: userID=%s\n", claims.UserID)
}
