package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/job-board-backend/utils"
)

func wsURL(srv *httptest.Server, path, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path + "?token=" + token
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &payload))
	return payload
}

func TestNotificationWebSocket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/notifications", HandleNotificationWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("token sai bị từ chối", func(t *testing.T) {
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications", "sai"), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("nhận message chào và thông báo đẩy tới đúng user", func(t *testing.T) {
		token, err := utils.GenerateToken("user-42", "user")
		require.NoError(t, err)

		conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/notifications", token), nil)
		require.NoError(t, err)
		defer conn.Close()

		greeting := readJSON(t, conn)
		require.Equal(t, "connected", greeting["type"])

		SendNotification("user-42", map[string]interface{}{
			"type":  "vacancy_status",
			"title": "Tin của bạn đã được duyệt",
		})
		notif := readJSON(t, conn)
		require.Equal(t, "vacancy_status", notif["type"])

		SendBadgeUpdate("user-42", 3)
		badge := readJSON(t, conn)
		require.Equal(t, "badge_update", badge["type"])
		require.Equal(t, float64(3), badge["count"])
	})
}

func TestModerationWebSocket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws/moderation", HandleModerationWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("user thường không xem được feed duyệt", func(t *testing.T) {
		token, err := utils.GenerateToken("user-7", "user")
		require.NoError(t, err)

		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/moderation", token), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin nhận broadcast khi hàng chờ thay đổi", func(t *testing.T) {
		token, err := utils.GenerateToken("admin-1", "admin")
		require.NoError(t, err)

		conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/moderation", token), nil)
		require.NoError(t, err)
		defer conn.Close()

		greeting := readJSON(t, conn)
		require.Equal(t, "connected", greeting["type"])

		BroadcastModerationChanged()
		changed := readJSON(t, conn)
		require.Equal(t, "moderation_queue_changed", changed["type"])
	})
}
