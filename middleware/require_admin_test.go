package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/job-board-backend/config"
	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/utils"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	config.DB = db

	executed := false
	r := gin.New()
	admin := r.Group("/admin")
	admin.Use(AuthMiddleware(), RequireRoles(string(models.RoleAdmin)))
	admin.POST("/action", func(c *gin.Context) {
		executed = true
		c.JSON(http.StatusOK, gin.H{"message": "Đã thực hiện"})
	})
	return r, db, &executed
}

func callAdmin(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/admin/action", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireRoles(t *testing.T) {
	t.Run("user thường bị chặn, handler không được chạy", func(t *testing.T) {
		r, db, executed := setupAdminRouter(t)
		member := models.User{Username: "member", Password: "x", Role: models.RoleUser}
		require.NoError(t, db.Create(&member).Error)

		token, err := utils.GenerateToken(member.ID.String(), string(member.Role))
		require.NoError(t, err)

		w := callAdmin(r, token)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.False(t, *executed)
	})

	t.Run("không có token thì trả về 401", func(t *testing.T) {
		r, _, executed := setupAdminRouter(t)

		w := callAdmin(r, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.False(t, *executed)
	})

	t.Run("admin được phép truy cập", func(t *testing.T) {
		r, db, executed := setupAdminRouter(t)
		boss := models.User{Username: "boss", Password: "x", Role: models.RoleAdmin}
		require.NoError(t, db.Create(&boss).Error)

		token, err := utils.GenerateToken(boss.ID.String(), string(boss.Role))
		require.NoError(t, err)

		w := callAdmin(r, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, *executed)
	})
}
