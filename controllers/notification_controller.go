package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/ws"
)

// ListNotifications: thông báo của user hiện tại, mới nhất trước
func ListNotifications(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var notifications []models.Notification
	if err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy thông báo"})
		return
	}

	var unread int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"unread":        unread,
	})
}

// MarkNotificationRead đánh dấu một thông báo đã đọc
func MarkNotificationRead(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var notif models.Notification
	if err := db.First(&notif, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy thông báo"})
		return
	}

	if !notif.IsRead {
		now := time.Now()
		notif.IsRead = true
		notif.ReadAt = &now
		if err := db.Save(&notif).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật thông báo"})
			return
		}

		var unread int64
		db.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = false", userID).
			Count(&unread)
		ws.SendBadgeUpdate(userID.String(), unread)
	}

	c.JSON(http.StatusOK, gin.H{"notification": notif})
}
