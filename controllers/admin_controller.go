package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/services"
	"github.com/vnkhanh/job-board-backend/utils"
	"github.com/vnkhanh/job-board-backend/ws"
)

// Báo cho tác giả kết quả duyệt tin: lưu DB + đẩy realtime + email
func notifyStatusChange(db *gorm.DB, v *models.Vacancy) {
	if v.AuthorID == nil {
		return // tin mồ côi, không có ai để báo
	}

	var title, message string
	switch v.Status {
	case models.StatusPublished:
		title = "Tin tuyển dụng đã được duyệt"
		message = fmt.Sprintf("Tin \"%s\" của bạn đã được đăng công khai.", v.Title)
	case models.StatusRejected:
		title = "Tin tuyển dụng bị từ chối"
		message = fmt.Sprintf("Tin \"%s\" của bạn đã bị từ chối.", v.Title)
	default:
		title = "Trạng thái tin thay đổi"
		message = fmt.Sprintf("Tin \"%s\" chuyển sang trạng thái %s.", v.Title, v.StatusDisplay())
	}

	notif := models.Notification{
		UserID:    *v.AuthorID,
		Title:     title,
		Message:   message,
		Type:      "vacancy_status",
		VacancyID: &v.ID,
	}
	if err := db.Create(&notif).Error; err != nil {
		log.Println("Không thể lưu thông báo:", err)
	}

	ws.SendNotification(v.AuthorID.String(), map[string]interface{}{
		"id":         notif.ID.String(),
		"type":       notif.Type,
		"title":      title,
		"message":    message,
		"vacancy_id": v.ID.String(),
		"status":     v.Status,
	})

	// Cập nhật badge số lượng chưa đọc
	var count int64
	db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", *v.AuthorID).
		Count(&count)
	ws.SendBadgeUpdate(v.AuthorID.String(), count)

	// Gửi email thông báo (không chặn luồng)
	var author models.User
	if err := db.First(&author, "id = ?", *v.AuthorID).Error; err != nil || author.Email == "" {
		return
	}
	go func() {
		body := `
		<h3>Xin chào ` + author.Username + `,</h3>
		<p>` + message + `</p>
		<hr>
		<p><i>Đây là email tự động, vui lòng không trả lời.</i></p>
		`
		if err := utils.SendEmail(author.Email, title, body); err != nil {
			log.Println("Lỗi gửi email:", err)
		}
	}()
}

// ListModerationQueue: danh sách tin mọi trạng thái cho admin,
// lọc được theo ?status=
func ListModerationQueue(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Vacancy{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var vacancies []models.Vacancy
	if err := query.
		Preload("Author").
		Order("created_at DESC").
		Find(&vacancies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách tin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vacancies": vacancies})
}

type SetStatusInput struct {
	Status models.VacancyStatus `json:"status" binding:"required"`
}

// SetVacancyStatus đặt trạng thái cho một tin
func SetVacancyStatus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var input SetStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	vacancy, err := services.SetStatus(db, id, input.Status)
	if err != nil {
		respondVacancyError(c, err)
		return
	}

	notifyStatusChange(db, vacancy)
	ws.BroadcastModerationChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã cập nhật trạng thái",
		"vacancy": vacancy,
	})
}

type BulkStatusInput struct {
	IDs    []string             `json:"ids" binding:"required,min=1"`
	Status models.VacancyStatus `json:"status" binding:"required"`
}

// BulkSetVacancyStatus duyệt/từ chối nhiều tin một lần (thao tác admin)
func BulkSetVacancyStatus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input BulkStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	ids := make([]uuid.UUID, 0, len(input.IDs))
	for _, raw := range input.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ: " + raw})
			return
		}
		ids = append(ids, id)
	}

	updated, err := services.BulkSetStatus(db, ids, input.Status)
	if err != nil {
		respondVacancyError(c, err)
		return
	}

	// Báo từng tác giả sau khi cập nhật
	var vacancies []models.Vacancy
	if err := db.Where("id IN ?", ids).Find(&vacancies).Error; err == nil {
		for i := range vacancies {
			notifyStatusChange(db, &vacancies[i])
		}
	}
	ws.BroadcastModerationChanged()

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d tin đã được cập nhật", updated),
		"updated": updated,
	})
}

// DeleteUser xoá tài khoản, tin của user bị xoá theo (FK cascade)
func DeleteUser(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	if id.String() == c.GetString("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không thể tự xoá tài khoản của mình"})
		return
	}

	res := db.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá người dùng"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá người dùng"})
}
