package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/utils"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return uuid.Nil, false
	}
	return userID, true
}

// GetProfile trả về hồ sơ + tin của user + thống kê theo trạng thái.
// Profile chưa có thì tạo mới (lazy).
func GetProfile(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	var profile models.Profile
	if err := db.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo hồ sơ"})
		return
	}

	// Thống kê lỗi thì trả số 0, không làm hỏng cả trang hồ sơ
	vacancies, stats := profileStats(db, userID)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"role":       user.Role,
		},
		"profile":   profile,
		"vacancies": vacancies,
		"stats":     stats,
	})
}

func profileStats(db *gorm.DB, userID uuid.UUID) ([]models.Vacancy, gin.H) {
	zero := gin.H{
		"total_vacancies":      0,
		"published_vacancies":  0,
		"moderation_vacancies": 0,
		"rejected_vacancies":   0,
	}

	var vacancies []models.Vacancy
	if err := db.Where("author_id = ?", userID).
		Order("created_at DESC").
		Find(&vacancies).Error; err != nil {
		log.Println("Lỗi khi lấy tin của user:", err)
		return []models.Vacancy{}, zero
	}

	counts := map[models.VacancyStatus]int{}
	for _, v := range vacancies {
		counts[v.Status]++
	}
	return vacancies, gin.H{
		"total_vacancies":      len(vacancies),
		"published_vacancies":  counts[models.StatusPublished],
		"moderation_vacancies": counts[models.StatusModeration],
		"rejected_vacancies":   counts[models.StatusRejected],
	}
}

type UpdateProfileInput struct {
	Username  *string `json:"username"`
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

func UpdateProfile(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	// Username mới phải chưa có ai dùng (trừ chính mình)
	if input.Username != nil && *input.Username != user.Username {
		var count int64
		db.Model(&models.User{}).
			Where("username = ? AND id <> ?", *input.Username, user.ID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"username": "Tên đăng nhập này đã được sử dụng"}})
			return
		}
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật hồ sơ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Hồ sơ đã được cập nhật!",
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		},
	})
}

// UploadAvatar nhận multipart file "avatar", chỉ chấp nhận ảnh
func UploadAvatar(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"avatar": "Thiếu file avatar"}})
		return
	}

	url, err := utils.UploadAvatarToSupabase(fileHeader, userID.String())
	if err != nil {
		if errors.Is(err, utils.ErrNotImage) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"avatar": "Không thể tải avatar. Chỉ chấp nhận file ảnh."}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tải file lên"})
		return
	}

	var profile models.Profile
	if err := db.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo hồ sơ"})
		return
	}
	profile.AvatarURL = &url
	if err := db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu avatar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Avatar đã được cập nhật!",
		"profile": profile,
	})
}
