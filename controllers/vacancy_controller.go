package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/services"
	"github.com/vnkhanh/job-board-backend/utils"
)

func pageParam(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			page = n // giá trị ngoài khoảng sẽ được service kẹp lại
		}
	}
	return page
}

// ListVacancies: trang "Tất cả tin tuyển dụng" (chỉ tin đã đăng)
func ListVacancies(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	page, err := services.VacancyListing(db, c.Query("search"), pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách tin"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vacancies":    page.Items,
		"page":         page,
		"search_query": c.Query("search"),
	})
}

// GetVacancyDetail xem chi tiết một tin (mọi trạng thái)
func GetVacancyDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var vacancy models.Vacancy
	if err := db.Preload("Author").First(&vacancy, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tin tuyển dụng"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy tin tuyển dụng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vacancy":        vacancy,
		"status_display": vacancy.StatusDisplay(),
		"status_color":   vacancy.StatusColor(),
	})
}

// CreateVacancy gửi tin mới, tin luôn vào hàng chờ duyệt
func CreateVacancy(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.VacancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	vacancy, err := services.SubmitVacancy(db, input, userID)
	if err != nil {
		respondVacancyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tin tuyển dụng đã được gửi chờ duyệt!",
		"vacancy": vacancy,
	})
}

// UpdateVacancy: chỉ tác giả được sửa, trạng thái giữ nguyên
func UpdateVacancy(c *gin.Context) {
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

	var input services.VacancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	vacancy, err := services.UpdateVacancy(db, id, input, userID)
	if err != nil {
		respondVacancyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tin tuyển dụng đã được cập nhật!",
		"vacancy": vacancy,
	})
}

// DeleteVacancy: chỉ tác giả được xoá
func DeleteVacancy(c *gin.Context) {
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

	if err := services.DeleteVacancy(db, id, userID); err != nil {
		respondVacancyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tin tuyển dụng đã được xoá!"})
}

// respondVacancyError map lỗi service sang mã HTTP
func respondVacancyError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy tin tuyển dụng"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn chỉ có thể thao tác trên tin của chính mình."})
	case errors.Is(err, services.ErrBadStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Trạng thái không hợp lệ"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Đã xảy ra lỗi, vui lòng thử lại"})
	}
}
