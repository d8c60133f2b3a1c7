package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
)

// ListCategories: danh sách danh mục cho dropdown chọn khi tạo việc làm
func ListCategories(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var categories []models.Category
	if err := db.Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh mục"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
	// Không nhận slug từ client: slug luôn sinh lại từ name khi lưu
}

func CreateCategory(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Tên danh mục là bắt buộc"}})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Tên danh mục là bắt buộc"}})
		return
	}

	// Kiểm tra trùng slug trước khi đụng unique index
	slugValue := slug.Make(name)
	var count int64
	db.Model(&models.Category{}).Where("slug = ?", slugValue).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Danh mục này đã tồn tại"}})
		return
	}

	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo danh mục"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Đã tạo danh mục",
		"category": category,
	})
}

func UpdateCategory(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy danh mục"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh mục"})
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Tên danh mục là bắt buộc"}})
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Tên danh mục là bắt buộc"}})
		return
	}

	slugValue := slug.Make(name)
	var count int64
	db.Model(&models.Category{}).
		Where("slug = ? AND id <> ?", slugValue, category.ID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"name": "Danh mục này đã tồn tại"}})
		return
	}

	category.Name = name // slug sinh lại trong BeforeSave
	if err := db.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật danh mục"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Đã cập nhật danh mục",
		"category": category,
	})
}

func DeleteCategory(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	res := db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá danh mục"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy danh mục"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá danh mục"})
}
