package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
	"github.com/vnkhanh/job-board-backend/services"
	"github.com/vnkhanh/job-board-backend/utils"
)

// ListJobs: danh sách việc làm biên tập, lọc theo tiêu đề bằng ?q=
func ListJobs(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	jobs, salaries, err := services.JobListing(db, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách việc làm"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":     jobs,
		"salaries": salaries,
		"query":    c.Query("q"),
	})
}

func GetJobDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var job models.Job
	if err := db.Preload("Category").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy việc làm"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy việc làm"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

// ====== ADMIN CRUD ======

type JobInput struct {
	Title       string `json:"title" binding:"required"`
	CategoryID  string `json:"category_id" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Experience  string `json:"experience"`
	Salary      string `json:"salary" binding:"required"`
	Description string `json:"description" binding:"required"`
	Skills      string `json:"skills"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email" binding:"omitempty,email"`
}

func (in *JobInput) apply(db *gorm.DB, job *models.Job) error {
	categoryID, err := uuid.Parse(in.CategoryID)
	if err != nil {
		return errors.New("category_id không hợp lệ")
	}
	// Category phải tồn tại (FK bắt buộc)
	var category models.Category
	if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
		return errors.New("danh mục không tồn tại")
	}

	job.Title = in.Title
	job.CategoryID = categoryID
	job.Company = in.Company
	job.Salary = in.Salary
	job.Description = in.Description
	job.Skills = in.Skills
	job.Phone = in.Phone
	job.Email = in.Email
	if in.Experience != "" {
		job.Experience = in.Experience
	}
	if in.Address != "" {
		job.Address = in.Address
	}
	return nil
}

func CreateJob(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	var job models.Job
	if err := input.apply(db, &job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := db.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo việc làm"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Đã tạo việc làm", "job": job})
}

func UpdateJob(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy việc làm"})
		return
	}

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}
	if err := input.apply(db, &job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := db.Save(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật việc làm"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã cập nhật việc làm", "job": job})
}

func DeleteJob(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id không hợp lệ"})
		return
	}

	res := db.Delete(&models.Job{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá việc làm"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy việc làm"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá việc làm"})
}
