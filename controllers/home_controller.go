package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/services"
)

// HomePage: tin đã đăng + bộ lọc search/salary/experience + phân trang
func HomePage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	filter := services.HomeFilter{
		Search:     c.Query("search"),
		Salary:     c.Query("salary"),
		Experience: c.Query("experience"),
	}

	page, err := services.HomeListing(db, filter, pageParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách tin"})
		return
	}

	// Giá trị distinct để dựng dropdown lọc
	opts, err := services.ListFilterOptions(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy bộ lọc"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vacancies":           page.Items,
		"page":                page,
		"salaries":            opts.Salaries,
		"experiences":         opts.Experiences,
		"selected_salary":     filter.Salary,
		"selected_experience": filter.Experience,
		"search_query":        filter.Search,
	})
}

func AboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "Về chúng tôi",
		"content": "Nền tảng kết nối nhà tuyển dụng và người tìm việc.",
	})
}

func ContactPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Liên hệ",
		"email": "support@jobboard.local",
		"phone": "+84 000 000 000",
	})
}
