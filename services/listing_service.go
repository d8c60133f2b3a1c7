package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/config"
	"github.com/vnkhanh/job-board-backend/models"
)

// Page là một trang kết quả đã phân trang
type Page struct {
	Items      []models.Vacancy `json:"items"`
	Number     int              `json:"number"`
	Size       int              `json:"size"`
	TotalItems int64            `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	HasNext    bool             `json:"has_next"`
	HasPrev    bool             `json:"has_prev"`
}

// HomeFilter là bộ lọc trên trang chủ
type HomeFilter struct {
	Search     string
	Salary     string
	Experience string
}

func publishedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Vacancy{}).Where("status = ?", models.StatusPublished)
}

// Dùng LOWER + LIKE thay vì ILIKE để chạy được trên cả postgres lẫn sqlite
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// HomeListing trả về trang chủ: tin đã đăng, lọc theo search/salary/experience.
// Search khớp title hoặc company (hẹp hơn trang danh sách).
func HomeListing(db *gorm.DB, f HomeFilter, page int) (*Page, error) {
	q := publishedQuery(db)
	if s := strings.TrimSpace(f.Search); s != "" {
		pat := likePattern(s)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ?", pat, pat)
	}
	// salary/experience là cột text, so sánh >= theo thứ tự chuỗi
	// (giữ nguyên hành vi cũ của bộ lọc)
	if f.Salary != "" {
		q = q.Where("salary >= ?", f.Salary)
	}
	if f.Experience != "" {
		q = q.Where("experience >= ?", f.Experience)
	}
	return paginate(q, page, config.App.HomePageSize)
}

// VacancyListing trả về trang "Tất cả tin tuyển dụng".
// Search khớp cả title, company lẫn description.
func VacancyListing(db *gorm.DB, search string, page int) (*Page, error) {
	q := publishedQuery(db)
	if s := strings.TrimSpace(search); s != "" {
		pat := likePattern(s)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", pat, pat, pat)
	}
	return paginate(q, page, config.App.VacancyPageSize)
}

// paginate kẹp số trang về [1, totalPages] thay vì trả lỗi
func paginate(q *gorm.DB, page, size int) (*Page, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var items []models.Vacancy
	if err := q.Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return &Page{
		Items:      items,
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// FilterOptions là các giá trị salary/experience để hiển thị dropdown lọc
type FilterOptions struct {
	Salaries    []string `json:"salaries"`
	Experiences []string `json:"experiences"`
}

// ListFilterOptions lấy các giá trị distinct (bỏ null/rỗng) trên tin đã đăng
func ListFilterOptions(db *gorm.DB) (*FilterOptions, error) {
	opts := &FilterOptions{}
	if err := publishedQuery(db).
		Where("salary IS NOT NULL AND salary <> ''").
		Distinct("salary").
		Order("salary").
		Pluck("salary", &opts.Salaries).Error; err != nil {
		return nil, err
	}
	if err := publishedQuery(db).
		Where("experience IS NOT NULL AND experience <> ''").
		Distinct("experience").
		Order("experience").
		Pluck("experience", &opts.Experiences).Error; err != nil {
		return nil, err
	}
	return opts, nil
}

// JobListing trả về danh sách việc làm biên tập, lọc theo tiêu đề,
// kèm các giá trị salary distinct cho dropdown
func JobListing(db *gorm.DB, q string) ([]models.Job, []string, error) {
	query := db.Model(&models.Job{}).Preload("Category")
	if s := strings.TrimSpace(q); s != "" {
		query = query.Where("LOWER(title) LIKE ?", likePattern(s))
	}
	var jobs []models.Job
	if err := query.Find(&jobs).Error; err != nil {
		return nil, nil, err
	}

	var salaries []string
	if err := db.Model(&models.Job{}).
		Distinct("salary").
		Order("salary").
		Pluck("salary", &salaries).Error; err != nil {
		return nil, nil, err
	}
	return jobs, salaries, nil
}
