package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vnkhanh/job-board-backend/models"
)

// VacancyInput là dữ liệu form đăng/sửa tin. Không có field status:
// client không thể tự đặt trạng thái khi gửi tin.
type VacancyInput struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Company     string  `json:"company" binding:"required"`
	Location    string  `json:"location"`
	Salary      *string `json:"salary"`
	Experience  *string `json:"experience"`
}

func validateVacancyInput(in *VacancyInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Company = strings.TrimSpace(in.Company)
	in.Location = strings.TrimSpace(in.Location)
	in.Salary = trimOptional(in.Salary)
	in.Experience = trimOptional(in.Experience)

	fields := map[string]string{}
	if in.Title == "" {
		fields["title"] = "Tiêu đề là bắt buộc"
	}
	if in.Description == "" {
		fields["description"] = "Mô tả là bắt buộc"
	}
	if in.Company == "" {
		fields["company"] = "Tên công ty là bắt buộc"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// chuỗi rỗng coi như không nhập
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// SubmitVacancy tạo tin mới, luôn ở trạng thái chờ duyệt
func SubmitVacancy(db *gorm.DB, in VacancyInput, authorID uuid.UUID) (*models.Vacancy, error) {
	if err := validateVacancyInput(&in); err != nil {
		return nil, err
	}
	v := models.Vacancy{
		AuthorID:    &authorID,
		Title:       in.Title,
		Description: in.Description,
		Company:     in.Company,
		Location:    in.Location,
		Salary:      in.Salary,
		Experience:  in.Experience,
		Status:      models.StatusModeration,
	}
	if err := db.Create(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// getOwnedVacancy tìm tin theo id và kiểm tra quyền tác giả.
// Tin không có tác giả (author null) thì không ai sửa được ngoài admin.
func getOwnedVacancy(db *gorm.DB, id, userID uuid.UUID) (*models.Vacancy, error) {
	var v models.Vacancy
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if v.AuthorID == nil || *v.AuthorID != userID {
		return nil, ErrNotOwner
	}
	return &v, nil
}

// UpdateVacancy ghi đè nội dung tin, giữ nguyên trạng thái hiện tại
func UpdateVacancy(db *gorm.DB, id uuid.UUID, in VacancyInput, userID uuid.UUID) (*models.Vacancy, error) {
	v, err := getOwnedVacancy(db, id, userID)
	if err != nil {
		return nil, err
	}
	if err := validateVacancyInput(&in); err != nil {
		return nil, err
	}
	v.Title = in.Title
	v.Description = in.Description
	v.Company = in.Company
	v.Location = in.Location
	v.Salary = in.Salary
	v.Experience = in.Experience
	if err := db.Save(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

func DeleteVacancy(db *gorm.DB, id, userID uuid.UUID) error {
	v, err := getOwnedVacancy(db, id, userID)
	if err != nil {
		return err
	}
	return db.Delete(v).Error
}

// Admin chỉ được chuyển tin sang published hoặc rejected,
// không tạo ra trạng thái mới
func allowedModerationStatus(s models.VacancyStatus) bool {
	return s == models.StatusPublished || s == models.StatusRejected
}

// BulkSetStatus đặt trạng thái cho nhiều tin một lần (thao tác admin),
// trả về số bản ghi bị ảnh hưởng. Id không tồn tại được bỏ qua.
func BulkSetStatus(db *gorm.DB, ids []uuid.UUID, status models.VacancyStatus) (int64, error) {
	if !allowedModerationStatus(status) {
		return 0, ErrBadStatus
	}
	if len(ids) == 0 {
		return 0, nil
	}
	res := db.Model(&models.Vacancy{}).Where("id IN ?", ids).Update("status", status)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// SetStatus đặt trạng thái cho một tin (admin sửa trực tiếp trong danh sách)
func SetStatus(db *gorm.DB, id uuid.UUID, status models.VacancyStatus) (*models.Vacancy, error) {
	if !allowedModerationStatus(status) {
		return nil, ErrBadStatus
	}
	var v models.Vacancy
	if err := db.First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	v.Status = status
	if err := db.Save(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
