package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VacancyStatus string

const (
	StatusModeration VacancyStatus = "moderation" // Chờ duyệt
	StatusPublished  VacancyStatus = "published"  // Đã đăng
	StatusRejected   VacancyStatus = "rejected"   // Bị từ chối
)

// Vacancy là tin tuyển dụng do người dùng gửi, phải qua duyệt mới hiển thị
type Vacancy struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    *uuid.UUID    `gorm:"type:uuid" json:"author_id,omitempty"` // nullable: chấp nhận tin mồ côi
	Author      *User         `gorm:"constraint:OnDelete:CASCADE;" json:"author,omitempty"`
	Title       string        `gorm:"size:255;not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Company     string        `gorm:"size:255;not null" json:"company"`
	Location    string        `gorm:"size:255;default:''" json:"location"`
	Status      VacancyStatus `gorm:"type:varchar(20);not null;default:'moderation'" json:"status"`
	Salary      *string       `gorm:"size:100" json:"salary,omitempty"`
	Experience  *string       `gorm:"size:100" json:"experience,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (v *Vacancy) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// StatusDisplay trả về tên hiển thị của trạng thái
func (v *Vacancy) StatusDisplay() string {
	switch v.Status {
	case StatusModeration:
		return "Chờ duyệt"
	case StatusPublished:
		return "Đã đăng"
	case StatusRejected:
		return "Bị từ chối"
	}
	return string(v.Status)
}

// StatusColor trả về màu badge cho trạng thái, giá trị lạ rơi về secondary
func (v *Vacancy) StatusColor() string {
	switch v.Status {
	case StatusPublished:
		return "success"
	case StatusModeration:
		return "warning"
	case StatusRejected:
		return "danger"
	}
	return "secondary"
}
