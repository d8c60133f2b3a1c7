package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job là việc làm do quản trị viên biên tập, không có vòng đời duyệt tin
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	Category    Category  `gorm:"constraint:OnDelete:CASCADE;" json:"category,omitempty"`
	Company     string    `gorm:"size:80;not null" json:"company"`
	Experience  string    `gorm:"size:80;default:'không yêu cầu kinh nghiệm'" json:"experience"`
	Salary      string    `gorm:"size:80" json:"salary"`
	Description string    `gorm:"type:text" json:"description"`
	Skills      string    `gorm:"size:255" json:"skills"`
	Address     string    `gorm:"size:100;default:'địa chỉ công ty'" json:"address"`
	Phone       string    `gorm:"size:100" json:"phone"`
	Email       string    `gorm:"size:100" json:"email"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
