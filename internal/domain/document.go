package domain

import "time"

type Document struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CaseID      uint      `gorm:"index" json:"case_id"`
	FilePath    string    `gorm:"size:512;not null" json:"file_path"`
	Description *string   `gorm:"size:512" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Document) TableName() string { return "documents" }
