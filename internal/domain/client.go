package domain

import "time"

type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	ContactPerson string    `gorm:"size:255" json:"contact_person"`
	Phone         string    `gorm:"size:64" json:"phone"`
	Email         string    `gorm:"size:255" json:"email"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
