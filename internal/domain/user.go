package domain

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	Password  string    `gorm:"size:100;not null" json:"-"` // bcrypt 哈希，永不外发
	Role      string    `gorm:"size:32" json:"role"`        // "admin"/"attorney"/"paralegal"
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
