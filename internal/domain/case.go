package domain

import "time"

type Case struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ClientID    uint       `gorm:"index" json:"client_id"`
	CaseName    string     `gorm:"size:255;not null" json:"case_name"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:32" json:"status"` // 自由字符串，不做状态机校验
	CourtDate   *time.Time `json:"court_date"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// 只读关联：查询时 Preload，Client/Document 不持有反向引用
	Client    Client     `gorm:"foreignKey:ClientID" json:"client"`
	Documents []Document `gorm:"foreignKey:CaseID" json:"documents"`
}

func (Case) TableName() string { return "cases" }
