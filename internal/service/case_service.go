package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"legal-case-api/internal/domain"
)

// CaseInput 创建/更新共用载荷；status 缺省值由 API 边界填充，服务层不补默认
type CaseInput struct {
	ClientID    uint       `json:"client_id" binding:"required"`
	CaseName    string     `json:"case_name" binding:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	CourtDate   *time.Time `json:"court_date"`
}

type CaseService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCaseService(db *gorm.DB, log *zap.Logger) *CaseService {
	return &CaseService{db: db, log: log}
}

// Create inserts a new case and returns it fully populated, including the
// embedded client and document list. FK existence is not pre-checked.
func (s *CaseService) Create(ctx context.Context, in CaseInput) (*domain.Case, error) {
	c := domain.Case{
		ClientID:    in.ClientID,
		CaseName:    in.CaseName,
		Description: in.Description,
		Status:      in.Status,
		CourtDate:   in.CourtDate,
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&c).Error; err != nil {
		return nil, err
	}
	s.log.Info("case created", zap.Uint("id", c.ID), zap.Uint("client_id", c.ClientID))
	return s.Get(ctx, c.ID)
}

// Get returns (nil, nil) when no row matches.
func (s *CaseService) Get(ctx context.Context, id uint) (*domain.Case, error) {
	var c domain.Case
	err := s.db.WithContext(ctx).Preload("Client").Preload("Documents").First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if c.Documents == nil {
		c.Documents = []domain.Document{}
	}
	return &c, nil
}

// Update overwrites the mutable fields in full. ID、client_id、created_at 不动，
// updated_at 由 store 刷新。Absent id → (nil, nil)，不发生任何写入。
func (s *CaseService) Update(ctx context.Context, id uint, in CaseInput) (*domain.Case, error) {
	var c domain.Case
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.CaseName = in.CaseName
	c.Description = in.Description
	c.Status = in.Status
	c.CourtDate = in.CourtDate
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(&c).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete 幂等：不存在的 id 直接无事发生。无级联，关联文档保留（见 DESIGN.md）。
func (s *CaseService) Delete(ctx context.Context, id uint) error {
	var c domain.Case
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&c).Error; err != nil {
		return err
	}
	s.log.Info("case deleted", zap.Uint("id", id))
	return nil
}
