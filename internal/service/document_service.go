package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-case-api/internal/domain"
)

type DocumentInput struct {
	CaseID      uint    `json:"case_id" binding:"required"`
	FilePath    string  `json:"file_path" binding:"required"`
	Description *string `json:"description"`
}

type DocumentService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewDocumentService(db *gorm.DB, log *zap.Logger) *DocumentService {
	return &DocumentService{db: db, log: log}
}

func (s *DocumentService) Create(ctx context.Context, in DocumentInput) (*domain.Document, error) {
	d := domain.Document{
		CaseID:      in.CaseID,
		FilePath:    in.FilePath,
		Description: in.Description,
	}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, err
	}
	s.log.Info("document created", zap.Uint("id", d.ID), zap.Uint("case_id", d.CaseID))
	return &d, nil
}

func (s *DocumentService) Get(ctx context.Context, id uint) (*domain.Document, error) {
	var d domain.Document
	err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update 不改 case_id：文档不在案件之间移动。
func (s *DocumentService) Update(ctx context.Context, id uint, in DocumentInput) (*domain.Document, error) {
	var d domain.Document
	err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.FilePath = in.FilePath
	d.Description = in.Description
	if err := s.db.WithContext(ctx).Save(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	var d domain.Document
	err := s.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&d).Error; err != nil {
		return err
	}
	s.log.Info("document deleted", zap.Uint("id", id))
	return nil
}
