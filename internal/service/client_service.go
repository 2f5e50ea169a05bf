package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-case-api/internal/domain"
)

type ClientInput struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required"`
}

type ClientService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewClientService(db *gorm.DB, log *zap.Logger) *ClientService {
	return &ClientService{db: db, log: log}
}

func (s *ClientService) Create(ctx context.Context, in ClientInput) (*domain.Client, error) {
	cl := domain.Client{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
	}
	if err := s.db.WithContext(ctx).Create(&cl).Error; err != nil {
		return nil, err
	}
	s.log.Info("client created", zap.Uint("id", cl.ID))
	return &cl, nil
}

func (s *ClientService) Get(ctx context.Context, id uint) (*domain.Client, error) {
	var cl domain.Client
	err := s.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (s *ClientService) Update(ctx context.Context, id uint, in ClientInput) (*domain.Client, error) {
	var cl domain.Client
	err := s.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cl.Name = in.Name
	cl.ContactPerson = in.ContactPerson
	cl.Phone = in.Phone
	cl.Email = in.Email
	if err := s.db.WithContext(ctx).Save(&cl).Error; err != nil {
		return nil, err
	}
	return &cl, nil
}

// Delete 不做级联：该客户名下的案件保留（孤儿策略见 DESIGN.md）。
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	var cl domain.Client
	err := s.db.WithContext(ctx).First(&cl, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&cl).Error; err != nil {
		return err
	}
	s.log.Info("client deleted", zap.Uint("id", id))
	return nil
}
