package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"legal-case-api/internal/domain"
)

// UserInput 的 Password 已在 API 边界被哈希；服务层只存不管强度。
type UserInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log}
}

// Create 不做重名预检；username 冲突由唯一索引报错并原样上抛。
func (s *UserService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	u := domain.User{
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.Uint("id", u.ID), zap.String("username", u.Username))
	return &u, nil
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserInput) (*domain.User, error) {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.Username = in.Username
	u.Password = in.Password
	u.Role = in.Role
	if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	var u domain.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&u).Error; err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint("id", id))
	return nil
}
