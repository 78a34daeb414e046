package services

import (
	"errors"

	"wms/internal/models"
	apperrors "wms/pkg/errors"

	"gorm.io/gorm"
)

// UserService 用户服务，承担登录凭证校验。
// 用户数据对本服务只读，创建和维护在范围之外。
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetByID 根据ID获取用户
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("user get", err)
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("user get", err)
	}
	return &user, nil
}

// Authenticate 校验用户名密码。失败原因区分为用户不存在、
// 密码错误、账号未启用三类，仅供日志使用；对外消息由HTTP层统一。
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, apperrors.ErrPasswordMismatch
	}
	if !user.IsEnabled() {
		return nil, apperrors.ErrAccountDisabled
	}
	return user, nil
}
