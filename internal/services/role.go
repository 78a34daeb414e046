package services

import (
	"wms/internal/models"
	apperrors "wms/pkg/errors"

	"gorm.io/gorm"
)

// RoleService 角色服务，只读查询
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// GetByUserID 查询用户拥有的全部角色
func (s *RoleService) GetByUserID(userID uint) ([]*models.Role, error) {
	var roles []*models.Role
	err := s.db.
		Where("id IN (?)", s.db.Model(&models.UserRole{}).Select("role_id").Where("user_id = ?", userID)).
		Find(&roles).Error
	if err != nil {
		return nil, apperrors.Storage("roles of user", err)
	}
	return roles, nil
}

// CodesOf 提取角色代码列表
func CodesOf(roles []*models.Role) []string {
	codes := make([]string, 0, len(roles))
	for _, role := range roles {
		codes = append(codes, role.Code)
	}
	return codes
}

// IDsOf 提取角色ID列表
func IDsOf(roles []*models.Role) []uint {
	ids := make([]uint, 0, len(roles))
	for _, role := range roles {
		ids = append(ids, role.ID)
	}
	return ids
}
