package services

import (
	"strings"

	"wms/internal/models"
	apperrors "wms/pkg/errors"

	"gorm.io/gorm"
)

// MenuService 菜单服务，只读查询
type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

// GetByRoleIDs 查询角色集可达的菜单。
// 空角色集直接返回空列表不查库；多角色命中同一菜单去重；
// 按 sort 升序作为基线顺序，层级顺序由树装配负责。
func (s *MenuService) GetByRoleIDs(roleIDs []uint) ([]*models.Menu, error) {
	if len(roleIDs) == 0 {
		return []*models.Menu{}, nil
	}

	var menus []*models.Menu
	err := s.db.
		Where("id IN (?)", s.db.Model(&models.RoleMenu{}).Select("DISTINCT menu_id").Where("role_id IN ?", roleIDs)).
		Order("sort ASC").
		Find(&menus).Error
	if err != nil {
		return nil, apperrors.Storage("menus of roles", err)
	}
	return menus, nil
}

// PermissionsOf 汇总角色集的权限码：取可达菜单中
// permission 非空白的记录，去重后返回。
func (s *MenuService) PermissionsOf(roleIDs []uint) ([]string, error) {
	menus, err := s.GetByRoleIDs(roleIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(menus))
	permissions := make([]string, 0, len(menus))
	for _, menu := range menus {
		code := strings.TrimSpace(menu.Permission)
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		permissions = append(permissions, code)
	}
	return permissions, nil
}
