package models

// Role 角色模型，只读参照数据
type Role struct {
	BaseModel
	Code string `gorm:"uniqueIndex;size:100;not null" json:"code"` // 角色代码，如 "ADMIN"
	Name string `gorm:"size:100;not null" json:"name"`             // 角色名称，如 "系统管理员"

	// 关联关系
	Menus []Menu `gorm:"many2many:sys_role_menus;" json:"menus,omitempty"`
}

// TableName 表名
func (r *Role) TableName() string {
	return "sys_roles"
}

// 系统预定义角色常量
const (
	RoleAdmin = "ADMIN" // 系统管理员
)

// RoleMenu 角色菜单授权关联表
type RoleMenu struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	RoleID uint `gorm:"not null;index" json:"role_id"`
	MenuID uint `gorm:"not null;index" json:"menu_id"`
}

// TableName 表名
func (rm *RoleMenu) TableName() string {
	return "sys_role_menus"
}
