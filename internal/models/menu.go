package models

// Menu 菜单模型。parent_id 为空或0表示根节点，整体构成森林。
// 带有非空 permission 的记录同时贡献一个权限码，与树位置无关。
type Menu struct {
	BaseModel
	ParentID   *uint  `gorm:"index" json:"parent_id"`        // 父菜单ID，空或0为根
	Title      string `gorm:"size:100;not null" json:"title"` // 菜单标题
	Path       string `gorm:"size:200" json:"path"`           // 前端路由路径
	Component  string `gorm:"size:200" json:"component"`      // 前端组件引用
	Type       string `gorm:"size:20;not null" json:"type"`   // 类型：DIR, MENU, BUTTON
	Permission string `gorm:"size:100" json:"permission"`     // 权限码，如 "owner:create"
	Sort       *int   `json:"sort"`                           // 排序键，空值排在最后
	Icon       string `gorm:"size:100" json:"icon"`           // 图标
}

// TableName 表名
func (m *Menu) TableName() string {
	return "sys_menus"
}

// 菜单类型常量
const (
	MenuTypeDir    = "DIR"    // 目录
	MenuTypeMenu   = "MENU"   // 可导航页面
	MenuTypeButton = "BUTTON" // 操作权限
)

// IsRoot 是否为根节点
func (m *Menu) IsRoot() bool {
	return m.ParentID == nil || *m.ParentID == 0
}
