package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User 用户模型。用户由后台预置（种子数据或运维脚本），
// 本服务只读，仅登录时校验状态与口令。
type User struct {
	BaseModel
	Username string `json:"username" gorm:"unique;not null;size:50;index"`
	Password string `json:"-" gorm:"not null;size:255"`
	Nickname string `json:"nickname" gorm:"size:100"`
	Status   string `json:"status" gorm:"default:'ENABLED';size:20"`

	// 多对多关联
	Roles []Role `gorm:"many2many:sys_user_roles;" json:"roles,omitempty"`
}

// TableName 表名
func (u *User) TableName() string {
	return "sys_users"
}

// 用户状态常量
const (
	UserStatusEnabled  = "ENABLED"
	UserStatusDisabled = "DISABLED"
)

// IsEnabled 用户是否可登录
func (u *User) IsEnabled() bool {
	return u.Status == UserStatusEnabled
}

// SetPassword 设置密码
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword 验证密码
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserRole 用户角色关联表
type UserRole struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	RoleID uint `gorm:"not null;index" json:"role_id"`
}

// TableName 表名
func (ur *UserRole) TableName() string {
	return "sys_user_roles"
}
