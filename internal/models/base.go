package models

import (
	"time"
)

// BaseModel 基础模型，用于只读参照数据（用户、角色、菜单）
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditModel 主档数据基础模型：审计字段、乐观锁版本号、逻辑删除标记。
// 审计与版本字段全部由 store 层显式填充，关闭gorm的自动时间戳，
// 避免出现两套写入来源。
type AuditModel struct {
	ID        uint       `json:"id" gorm:"primarykey"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime:false"`
	CreatedBy string     `json:"created_by" gorm:"size:50;not null"`
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	UpdatedBy *string    `json:"updated_by" gorm:"size:50"`
	Version   int        `json:"version" gorm:"not null;default:0"`
	Deleted   bool       `json:"-" gorm:"not null;default:false;index"`
}

// Audit 返回审计字段，供通用存储填充
func (m *AuditModel) Audit() *AuditModel {
	return m
}
