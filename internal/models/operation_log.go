package models

import (
	"time"

	"gorm.io/datatypes"
)

// OperationLog 操作日志，主档数据变更的追踪记录
type OperationLog struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	Actor      string         `gorm:"size:50;not null;index" json:"actor"`    // 操作者
	Action     string         `gorm:"size:20;not null" json:"action"`         // create / update / delete
	Resource   string         `gorm:"size:50;not null;index" json:"resource"` // 资源类型，如 "owner"
	ResourceID uint           `gorm:"not null" json:"resource_id"`            // 资源ID
	Detail     datatypes.JSON `json:"detail"`                                 // 变更详情
}

// TableName 表名
func (l *OperationLog) TableName() string {
	return "sys_operation_logs"
}

// 操作类型常量
const (
	OpActionCreate = "create"
	OpActionUpdate = "update"
	OpActionDelete = "delete"
)
