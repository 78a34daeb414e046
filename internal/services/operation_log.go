package services

import (
	"context"
	"encoding/json"

	"wms/internal/authctx"
	"wms/internal/models"
	"wms/pkg/logger"

	"gorm.io/gorm"
)

// OperationLogService 操作日志服务。记录主档数据变更的操作留痕，
// 尽力而为：写日志失败不影响业务请求。
type OperationLogService struct {
	db *gorm.DB
}

func NewOperationLogService(db *gorm.DB) *OperationLogService {
	return &OperationLogService{db: db}
}

// Record 记录一条操作日志
func (s *OperationLogService) Record(ctx context.Context, action, resource string, resourceID uint, detail interface{}) {
	entry := &models.OperationLog{
		Actor:      authctx.Actor(ctx),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
	}

	if detail != nil {
		if data, err := json.Marshal(detail); err == nil {
			entry.Detail = data
		}
	}

	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.GetLogger().WithError(err).Warnf("写入操作日志失败: %s %s/%d", action, resource, resourceID)
	}
}

// ListByResource 查询某个资源的操作历史，按时间倒序
func (s *OperationLogService) ListByResource(ctx context.Context, resource string, resourceID uint) ([]*models.OperationLog, error) {
	var logs []*models.OperationLog
	err := s.db.WithContext(ctx).
		Where("resource = ? AND resource_id = ?", resource, resourceID).
		Order("id DESC").
		Find(&logs).Error
	return logs, err
}
