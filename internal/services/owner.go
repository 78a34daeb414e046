package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"wms/internal/models"
	"wms/internal/store"
	apperrors "wms/pkg/errors"

	"gorm.io/gorm"
)

const ownerResource = "owner"

// OwnerService 货主主档服务，通用实体存储之上的薄封装
type OwnerService struct {
	store *store.Store[models.Owner, *models.Owner]
	opLog *OperationLogService
}

func NewOwnerService(db *gorm.DB) *OwnerService {
	return &OwnerService{
		store: store.New[models.Owner](db),
		opLog: NewOperationLogService(db),
	}
}

// Create 创建货主
func (s *OwnerService) Create(ctx context.Context, code, name string) (*models.Owner, error) {
	if err := s.validateParams(code, name); err != nil {
		return nil, err
	}

	owner := &models.Owner{Code: code, Name: name}
	if err := s.store.Create(ctx, owner); err != nil {
		return nil, err
	}

	s.opLog.Record(ctx, models.OpActionCreate, ownerResource, owner.ID, owner)
	return owner, nil
}

// Update 更新货主，version 必须是调用方最近读到的版本号
func (s *OwnerService) Update(ctx context.Context, id uint, code, name string, version int) (*models.Owner, error) {
	if err := s.validateParams(code, name); err != nil {
		return nil, err
	}

	draft := &models.Owner{Code: code, Name: name}
	draft.Version = version

	updated, err := s.store.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	s.opLog.Record(ctx, models.OpActionUpdate, ownerResource, id, updated)
	return updated, nil
}

// Delete 逻辑删除货主
func (s *OwnerService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.opLog.Record(ctx, models.OpActionDelete, ownerResource, id, nil)
	return nil
}

// GetByID 按ID查询货主
func (s *OwnerService) GetByID(ctx context.Context, id uint) (*models.Owner, error) {
	return s.store.GetByID(ctx, id)
}

// List 分页列出货主
func (s *OwnerService) List(ctx context.Context, page, pageSize int) ([]*models.Owner, int64, error) {
	return s.store.List(ctx, page, pageSize)
}

// Search 关键字检索货主（编码或名称）
func (s *OwnerService) Search(ctx context.Context, keyword string, page, pageSize int) ([]*models.Owner, int64, error) {
	return s.store.Search(ctx, keyword, page, pageSize)
}

// ========== 验证方法 ==========

func (s *OwnerService) validateParams(code, name string) error {
	code = strings.TrimSpace(code)
	if len(code) < 2 || len(code) > 64 {
		return apperrors.InvalidInput("货主编码长度必须在2-64之间")
	}
	for _, r := range code {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return apperrors.InvalidInput("货主编码只能包含字母、数字、下划线和连字符")
		}
	}
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > 100 {
		return apperrors.InvalidInput("货主名称不能为空且长度不能超过100")
	}
	return nil
}
