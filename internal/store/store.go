// Package store 提供主档实体的通用持久化契约：
// 创建/更新自动填充审计字段，更新走乐观锁版本守卫，
// 删除为逻辑删除，唯一性检查与写入在同一事务内完成。
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wms/internal/authctx"
	"wms/internal/models"
	apperrors "wms/pkg/errors"

	"gorm.io/gorm"
)

// Record 主档实体需要实现的契约，*models.Owner 是一个实例
type Record interface {
	Audit() *models.AuditModel
	UniqueColumn() string
	UniqueValue() string
	SearchColumns() []string
	UpdateValues() map[string]interface{}
}

// Ptr 约束：T的指针类型且满足 Record
type Ptr[T any] interface {
	*T
	Record
}

// Store 泛型主档实体存储
type Store[T any, P Ptr[T]] struct {
	db *gorm.DB
}

// New 创建实体存储
func New[T any, P Ptr[T]](db *gorm.DB) *Store[T, P] {
	return &Store[T, P]{db: db}
}

// Create 创建实体。同一事务内先做唯一性检查再插入，
// 数据库唯一索引作为并发竞争时的最终裁决。
func (s *Store[T, P]) Create(ctx context.Context, e P) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		cond := fmt.Sprintf("%s = ? AND deleted = ?", e.UniqueColumn())
		if err := tx.Model(new(T)).Where(cond, e.UniqueValue(), false).Count(&count).Error; err != nil {
			return apperrors.Storage("uniqueness check", err)
		}
		if count > 0 {
			return &apperrors.DuplicateKeyError{Field: e.UniqueColumn(), Value: e.UniqueValue()}
		}

		audit := e.Audit()
		audit.ID = 0
		audit.CreatedAt = time.Now()
		audit.CreatedBy = authctx.Actor(ctx)
		audit.UpdatedAt = nil
		audit.UpdatedBy = nil
		audit.Version = 0
		audit.Deleted = false

		if err := tx.Create(e).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// 预检查通过但插入撞上唯一索引：并发创建，以约束结果为准
				return &apperrors.DuplicateKeyError{Field: e.UniqueColumn(), Value: e.UniqueValue()}
			}
			return apperrors.Storage("create", err)
		}
		return nil
	})
}

// Update 按ID更新实体。e.Audit().Version 必须是调用方读到的版本，
// 更新以 version 守卫提交，守卫失败返回 ErrVersionConflict，绝不静默覆盖。
func (s *Store[T, P]) Update(ctx context.Context, id uint, e P) (P, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 唯一字段变化时重查唯一性（排除自身）
		if existing.UniqueValue() != e.UniqueValue() {
			var count int64
			cond := fmt.Sprintf("%s = ? AND deleted = ? AND id <> ?", e.UniqueColumn())
			if err := tx.Model(new(T)).Where(cond, e.UniqueValue(), false, id).Count(&count).Error; err != nil {
				return apperrors.Storage("uniqueness check", err)
			}
			if count > 0 {
				return &apperrors.DuplicateKeyError{Field: e.UniqueColumn(), Value: e.UniqueValue()}
			}
		}

		now := time.Now()
		actor := authctx.Actor(ctx)
		values := e.UpdateValues()
		values["updated_at"] = now
		values["updated_by"] = actor
		values["version"] = gorm.Expr("version + 1")

		result := tx.Model(new(T)).
			Where("id = ? AND deleted = ? AND version = ?", id, false, e.Audit().Version).
			Updates(values)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return &apperrors.DuplicateKeyError{Field: e.UniqueColumn(), Value: e.UniqueValue()}
			}
			return apperrors.Storage("update", result.Error)
		}
		if result.RowsAffected == 0 {
			// 行还在就是版本冲突，行没了就是已被删除
			var count int64
			if err := tx.Model(new(T)).Where("id = ? AND deleted = ?", id, false).Count(&count).Error; err != nil {
				return apperrors.Storage("update recheck", err)
			}
			if count == 0 {
				return apperrors.ErrNotFound
			}
			return apperrors.ErrVersionConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete 逻辑删除。数据物理保留，删除同时递增版本号，
// 保持与更新一致的审计语义。
func (s *Store[T, P]) Delete(ctx context.Context, id uint) error {
	now := time.Now()
	actor := authctx.Actor(ctx)

	result := s.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND deleted = ?", id, false).
		Updates(map[string]interface{}{
			"deleted":    true,
			"updated_at": now,
			"updated_by": actor,
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return apperrors.Storage("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetByID 按ID查询，不存在或已删除返回 ErrNotFound
func (s *Store[T, P]) GetByID(ctx context.Context, id uint) (P, error) {
	var e T
	err := s.db.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.Storage("get", err)
	}
	return P(&e), nil
}

// List 分页列出未删除实体，按ID升序保证顺序稳定
func (s *Store[T, P]) List(ctx context.Context, page, pageSize int) ([]P, int64, error) {
	return s.Search(ctx, "", page, pageSize)
}

// Search 关键字分页检索。关键字为空时等同于 List，
// 否则在实体声明的文本列上做大小写不敏感的子串匹配（任一列命中即可）。
func (s *Store[T, P]) Search(ctx context.Context, keyword string, page, pageSize int) ([]P, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := s.db.WithContext(ctx).Model(new(T)).Where("deleted = ?", false)

	keyword = strings.TrimSpace(keyword)
	if keyword != "" {
		pattern := "%" + strings.ToLower(keyword) + "%"
		columns := P(new(T)).SearchColumns()
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, pattern)
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Storage("count", err)
	}

	var items []P
	offset := (page - 1) * pageSize
	err := query.Order("id ASC").Offset(offset).Limit(pageSize).Find(&items).Error
	if err != nil {
		return nil, 0, apperrors.Storage("list", err)
	}

	return items, total, nil
}
