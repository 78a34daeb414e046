package services

import (
	"context"
	"errors"
	"testing"

	"wms/internal/authctx"
	"wms/internal/models"
	apperrors "wms/pkg/errors"
)

func TestOwnerValidation(t *testing.T) {
	svc := NewOwnerService(openTestDB(t))
	ctx := context.Background()

	cases := []struct {
		label string
		code  string
		name  string
	}{
		{"编码过短", "A", "货主"},
		{"编码含非法字符", "ACME 01", "货主"},
		{"编码含中文", "货主编码", "货主"},
		{"名称为空", "ACME", ""},
		{"名称只有空白", "ACME", "   "},
	}
	for _, tc := range cases {
		if _, err := svc.Create(ctx, tc.code, tc.name); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.label, err)
		}
	}

	// 合法参数通过
	if _, err := svc.Create(ctx, "ACME_01-x", "某某物流"); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
}

func TestOwnerLifecycleWritesOperationLog(t *testing.T) {
	db := openTestDB(t)
	svc := NewOwnerService(db)
	opLog := NewOperationLogService(db)
	ctx := authctx.WithActor(context.Background(), "alice")

	owner, err := svc.Create(ctx, "ACME", "某某物流")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Update(ctx, owner.ID, "ACME", "改名", owner.Version); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := svc.Delete(ctx, owner.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	logs, err := opLog.ListByResource(ctx, "owner", owner.ID)
	if err != nil {
		t.Fatalf("log query failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(logs))
	}
	// 按时间倒序：删除、更新、创建
	actions := []string{logs[0].Action, logs[1].Action, logs[2].Action}
	want := []string{models.OpActionDelete, models.OpActionUpdate, models.OpActionCreate}
	for i := range want {
		if actions[i] != want[i] {
			t.Fatalf("unexpected action order: %v", actions)
		}
	}
	for _, entry := range logs {
		if entry.Actor != "alice" {
			t.Fatalf("expected actor alice, got %q", entry.Actor)
		}
	}
}

func TestOwnerUpdateVersionFlow(t *testing.T) {
	svc := NewOwnerService(openTestDB(t))
	ctx := context.Background()

	owner, err := svc.Create(ctx, "ACME", "某某物流")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, owner.ID, "ACME", "改名", owner.Version)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Version != owner.Version+1 {
		t.Fatalf("expected version %d, got %d", owner.Version+1, updated.Version)
	}

	// 用旧版本再次提交被拒绝
	if _, err := svc.Update(ctx, owner.ID, "ACME", "又改名", owner.Version); !errors.Is(err, apperrors.ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}
