package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "wms/pkg/errors"
	"wms/pkg/token"
)

func newTestManager(duration time.Duration) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	tokens := token.NewManager("test-secret-key", duration)
	return NewManager(tokens, store), store
}

func TestIssueThenResolve(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	ctx := context.Background()

	tokenString, err := manager.Issue(ctx, 42, "alice")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tokenString == "" {
		t.Fatal("issued token is empty")
	}

	principalID, err := manager.Resolve(ctx, tokenString)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if principalID != 42 {
		t.Fatalf("expected principal 42, got %d", principalID)
	}
}

func TestResolveGarbageToken(t *testing.T) {
	manager, _ := newTestManager(time.Hour)

	_, err := manager.Resolve(context.Background(), "not-a-token")
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestResolveTokenSignedWithOtherKey(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	otherTokens := token.NewManager("another-secret", time.Hour)

	forged, _, err := otherTokens.Generate(42, "alice")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = manager.Resolve(context.Background(), forged)
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for forged token, got %v", err)
	}
}

func TestInvalidateRevokesImmediately(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	ctx := context.Background()

	tokenString, err := manager.Issue(ctx, 7, "bob")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if err := manager.Invalidate(ctx, tokenString); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	// 令牌签名仍然有效，但白名单已删除，解析必须失败
	_, err = manager.Resolve(ctx, tokenString)
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	ctx := context.Background()

	tokenString, err := manager.Issue(ctx, 7, "bob")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if err := manager.Invalidate(ctx, tokenString); err != nil {
		t.Fatalf("first invalidate failed: %v", err)
	}
	if err := manager.Invalidate(ctx, tokenString); err != nil {
		t.Fatalf("second invalidate should be a no-op, got %v", err)
	}
	if err := manager.Invalidate(ctx, "not-a-token"); err != nil {
		t.Fatalf("invalidating garbage token should be a no-op, got %v", err)
	}
}

func TestInvalidateOneSessionKeepsOthers(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	ctx := context.Background()

	// 同一用户两次登录得到两个独立会话
	first, err := manager.Issue(ctx, 7, "bob")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	second, err := manager.Issue(ctx, 7, "bob")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if err := manager.Invalidate(ctx, first); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	if _, err := manager.Resolve(ctx, first); !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("first session should be revoked, got %v", err)
	}
	if _, err := manager.Resolve(ctx, second); err != nil {
		t.Fatalf("second session should survive, got %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	// 负有效期让令牌签发即过期
	manager, _ := newTestManager(-time.Minute)
	ctx := context.Background()

	tokenString, err := manager.Issue(ctx, 7, "bob")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = manager.Resolve(ctx, tokenString)
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, "live", 1, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Put(ctx, "dead", 2, -time.Second); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if _, ok, _ := store.Get(ctx, "live"); !ok {
		t.Fatal("live entry should be readable")
	}
	if _, ok, _ := store.Get(ctx, "dead"); ok {
		t.Fatal("expired entry must read as absent")
	}
}

func TestMemoryStoreSweep(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Put(ctx, fmt.Sprintf("dead-%d", i), uint(i), -time.Second); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}
	if err := store.Put(ctx, "live", 9, time.Hour); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if removed := store.Sweep(); removed != 3 {
		t.Fatalf("expected 3 swept entries, got %d", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", store.Len())
	}
	if removed := store.Sweep(); removed != 0 {
		t.Fatalf("second sweep should remove nothing, got %d", removed)
	}
}

func TestConcurrentSessions(t *testing.T) {
	manager, _ := newTestManager(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()

			tokenString, err := manager.Issue(ctx, userID, fmt.Sprintf("user-%d", userID))
			if err != nil {
				errs <- fmt.Errorf("issue: %w", err)
				return
			}
			principalID, err := manager.Resolve(ctx, tokenString)
			if err != nil {
				errs <- fmt.Errorf("resolve: %w", err)
				return
			}
			if principalID != userID {
				errs <- fmt.Errorf("expected principal %d, got %d", userID, principalID)
				return
			}
			if err := manager.Invalidate(ctx, tokenString); err != nil {
				errs <- fmt.Errorf("invalidate: %w", err)
				return
			}
			if _, err := manager.Resolve(ctx, tokenString); !errors.Is(err, apperrors.ErrUnauthenticated) {
				errs <- fmt.Errorf("expected revoked session, got %v", err)
			}
		}(uint(i + 1))
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
