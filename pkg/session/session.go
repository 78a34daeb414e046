package session

import (
	"context"
	"time"

	"wms/pkg/errors"
	"wms/pkg/token"
)

// Store 会话存储。键为令牌jti，值为绑定的用户ID。
// 实现必须支持多请求并发访问；Del与Get竞争时，
// Get要么返回删除前的有效结果，要么返回不存在。
type Store interface {
	Put(ctx context.Context, key string, principalID uint, ttl time.Duration) error
	Get(ctx context.Context, key string) (uint, bool, error)
	Del(ctx context.Context, key string) error
}

// Manager 会话管理器。令牌本身携带签名和有效期，
// 服务端存储作为白名单，登出或过期后立即不可解析。
type Manager struct {
	tokens *token.Manager
	store  Store
}

// NewManager 创建会话管理器
func NewManager(tokens *token.Manager, store Store) *Manager {
	return &Manager{
		tokens: tokens,
		store:  store,
	}
}

// Issue 为指定用户签发新会话令牌
func (m *Manager) Issue(ctx context.Context, userID uint, username string) (string, error) {
	signed, jti, err := m.tokens.Generate(userID, username)
	if err != nil {
		return "", err
	}
	if err := m.store.Put(ctx, jti, userID, m.tokens.Duration()); err != nil {
		return "", errors.Storage("session put", err)
	}
	return signed, nil
}

// Resolve 解析令牌并返回绑定的用户ID。
// 签名无效、已过期、已登出或绑定用户不一致时返回 ErrUnauthenticated。
func (m *Manager) Resolve(ctx context.Context, tokenString string) (uint, error) {
	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		return 0, errors.ErrUnauthenticated
	}

	principalID, ok, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return 0, errors.Storage("session get", err)
	}
	if !ok || principalID != claims.UserID {
		return 0, errors.ErrUnauthenticated
	}
	return principalID, nil
}

// Invalidate 使令牌失效，幂等：无效令牌直接视为已登出
func (m *Manager) Invalidate(ctx context.Context, tokenString string) error {
	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		return nil
	}
	if err := m.store.Del(ctx, claims.ID); err != nil {
		return errors.Storage("session del", err)
	}
	return nil
}
