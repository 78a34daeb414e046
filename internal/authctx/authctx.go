package authctx

import "context"

// SystemActor 无会话写入（初始化、后台任务）时的审计落款
const SystemActor = "system"

type actorKey struct{}

// WithActor 将当前操作者写入context，供审计字段填充使用
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// Actor 读取当前操作者，未登录场景回落到 SystemActor
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return SystemActor
}
