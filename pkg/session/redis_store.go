package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig Redis会话存储配置
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// RedisStore 基于Redis的会话存储，TTL由Redis负责
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore 创建Redis会话存储
func NewRedisStore(config *RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	prefix := config.Prefix
	if prefix == "" {
		prefix = "wms:session"
	}

	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + ":" + k
}

// Put 写入会话并设置过期时间
func (s *RedisStore) Put(ctx context.Context, key string, principalID uint, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(key), strconv.FormatUint(uint64(principalID), 10), ttl).Err()
}

// Get 查询会话，键不存在时ok为false
func (s *RedisStore) Get(ctx context.Context, key string) (uint, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return uint(id), true, nil
}

// Del 删除会话，键不存在不算错误
func (s *RedisStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Ping 测试Redis连接
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 关闭Redis连接
func (s *RedisStore) Close() error {
	return s.client.Close()
}
