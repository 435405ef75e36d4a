package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/sms-api/pkg/config"
)

// KeyPrefix scopes every key this service writes to a shared Redis.
const KeyPrefix = "sms-cache"

// Namespaces group cached payloads so writes can invalidate them together.
const (
	NamespaceStudents    = "students"
	NamespaceInstructors = "instructors"
	NamespaceCourses     = "courses"
	NamespaceEnrollments = "enrollments"
	NamespaceCatalog     = "catalog"
)

// NewRedis returns a configured Redis client after a bounded ping.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

// Key builds a cache key under namespace, e.g. "sms-cache:students:list".
func Key(namespace string, parts ...string) string {
	segments := append([]string{KeyPrefix, namespace}, parts...)
	return strings.Join(segments, ":")
}

// Pattern matches every key under namespace.
func Pattern(namespace string) string {
	return Key(namespace, "*")
}
