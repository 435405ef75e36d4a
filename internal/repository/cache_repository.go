package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

// RedisCacheRepository stores JSON encoded payloads in Redis.
type RedisCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCacheRepository constructs a cache repository.
func NewRedisCacheRepository(client *redis.Client, logger *zap.Logger) *RedisCacheRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCacheRepository{client: client, logger: logger}
}

// Get retrieves and unmarshals the cached value into dest.
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	if r.client == nil {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}

	return nil
}

// Set marshals value and stores it with ttl.
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}

	return nil
}

// DeleteByPattern removes cached entries matching the glob pattern.
func (r *RedisCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.client == nil {
		return nil
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan pattern %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", pattern, err)
	}
	r.logger.Debug("cache invalidated", zap.String("pattern", pattern), zap.Int("keys", len(keys)))
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *RedisCacheRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCacheRepository is the in-process cache used when Redis is not
// configured. Values are stored JSON encoded so callers observe the same
// copy semantics as with Redis.
type MemoryCacheRepository struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCacheRepository constructs an empty in-process cache.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{entries: make(map[string]memoryEntry), now: time.Now}
}

// Get retrieves and unmarshals the cached value into dest.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.Lock()
	entry, ok := r.entries[key]
	if ok && !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.entries, key)
		ok = false
	}
	r.mu.Unlock()
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals value and stores it with ttl; a non-positive ttl never expires.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
	return nil
}

// DeleteByPattern removes entries whose key matches the glob pattern. Globs
// follow Redis MATCH rules, so * also spans separators such as '/'.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	matcher, err := compileGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid cache pattern %s: %w", pattern, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.entries {
		if matcher.MatchString(key) {
			delete(r.entries, key)
		}
	}
	return nil
}

// compileGlob translates a Redis style glob (*, ?, [set] and backslash escapes)
// into an anchored regular expression.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch ch := pattern[i]; ch {
		case '*':
			b.WriteString("(?s:.*)")
		case '?':
			b.WriteString("(?s:.)")
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			b.WriteString(regexp.QuoteMeta(string(pattern[i])))
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated character class")
			}
			set := pattern[i+1 : i+1+end]
			b.WriteString("[")
			if strings.HasPrefix(set, "^") || strings.HasPrefix(set, "!") {
				b.WriteString("^")
				set = set[1:]
			}
			b.WriteString(strings.NewReplacer(`\`, `\\`, "[", `\[`).Replace(set))
			b.WriteString("]")
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(ch)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
