package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

func TestMemoryCacheRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()

	key := cache.Key(cache.NamespaceStudents, "list")
	in := []models.Student{models.NewStudent("STU-1", "Ada", "Lovelace", models.MajorComputerScience)}
	require.NoError(t, repo.Set(ctx, key, in, time.Minute))

	var out []models.Student
	require.NoError(t, repo.Get(ctx, key, &out))
	assert.Equal(t, in, out)

	err := repo.Get(ctx, cache.Key(cache.NamespaceCourses, "list"), &out)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))
}

func TestMemoryCacheRepositoryExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Set(ctx, "k", "v", time.Second))
	var out string
	require.NoError(t, repo.Get(ctx, "k", &out))

	now = now.Add(time.Second)
	assert.True(t, errors.Is(repo.Get(ctx, "k", &out), appErrors.ErrCacheMiss))
}

func TestMemoryCacheRepositoryDeleteByPattern(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()
	require.NoError(t, repo.Set(ctx, cache.Key(cache.NamespaceStudents, "list"), 1, 0))
	require.NoError(t, repo.Set(ctx, cache.Key(cache.NamespaceStudents, "STU-1"), 2, 0))
	require.NoError(t, repo.Set(ctx, cache.Key(cache.NamespaceCatalog), 3, 0))

	require.NoError(t, repo.DeleteByPattern(ctx, cache.Pattern(cache.NamespaceStudents)))

	var v int
	assert.Error(t, repo.Get(ctx, cache.Key(cache.NamespaceStudents, "list"), &v))
	assert.Error(t, repo.Get(ctx, cache.Key(cache.NamespaceStudents, "STU-1"), &v))
	require.NoError(t, repo.Get(ctx, cache.Key(cache.NamespaceCatalog), &v))
	assert.Equal(t, 3, v)

	assert.Error(t, repo.DeleteByPattern(ctx, "["))
}

func TestRedisCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewRedisCacheRepository(nil, nil)
	var out string
	assert.True(t, errors.Is(repo.Get(context.Background(), "k", &out), appErrors.ErrCacheMiss))
	assert.NoError(t, repo.Set(context.Background(), "k", "v", time.Minute))
	assert.NoError(t, repo.DeleteByPattern(context.Background(), "*"))
	assert.NoError(t, repo.Close())
}

func TestMemoryCacheRepositoryDeleteByPatternSpansSeparators(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCacheRepository()
	slashed := cache.Key(cache.NamespaceEnrollments, "list", "STU/1", "")
	require.NoError(t, repo.Set(ctx, slashed, []string{"stale"}, time.Minute))
	require.NoError(t, repo.Set(ctx, cache.Key(cache.NamespaceCourses, "list"), []string{"kept"}, time.Minute))

	require.NoError(t, repo.DeleteByPattern(ctx, cache.Pattern(cache.NamespaceEnrollments)))

	var out []string
	assert.True(t, errors.Is(repo.Get(ctx, slashed, &out), appErrors.ErrCacheMiss))
	require.NoError(t, repo.Get(ctx, cache.Key(cache.NamespaceCourses, "list"), &out))
	assert.Equal(t, []string{"kept"}, out)
}

func TestCompileGlob(t *testing.T) {
	cases := []struct {
		pattern string
		key     string
		match   bool
	}{
		{"sms-cache:students:*", "sms-cache:students:a/b:c", true},
		{"sms-cache:students:*", "sms-cache:courses:list", false},
		{"STU-?", "STU-1", true},
		{"STU-?", "STU-12", false},
		{"STU-[12]", "STU-2", true},
		{"STU-[^12]", "STU-2", false},
		{`a\*b`, "a*b", true},
		{`a\*b`, "axb", false},
		{"a.b", "axb", false},
	}
	for _, tc := range cases {
		re, err := compileGlob(tc.pattern)
		require.NoError(t, err, tc.pattern)
		assert.Equal(t, tc.match, re.MatchString(tc.key), "%s ~ %s", tc.pattern, tc.key)
	}

	_, err := compileGlob("STU-[1")
	assert.Error(t, err)
}
