package service

import (
	"context"
	"time"

	"github.com/noah-isme/sms-api/internal/dto"
	"github.com/noah-isme/sms-api/internal/models"
	"github.com/noah-isme/sms-api/pkg/cache"
)

// CatalogService serves the closed enumerations accepted by the API. The
// payload never changes at runtime, so it is cached for a long TTL.
type CatalogService struct {
	cache *CacheService
	ttl   time.Duration
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(cacheSvc *CacheService, ttl time.Duration) *CatalogService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &CatalogService{cache: cacheSvc, ttl: ttl}
}

// Catalog returns every enumeration and whether it was served from cache.
func (s *CatalogService) Catalog(ctx context.Context) (dto.Catalog, bool, error) {
	return remember(ctx, s.cache, cache.Key(cache.NamespaceCatalog), s.ttl, func() (dto.Catalog, error) {
		return dto.Catalog{
			Courses:     models.CourseCatalog(),
			Majors:      models.Majors(),
			Departments: models.Departments(),
			Grades:      models.Grades(),
		}, nil
	})
}
