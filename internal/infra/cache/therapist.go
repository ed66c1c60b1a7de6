package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m04kA/TherapyBookingService/internal/domain"
)

const therapistCacheName = "therapist"

// TherapistSource is the store being decorated
type TherapistSource interface {
	FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error)
}

// Metrics receives hit/miss/error counts
type Metrics interface {
	CacheHit(cache string)
	CacheMiss(cache string)
	CacheError(cache string)
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// TherapistCache is a read-through cache over TherapistSource keyed by slug.
// Only successful lookups are stored; errors, including not-found, pass through.
// Redis failures degrade to the source.
type TherapistCache struct {
	source  TherapistSource
	store   Store
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

func NewTherapistCache(source TherapistSource, store Store, ttl time.Duration, metrics Metrics, logger Logger) *TherapistCache {
	return &TherapistCache{
		source:  source,
		store:   store,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

type cachedTherapist struct {
	ID                     int64      `json:"id"`
	Name                   string     `json:"name"`
	Slug                   string     `json:"slug"`
	DefaultSessionDuration int        `json:"defaultSessionDuration"`
	BufferTime             int        `json:"bufferTime"`
	AdvanceBookingDays     int        `json:"advanceBookingDays"`
	MinBookingNotice       int        `json:"minBookingNotice"`
	IsActive               bool       `json:"isActive"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

func therapistKey(slug string) string {
	return "therapist:slug:" + slug
}

// FindActiveBySlug serves from Redis when possible and fills it on a miss
func (c *TherapistCache) FindActiveBySlug(ctx context.Context, slug string) (*domain.Therapist, error) {
	key := therapistKey(slug)

	data, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var cached cachedTherapist
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			c.metrics.CacheHit(therapistCacheName)
			return cached.toDomain(), nil
		}
		c.logger.Warn("TherapistCache: corrupt entry for slug=%s, reloading", slug)
		c.metrics.CacheMiss(therapistCacheName)
	case errors.Is(err, ErrCacheMiss):
		c.metrics.CacheMiss(therapistCacheName)
	default:
		c.logger.Warn("TherapistCache: get slug=%s failed: %v", slug, err)
		c.metrics.CacheError(therapistCacheName)
	}

	therapist, err := c.source.FindActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(fromDomain(therapist))
	if err != nil {
		c.logger.Warn("TherapistCache: encode slug=%s failed: %v", slug, err)
		return therapist, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn("TherapistCache: set slug=%s failed: %v", slug, err)
		c.metrics.CacheError(therapistCacheName)
	}

	return therapist, nil
}

func fromDomain(t *domain.Therapist) cachedTherapist {
	return cachedTherapist{
		ID:                     t.ID,
		Name:                   t.Name,
		Slug:                   t.Slug,
		DefaultSessionDuration: t.DefaultSessionDuration,
		BufferTime:             t.BufferTime,
		AdvanceBookingDays:     t.AdvanceBookingDays,
		MinBookingNotice:       t.MinBookingNotice,
		IsActive:               t.IsActive,
		DeletedAt:              t.DeletedAt,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

func (c cachedTherapist) toDomain() *domain.Therapist {
	return &domain.Therapist{
		ID:                     c.ID,
		Name:                   c.Name,
		Slug:                   c.Slug,
		DefaultSessionDuration: c.DefaultSessionDuration,
		BufferTime:             c.BufferTime,
		AdvanceBookingDays:     c.AdvanceBookingDays,
		MinBookingNotice:       c.MinBookingNotice,
		IsActive:               c.IsActive,
		DeletedAt:              c.DeletedAt,
		CreatedAt:              c.CreatedAt,
		UpdatedAt:              c.UpdatedAt,
	}
}
