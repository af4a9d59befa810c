package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/suchimauz/court-booking-engine/internal/config"
	"github.com/suchimauz/court-booking-engine/internal/core/domain"
	"github.com/suchimauz/court-booking-engine/internal/core/ports/out"
)

type courtsCache struct {
	cache *lru.Cache[uuid.UUID, *domain.Court]
}

// Ключ — "courtID|YYYY-MM-DD", сетка слотов живет в разрезе корта и дня
type daySlotsCache struct {
	cache *lru.Cache[string, []domain.Slot]
}

type orgLocationEntry struct {
	location  domain.OrgLocation
	timestamp time.Time
}

type orgLocationsCache struct {
	entries map[uuid.UUID]orgLocationEntry
	ttl     time.Duration
}

type CacheAdapter struct {
	courtsCache       *courtsCache
	daySlotsCache     *daySlotsCache
	orgLocationsCache *orgLocationsCache
	mu                sync.RWMutex
	logger            out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruCourtsCache, err := lru.New[uuid.UUID, *domain.Court](cfg.Cache.CourtsSize)
	if err != nil {
		logger.Error("cache.courts.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.CourtsSize,
		})
		return nil, err
	}

	lruDaySlotsCache, err := lru.New[string, []domain.Slot](cfg.Cache.SlotsSize)
	if err != nil {
		logger.Error("cache.slots.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.SlotsSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		courtsCache: &courtsCache{
			cache: lruCourtsCache,
		},
		daySlotsCache: &daySlotsCache{
			cache: lruDaySlotsCache,
		},
		orgLocationsCache: &orgLocationsCache{
			entries: make(map[uuid.UUID]orgLocationEntry),
			ttl:     30 * time.Minute,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

// Кэширование конфигурации кортов

func (c *CacheAdapter) GetCourt(ctx context.Context, courtID uuid.UUID) (*domain.Court, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	court, exists := c.courtsCache.cache.Get(courtID)
	if !exists {
		c.logger.Debug("cache.courts.get.miss", out.LogFields{
			"courtId": courtID,
		})
		return nil, false
	}

	c.logger.Debug("cache.courts.get.hit", out.LogFields{
		"courtId": courtID,
	})
	return court, true
}

func (c *CacheAdapter) StoreCourt(ctx context.Context, court domain.Court) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.courtsCache.cache.Add(court.ID, &court)
}

func (c *CacheAdapter) InvalidateCourt(ctx context.Context, courtID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.courtsCache.cache.Remove(courtID)
}

// Кэширование локации организации

func (c *CacheAdapter) GetOrgLocation(ctx context.Context, orgID uuid.UUID) (*domain.OrgLocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.orgLocationsCache.entries[orgID]
	if !exists || time.Since(entry.timestamp) > c.orgLocationsCache.ttl {
		return nil, false
	}

	location := entry.location
	return &location, true
}

func (c *CacheAdapter) StoreOrgLocation(ctx context.Context, location domain.OrgLocation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.orgLocationsCache.entries[location.OrgID] = orgLocationEntry{
		location:  location,
		timestamp: time.Now(),
	}
}

func (c *CacheAdapter) InvalidateOrgLocation(ctx context.Context, orgID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.orgLocationsCache.entries, orgID)
}

// Кэширование сетки слотов на день

func daySlotsKey(courtID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s|%s", courtID, date.Format("2006-01-02"))
}

func (c *CacheAdapter) GetDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time) ([]domain.Slot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	slots, exists := c.daySlotsCache.cache.Get(daySlotsKey(courtID, date))
	if !exists {
		c.logger.Debug("cache.slots.get.miss", out.LogFields{
			"courtId": courtID,
		})
		return nil, false
	}

	c.logger.Debug("cache.slots.get.hit", out.LogFields{
		"courtId":    courtID,
		"slotsCount": len(slots),
	})
	return slots, true
}

func (c *CacheAdapter) StoreDaySlots(ctx context.Context, courtID uuid.UUID, date time.Time, slots []domain.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.slots.store", out.LogFields{
		"courtId":    courtID,
		"slotsCount": len(slots),
	})

	c.daySlotsCache.cache.Add(daySlotsKey(courtID, date), slots)
}

func (c *CacheAdapter) InvalidateDaySlots(ctx context.Context, courtID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Ключи дней неизвестны, проходим по всем и снимаем ключи этого корта
	prefix := courtID.String() + "|"
	for _, key := range c.daySlotsCache.cache.Keys() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			c.daySlotsCache.cache.Remove(key)
		}
	}
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.courtsCache.cache.Purge()
	c.daySlotsCache.cache.Purge()
	c.orgLocationsCache.entries = make(map[uuid.UUID]orgLocationEntry)
}
