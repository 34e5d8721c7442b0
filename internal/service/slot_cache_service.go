package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the booking read path
	availabilityKeyPrefix = "availability:"
	feedKeyPrefix         = "ical:feed:"
)

// SlotCacheService keeps short-lived Redis copies of computed availability
// lists and generated iCal documents. Both are derived purely from current
// appointment state, so a cache miss is never a correctness problem; the
// caches only shave repeated reads. Availability entries are dropped
// eagerly when a booking for that doctor/day is written; feeds rely on
// their TTL alone.
type SlotCacheService struct {
	redisClient     *redis.Client
	log             *logrus.Logger
	availabilityTTL time.Duration
	feedTTL         time.Duration
}

func NewSlotCacheService(redisClient *redis.Client, log *logrus.Logger, availabilityTTL, feedTTL time.Duration) *SlotCacheService {
	return &SlotCacheService{
		redisClient:     redisClient,
		log:             log,
		availabilityTTL: availabilityTTL,
		feedTTL:         feedTTL,
	}
}

func availabilityKey(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", availabilityKeyPrefix, doctorID, date)
}

// GetSlots returns the cached slot list, or (nil, false) on a miss. Redis
// failures degrade to a miss so the caller recomputes from the database.
func (s *SlotCacheService) GetSlots(ctx context.Context, doctorID uuid.UUID, date string) ([]string, bool) {
	if s.redisClient == nil {
		return nil, false
	}

	payload, err := s.redisClient.Get(ctx, availabilityKey(doctorID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read availability cache for doctor %s: %+v", doctorID, err)
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(payload, &slots); err != nil {
		s.log.Warnf("Corrupt availability cache entry for doctor %s: %+v", doctorID, err)
		return nil, false
	}
	return slots, true
}

// SetSlots stores a computed slot list. Best effort.
func (s *SlotCacheService) SetSlots(ctx context.Context, doctorID uuid.UUID, date string, slots []string) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, availabilityKey(doctorID, date), payload, s.availabilityTTL).Err(); err != nil {
		s.log.Warnf("Failed to write availability cache for doctor %s: %+v", doctorID, err)
	}
}

// InvalidateSlots drops the cached list for one doctor/day. Called after
// every appointment create or cancel touching that slot space.
func (s *SlotCacheService) InvalidateSlots(ctx context.Context, doctorID uuid.UUID, date string) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Del(ctx, availabilityKey(doctorID, date)).Err(); err != nil {
		s.log.Warnf("Failed to invalidate availability cache for doctor %s: %+v", doctorID, err)
	}
}

// GetFeed returns a cached calendar document keyed by the normalized filter.
func (s *SlotCacheService) GetFeed(ctx context.Context, filterKey string) (string, bool) {
	if s.redisClient == nil {
		return "", false
	}

	document, err := s.redisClient.Get(ctx, feedKeyPrefix+filterKey).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read feed cache %q: %+v", filterKey, err)
		}
		return "", false
	}
	return document, true
}

// SetFeed stores a generated calendar document. Best effort.
func (s *SlotCacheService) SetFeed(ctx context.Context, filterKey, document string) {
	if s.redisClient == nil {
		return
	}

	if err := s.redisClient.Set(ctx, feedKeyPrefix+filterKey, document, s.feedTTL).Err(); err != nil {
		s.log.Warnf("Failed to write feed cache %q: %+v", filterKey, err)
	}
}
