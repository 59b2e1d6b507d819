package catalog

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/levelspeak/ai-teacher/internal/store/redisstore"
)

// Item is the wire shape of one catalog entry.
type Item struct {
	ID    uint64 `json:"id"`
	Level string `json:"level"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// Service reads the static level/topic catalogs, optionally through a redis
// cache. Cache failures degrade to direct reads.
type Service struct {
	db    *gorm.DB
	cache *redisstore.Store
	ttl   time.Duration
}

func NewService(db *gorm.DB, cache *redisstore.Store, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{db: db, cache: cache, ttl: ttl}
}

func (s *Service) Topics(ctx context.Context, levelCode string) ([]Item, error) {
	return s.list(ctx, "topics", levelCode)
}

func (s *Service) GrammarTopics(ctx context.Context, levelCode string) ([]Item, error) {
	return s.list(ctx, "grammar_topics", levelCode)
}

func (s *Service) list(ctx context.Context, table, levelCode string) ([]Item, error) {
	levelCode = strings.ToUpper(strings.TrimSpace(levelCode))

	key := "catalog:" + table + ":all"
	if levelCode != "" {
		key = "catalog:" + table + ":" + levelCode
	}

	var items []Item
	if hit, err := s.cache.GetJSON(ctx, key, &items); err != nil {
		log.Printf("catalog cache read failed key=%s: %v", key, err)
	} else if hit {
		return items, nil
	}

	q := s.db.WithContext(ctx).Table(table+" AS t").
		Select("t.id, l.code AS level, t.slug, t.title").
		Joins("INNER JOIN levels l ON l.id = t.level_id")
	if levelCode != "" {
		q = q.Where("l.code = ?", levelCode).Order("t.position ASC, t.id ASC")
	} else {
		q = q.Order("l.id ASC, t.position ASC, t.id ASC")
	}

	items = items[:0]
	if err := q.Scan(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		// An unknown level serializes as an empty list, not null.
		items = []Item{}
	}

	if err := s.cache.SetJSON(ctx, key, items, s.ttl); err != nil {
		log.Printf("catalog cache write failed key=%s: %v", key, err)
	}
	return items, nil
}
