package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ecoride/helpdesk/internal/shared/logger"
)

// QueryNumberGenerator produces per-day sequential reference numbers of the
// form Q-20260901-0001. The in-memory cache avoids re-scanning the table for
// every submission; the unique index on number catches the multi-instance
// race.
type QueryNumberGenerator struct {
	db     *gorm.DB
	mu     sync.Mutex
	cache  map[string]int
	logger logger.Interface
}

func NewQueryNumberGenerator(db *gorm.DB, log logger.Interface) *QueryNumberGenerator {
	return &QueryNumberGenerator{
		db:     db,
		cache:  make(map[string]int),
		logger: log,
	}
}

func (g *QueryNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("Q-%s-", dateStr)

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, seq), nil
}

func (g *QueryNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	pattern := fmt.Sprintf("Q-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("customer_queries").
		Select("MAX(number)").
		Where("number LIKE ?", pattern).
		Scan(&maxNumber).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max query number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		var parsed int
		n, scanErr := fmt.Sscanf(maxNumber, fmt.Sprintf("Q-%s-%%d", dateStr), &parsed)
		if scanErr != nil || n != 1 {
			// A malformed row must not silently restart the sequence at 1;
			// count today's rows instead and let the unique index catch any
			// remaining collision.
			g.logger.Warnw("malformed query number, falling back to row count",
				"number", maxNumber, "error", scanErr)
			count, countErr := g.countForDay(ctx, pattern)
			if countErr != nil {
				return 0, countErr
			}
			seq = count + 1
		} else {
			seq = parsed + 1
		}
	}

	g.cache[dateStr] = seq
	return seq, nil
}

func (g *QueryNumberGenerator) countForDay(ctx context.Context, pattern string) (int, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Table("customer_queries").
		Where("number LIKE ?", pattern).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count query numbers: %w", err)
	}
	return int(count), nil
}
