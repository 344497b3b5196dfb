package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apenask/csnutri-server/internal/domain/report"
	"github.com/redis/go-redis/v9"
)

const (
	reportKeyPrefix  = "report:"
	defaultReportTTL = time.Minute
)

// CachedReportRepository decora um report.Repository com cache em Redis.
// Escritas de venda e despesa invalidam o cache via Invalidate
type CachedReportRepository struct {
	inner  report.Repository
	client *redis.Client
	ttl    time.Duration
}

// NewCachedReportRepository cria o decorador de cache dos relatórios
func NewCachedReportRepository(inner report.Repository, client *redis.Client) *CachedReportRepository {
	return &CachedReportRepository{
		inner:  inner,
		client: client,
		ttl:    defaultReportTTL,
	}
}

// SalesByPeriod implementa report.Repository.SalesByPeriod
func (r *CachedReportRepository) SalesByPeriod(ctx context.Context, from, to time.Time) (*report.SalesReport, error) {
	key := r.key("sales", from, to)

	var cached report.SalesReport
	if ok := r.lookup(ctx, key, &cached); ok {
		return &cached, nil
	}

	rep, err := r.inner.SalesByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, rep)
	return rep, nil
}

// TopProducts implementa report.Repository.TopProducts
func (r *CachedReportRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]report.TopProduct, error) {
	key := fmt.Sprintf("%s:%d", r.key("top", from, to), limit)

	var cached []report.TopProduct
	if ok := r.lookup(ctx, key, &cached); ok {
		return cached, nil
	}

	products, err := r.inner.TopProducts(ctx, from, to, limit)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, products)
	return products, nil
}

// Summary implementa report.Repository.Summary
func (r *CachedReportRepository) Summary(ctx context.Context, from, to time.Time) (*report.Summary, error) {
	key := r.key("summary", from, to)

	var cached report.Summary
	if ok := r.lookup(ctx, key, &cached); ok {
		return &cached, nil
	}

	s, err := r.inner.Summary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, s)
	return s, nil
}

// Invalidate descarta todos os relatórios em cache. Chamado após
// qualquer escrita de venda ou despesa
func (r *CachedReportRepository) Invalidate(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, reportKeyPrefix+"*", 100).Result()
		if err != nil {
			return
		}
		if len(keys) > 0 {
			r.client.Del(ctx, keys...)
		}
		if next == 0 {
			return
		}
		cursor = next
	}
}

func (r *CachedReportRepository) key(kind string, from, to time.Time) string {
	return fmt.Sprintf("%s%s:%s:%s", reportKeyPrefix, kind,
		from.Format("2006-01-02"), to.Format("2006-01-02"))
}

// lookup busca e decodifica uma entrada do cache; qualquer falha de
// cache é tratada como ausência
func (r *CachedReportRepository) lookup(ctx context.Context, key string, out interface{}) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (r *CachedReportRepository) store(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	r.client.Set(ctx, key, data, r.ttl)
}
