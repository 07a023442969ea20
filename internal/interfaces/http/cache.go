package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Finanzas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Finanzas-api/pkg/logger"
	"github.com/jhoicas/Finanzas-api/pkg/metrics"
)

// PartitionCache caché por particiones. Lo implementan cache.RedisCache y cache.MemoryCache.
type PartitionCache interface {
	Get(ctx context.Context, partition, key string) ([]byte, bool, error)
	Set(ctx context.Context, partition, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context, partition string) error
}

// searchCacheTTL vigencia de las búsquedas cacheadas de bancos y categorías.
const searchCacheTTL = 5 * time.Minute

// keyCreditCards clave de la lista global de categorías de tarjeta dentro de la partición categories.
const keyCreditCards = "credit-cards"

// partitions envuelve el caché. Los fallos del caché se registran y nunca fallan la petición.
type partitions struct {
	c   PartitionCache
	log *logger.Logger
}

func newPartitions(c PartitionCache, log *logger.Logger) *partitions {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &partitions{c: c, log: log}
}

// serve responde desde el caché o ejecuta load, guarda el resultado y lo responde.
func (p *partitions) serve(c *fiber.Ctx, partition, key string, load func() (interface{}, error)) error {
	ctx := c.UserContext()
	if raw, ok, err := p.c.Get(ctx, partition, key); err != nil {
		p.log.Warn().Err(err).Str("partition", partition).Msg("cache get falló")
	} else if ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set("X-Cache", "HIT")
		return c.Send(raw)
	}

	out, err := load()
	if err != nil {
		return respondError(c, err)
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return respondError(c, err)
	}
	if err := p.c.Set(ctx, partition, key, raw, searchCacheTTL); err != nil {
		p.log.Warn().Err(err).Str("partition", partition).Msg("cache set falló")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set("X-Cache", "MISS")
	return c.Send(raw)
}

// invalidate vacía la partición después de una mutación exitosa.
func (p *partitions) invalidate(c *fiber.Ctx, partition string) {
	metrics.CacheInvalidations.WithLabelValues(partition).Inc()
	if err := p.c.Invalidate(c.UserContext(), partition); err != nil {
		p.log.Warn().Err(err).Str("partition", partition).Msg("cache invalidate falló")
	}
}
