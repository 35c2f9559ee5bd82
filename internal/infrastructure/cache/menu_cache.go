// Package cache implementa el cache Redis de la resolución de menús por
// conjunto de perfiles. Un Redis caído degrada a consultar siempre la base;
// nunca interrumpe el login.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/auth"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/domain/entity"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/config"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/logger"
)

// NewRedisClient crea el cliente Redis con un ping de verificación. Devuelve
// nil si no hay dirección configurada o el servidor no responde; el caller
// opera sin cache.
func NewRedisClient(cfg config.RedisConfig, log *logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis no disponible, cache de menús desactivado")
		return nil
	}
	return client
}

// MenuCache implementa auth.MenuCache sobre Redis. La clave es el conjunto
// ordenado de ids de perfil; el valor, los menús serializados en JSON.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

var _ auth.MenuCache = (*MenuCache)(nil)

// NewMenuCache construye el cache. client no debe ser nil.
func NewMenuCache(client *redis.Client, ttlSecs int, log *logger.Logger) *MenuCache {
	return &MenuCache{
		client: client,
		ttl:    time.Duration(ttlSecs) * time.Second,
		log:    log,
	}
}

// Get devuelve los menús cacheados para el conjunto de perfiles. Un error de
// Redis o un payload corrupto cuentan como miss.
func (c *MenuCache) Get(ctx context.Context, perfilIDs []string) ([]entity.Menu, bool) {
	raw, err := c.client.Get(ctx, menuKey(perfilIDs)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache de menús: fallo en lectura")
		}
		return nil, false
	}
	var menus []entity.Menu
	if err := json.Unmarshal(raw, &menus); err != nil {
		c.log.Warn().Err(err).Msg("cache de menús: payload corrupto, se ignora")
		return nil, false
	}
	return menus, true
}

// Set guarda los menús resueltos. El fallo de escritura solo se loguea.
func (c *MenuCache) Set(ctx context.Context, perfilIDs []string, menus []entity.Menu) {
	raw, err := json.Marshal(menus)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuKey(perfilIDs), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de menús: fallo en escritura")
	}
}

func menuKey(perfilIDs []string) string {
	return "menus:" + strings.Join(perfilIDs, ",")
}
