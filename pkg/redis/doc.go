// Package redis wires up go-redis clients for the tenant record cache.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	cache := tenant.NewRedisCache(client, "")
package redis
