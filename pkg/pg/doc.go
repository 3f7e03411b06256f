// Package pg wires up pgx connection pools for the storage-backed
// providers (tenant records, usage counters).
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	tenants := tenant.NewPGProvider(pool)
//	counters := usage.NewPGProvider(pool)
package pg
