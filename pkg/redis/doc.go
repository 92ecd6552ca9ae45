// Package redis opens go-redis clients for the response cache.
//
//	client, err := redis.Connect(ctx, redis.Config{URL: os.Getenv("REDIS_URL")})
//	if err != nil {
//	    return err
//	}
//	responses := cache.NewRedis[api.Result](client, nil, cache.WithPrefix("hijri"))
//
// [Config] carries env tags so it can be embedded in the service
// configuration. [Healthcheck] plugs into pkg/health and [Shutdown] into the
// server's shutdown hooks.
package redis
