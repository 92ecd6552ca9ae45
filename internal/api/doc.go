// Package api exposes Hijri conversion over HTTP.
//
// Server adds lifecycle handling (graceful shutdown, hooks, health
// endpoints) on top of a chi router. Handler serves the conversion routes:
//
//	GET /v1/convert?date=2024-04-09[&locale=ar][&adjustment=-1|&profile=sa][&layout=...|&preset=LLLL]
//	GET /v1/today
//	GET /v1/months?locale=ar
//
// Conversions are cached per (instant, adjustment, locale, layout) in a
// cache.Cache[Result], in memory by default or Redis via WithCache.
package api
