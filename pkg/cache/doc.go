// Package cache provides a generic [Cache] with an in-process LRU
// backend ([Memory]) and a Redis backend ([Redis]).
//
// The conversion service keeps rendered responses here, keyed with
// [Key], and the converter keeps one derived translator per locale.
// [GetOrSet] collapses concurrent misses for the same key:
//
//	c := cache.NewMemory[string](cache.WithMaxEntries(4096))
//	defer c.Close()
//
//	v, err := cache.GetOrSet(ctx, c, cache.Key("1993-02-01", "-1", "ar"),
//	    func(ctx context.Context) (string, time.Duration, error) {
//	        return render(ctx), time.Hour, nil
//	    })
package cache
