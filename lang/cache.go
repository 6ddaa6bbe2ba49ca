package lang

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"github.com/zeebo/xxh3"
)

// programCache maps the base-36 xxh3 hash of source text to its *entry.
var programCache sync.Map

type entry struct {
	once   sync.Once
	source string
	prog   *Program
	err    error
}

func cacheKey(source string) string {
	return strconv.FormatUint(xxh3.HashString(source), 36)
}

func parseCached(ctx context.Context, source string, o options) (*Program, error) {
	key := cacheKey(source)

	value, hit := programCache.LoadOrStore(key, new(entry))
	ent := value.(*entry)

	o.logger.TraceContext(ctx, "cache lookup",
		slog.String("key", key),
		slog.Bool("cache_hit", hit))

	ent.once.Do(func() {
		ent.source = source
		ent.prog, ent.err = parse(ctx, source, o)
	})

	// Distinct sources may share a hash; only the first owns the entry.
	if ent.source != source {
		o.logger.TraceContext(ctx, "cache collision", slog.String("key", key))

		return parse(ctx, source, o)
	}

	return ent.prog, ent.err
}

// ClearCache removes all cached programs.
func ClearCache() {
	programCache.Clear()
}
