package provider

import (
	"context"
	"fmt"

	"github.com/claude/healthdash/internal/config"
)

func noClose() {}

// Open builds the Source selected by cfg.Kind. The returned close function
// releases any connection the source holds. It is never nil, even when err
// is not, so callers may defer it unconditionally.
func Open(ctx context.Context, cfg config.ProviderConfig) (Source, func(), error) {
	switch cfg.Kind {
	case config.ProviderHTTP:
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout), noClose, nil
	case config.ProviderSQLite:
		src, err := OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noClose, err
		}
		return src, func() { src.Close() }, nil
	case config.ProviderPostgres:
		src, err := NewPostgres(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, noClose, err
		}
		return src, src.Close, nil
	default:
		return nil, noClose, fmt.Errorf("unknown provider kind %q", cfg.Kind)
	}
}
