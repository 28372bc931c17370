package provider

import (
	"context"
	"fmt"

	"github.com/claude/healthdash/internal/models"
	"golang.org/x/sync/errgroup"
)

// FetchAll issues every request concurrently and waits for all of them.
// Results are returned in request order. The first failure cancels the
// remaining reads and is returned alone; there is no partial result.
func FetchAll(ctx context.Context, src Source, reqs ...models.ReadRequest) ([][]models.RawRecord, error) {
	out := make([][]models.RawRecord, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		g.Go(func() error {
			resp, err := src.ReadRecords(gctx, req)
			if err != nil {
				return fmt.Errorf("reading %s records: %w", req.RecordType, err)
			}
			if resp != nil {
				out[i] = resp.Records
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
