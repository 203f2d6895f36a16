package cli

import (
	"context"
	"fmt"
	"os"

	"wardrobeapi/services"

	"github.com/h2non/filetype"
	"golang.org/x/sync/errgroup"
)

// ReadImages loads every file concurrently and returns them as data URLs in
// argument order. The first unreadable or non-image file fails the batch.
func ReadImages(ctx context.Context, paths []string) ([]string, error) {
	images := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			kind, err := filetype.Match(data)
			if err != nil || kind == filetype.Unknown || !filetype.IsImage(data) {
				return fmt.Errorf("%s is not a supported image", path)
			}
			images[i] = services.EncodeDataURL(kind.MIME.Value, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}
