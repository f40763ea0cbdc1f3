package schemaio

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/macropower/schemaconv/pkg/schemaconv"
)

// LoadDefinitions reads definitions files concurrently and merges them in the
// order given, so later files take precedence. Every file is attempted and
// all failures are reported together.
func LoadDefinitions(ctx context.Context, paths ...string) (*schemaconv.Library, error) {
	libs := make([]*schemaconv.Library, len(paths))
	errs := make([]error, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return fmt.Errorf("%w %s: %w", ErrDefinitions, path, err)
			}

			libs[i], errs[i] = loadDefinitionsFile(path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merr error

	for _, err := range errs {
		if err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	if merr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinitions, merr)
	}

	lib := &schemaconv.Library{}
	for _, l := range libs {
		lib.Merge(l)
	}

	return lib, nil
}

func loadDefinitionsFile(path string) (*schemaconv.Library, error) {
	doc, err := ReadFile(path, FormatAuto)
	if err != nil {
		return nil, err
	}

	lib, err := schemaconv.LibraryFromNode(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("loaded definitions",
		slog.String("path", path),
		slog.Int("definitions", len(lib.Definitions)),
		slog.Int("dialects", len(lib.AltDefinitions)),
	)

	return lib, nil
}
