package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/utsav/internal/catalog"
)

type catalogService struct {
	path     string
	logger   *slog.Logger
	observer UseCaseObserver
}

// NewCatalogService loads from path, or from the bundled catalog when path
// is empty. Excluded records are logged at WARN on logger.
func NewCatalogService(path string, logger *slog.Logger, observers ...UseCaseObserver) CatalogService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &catalogService{
		path:     path,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) Load(ctx context.Context) (*catalog.Catalog, []catalog.Warning, error) {
	var (
		cat   *catalog.Catalog
		warns []catalog.Warning
	)
	source := s.path
	if source == "" {
		source = "bundled"
	}
	fields := map[string]any{"source": source}

	err := observe(ctx, s.observer, "load-catalog", fields, func() error {
		var err error
		if s.path == "" {
			cat, warns, err = catalog.LoadDefault()
		} else {
			cat, warns, err = catalog.LoadFile(s.path)
		}
		if err != nil {
			return err
		}
		fields["festivals"] = cat.Len()
		fields["excluded"] = len(warns)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for _, w := range warns {
		s.logger.WarnContext(ctx, "catalog record skipped",
			"index", w.Index,
			"id", w.ID,
			"reason", w.Reason,
		)
	}
	return cat, warns, nil
}
