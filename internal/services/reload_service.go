package services

import (
	"context"

	"go.uber.org/zap"

	"folio.dev/internal/catalog"
	"folio.dev/internal/content"
	"folio.dev/internal/metrics"
)

// ReloadService rebuilds the catalog snapshot and drops rendered details
type ReloadService struct {
	loader  *catalog.Loader
	holder  *catalog.Holder
	content *content.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewReloadService creates a new ReloadService
func NewReloadService(l *catalog.Loader, h *catalog.Holder, cs *content.Store, m *metrics.Metrics, logger *zap.Logger) *ReloadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReloadService{loader: l, holder: h, content: cs, metrics: m, logger: logger}
}

// Reload loads a fresh snapshot. On failure the current snapshot stays in
// place and the error is returned
func (s *ReloadService) Reload(ctx context.Context) error {
	c, err := s.loader.Load(ctx)
	if err != nil {
		s.record(0, err)
		return err
	}
	s.holder.Set(c)
	s.content.Purge()
	s.record(c.Len(), nil)
	s.logger.Info("catalog reloaded", zap.Int("projects", c.Len()))
	return nil
}

func (s *ReloadService) record(size int, err error) {
	if s.metrics != nil {
		s.metrics.RecordReload(size, err)
	}
}
