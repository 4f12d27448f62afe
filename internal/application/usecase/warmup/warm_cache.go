package warmup

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var collectionKeys = map[string]string{
	document.CollectionProfiles:   profile.Key,
	document.CollectionSkills:     skill.Key,
	document.CollectionExperience: experience.Key,
	document.CollectionProjects:   project.Key,
}

// WarmCacheUseCase re-reads a changed document through the cached store so
// the next API read is a cache hit.
type WarmCacheUseCase struct {
	store  document.Store
	logger logger.Logger
}

func NewWarmCacheUseCase(store document.Store, log logger.Logger) *WarmCacheUseCase {
	return &WarmCacheUseCase{store: store, logger: log}
}

func (uc *WarmCacheUseCase) Execute(ctx context.Context, evt service.PortfolioEvent) error {
	key, ok := collectionKeys[evt.Collection]
	if !ok {
		return apperror.NewInvalidInput(fmt.Sprintf("unknown collection %q", evt.Collection), nil)
	}

	if _, err := uc.store.Get(ctx, evt.Collection, key); err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("warm %s failed: %w", evt.Collection, err)
	}

	uc.logger.Info("Warmed cache", zap.String("collection", evt.Collection), zap.String("event_type", evt.EventType))
	return nil
}
