package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type LocationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLocationRepository(db *gorm.DB, logger logger.Interface) onboarding.LocationRepository {
	return &LocationRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *LocationRepositoryImpl) FindByCodes(ctx context.Context, lcp, nap string) (*onboarding.SiteLocation, error) {
	lcp = strings.TrimSpace(lcp)
	nap = strings.TrimSpace(nap)

	var model models.LocationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("lcp_code = ? AND nap_code = ?", lcp, nap).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find location", "lcp", lcp, "nap", nap, "error", err)
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	return &onboarding.SiteLocation{
		ID:      model.ID,
		LCPCode: strings.TrimSpace(model.LCPCode),
		NAPCode: strings.TrimSpace(model.NAPCode),
		Area:    model.Area,
	}, nil
}
