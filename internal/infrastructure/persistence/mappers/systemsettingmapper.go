package mappers

import (
	"github.com/fiberops/subcore/internal/domain/setting"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

type SystemSettingMapper interface {
	ToEntity(model *models.SystemSettingModel) *setting.SystemSetting
	ToModel(entity *setting.SystemSetting) *models.SystemSettingModel
	// ToEntities drops rows whose key has left the catalog.
	ToEntities(models []*models.SystemSettingModel) []*setting.SystemSetting
}

type SystemSettingMapperImpl struct{}

func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToEntity(model *models.SystemSettingModel) *setting.SystemSetting {
	if model == nil {
		return nil
	}
	return setting.ReconstructSystemSetting(
		model.ID,
		model.Category,
		model.SettingKey,
		model.Value,
		setting.ValueType(model.ValueType),
		model.UpdatedBy,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SystemSettingMapperImpl) ToModel(entity *setting.SystemSetting) *models.SystemSettingModel {
	if entity == nil {
		return nil
	}
	return &models.SystemSettingModel{
		ID:         entity.ID(),
		Category:   entity.Category(),
		SettingKey: entity.Key(),
		Value:      entity.Value(),
		ValueType:  string(entity.ValueType()),
		UpdatedBy:  entity.UpdatedBy(),
		Version:    entity.Version(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m *SystemSettingMapperImpl) ToEntities(rows []*models.SystemSettingModel) []*setting.SystemSetting {
	entities := make([]*setting.SystemSetting, 0, len(rows))
	for _, row := range rows {
		if row == nil || !setting.IsKnownKey(row.Category, row.SettingKey) {
			continue
		}
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}
