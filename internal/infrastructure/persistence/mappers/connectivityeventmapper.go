package mappers

import (
	"gorm.io/datatypes"

	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

type ConnectivityEventMapper interface {
	ToEntity(model *models.ConnectivityEventModel) *connectivity.Event
	ToModel(entity *connectivity.Event) *models.ConnectivityEventModel
	ToEntities(models []*models.ConnectivityEventModel) []*connectivity.Event
}

type ConnectivityEventMapperImpl struct{}

func NewConnectivityEventMapper() ConnectivityEventMapper {
	return &ConnectivityEventMapperImpl{}
}

func (m *ConnectivityEventMapperImpl) ToEntity(model *models.ConnectivityEventModel) *connectivity.Event {
	if model == nil {
		return nil
	}

	metadata := make(map[string]string, len(model.Metadata))
	for k, v := range model.Metadata {
		if s, ok := v.(string); ok {
			metadata[k] = s
		}
	}

	return &connectivity.Event{
		ID:             model.EventID,
		AccountNo:      model.AccountNo,
		Transition:     connectivity.Transition(model.Transition),
		Result:         connectivity.ResultCode(model.Result),
		NetworkOutcome: connectivity.NetworkOutcome(model.NetworkOutcome),
		Detail:         model.Detail,
		Remarks:        model.Remarks,
		Actor:          model.Actor,
		Metadata:       metadata,
		OccurredAt:     model.OccurredAt,
	}
}

func (m *ConnectivityEventMapperImpl) ToModel(entity *connectivity.Event) *models.ConnectivityEventModel {
	if entity == nil {
		return nil
	}

	metadata := make(datatypes.JSONMap, len(entity.Metadata))
	for k, v := range entity.Metadata {
		metadata[k] = v
	}

	return &models.ConnectivityEventModel{
		EventID:        entity.ID,
		AccountNo:      entity.AccountNo,
		Transition:     string(entity.Transition),
		Result:         string(entity.Result),
		NetworkOutcome: string(entity.NetworkOutcome),
		Detail:         entity.Detail,
		Remarks:        entity.Remarks,
		Actor:          entity.Actor,
		Metadata:       metadata,
		OccurredAt:     entity.OccurredAt,
	}
}

func (m *ConnectivityEventMapperImpl) ToEntities(modelList []*models.ConnectivityEventModel) []*connectivity.Event {
	events := make([]*connectivity.Event, 0, len(modelList))
	for _, model := range modelList {
		events = append(events, m.ToEntity(model))
	}
	return events
}
