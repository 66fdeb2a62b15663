package mappers

import (
	"github.com/fiberops/subcore/internal/domain/account"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

type SubscriberAccountMapper interface {
	ToEntity(model *models.SubscriberAccountModel) (*account.SubscriberAccount, error)
	ToModel(entity *account.SubscriberAccount) *models.SubscriberAccountModel
}

type SubscriberAccountMapperImpl struct{}

func NewSubscriberAccountMapper() SubscriberAccountMapper {
	return &SubscriberAccountMapperImpl{}
}

func (m *SubscriberAccountMapperImpl) ToEntity(model *models.SubscriberAccountModel) (*account.SubscriberAccount, error) {
	if model == nil {
		return nil, nil
	}

	return account.ReconstructSubscriberAccount(
		model.ID,
		model.AccountNo,
		model.CustomerID,
		model.PlanID,
		model.PlanName,
		model.Balance,
		account.ConnectivityStatus(model.ConnectivityStatus),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *SubscriberAccountMapperImpl) ToModel(entity *account.SubscriberAccount) *models.SubscriberAccountModel {
	if entity == nil {
		return nil
	}

	return &models.SubscriberAccountModel{
		ID:                 entity.ID(),
		AccountNo:          entity.AccountNo(),
		CustomerID:         entity.CustomerID(),
		PlanID:             entity.PlanID(),
		PlanName:           entity.PlanName(),
		Balance:            entity.Balance(),
		ConnectivityStatus: entity.ConnectivityStatus().String(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}
