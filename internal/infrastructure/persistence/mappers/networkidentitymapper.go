package mappers

import (
	"github.com/fiberops/subcore/internal/domain/network"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
)

type NetworkIdentityMapper interface {
	ToEntity(model *models.NetworkIdentityModel) *network.Identity
	ToModel(entity *network.Identity) *models.NetworkIdentityModel
}

type NetworkIdentityMapperImpl struct{}

func NewNetworkIdentityMapper() NetworkIdentityMapper {
	return &NetworkIdentityMapperImpl{}
}

func (m *NetworkIdentityMapperImpl) ToEntity(model *models.NetworkIdentityModel) *network.Identity {
	if model == nil {
		return nil
	}

	return network.ReconstructIdentity(
		model.ID,
		model.AccountNo,
		deref(model.Username),
		model.Secret,
		network.Location{
			LCP:            deref(model.SourceLCP),
			NAP:            deref(model.SourceNAP),
			Port:           deref(model.SourcePort),
			VLAN:           deref(model.VLAN),
			IPAddress:      deref(model.IPAddress),
			HardwareSerial: deref(model.HardwareSerial),
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel maps empty strings to NULL so cleared fields and missing usernames
// are stored as NULL.
func (m *NetworkIdentityMapperImpl) ToModel(entity *network.Identity) *models.NetworkIdentityModel {
	if entity == nil {
		return nil
	}

	loc := entity.Location()
	return &models.NetworkIdentityModel{
		ID:             entity.ID(),
		AccountNo:      entity.AccountNo(),
		Username:       nullable(entity.Username()),
		Secret:         entity.Secret(),
		SourceLCP:      nullable(loc.LCP),
		SourceNAP:      nullable(loc.NAP),
		SourcePort:     nullable(loc.Port),
		VLAN:           nullable(loc.VLAN),
		IPAddress:      nullable(loc.IPAddress),
		HardwareSerial: nullable(loc.HardwareSerial),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
