package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fiberops/subcore/internal/domain/onboarding"
	"github.com/fiberops/subcore/internal/infrastructure/persistence/models"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) onboarding.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *onboarding.Customer) error {
	model := &models.CustomerModel{
		FirstName:  customer.FirstName,
		MiddleName: customer.MiddleName,
		LastName:   customer.LastName,
		Mobile:     customer.Mobile,
		Email:      customer.Email,
		Address:    customer.Address,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "last_name", customer.LastName, "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	customer.ID = model.ID
	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*onboarding.Customer, error) {
	var model models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer", "customer_id", id, "error", err)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &onboarding.Customer{
		ID:         model.ID,
		FirstName:  model.FirstName,
		MiddleName: model.MiddleName,
		LastName:   model.LastName,
		Mobile:     model.Mobile,
		Email:      model.Email,
		Address:    model.Address,
	}, nil
}
