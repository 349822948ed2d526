package fleet

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// BrokerInput holds the editable fields of a broker.
type BrokerInput struct {
	Name  string
	Email string
	Phone string
}

func (in *BrokerInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" {
		return missingFields("name is required")
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return domainerror.NewFleetError(
				domainerror.ErrCodeInvalidBrokerEmail,
				"invalid broker email",
				domainerror.ErrInvalidBrokerEmail,
			)
		}
	}
	return nil
}

// CreateBrokerUseCase handles broker creation.
type CreateBrokerUseCase struct {
	brokerRepo adapter.BrokerRepository
}

// NewCreateBrokerUseCase creates a new CreateBrokerUseCase instance.
func NewCreateBrokerUseCase(brokerRepo adapter.BrokerRepository) *CreateBrokerUseCase {
	return &CreateBrokerUseCase{brokerRepo: brokerRepo}
}

// Execute creates the broker.
func (uc *CreateBrokerUseCase) Execute(ctx context.Context, input BrokerInput) (*entity.Broker, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	broker := entity.NewBroker(input.Name, input.Email, input.Phone)
	if err := uc.brokerRepo.Create(ctx, broker); err != nil {
		return nil, fmt.Errorf("failed to create broker: %w", err)
	}
	return broker, nil
}

// ListBrokersUseCase handles listing brokers.
type ListBrokersUseCase struct {
	brokerRepo adapter.BrokerRepository
}

// NewListBrokersUseCase creates a new ListBrokersUseCase instance.
func NewListBrokersUseCase(brokerRepo adapter.BrokerRepository) *ListBrokersUseCase {
	return &ListBrokersUseCase{brokerRepo: brokerRepo}
}

// Execute lists every broker ordered by name.
func (uc *ListBrokersUseCase) Execute(ctx context.Context) ([]*entity.Broker, error) {
	brokers, err := uc.brokerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brokers: %w", err)
	}
	return brokers, nil
}

// UpdateBrokerUseCase handles broker updates.
type UpdateBrokerUseCase struct {
	brokerRepo adapter.BrokerRepository
}

// NewUpdateBrokerUseCase creates a new UpdateBrokerUseCase instance.
func NewUpdateBrokerUseCase(brokerRepo adapter.BrokerRepository) *UpdateBrokerUseCase {
	return &UpdateBrokerUseCase{brokerRepo: brokerRepo}
}

// Execute replaces the fields of the broker.
func (uc *UpdateBrokerUseCase) Execute(ctx context.Context, id uuid.UUID, input BrokerInput) (*entity.Broker, error) {
	if err := input.normalize(); err != nil {
		return nil, err
	}

	broker, err := uc.brokerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, brokerNotFound(err)
	}

	broker.Name = input.Name
	broker.Email = input.Email
	broker.Phone = input.Phone
	broker.UpdatedAt = time.Now().UTC()

	if err := uc.brokerRepo.Update(ctx, broker); err != nil {
		return nil, fmt.Errorf("failed to update broker: %w", err)
	}
	return broker, nil
}

// DeleteBrokerUseCase handles broker deletion.
type DeleteBrokerUseCase struct {
	brokerRepo adapter.BrokerRepository
}

// NewDeleteBrokerUseCase creates a new DeleteBrokerUseCase instance.
func NewDeleteBrokerUseCase(brokerRepo adapter.BrokerRepository) *DeleteBrokerUseCase {
	return &DeleteBrokerUseCase{brokerRepo: brokerRepo}
}

// Execute deletes the broker.
func (uc *DeleteBrokerUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.brokerRepo.Delete(ctx, id); err != nil {
		return brokerNotFound(err)
	}
	return nil
}

func brokerNotFound(err error) error {
	if errors.Is(err, domainerror.ErrBrokerNotFound) {
		return domainerror.NewFleetError(domainerror.ErrCodeBrokerNotFound, "broker not found", domainerror.ErrBrokerNotFound)
	}
	return fmt.Errorf("failed to find broker: %w", err)
}
