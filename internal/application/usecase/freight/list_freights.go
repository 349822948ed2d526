package freight

import (
	"context"
	"fmt"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
)

// ListFreightsInput represents the input for listing freights.
type ListFreightsInput struct {
	Filter adapter.FreightFilter
}

// ListFreightsOutput represents the output of listing freights.
type ListFreightsOutput struct {
	Freights []*entity.Freight
}

// ListFreightsUseCase handles listing freights logic.
type ListFreightsUseCase struct {
	freightRepo adapter.FreightRepository
}

// NewListFreightsUseCase creates a new ListFreightsUseCase instance.
func NewListFreightsUseCase(freightRepo adapter.FreightRepository) *ListFreightsUseCase {
	return &ListFreightsUseCase{
		freightRepo: freightRepo,
	}
}

// Execute performs the freight listing.
func (uc *ListFreightsUseCase) Execute(ctx context.Context, input ListFreightsInput) (*ListFreightsOutput, error) {
	freights, err := uc.freightRepo.FindAll(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list freights: %w", err)
	}

	return &ListFreightsOutput{
		Freights: freights,
	}, nil
}
