// Package settlement contains the Open <-> Settled transitions of a freight.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freight-manager/backend/internal/application/adapter"
	"github.com/freight-manager/backend/internal/domain/entity"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
)

// SettleFreightInput represents the input for settling a freight.
type SettleFreightInput struct {
	FreightID uuid.UUID
}

// SettleFreightOutput represents the output of settling a freight.
type SettleFreightOutput struct {
	Freight      *entity.Freight
	AdvanceTotal decimal.Decimal
	FinalAmount  decimal.Decimal
	// Income is the settlement income written by this call, nil when nothing was owed.
	Income         *entity.Income
	AlreadySettled bool
}

// SettleFreightUseCase marks a freight settled and records the remaining receivable.
type SettleFreightUseCase struct {
	settlementRepo adapter.SettlementRepository
	brokerRepo     adapter.BrokerRepository
	emailService   adapter.EmailService
}

// NewSettleFreightUseCase creates a new SettleFreightUseCase instance.
func NewSettleFreightUseCase(
	settlementRepo adapter.SettlementRepository,
	brokerRepo adapter.BrokerRepository,
	emailService adapter.EmailService,
) *SettleFreightUseCase {
	return &SettleFreightUseCase{
		settlementRepo: settlementRepo,
		brokerRepo:     brokerRepo,
		emailService:   emailService,
	}
}

// Execute performs the settlement. Settling an already settled freight writes nothing.
func (uc *SettleFreightUseCase) Execute(ctx context.Context, input SettleFreightInput) (*SettleFreightOutput, error) {
	result, err := uc.settlementRepo.Settle(ctx, input.FreightID)
	if err != nil {
		return nil, mapFreightError(err, "failed to settle freight")
	}

	if !result.AlreadySettled {
		slog.Info("Freight settled",
			"freight_id", result.Freight.ID,
			"advance_total", result.Plan.AdvanceTotal.String(),
			"final_amount", result.Plan.FinalAmount.String(),
			"income_created", result.Plan.Income != nil,
		)
		uc.notifyBroker(ctx, result)
	}

	return &SettleFreightOutput{
		Freight:        result.Freight,
		AdvanceTotal:   result.Plan.AdvanceTotal,
		FinalAmount:    result.Plan.FinalAmount,
		Income:         result.Plan.Income,
		AlreadySettled: result.AlreadySettled,
	}, nil
}

// notifyBroker queues the settlement notice. Failures are logged and never undo the settlement.
func (uc *SettleFreightUseCase) notifyBroker(ctx context.Context, result *adapter.SettleResult) {
	freight := result.Freight
	if uc.emailService == nil || freight.BrokerID == nil {
		return
	}

	broker, err := uc.brokerRepo.FindByID(ctx, *freight.BrokerID)
	if err != nil {
		slog.Warn("Failed to load broker for settlement notice", "freight_id", freight.ID, "error", err)
		return
	}
	if broker.Email == "" {
		return
	}

	recorded := decimal.Zero
	if result.Plan.Income != nil {
		recorded = result.Plan.Income.Amount
	}

	err = uc.emailService.QueueFreightSettledEmail(ctx, adapter.QueueFreightSettledInput{
		FreightID:    freight.ID,
		BrokerName:   broker.Name,
		BrokerEmail:  broker.Email,
		FreightName:  freight.Name,
		Origin:       freight.Origin,
		Destination:  freight.Destination,
		TotalValue:   freight.TotalValue.StringFixed(2),
		AdvanceTotal: result.Plan.AdvanceTotal.StringFixed(2),
		FinalAmount:  recorded.StringFixed(2),
	})
	if err != nil {
		slog.Error("Failed to queue settlement notice", "freight_id", freight.ID, "error", err)
	}
}

// mapFreightError turns a missing freight into a FreightError and wraps everything else.
func mapFreightError(err error, message string) error {
	if errors.Is(err, domainerror.ErrFreightNotFound) {
		return domainerror.NewFreightError(
			domainerror.ErrCodeFreightNotFound,
			"freight not found",
			domainerror.ErrFreightNotFound,
		)
	}
	return fmt.Errorf("%s: %w", message, err)
}
