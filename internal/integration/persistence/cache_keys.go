package persistence

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/freight-manager/backend/internal/application/adapter"
)

// freightTag groups every cached read scoped to one freight.
func freightTag(id uuid.UUID) string {
	return "freight:" + id.String()
}

func incomesByFreightKey(id uuid.UUID) string {
	return "incomes:freight:" + id.String()
}

func expensesByFreightKey(id uuid.UUID) string {
	return "expenses:freight:" + id.String()
}

// invalidateFreights drops the cached reads of the given freights. Cache failures are logged only,
// entries expire on their own.
func invalidateFreights(ctx context.Context, cache adapter.Cache, ids ...*uuid.UUID) {
	tags := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != nil {
			tags = append(tags, freightTag(*id))
		}
	}
	if len(tags) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, tags...); err != nil {
		slog.Warn("Failed to invalidate cache", "tags", tags, "error", err)
	}
}
