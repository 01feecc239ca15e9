package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/calculation"
	"github.com/webcalc/calculation-service/internal/service/mappers"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/internal/store/model"
	"github.com/webcalc/calculation-service/pkg/metrics"
	"go.uber.org/zap"
)

type CalculationService struct {
	store store.Store
}

func NewCalculationService(store store.Store) *CalculationService {
	return &CalculationService{store: store}
}

type CalculationFilter struct {
	UserID string
	Type   string
	Limit  int
	Offset int
}

func NewCalculationFilter() *CalculationFilter {
	return &CalculationFilter{}
}

func (f *CalculationFilter) WithUserID(userID string) *CalculationFilter {
	f.UserID = userID
	return f
}

func (f *CalculationFilter) WithType(calculationType string) *CalculationFilter {
	f.Type = calculationType
	return f
}

func (f *CalculationFilter) WithLimit(limit int) *CalculationFilter {
	f.Limit = limit
	return f
}

func (f *CalculationFilter) WithOffset(offset int) *CalculationFilter {
	f.Offset = offset
	return f
}

func (cs *CalculationService) ListCalculations(ctx context.Context, filter *CalculationFilter) (model.CalculationList, error) {
	storeFilter := store.NewCalculationQueryFilter()
	opts := store.NewCalculationQueryOptions().WithSortOrder(store.SortByCreatedTime)

	if filter != nil {
		if filter.UserID != "" {
			storeFilter = storeFilter.ByUserID(filter.UserID)
		}
		if filter.Type != "" {
			storeFilter = storeFilter.ByType(filter.Type)
		}
		opts = opts.WithLimit(filter.Limit).WithOffset(filter.Offset)
	}

	calculations, err := cs.store.Calculation().List(ctx, storeFilter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}
	return calculations, nil
}

func (cs *CalculationService) GetCalculation(ctx context.Context, id uuid.UUID) (*model.Calculation, error) {
	calc, err := cs.store.Calculation().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCalculationNotFound(id)
		}
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	return calc, nil
}

// CreateCalculation validates the form against the calculation core, computes
// the result eagerly and persists the calculation for its owner.
func (cs *CalculationService) CreateCalculation(ctx context.Context, form mappers.CalculationCreateForm) (*model.Calculation, error) {
	result, err := calculation.Compute(form.Type, form.Inputs)
	if err != nil {
		metrics.IncreaseCalculationFailuresTotalMetric(failureReason(err))
		return nil, NewErrInvalidCalculation(err)
	}

	ctx, err = cs.store.NewTransactionContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = store.Rollback(ctx)
	}()

	// The owner must exist. The FK would reject the insert anyway but this
	// yields a proper not-found error instead of a constraint violation.
	if _, err := cs.store.User().Get(ctx, form.UserID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrUserNotFound(form.UserID)
		}
		return nil, fmt.Errorf("failed to get calculation owner: %w", err)
	}

	calc := form.ToModel()
	calc.Result = &result

	created, err := cs.store.Calculation().Create(ctx, calc)
	if err != nil {
		return nil, fmt.Errorf("failed to create calculation: %w", err)
	}

	if _, err := store.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.IncreaseCalculationsTotalMetric(created.Type)
	zap.S().Named("calculation_service").Infow("calculation created",
		"calculation_id", created.ID,
		"user_id", created.UserID,
		"type", created.Type,
	)
	return created, nil
}

// UpdateCalculation replaces the inputs of an existing calculation and
// recomputes its result. The calculation type cannot be changed.
func (cs *CalculationService) UpdateCalculation(ctx context.Context, form mappers.CalculationUpdateForm) (*model.Calculation, error) {
	existing, err := cs.store.Calculation().Get(ctx, form.ID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCalculationNotFound(form.ID)
		}
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}

	result, err := calculation.Compute(calculation.Type(existing.Type), form.Inputs)
	if err != nil {
		metrics.IncreaseCalculationFailuresTotalMetric(failureReason(err))
		return nil, NewErrInvalidCalculation(err)
	}

	updated, err := cs.store.Calculation().Update(ctx, form.ID, form.Inputs, &result)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrCalculationNotFound(form.ID)
		}
		return nil, fmt.Errorf("failed to update calculation: %w", err)
	}
	return updated, nil
}

func (cs *CalculationService) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	if err := cs.store.Calculation().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrCalculationNotFound(id)
		}
		return fmt.Errorf("failed to delete calculation: %w", err)
	}
	return nil
}

// Statistics returns database totals for the statistics endpoint.
func (cs *CalculationService) Statistics(ctx context.Context) (model.Stats, error) {
	return cs.store.Statistics(ctx)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, calculation.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, calculation.ErrTooFewInputs):
		return "too_few_inputs"
	default:
		return "unknown_type"
	}
}
