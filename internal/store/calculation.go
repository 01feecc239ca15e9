package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Calculation interface {
	List(ctx context.Context, filter *CalculationQueryFilter, opts *CalculationQueryOptions) (model.CalculationList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Calculation, error)
	Create(ctx context.Context, calculation model.Calculation) (*model.Calculation, error)
	Update(ctx context.Context, id uuid.UUID, inputs []float64, result *float64) (*model.Calculation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CalculationStore struct {
	db *gorm.DB
}

// Make sure we conform to Calculation interface
var _ Calculation = (*CalculationStore)(nil)

func NewCalculationStore(db *gorm.DB) Calculation {
	return &CalculationStore{db: db}
}

func (c *CalculationStore) List(ctx context.Context, filter *CalculationQueryFilter, opts *CalculationQueryOptions) (model.CalculationList, error) {
	var calculations model.CalculationList
	tx := c.getDB(ctx).Model(&calculations)

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}
	if opts != nil {
		for _, fn := range opts.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&calculations); result.Error != nil {
		return nil, result.Error
	}
	return calculations, nil
}

func (c *CalculationStore) Get(ctx context.Context, id uuid.UUID) (*model.Calculation, error) {
	var calculation model.Calculation
	result := c.getDB(ctx).First(&calculation, "id = ?", id)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &calculation, nil
}

func (c *CalculationStore) Create(ctx context.Context, calculation model.Calculation) (*model.Calculation, error) {
	result := c.getDB(ctx).Clauses(clause.Returning{}).Create(&calculation)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &calculation, nil
}

// Update replaces the inputs and result of an existing calculation. The type
// is immutable once created.
func (c *CalculationStore) Update(ctx context.Context, id uuid.UUID, inputs []float64, result *float64) (*model.Calculation, error) {
	var calculation model.Calculation
	if err := c.getDB(ctx).First(&calculation, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}

	if inputs != nil {
		calculation.Inputs = model.MakeJSONField(inputs)
	}
	calculation.Result = result
	calculation.UpdatedAt = time.Now()

	if err := c.getDB(ctx).Model(&calculation).Updates(&calculation).Error; err != nil {
		return nil, translateError(err)
	}
	return &calculation, nil
}

func (c *CalculationStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := c.getDB(ctx).Unscoped().Delete(&model.Calculation{}, "id = ?", id.String())
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (c *CalculationStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return c.db
}
