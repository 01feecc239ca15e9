package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store interface {
	NewTransactionContext(ctx context.Context) (context.Context, error)
	User() User
	Calculation() Calculation
	Statistics(ctx context.Context) (model.Stats, error)
	Ping(ctx context.Context) error
	InitialMigration() error
	Seed() error
	Close() error
}

type DataStore struct {
	db          *gorm.DB
	user        User
	calculation Calculation
}

func NewStore(db *gorm.DB) Store {
	return &DataStore{
		user:        NewUserStore(db),
		calculation: NewCalculationStore(db),
		db:          db,
	}
}

func (s *DataStore) NewTransactionContext(ctx context.Context) (context.Context, error) {
	return newTransactionContext(ctx, s.db)
}

func (s *DataStore) User() User {
	return s.user
}

func (s *DataStore) Calculation() Calculation {
	return s.calculation
}

// InitialMigration creates the schema from the models. Production deployments
// run the SQL migrations instead; this keeps the sqlite and test paths
// self-contained.
func (s *DataStore) InitialMigration() error {
	return s.db.AutoMigrate(&model.User{}, &model.Calculation{})
}

func (s *DataStore) Statistics(ctx context.Context) (model.Stats, error) {
	stats := model.Stats{CalculationsByType: make(map[string]int64)}

	db := s.db.Session(&gorm.Session{Context: ctx})

	if err := db.Model(&model.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return model.Stats{}, err
	}
	if err := db.Model(&model.Calculation{}).Count(&stats.TotalCalculations).Error; err != nil {
		return model.Stats{}, err
	}

	rows := []struct {
		Type  string
		Total int64
	}{}
	if err := db.Model(&model.Calculation{}).Select("type, count(*) as total").Group("type").Scan(&rows).Error; err != nil {
		return model.Stats{}, err
	}
	for _, row := range rows {
		stats.CalculationsByType[row.Type] = row.Total
	}

	return stats, nil
}

// Seed creates or refreshes the default example user and one calculation
// owned by it. Both live under the zero UUID so re-seeding is idempotent.
func (s *DataStore) Seed() error {
	userID := uuid.UUID{}

	tx, err := newTransaction(s.db)
	if err != nil {
		return err
	}

	user := model.User{
		ID:       userID,
		Username: "example",
		Email:    "example@localhost",
	}
	if err := tx.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "email"}),
	}).Create(&user).Error; err != nil {
		_ = tx.Rollback()
		return err
	}

	result := 15.5
	calculation := model.Calculation{
		ID:     uuid.UUID{},
		UserID: userID,
		Type:   "addition",
		Inputs: model.MakeJSONField([]float64{10.5, 3, 2}),
		Result: &result,
	}
	if err := tx.tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"inputs", "result"}),
	}).Create(&calculation).Error; err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// Ping verifies the database connection is still alive. Readiness probes use
// it to fail fast when the backing store is gone.
func (s *DataStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
