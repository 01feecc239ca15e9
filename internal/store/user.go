package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/store/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type User interface {
	List(ctx context.Context, filter *UserQueryFilter) (model.UserList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, user model.User) (*model.User, error)
	Update(ctx context.Context, user model.User) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore struct {
	db *gorm.DB
}

// Make sure we conform to User interface
var _ User = (*UserStore)(nil)

func NewUserStore(db *gorm.DB) User {
	return &UserStore{db: db}
}

func (u *UserStore) List(ctx context.Context, filter *UserQueryFilter) (model.UserList, error) {
	var users model.UserList
	tx := u.getDB(ctx).Model(&users).Order("created_at DESC")

	if filter != nil {
		for _, fn := range filter.QueryFn {
			tx = fn(tx)
		}
	}

	if result := tx.Find(&users); result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (u *UserStore) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := u.getDB(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &user, nil
}

func (u *UserStore) Create(ctx context.Context, user model.User) (*model.User, error) {
	result := u.getDB(ctx).Clauses(clause.Returning{}).Create(&user)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	return &user, nil
}

func (u *UserStore) Update(ctx context.Context, user model.User) (*model.User, error) {
	var existing model.User
	if err := u.getDB(ctx).First(&existing, "id = ?", user.ID).Error; err != nil {
		return nil, translateError(err)
	}

	if user.Username != "" {
		existing.Username = user.Username
	}
	if user.Email != "" {
		existing.Email = user.Email
	}

	if err := u.getDB(ctx).Model(&existing).Updates(&existing).Error; err != nil {
		return nil, translateError(err)
	}
	return &existing, nil
}

func (u *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := u.getDB(ctx).Unscoped().Delete(&model.User{}, "id = ?", id.String())
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (u *UserStore) getDB(ctx context.Context) *gorm.DB {
	tx := FromContext(ctx)
	if tx != nil {
		return tx
	}
	return u.db
}
