package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/webcalc/calculation-service/internal/service/mappers"
	"github.com/webcalc/calculation-service/internal/store"
	"github.com/webcalc/calculation-service/internal/store/model"
	"go.uber.org/zap"
)

type UserService struct {
	store store.Store
}

func NewUserService(store store.Store) *UserService {
	return &UserService{store: store}
}

type UserFilter struct {
	Username string
	Email    string
}

func NewUserFilter() *UserFilter {
	return &UserFilter{}
}

func (f *UserFilter) WithUsername(username string) *UserFilter {
	f.Username = username
	return f
}

func (f *UserFilter) WithEmail(email string) *UserFilter {
	f.Email = email
	return f
}

func (us *UserService) ListUsers(ctx context.Context, filter *UserFilter) (model.UserList, error) {
	storeFilter := store.NewUserQueryFilter()
	if filter != nil {
		if filter.Username != "" {
			storeFilter = storeFilter.ByUsername(filter.Username)
		}
		if filter.Email != "" {
			storeFilter = storeFilter.ByEmail(filter.Email)
		}
	}

	users, err := us.store.User().List(ctx, storeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := us.store.User().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrUserNotFound(id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (us *UserService) CreateUser(ctx context.Context, form mappers.UserCreateForm) (*model.User, error) {
	user, err := us.store.User().Create(ctx, form.ToModel())
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return nil, NewErrDuplicateUser(form.Username, form.Email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	zap.S().Named("user_service").Infow("user created", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (us *UserService) UpdateUser(ctx context.Context, form mappers.UserUpdateForm) (*model.User, error) {
	user, err := us.store.User().Update(ctx, form.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrRecordNotFound):
			return nil, NewErrUserNotFound(form.ID)
		case errors.Is(err, store.ErrDuplicateKey):
			return nil, NewErrDuplicateUser(form.Username, form.Email)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user. The database cascades the delete to the
// user's calculations.
func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := us.store.User().Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return NewErrUserNotFound(id)
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	zap.S().Named("user_service").Infow("user deleted", "user_id", id)
	return nil
}
