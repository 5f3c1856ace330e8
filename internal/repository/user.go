package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	Update(ctx context.Context, user dao.User) (dao.User, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, len(found))
	for i, u := range found {
		users[i] = r.daoToDomain(u)
	}

	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(user))
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:                u.ID,
		Email:             u.Email,
		Password:          u.Password,
		Name:              u.Name,
		Role:              domain.UserRole(u.Role),
		Department:        u.Department,
		Status:            u.Status,
		CanManageEvents:   u.CanManageEvents,
		CanManageUsers:    u.CanManageUsers,
		CanManageInvoices: u.CanManageInvoices,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func (r *UserRepository) domainToDao(u domain.User) dao.User {
	return dao.User{
		ID:                u.ID,
		Email:             u.Email,
		Password:          u.Password,
		Name:              u.Name,
		Role:              string(u.Role),
		Department:        u.Department,
		Status:            u.Status,
		CanManageEvents:   u.CanManageEvents,
		CanManageUsers:    u.CanManageUsers,
		CanManageInvoices: u.CanManageInvoices,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
