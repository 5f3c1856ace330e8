package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

type UserRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type UserListQuery struct {
	Page   domain.PageRequest
	Search string
	Role   domain.UserRole
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) ListUsers(ctx context.Context, query UserListQuery) (domain.Page[domain.User], error) {
	req := query.Page.Clamp()

	filters := map[string]interface{}{}
	if query.Role != "" {
		filters["role"] = string(query.Role)
	}

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:   req.Limit,
		Offset:  req.Offset(),
		Search:  query.Search,
		Filters: filters,
	}, s.repo.FindAll, s.repo.Count)
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = string(hash)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	user.Email = existing.Email
	user.Password = existing.Password
	user.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
