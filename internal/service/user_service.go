package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"user-admin/internal/domain"
	"user-admin/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrMissingFields indicates one or more required fields were empty.
	ErrMissingFields = errors.New("missing required fields")
)

// dummyHash is a well-formed bcrypt hash compared against when login
// hits an unknown email, so that path costs the same as a real compare.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService owns the registration/login decisions and admin CRUD
// over user records.
type UserService interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (*domain.PublicUser, error)
	AddUser(ctx context.Context, name, email, password string) (int64, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, name, email string) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	users repository.UserRepository
	cost  int
}

func NewUserService(users repository.UserRepository, bcryptCost int) UserService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &userService{
		users: users,
		cost:  bcryptCost,
	}
}

// Register creates a user with a freshly hashed password. The email
// existence check and the insert are two store round trips; two
// concurrent registrations for the same email can both pass the check.
func (s *userService) Register(ctx context.Context, username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// unknown email takes the same bcrypt detour as a mismatch
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &domain.PublicUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// AddUser inserts a record on behalf of an admin. The password is
// optional; when supplied it is hashed, otherwise an empty credential
// is stored. Unlike Register there is no duplicate-email check.
func (s *userService) AddUser(ctx context.Context, name, email, password string) (int64, error) {
	if name == "" || email == "" {
		return 0, ErrMissingFields
	}

	var hash string
	if password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return 0, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	user := &domain.User{
		Username:     name,
		Email:        email,
		PasswordHash: hash,
	}
	return s.users.Create(ctx, user)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id int64, name, email string) error {
	if name == "" || email == "" {
		return ErrMissingFields
	}
	return s.users.Update(ctx, id, name, email)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
