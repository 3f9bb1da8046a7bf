package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankportal/internal/common"
	"github.com/dmitrijs2005/bankportal/internal/cryptox"
	"github.com/dmitrijs2005/bankportal/internal/server/models"
	"github.com/dmitrijs2005/bankportal/internal/server/repositories/repomanager"
)

// UserService manages back-office accounts. Passwords are hashed before they
// reach the repository and usernames are kept unique.
type UserService struct {
	repomanager repomanager.RepositoryManager
	deps
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the user or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repomanager.Users().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// FindByUsername returns the user or common.ErrorNotFound.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}
	return u, nil
}

// Create hashes the password and stores a new user. A taken username yields
// common.ErrorAlreadyExists.
func (s *UserService) Create(ctx context.Context, in models.UserInput) (*models.User, error) {
	return s.create(ctx, s.newID(), in.Username, in.Password)
}

// Import stores a user under a fixed id. A password that is not already a
// bcrypt hash is hashed first.
func (s *UserService) Import(ctx context.Context, u models.User) (*models.User, error) {
	if cryptox.IsHash(u.Password) {
		return s.store(ctx, &u)
	}
	return s.create(ctx, u.ID, u.Username, u.Password)
}

func (s *UserService) create(ctx context.Context, id, username, password string) (*models.User, error) {
	if err := s.ensureUsernameFree(ctx, username, ""); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.store(ctx, &models.User{ID: id, Username: username, Password: hash})
}

func (s *UserService) store(ctx context.Context, u *models.User) (*models.User, error) {
	created, err := s.repomanager.Users().Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Update merges the patch into the stored user. A new password is re-hashed;
// an omitted one leaves the stored hash untouched.
func (s *UserService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.Username != nil {
		if err := s.ensureUsernameFree(ctx, *patch.Username, id); err != nil {
			return nil, err
		}
	}

	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		patch.Password = &hash
	}

	u, err := s.repomanager.Users().Update(ctx, id, func(u *models.User) error {
		patch.Apply(u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	return u, nil
}

// Delete reports whether a user was removed.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.repomanager.Users().Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user %s: %w", id, err)
	}
	return ok, nil
}

// Authenticate checks username and password against the stored hash.
// Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("find user %s: %w", username, err)
	}

	ok, err := s.hasher.Compare(u.Password, password)
	if err != nil {
		return nil, fmt.Errorf("%w: compare password of %s: %v", common.ErrorInternal, username, err)
	}
	if !ok {
		return nil, common.ErrorUnauthorized
	}
	return u, nil
}

// ensureUsernameFree fails with common.ErrorAlreadyExists when username
// belongs to a user other than selfID.
func (s *UserService) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.repomanager.Users().GetUserByLogin(ctx, username)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find user %s: %w", username, err)
	case existing.ID == selfID:
		return nil
	}
	return fmt.Errorf("username %s: %w", username, common.ErrorAlreadyExists)
}
