package service

import (
	"context"
	"fmt"
	"time"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/core/auth"
	"go-user-api-starter/internal/core/cache"
	"go-user-api-starter/internal/domain"
)

const cacheTTL = 5 * time.Minute

// Cache is the slice of the redis cache the service needs.
// *cache.Cache satisfies it; tests substitute a fake.
type Cache interface {
	cache.Loader
	Invalidate(ctx context.Context, keys ...string)
}

type UserService struct {
	repo   domain.UserRepository
	hasher auth.PasswordHasher
	jwter  *auth.JWTer
	cache  Cache // nil disables read-through caching
}

func NewUserService(repo domain.UserRepository, hasher auth.PasswordHasher, jwter *auth.JWTer, c Cache) *UserService {
	return &UserService{repo: repo, hasher: hasher, jwter: jwter, cache: c}
}

// Register creates an account and returns its public projection.
// A taken email yields Conflict whether it is caught by the pre-check
// here or by the store's unique index during the insert.
func (s *UserService) Register(ctx context.Context, email string, fullName *string, password string) (domain.PublicUser, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.PublicUser{}, apperror.Internal("failed to create user", err)
	}
	if existing != nil {
		return domain.PublicUser{}, apperror.Conflict("user with this email already exists")
	}

	u := domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: s.hasher.Hash(password),
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		if apperror.Classified(err) {
			return domain.PublicUser{}, err
		}
		return domain.PublicUser{}, apperror.Internal("failed to create user", err)
	}
	return u.Public(), nil
}

// Login verifies credentials and issues an access token. Lookup miss
// and bad password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperror.Internal("failed to fetch user", err)
	}
	if u == nil || !s.hasher.Verify(password, u.PasswordHash) {
		return "", apperror.Unauthorized("invalid credentials")
	}
	token, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return "", apperror.Internal("failed to issue token", err)
	}
	return token, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to fetch users", err)
	}
	return publics(users), nil
}

// ListPage serves the admin listing: a page plus total match count.
func (s *UserService) ListPage(ctx context.Context, offset, limit int, q string) ([]domain.PublicUser, int64, error) {
	users, total, err := s.repo.ListPage(ctx, offset, limit, q)
	if err != nil {
		return nil, 0, apperror.Internal("failed to fetch users", err)
	}
	return publics(users), total, nil
}

// Search matches q against email and full_name.
func (s *UserService) Search(ctx context.Context, q string, limit int) ([]domain.PublicUser, error) {
	users, _, err := s.repo.ListPage(ctx, 0, limit, q)
	if err != nil {
		return nil, apperror.Internal("failed to search users", err)
	}
	return publics(users), nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (domain.PublicUser, error) {
	load := func(ctx context.Context) (*domain.PublicUser, error) {
		u, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, apperror.Internal("failed to fetch user", err)
		}
		if u == nil {
			return nil, apperror.NotFound("user")
		}
		p := u.Public()
		return &p, nil
	}

	var p *domain.PublicUser
	var err error
	if s.cache != nil {
		p, err = cache.GetOrLoadJSON[domain.PublicUser](s.cache, ctx, idKey(id), cacheTTL, load)
	} else {
		p, err = load(ctx)
	}
	if err != nil {
		return domain.PublicUser{}, err
	}
	return *p, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (domain.PublicUser, error) {
	load := func(ctx context.Context) (*domain.PublicUser, error) {
		u, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return nil, apperror.Internal("failed to fetch user", err)
		}
		if u == nil {
			return nil, apperror.NotFound("user")
		}
		p := u.Public()
		return &p, nil
	}

	var p *domain.PublicUser
	var err error
	if s.cache != nil {
		p, err = cache.GetOrLoadJSON[domain.PublicUser](s.cache, ctx, emailKey(email), cacheTTL, load)
	} else {
		p, err = load(ctx)
	}
	if err != nil {
		return domain.PublicUser{}, err
	}
	return *p, nil
}

func (s *UserService) Update(ctx context.Context, id uint, patch domain.UserPatch) (domain.PublicUser, error) {
	var oldEmail string
	if s.cache != nil {
		if prev, err := s.repo.FindByID(ctx, id); err == nil && prev != nil {
			oldEmail = prev.Email
		}
	}

	u, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if apperror.Classified(err) {
			return domain.PublicUser{}, err
		}
		return domain.PublicUser{}, apperror.Internal("failed to update user", err)
	}

	if s.cache != nil {
		keys := []string{idKey(id), emailKey(u.Email)}
		if oldEmail != "" && oldEmail != u.Email {
			keys = append(keys, emailKey(oldEmail))
		}
		s.cache.Invalidate(ctx, keys...)
	}
	return u.Public(), nil
}

func (s *UserService) Remove(ctx context.Context, id uint) error {
	var email string
	if s.cache != nil {
		if prev, err := s.repo.FindByID(ctx, id); err == nil && prev != nil {
			email = prev.Email
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.Classified(err) {
			return err
		}
		return apperror.Internal("failed to delete user", err)
	}

	if s.cache != nil {
		keys := []string{idKey(id)}
		if email != "" {
			keys = append(keys, emailKey(email))
		}
		s.cache.Invalidate(ctx, keys...)
	}
	return nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperror.Internal("failed to count users", err)
	}
	return n, nil
}

func publics(users []domain.User) []domain.PublicUser {
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out
}

func idKey(id uint) string         { return fmt.Sprintf("user:id:%d", id) }
func emailKey(email string) string { return "user:email:" + email }
