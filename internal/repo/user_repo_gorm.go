package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"go-user-api-starter/internal/apperror"
	"go-user-api-starter/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

var _ domain.UserRepository = (*UserRepo)(nil)

// Create inserts a new user. The email pre-check is only there for a
// friendlier error; the unique index is what actually guarantees
// uniqueness under concurrent registrations, so a constraint
// violation from the store maps to the same Conflict.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.User{}).Where("email = ?", u.Email).Count(&n).Error; err != nil {
			return apperror.Internal("check email", err)
		}
		if n > 0 {
			return apperror.Conflict("user with this email already exists")
		}
		if err := tx.Create(u).Error; err != nil {
			if isDupKey(err) {
				return apperror.Conflict("user with this email already exists")
			}
			return apperror.Internal("create user", err)
		}
		return nil
	})
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("id asc").Find(&users).Error
	return users, err
}

// ListPage returns a page of users plus the total match count,
// optionally filtered by a LIKE search over email and full_name.
func (r *UserRepo) ListPage(ctx context.Context, offset, limit int, q string) ([]domain.User, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.User{})
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := tx.Order("id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update overwrites only the fields present in patch. Email changes
// re-run the uniqueness check inside the same transaction.
func (r *UserRepo) Update(ctx context.Context, id uint, patch domain.UserPatch) (*domain.User, error) {
	var out domain.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound("user")
			}
			return apperror.Internal("load user", err)
		}
		if patch.Email != nil && *patch.Email != u.Email {
			var n int64
			if err := tx.Model(&domain.User{}).Where("email = ? AND id <> ?", *patch.Email, id).Count(&n).Error; err != nil {
				return apperror.Internal("check email", err)
			}
			if n > 0 {
				return apperror.Conflict("user with this email already exists")
			}
			u.Email = *patch.Email
		}
		if patch.FullName != nil {
			u.FullName = patch.FullName
		}
		if err := tx.Save(&u).Error; err != nil {
			if isDupKey(err) {
				return apperror.Conflict("user with this email already exists")
			}
			return apperror.Internal("save user", err)
		}
		out = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&domain.User{})
		if res.Error != nil {
			return apperror.Internal("delete user", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperror.NotFound("user")
		}
		return nil
	})
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error
	return n, err
}

// isDupKey matches unique-constraint violations across the supported
// drivers without depending on driver-specific error types.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
