package domain

import (
	"context"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FullName     *string   `gorm:"size:255" json:"full_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

// PublicUser is the externally visible projection. The password hash
// never leaves the service layer.
type PublicUser struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, FullName: u.FullName}
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Email    *string
	FullName *string
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	List(ctx context.Context) ([]User, error)
	ListPage(ctx context.Context, offset, limit int, q string) ([]User, int64, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id uint, patch UserPatch) (*User, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
