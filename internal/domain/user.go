package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateKey 唯一索引冲突（邮箱已注册等）
var ErrDuplicateKey = errors.New("duplicate key")

type User struct {
	ID           string    `gorm:"primaryKey;size:24" json:"id"`
	Fullname     string    `gorm:"size:64" json:"fullname"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
