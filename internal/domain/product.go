package domain

import (
	"context"
	"time"
)

type Product struct {
	ID        string    `gorm:"primaryKey;size:24" json:"id"`
	Title     string    `gorm:"size:128" json:"title"`
	Price     float64   `json:"price"`
	AuthorID  string    `gorm:"size:24;index" json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

// ProductPatch 部分更新：nil 字段不改
type ProductPatch struct {
	Title *string
	Price *float64
}

type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindByAuthor(ctx context.Context, authorID string) ([]Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) error
	// InTx 在同一事务里执行 fn，fn 返回错误则回滚
	InTx(ctx context.Context, fn func(ProductRepository) error) error
}
