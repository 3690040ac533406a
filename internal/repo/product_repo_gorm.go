package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) FindByAuthor(ctx context.Context, authorID string) ([]domain.Product, error) {
	var list []domain.Product
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) Update(ctx context.Context, id string, patch domain.ProductPatch) error {
	vals := map[string]any{}
	if patch.Title != nil {
		vals["title"] = *patch.Title
	}
	if patch.Price != nil {
		vals["price"] = *patch.Price
	}
	if len(vals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(vals).Error
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *ProductRepo) InTx(ctx context.Context, fn func(domain.ProductRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ProductRepo{db: tx})
	})
}
