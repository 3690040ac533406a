package service

import (
	"context"
	"errors"
	"time"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/cache"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/errs"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/guard"
	"github.com/XYFORA-Dev/XYFORA-APIs/internal/domain"
	"github.com/XYFORA-Dev/XYFORA-APIs/pkg/utils"
)

type CreateProductInput struct {
	Title string
	Price float64
}

type ProductService interface {
	Create(ctx context.Context, actorID string, in CreateProductInput) (*domain.Product, error)
	ListOwn(ctx context.Context, actorID string) ([]domain.Product, error)
	Get(ctx context.Context, rawID string) (*domain.Product, error)
	Update(ctx context.Context, actorID, rawID string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, actorID, rawID string) error
}

type productService struct {
	products domain.ProductRepository
	cache    *cache.Cache // 未配置 redis 时为 nil
	cacheTTL time.Duration
}

func NewProductService(products domain.ProductRepository, c *cache.Cache, ttl time.Duration) ProductService {
	return &productService{products: products, cache: c, cacheTTL: ttl}
}

func cacheKey(id string) string { return "product:" + id }

// checkID 规整并校验路径 id，必须先于任何存储访问失败
func checkID(raw string) (string, error) {
	id := guard.CleanID(raw)
	if !guard.ValidID(id) {
		return "", errs.BadRequest("invalid product id")
	}
	return id, nil
}

// wrapStore 业务错误原样透传，存储层裸错误一律包成 500
func wrapStore(err error) error {
	if err == nil {
		return nil
	}
	var ae *errs.AppError
	if errors.As(err, &ae) {
		return err
	}
	return errs.Internal("internal error", err)
}

func (s *productService) Create(ctx context.Context, actorID string, in CreateProductInput) (*domain.Product, error) {
	p := &domain.Product{
		ID:       utils.NewID(),
		Title:    in.Title,
		Price:    in.Price,
		AuthorID: actorID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, errs.Internal("internal error", err)
	}
	return p, nil
}

func (s *productService) ListOwn(ctx context.Context, actorID string) ([]domain.Product, error) {
	list, err := s.products.FindByAuthor(ctx, actorID)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	return list, nil
}

func (s *productService) Get(ctx context.Context, rawID string) (*domain.Product, error) {
	id, err := checkID(rawID)
	if err != nil {
		return nil, err
	}
	p, err := s.findByID(ctx, id)
	if err != nil {
		return nil, errs.Internal("internal error", err)
	}
	if p == nil {
		return nil, errs.NotFound("product not found")
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, actorID, rawID string, patch domain.ProductPatch) (*domain.Product, error) {
	id, err := checkID(rawID)
	if err != nil {
		return nil, err
	}

	var out *domain.Product
	err = s.products.InTx(ctx, func(tx domain.ProductRepository) error {
		p, e := tx.FindByID(ctx, id)
		if e != nil {
			return e
		}
		if p == nil {
			return errs.NotFound("product not found")
		}
		if !guard.Owns(actorID, p.AuthorID) {
			return errs.Forbidden("forbidden")
		}
		if e := tx.Update(ctx, id, patch); e != nil {
			return e
		}
		out, e = tx.FindByID(ctx, id)
		if e != nil {
			return e
		}
		if out == nil {
			return errors.New("reload after update: not found")
		}
		return nil
	})
	if err != nil {
		return nil, wrapStore(err)
	}
	s.invalidate(ctx, id)
	return out, nil
}

func (s *productService) Delete(ctx context.Context, actorID, rawID string) error {
	id, err := checkID(rawID)
	if err != nil {
		return err
	}

	err = s.products.InTx(ctx, func(tx domain.ProductRepository) error {
		p, e := tx.FindByID(ctx, id)
		if e != nil {
			return e
		}
		if p == nil {
			return errs.NotFound("product not found")
		}
		if !guard.Owns(actorID, p.AuthorID) {
			return errs.Forbidden("forbidden")
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return wrapStore(err)
	}
	s.invalidate(ctx, id)
	return nil
}

// findByID 读路径走缓存，未配置缓存时直查库
func (s *productService) findByID(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache == nil {
		return s.products.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, cacheKey(id), s.cacheTTL, func(ctx context.Context) (*domain.Product, error) {
		return s.products.FindByID(ctx, id)
	})
}

// invalidate 写后删键；缓存与库之间允许 TTL 级别的短暂不一致
func (s *productService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	s.cache.Del(ctx, cacheKey(id))
}
