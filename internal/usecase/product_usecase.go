package usecase

import (
	"context"
	"errors"

	"pharmacenter-api/internal/converter"
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
	"pharmacenter-api/internal/domain/repository"
	"pharmacenter-api/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("invalid product price")
)

type ProductUsecase struct {
	DB          *gorm.DB
	Log         *logrus.Logger
	ProductRepo repository.ProductRepository
	Audit       service.AuditService
}

func NewProductUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	productRepo repository.ProductRepository,
	audit service.AuditService,
) *ProductUsecase {
	return &ProductUsecase{
		DB:          db,
		Log:         log,
		ProductRepo: productRepo,
		Audit:       audit,
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return price, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, actorID uuid.UUID, request *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := parsePrice(request.Price)
	if err != nil {
		return nil, err
	}

	db := u.DB.WithContext(ctx)

	product := &entity.Product{
		Name:        request.Name,
		Description: request.Description,
		Price:       price,
		Stock:       request.Stock,
	}

	if err := u.ProductRepo.Create(db, product); err != nil {
		u.Log.Warnf("Failed to create product: %+v", err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionProductCreate, "product", product.ID.String(), nil)
	return converter.ProductToResponse(product), nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := u.ProductRepo.FindByID(u.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return converter.ProductToResponse(product), nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) (*dto.ProductListResponse, error) {
	products, total, err := u.ProductRepo.FindAll(u.DB.WithContext(ctx), activeOnly, limit, offset)
	if err != nil {
		u.Log.Warnf("Failed to list products: %+v", err)
		return nil, err
	}

	return &dto.ProductListResponse{
		Products: converter.ProductsToResponses(products),
		Total:    total,
	}, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, actorID, id uuid.UUID, request *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	db := u.DB.WithContext(ctx)

	product, err := u.ProductRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if request.Name != "" {
		product.Name = request.Name
	}
	if request.Description != nil {
		product.Description = *request.Description
	}
	if request.Price != nil {
		price, err := parsePrice(*request.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if request.Stock != nil {
		product.Stock = *request.Stock
	}
	if request.IsActive != nil {
		product.IsActive = request.IsActive
	}

	if err := u.ProductRepo.Update(db, product); err != nil {
		u.Log.Warnf("Failed to update product %s: %+v", id, err)
		return nil, err
	}

	u.Audit.Record(db, &actorID, entity.AuditActionProductUpdate, "product", id.String(), nil)
	return converter.ProductToResponse(product), nil
}

func (u *ProductUsecase) DeleteProduct(ctx context.Context, actorID, id uuid.UUID) error {
	db := u.DB.WithContext(ctx)

	rows, err := u.ProductRepo.Delete(db, id)
	if err != nil {
		u.Log.Warnf("Failed to delete product %s: %+v", id, err)
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}

	u.Audit.Record(db, &actorID, entity.AuditActionProductDelete, "product", id.String(), nil)
	return nil
}
