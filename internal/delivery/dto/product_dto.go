package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Price       *string `json:"price" validate:"omitempty"`
	Stock       *int    `json:"stock" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
}
