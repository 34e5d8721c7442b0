package converter

import (
	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its response DTO
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		IsActive:    product.IsActive == nil || *product.IsActive,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of Product entities
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp := ProductToResponse(&products[i])
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
