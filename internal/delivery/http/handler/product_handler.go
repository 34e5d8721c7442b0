package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"pharmacenter-api/internal/delivery/dto"
	"pharmacenter-api/internal/delivery/http/middleware"
	"pharmacenter-api/internal/usecase"
	"pharmacenter-api/pkg/response"
	"pharmacenter-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	Log            *logrus.Logger
	Validate       *validator.CustomValidator
	ProductUsecase *usecase.ProductUsecase
}

func NewProductHandler(log *logrus.Logger, validate *validator.CustomValidator, productUsecase *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{
		Log:            log,
		Validate:       validate,
		ProductUsecase: productUsecase,
	}
}

// List handles the public GET /products catalog.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("include_archived") != "true"
	page, limit, offset := parsePagination(r)

	products, err := h.ProductUsecase.ListProducts(r.Context(), activeOnly, limit, offset)
	if err != nil {
		h.Log.Errorf("Failed to list products: %+v", err)
		response.InternalServerError(w, "")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "", products, paginationMeta(page, limit, products.Total))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	product, err := h.ProductUsecase.GetProduct(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found")
		default:
			h.Log.Errorf("Failed to load product: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "", product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	product, err := h.ProductUsecase.CreateProduct(r.Context(), actorID, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidPrice):
			response.Error(w, http.StatusBadRequest, "Price must be a non-negative decimal", nil)
		default:
			h.Log.Errorf("Failed to create product: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Product created", product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	var request dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.Validate.Validate(&request); err != nil {
		response.ValidationError(w, h.Validate.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	product, err := h.ProductUsecase.UpdateProduct(r.Context(), actorID, id, &request)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found")
		case errors.Is(err, usecase.ErrInvalidPrice):
			response.Error(w, http.StatusBadRequest, "Price must be a non-negative decimal", nil)
		default:
			h.Log.Errorf("Failed to update product: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product updated", product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	actorID, _ := middleware.GetUserID(r.Context())

	if err := h.ProductUsecase.DeleteProduct(r.Context(), actorID, id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrProductNotFound):
			response.NotFound(w, "Product not found")
		default:
			h.Log.Errorf("Failed to delete product: %+v", err)
			response.InternalServerError(w, "")
		}
		return
	}

	response.Success(w, http.StatusOK, "Product deleted", nil)
}
