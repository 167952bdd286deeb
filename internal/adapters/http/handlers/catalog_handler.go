// Package handlers - Catalog HTTP handlers (brands, models, colors).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
	"github.com/roadshare/roadshare/internal/application/dtos"
)

// ============================================
// Use Case Interfaces
// ============================================

// ListBrandsUseCase - интерфейс списка марок.
type ListBrandsUseCase interface {
	Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.BrandListDTO, error)
}

// ListModelsUseCase - интерфейс списка моделей.
type ListModelsUseCase interface {
	Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.ModelListDTO, error)
	ExecuteByBrand(ctx context.Context, brandID string) ([]dtos.ModelDTO, error)
}

// ListColorsUseCase - интерфейс списка цветов.
type ListColorsUseCase interface {
	Execute(ctx context.Context, query dtos.ListCatalogQuery) (*dtos.ColorListDTO, error)
}

// ============================================
// Catalog Handler
// ============================================

// CatalogHandler обрабатывает HTTP запросы справочника автомобилей.
// Пустой справочник - это успех с пустым списком, а не 404.
type CatalogHandler struct {
	listBrands ListBrandsUseCase
	listModels ListModelsUseCase
	listColors ListColorsUseCase
}

// NewCatalogHandler создаёт новый CatalogHandler.
func NewCatalogHandler(
	listBrands ListBrandsUseCase,
	listModels ListModelsUseCase,
	listColors ListColorsUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listBrands: listBrands,
		listModels: listModels,
		listColors: listColors,
	}
}

// BrandIDParam - параметр ID марки из URL.
type BrandIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ============================================
// HTTP Handlers
// ============================================

// ListBrands возвращает страницу марок.
//
// @Summary List car brands
// @Tags Catalog
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]dtos.BrandDTO}
// @Router /api/v1/catalog/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	pagination := ParsePagination(c)

	result, err := h.listBrands.Execute(c.Request.Context(), dtos.ListCatalogQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Brands, MetaFromList(result.Meta))
}

// ListModels возвращает страницу моделей.
//
// @Summary List car models
// @Tags Catalog
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]dtos.ModelDTO}
// @Router /api/v1/catalog/models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	pagination := ParsePagination(c)

	result, err := h.listModels.Execute(c.Request.Context(), dtos.ListCatalogQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Models, MetaFromList(result.Meta))
}

// ListModelsByBrand возвращает модели одной марки.
//
// @Summary List models of a brand
// @Tags Catalog
// @Produce json
// @Param id path string true "Brand ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=[]dtos.ModelDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/catalog/brands/{id}/models [get]
func (h *CatalogHandler) ListModelsByBrand(c *gin.Context) {
	var params BrandIDParam
	if !BindURI(c, &params) {
		return
	}

	result, err := h.listModels.ExecuteByBrand(c.Request.Context(), params.ID)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// ListColors возвращает страницу цветов.
//
// @Summary List car colors
// @Tags Catalog
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]dtos.ColorDTO}
// @Router /api/v1/catalog/colors [get]
func (h *CatalogHandler) ListColors(c *gin.Context) {
	pagination := ParsePagination(c)

	result, err := h.listColors.Execute(c.Request.Context(), dtos.ListCatalogQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Colors, MetaFromList(result.Meta))
}

// RegisterRoutes регистрирует маршруты для CatalogHandler.
//
// Routes:
// - GET /catalog/brands             - List brands
// - GET /catalog/brands/:id/models  - Models of a brand
// - GET /catalog/models             - List models
// - GET /catalog/colors             - List colors
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("/brands", h.ListBrands)
		catalog.GET("/brands/:id/models", h.ListModelsByBrand)
		catalog.GET("/models", h.ListModels)
		catalog.GET("/colors", h.ListColors)
	}
}
