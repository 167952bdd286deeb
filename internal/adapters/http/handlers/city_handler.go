// Package handlers - City HTTP handlers.
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

// CreateCityUseCase - интерфейс создания города.
type CreateCityUseCase interface {
	Execute(ctx context.Context, cmd dtos.CreateCityCommand) (*dtos.CityDTO, error)
}

// ListCitiesUseCase - интерфейс списка городов.
type ListCitiesUseCase interface {
	Execute(ctx context.Context, query dtos.ListCitiesQuery) (*dtos.CityListDTO, error)
}

// ============================================
// City Handler
// ============================================

// CityHandler обрабатывает HTTP запросы для городов.
type CityHandler struct {
	createCity CreateCityUseCase
	listCities ListCitiesUseCase
}

// NewCityHandler создаёт новый CityHandler.
func NewCityHandler(createCity CreateCityUseCase, listCities ListCitiesUseCase) *CityHandler {
	return &CityHandler{
		createCity: createCity,
		listCities: listCities,
	}
}

// ============================================
// Request DTOs (HTTP layer)
// ============================================

// CreateCityRequest - запрос создания города.
type CreateCityRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	ZipCode string `json:"zip_code" binding:"required,zip_code"`
}

// ============================================
// HTTP Handlers
// ============================================

// Create добавляет город в справочник. Имена уникальны без учёта
// регистра.
//
// @Summary Create a city
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body CreateCityRequest true "City data"
// @Success 201 {object} common.APIResponse{data=dtos.CityDTO}
// @Failure 409 {object} common.APIResponse
// @Router /api/v1/cities [post]
func (h *CityHandler) Create(c *gin.Context) {
	var req CreateCityRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.CreateCityCommand{
		Name:    req.Name,
		ZipCode: req.ZipCode,
	}

	result, err := h.createCity.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusCreated, result)
}

// List возвращает страницу городов, отсортированных по имени.
//
// @Summary List cities
// @Tags Cities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20) maximum(100)
// @Success 200 {object} common.APIResponse{data=[]dtos.CityDTO}
// @Router /api/v1/cities [get]
func (h *CityHandler) List(c *gin.Context) {
	pagination := ParsePagination(c)

	query := dtos.ListCitiesQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	}

	result, err := h.listCities.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Cities, MetaFromList(result.Meta))
}

// RegisterRoutes регистрирует маршруты для CityHandler.
//
// Routes:
// - POST /cities  - Create city
// - GET  /cities  - List cities
func (h *CityHandler) RegisterRoutes(router *gin.RouterGroup) {
	cities := router.Group("/cities")
	{
		cities.POST("", h.Create)
		cities.GET("", h.List)
	}
}
