// Package handlers - Travel HTTP handlers.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
	"github.com/roadshare/roadshare/internal/adapters/http/middleware"
	"github.com/roadshare/roadshare/internal/application/dtos"
)

// ============================================
// Use Case Interfaces
// ============================================

// CreateTravelUseCase - интерфейс публикации поездки.
type CreateTravelUseCase interface {
	Execute(ctx context.Context, cmd dtos.CreateTravelCommand) (*dtos.TravelDTO, error)
}

// GetTravelUseCase - интерфейс получения поездки.
type GetTravelUseCase interface {
	Execute(ctx context.Context, query dtos.GetTravelQuery) (*dtos.TravelDTO, error)
}

// ListTravelsUseCase - интерфейс списка поездок.
type ListTravelsUseCase interface {
	Execute(ctx context.Context, query dtos.ListTravelsQuery) (*dtos.TravelListDTO, error)
}

// DeleteTravelUseCase - интерфейс удаления поездки.
type DeleteTravelUseCase interface {
	Execute(ctx context.Context, cmd dtos.DeleteTravelCommand) error
}

// ============================================
// Travel Handler
// ============================================

// TravelHandler обрабатывает HTTP запросы для поездок.
type TravelHandler struct {
	createTravel CreateTravelUseCase
	getTravel    GetTravelUseCase
	listTravels  ListTravelsUseCase
	deleteTravel DeleteTravelUseCase
}

// NewTravelHandler создаёт новый TravelHandler.
func NewTravelHandler(
	createTravel CreateTravelUseCase,
	getTravel GetTravelUseCase,
	listTravels ListTravelsUseCase,
	deleteTravel DeleteTravelUseCase,
) *TravelHandler {
	return &TravelHandler{
		createTravel: createTravel,
		getTravel:    getTravel,
		listTravels:  listTravels,
		deleteTravel: deleteTravel,
	}
}

// ============================================
// Request DTOs (HTTP layer)
// ============================================

// CreateTravelRequest - запрос публикации поездки.
// Водитель определяется по аутентифицированному пользователю.
type CreateTravelRequest struct {
	CarID           string    `json:"car_id" binding:"required,uuid"`
	DepartureCityID string    `json:"departure_city_id" binding:"required,uuid"`
	ArrivalCityID   string    `json:"arrival_city_id" binding:"required,uuid"`
	Date            time.Time `json:"date" binding:"required"`
	Kms             int       `json:"kms" binding:"required,gt=0"`
	Seats           int       `json:"seats" binding:"required,min=1,max=8"`
}

// TravelIDParam - параметр ID поездки из URL.
type TravelIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ============================================
// HTTP Handlers
// ============================================

// Create публикует новую поездку.
//
// @Summary Publish a travel
// @Tags Travels
// @Accept json
// @Produce json
// @Param request body CreateTravelRequest true "Travel data"
// @Success 201 {object} common.APIResponse{data=dtos.TravelDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/travels [post]
func (h *TravelHandler) Create(c *gin.Context) {
	var req CreateTravelRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.CreateTravelCommand{
		UserID:          middleware.GetAuthUserID(c).String(),
		CarID:           req.CarID,
		DepartureCityID: req.DepartureCityID,
		ArrivalCityID:   req.ArrivalCityID,
		Date:            req.Date,
		Kms:             req.Kms,
		Seats:           req.Seats,
	}

	result, err := h.createTravel.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	middleware.TravelsPublishedTotal.Inc()
	common.Success(c, http.StatusCreated, result)
}

// Get возвращает поездку по ID.
//
// @Summary Get travel by ID
// @Tags Travels
// @Produce json
// @Param id path string true "Travel ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.TravelDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/travels/{id} [get]
func (h *TravelHandler) Get(c *gin.Context) {
	var params TravelIDParam
	if !BindURI(c, &params) {
		return
	}

	result, err := h.getTravel.Execute(c.Request.Context(), dtos.GetTravelQuery{TravelID: params.ID})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// List возвращает страницу поездок, отсортированных по дате.
//
// @Summary List travels
// @Tags Travels
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20) maximum(100)
// @Success 200 {object} common.APIResponse{data=[]dtos.TravelDTO}
// @Router /api/v1/travels [get]
func (h *TravelHandler) List(c *gin.Context) {
	pagination := ParsePagination(c)

	query := dtos.ListTravelsQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	}

	result, err := h.listTravels.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Travels, MetaFromList(result.Meta))
}

// Delete удаляет поездку. Разрешено только её водителю.
// Бронирования поездки удаляются каскадно.
//
// @Summary Delete a travel
// @Tags Travels
// @Produce json
// @Param id path string true "Travel ID" format(uuid)
// @Success 204
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/travels/{id} [delete]
func (h *TravelHandler) Delete(c *gin.Context) {
	var params TravelIDParam
	if !BindURI(c, &params) {
		return
	}

	cmd := dtos.DeleteTravelCommand{
		TravelID: params.ID,
		UserID:   middleware.GetAuthUserID(c).String(),
	}

	if err := h.deleteTravel.Execute(c.Request.Context(), cmd); err != nil {
		common.HandleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes регистрирует маршруты для TravelHandler.
//
// Routes:
// - POST   /travels      - Publish travel
// - GET    /travels      - List travels
// - GET    /travels/:id  - Get travel by ID
// - DELETE /travels/:id  - Delete travel (driver only)
func (h *TravelHandler) RegisterRoutes(router *gin.RouterGroup) {
	travels := router.Group("/travels")
	{
		travels.POST("", h.Create)
		travels.GET("", h.List)
		travels.GET("/:id", h.Get)
		travels.DELETE("/:id", h.Delete)
	}
}
