// Package handlers - Car HTTP handlers.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
	"github.com/roadshare/roadshare/internal/adapters/http/middleware"
	"github.com/roadshare/roadshare/internal/application/dtos"
)

// ============================================
// Use Case Interfaces
// ============================================

// RegisterCarUseCase - интерфейс регистрации автомобиля.
type RegisterCarUseCase interface {
	Execute(ctx context.Context, cmd dtos.RegisterCarCommand) (*dtos.CarRegisteredDTO, error)
}

// ListCarsUseCase - интерфейс списка автомобилей.
type ListCarsUseCase interface {
	Execute(ctx context.Context, query dtos.ListCarsQuery) (*dtos.CarListDTO, error)
}

// ListCarsByDriverUseCase - автомобили водителя.
type ListCarsByDriverUseCase interface {
	Execute(ctx context.Context, userID string) ([]dtos.CarDTO, error)
}

// ============================================
// Car Handler
// ============================================

// CarHandler обрабатывает HTTP запросы для автомобилей.
type CarHandler struct {
	registerCar RegisterCarUseCase
	listCars    ListCarsUseCase
	listMine    ListCarsByDriverUseCase
}

// NewCarHandler создаёт новый CarHandler.
func NewCarHandler(
	registerCar RegisterCarUseCase,
	listCars ListCarsUseCase,
	listMine ListCarsByDriverUseCase,
) *CarHandler {
	return &CarHandler{
		registerCar: registerCar,
		listCars:    listCars,
		listMine:    listMine,
	}
}

// ============================================
// Request DTOs (HTTP layer)
// ============================================

// RegisterCarRequest - запрос регистрации автомобиля.
// License нужен для создания Driver профиля, если его ещё нет.
type RegisterCarRequest struct {
	ModelID string `json:"model_id" binding:"required,uuid"`
	ColorID string `json:"color_id" binding:"required,uuid"`
	Plate   string `json:"plate" binding:"required,car_plate"`
	Seats   int    `json:"seats" binding:"required,min=1,max=8"`
	License string `json:"license" binding:"required,min=5,max=32"`
}

// ============================================
// HTTP Handlers
// ============================================

// Register регистрирует автомобиль на аутентифицированного
// пользователя, создавая Driver профиль при необходимости.
//
// @Summary Register a car
// @Tags Cars
// @Accept json
// @Produce json
// @Param request body RegisterCarRequest true "Car data"
// @Success 201 {object} common.APIResponse{data=dtos.CarRegisteredDTO}
// @Failure 404 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /api/v1/cars [post]
func (h *CarHandler) Register(c *gin.Context) {
	var req RegisterCarRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.RegisterCarCommand{
		UserID:  middleware.GetAuthUserID(c).String(),
		ModelID: req.ModelID,
		ColorID: req.ColorID,
		Plate:   req.Plate,
		Seats:   req.Seats,
		License: req.License,
	}

	result, err := h.registerCar.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusCreated, result)
}

// List возвращает страницу автомобилей.
//
// @Summary List cars
// @Tags Cars
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20) maximum(100)
// @Success 200 {object} common.APIResponse{data=[]dtos.CarDTO}
// @Router /api/v1/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	pagination := ParsePagination(c)

	query := dtos.ListCarsQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	}

	result, err := h.listCars.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Cars, MetaFromList(result.Meta))
}

// ListMine возвращает автомобили аутентифицированного водителя.
//
// @Summary List my cars
// @Tags Cars
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]dtos.CarDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/cars/mine [get]
func (h *CarHandler) ListMine(c *gin.Context) {
	result, err := h.listMine.Execute(c.Request.Context(), middleware.GetAuthUserID(c).String())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// RegisterRoutes регистрирует маршруты для CarHandler.
//
// Routes:
// - POST /cars       - Register car
// - GET  /cars       - List cars
// - GET  /cars/mine  - List my cars
func (h *CarHandler) RegisterRoutes(router *gin.RouterGroup) {
	cars := router.Group("/cars")
	{
		cars.POST("", h.Register)
		cars.GET("", h.List)
		cars.GET("/mine", h.ListMine)
	}
}
