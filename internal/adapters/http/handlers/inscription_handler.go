// Package handlers - Inscription HTTP handlers.
//
// Бронирование мест - самая горячая операция API. Handler остаётся
// тонким: вся конкурентная логика (вместимость, дубликаты) живёт
// в use case и в constraints базы данных.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
	"github.com/roadshare/roadshare/internal/adapters/http/middleware"
	"github.com/roadshare/roadshare/internal/application/dtos"
	domainerrors "github.com/roadshare/roadshare/internal/domain/errors"
)

// ============================================
// Use Case Interfaces
// ============================================

// CreateInscriptionUseCase - интерфейс бронирования места.
type CreateInscriptionUseCase interface {
	Execute(ctx context.Context, cmd dtos.CreateInscriptionCommand) (*dtos.InscriptionCreatedDTO, error)
}

// ConfirmInscriptionUseCase - интерфейс подтверждения бронирования
// водителем поездки.
type ConfirmInscriptionUseCase interface {
	Execute(ctx context.Context, cmd dtos.ConfirmInscriptionCommand) (*dtos.InscriptionDTO, error)
}

// CancelInscriptionUseCase - интерфейс отмены бронирования.
type CancelInscriptionUseCase interface {
	Execute(ctx context.Context, cmd dtos.CancelInscriptionCommand) (*dtos.InscriptionDTO, error)
}

// ListInscriptionsByUserUseCase - бронирования пассажира.
type ListInscriptionsByUserUseCase interface {
	Execute(ctx context.Context, query dtos.ListInscriptionsByUserQuery) (*dtos.InscriptionListDTO, error)
}

// ListInscriptionsByTravelUseCase - бронирования поездки.
type ListInscriptionsByTravelUseCase interface {
	Execute(ctx context.Context, query dtos.ListInscriptionsByTravelQuery) (*dtos.InscriptionListDTO, error)
}

// ============================================
// Inscription Handler
// ============================================

// InscriptionHandler обрабатывает HTTP запросы для бронирований.
type InscriptionHandler struct {
	createInscription  CreateInscriptionUseCase
	confirmInscription ConfirmInscriptionUseCase
	cancelInscription  CancelInscriptionUseCase
	listByUser         ListInscriptionsByUserUseCase
	listByTravel       ListInscriptionsByTravelUseCase
}

// NewInscriptionHandler создаёт новый InscriptionHandler.
func NewInscriptionHandler(
	createInscription CreateInscriptionUseCase,
	confirmInscription ConfirmInscriptionUseCase,
	cancelInscription CancelInscriptionUseCase,
	listByUser ListInscriptionsByUserUseCase,
	listByTravel ListInscriptionsByTravelUseCase,
) *InscriptionHandler {
	return &InscriptionHandler{
		createInscription:  createInscription,
		confirmInscription: confirmInscription,
		cancelInscription:  cancelInscription,
		listByUser:         listByUser,
		listByTravel:       listByTravel,
	}
}

// ============================================
// Request DTOs (HTTP layer)
// ============================================

// CreateInscriptionRequest - запрос бронирования места.
// Пассажир определяется по аутентифицированному пользователю.
type CreateInscriptionRequest struct {
	TravelID string `json:"travel_id" binding:"required,uuid"`
}

// InscriptionIDParam - параметр ID бронирования из URL.
type InscriptionIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ============================================
// HTTP Handlers
// ============================================

// Create бронирует место в поездке.
//
// Конкурентные сценарии:
// - последнее место разыгрывается между двумя запросами ->
//   ровно один получает 201, второй 422 NO_SEATS_AVAILABLE
// - повторное бронирование той же поездки -> 409 ALREADY_INSCRIBED
//
// @Summary Book a seat
// @Tags Inscriptions
// @Accept json
// @Produce json
// @Param request body CreateInscriptionRequest true "Travel to book"
// @Success 201 {object} common.APIResponse{data=dtos.InscriptionCreatedDTO}
// @Failure 404 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Failure 422 {object} common.APIResponse
// @Router /api/v1/inscriptions [post]
func (h *InscriptionHandler) Create(c *gin.Context) {
	var req CreateInscriptionRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.CreateInscriptionCommand{
		UserID:   middleware.GetAuthUserID(c).String(),
		TravelID: req.TravelID,
	}

	result, err := h.createInscription.Execute(c.Request.Context(), cmd)
	if err != nil {
		recordBookingFailure(err)
		common.HandleDomainError(c, err)
		return
	}

	middleware.RecordInscription("created")
	common.Success(c, http.StatusCreated, result)
}

// Confirm подтверждает бронирование. Разрешено только водителю поездки;
// новая инскрипция остаётся PENDING, пока водитель её не подтвердит.
//
// @Summary Confirm a booking
// @Tags Inscriptions
// @Produce json
// @Param id path string true "Inscription ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.InscriptionDTO}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/inscriptions/{id}/confirm [patch]
func (h *InscriptionHandler) Confirm(c *gin.Context) {
	var params InscriptionIDParam
	if !BindURI(c, &params) {
		return
	}

	cmd := dtos.ConfirmInscriptionCommand{
		InscriptionID: params.ID,
		DriverUserID:  middleware.GetAuthUserID(c).String(),
	}

	result, err := h.confirmInscription.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	middleware.RecordInscription("confirmed")
	common.Success(c, http.StatusOK, result)
}

// recordBookingFailure обновляет метрики по исходу бронирования.
func recordBookingFailure(err error) {
	var de *domainerrors.DomainError
	if !errors.As(err, &de) {
		return
	}
	switch de.Code {
	case domainerrors.CodeNoSeatsAvailable:
		middleware.RecordInscription("no_seats")
	case domainerrors.CodeAlreadyInscribed:
		middleware.RecordInscription("duplicate")
	}
}

// Cancel отменяет бронирование. Разрешено только его владельцу.
// Отменённое место немедленно возвращается в продажу.
//
// @Summary Cancel a booking
// @Tags Inscriptions
// @Produce json
// @Param id path string true "Inscription ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.InscriptionDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/inscriptions/{id} [delete]
func (h *InscriptionHandler) Cancel(c *gin.Context) {
	var params InscriptionIDParam
	if !BindURI(c, &params) {
		return
	}

	cmd := dtos.CancelInscriptionCommand{
		InscriptionID: params.ID,
		UserID:        middleware.GetAuthUserID(c).String(),
	}

	result, err := h.cancelInscription.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	middleware.RecordInscription("cancelled")
	common.Success(c, http.StatusOK, result)
}

// ListMine возвращает бронирования аутентифицированного пассажира.
//
// @Summary List my bookings
// @Tags Inscriptions
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]dtos.InscriptionDTO}
// @Router /api/v1/inscriptions [get]
func (h *InscriptionHandler) ListMine(c *gin.Context) {
	query := dtos.ListInscriptionsByUserQuery{
		UserID: middleware.GetAuthUserID(c).String(),
	}

	result, err := h.listByUser.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result.Inscriptions)
}

// ListByTravel возвращает бронирования поездки.
//
// @Summary List bookings of a travel
// @Tags Inscriptions
// @Produce json
// @Param id path string true "Travel ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=[]dtos.InscriptionDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/travels/{id}/inscriptions [get]
func (h *InscriptionHandler) ListByTravel(c *gin.Context) {
	var params TravelIDParam
	if !BindURI(c, &params) {
		return
	}

	query := dtos.ListInscriptionsByTravelQuery{TravelID: params.ID}

	result, err := h.listByTravel.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result.Inscriptions)
}

// RegisterRoutes регистрирует маршруты для InscriptionHandler.
//
// Routes:
// - POST   /inscriptions              - Book a seat
// - GET    /inscriptions              - List my bookings
// - PATCH  /inscriptions/:id/confirm  - Confirm booking (travel driver)
// - DELETE /inscriptions/:id          - Cancel booking
// - GET    /travels/:id/inscriptions  - Bookings of a travel
func (h *InscriptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	inscriptions := router.Group("/inscriptions")
	{
		inscriptions.POST("", h.Create)
		inscriptions.GET("", h.ListMine)
		inscriptions.PATCH("/:id/confirm", h.Confirm)
		inscriptions.DELETE("/:id", h.Cancel)
	}

	router.GET("/travels/:id/inscriptions", h.ListByTravel)
}
