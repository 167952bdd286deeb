// Package handlers - User HTTP handlers.
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

// RegisterUserUseCase - интерфейс для регистрации пользователя.
type RegisterUserUseCase interface {
	Execute(ctx context.Context, cmd dtos.RegisterUserCommand) (*dtos.UserRegisteredDTO, error)
}

// LoginUseCase - интерфейс для входа.
type LoginUseCase interface {
	Execute(ctx context.Context, cmd dtos.LoginCommand) (*dtos.LoggedInDTO, error)
}

// GetUserUseCase - интерфейс для получения пользователя (query).
type GetUserUseCase interface {
	Execute(ctx context.Context, query dtos.GetUserQuery) (*dtos.UserDTO, error)
}

// ListUsersUseCase - интерфейс для получения списка пользователей.
type ListUsersUseCase interface {
	Execute(ctx context.Context, query dtos.ListUsersQuery) (*dtos.UserListDTO, error)
}

// AnonymizeUserUseCase - интерфейс GDPR-анонимизации аккаунта.
type AnonymizeUserUseCase interface {
	Execute(ctx context.Context, cmd dtos.AnonymizeUserCommand) (*dtos.UserDTO, error)
}

// DeleteUserUseCase - интерфейс жёсткого удаления аккаунта.
type DeleteUserUseCase interface {
	Execute(ctx context.Context, cmd dtos.DeleteUserCommand) error
}

// ============================================
// User Handler
// ============================================

// UserHandler обрабатывает HTTP запросы для пользователей.
//
// Pattern: Adapter (Hexagonal Architecture)
// - Преобразует HTTP запросы в Use Case вызовы
// - Преобразует результаты в HTTP ответы
type UserHandler struct {
	registerUser  RegisterUserUseCase
	login         LoginUseCase
	getUser       GetUserUseCase
	listUsers     ListUsersUseCase
	anonymizeUser AnonymizeUserUseCase
	deleteUser    DeleteUserUseCase
}

// NewUserHandler создаёт новый UserHandler.
func NewUserHandler(
	registerUser RegisterUserUseCase,
	login LoginUseCase,
	getUser GetUserUseCase,
	listUsers ListUsersUseCase,
	anonymizeUser AnonymizeUserUseCase,
	deleteUser DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		registerUser:  registerUser,
		login:         login,
		getUser:       getUser,
		listUsers:     listUsers,
		anonymizeUser: anonymizeUser,
		deleteUser:    deleteUser,
	}
}

// ============================================
// Request DTOs (HTTP layer)
// ============================================

// RegisterUserRequest - запрос на регистрацию.
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"omitempty,min=6,max=20"`
}

// LoginRequest - запрос на вход.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserIDParam - параметр ID пользователя из URL.
type UserIDParam struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ============================================
// HTTP Handlers
// ============================================

// Register создаёт новый аккаунт.
//
// @Summary Register a new user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User data"
// @Success 201 {object} common.APIResponse{data=dtos.UserRegisteredDTO}
// @Failure 400 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /api/v1/users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterUserRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.RegisterUserCommand{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	result, err := h.registerUser.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	middleware.UsersRegisteredTotal.Inc()
	common.Success(c, http.StatusCreated, result)
}

// Login аутентифицирует пользователя и выдаёт токен доступа.
//
// @Summary Log in
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} common.APIResponse{data=dtos.LoggedInDTO}
// @Failure 401 {object} common.APIResponse
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	cmd := dtos.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.login.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// GetUser возвращает пользователя по ID.
//
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.UserDTO}
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	var params UserIDParam
	if !BindURI(c, &params) {
		return
	}

	result, err := h.getUser.Execute(c.Request.Context(), dtos.GetUserQuery{UserID: params.ID})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// ListUsers возвращает список пользователей с пагинацией.
//
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20) maximum(100)
// @Success 200 {object} common.APIResponse{data=[]dtos.UserDTO}
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := ParsePagination(c)

	query := dtos.ListUsersQuery{
		Page:  pagination.Page,
		Limit: pagination.PerPage,
	}

	result, err := h.listUsers.Execute(c.Request.Context(), query)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.SuccessWithMeta(c, http.StatusOK, result.Users, MetaFromList(result.Meta))
}

// Anonymize стирает персональные данные аккаунта (GDPR).
//
// Пользователь может анонимизировать только свой аккаунт,
// администратор - любой. Повторный вызов - no-op.
//
// @Summary Anonymize account (GDPR)
// @Tags Users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 200 {object} common.APIResponse{data=dtos.UserDTO}
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /api/v1/users/{id}/anonymize [post]
func (h *UserHandler) Anonymize(c *gin.Context) {
	var params UserIDParam
	if !BindURI(c, &params) {
		return
	}

	if !canActOnAccount(c, params.ID) {
		common.ForbiddenResponse(c, "You can only anonymize your own account")
		return
	}

	result, err := h.anonymizeUser.Execute(c.Request.Context(), dtos.AnonymizeUserCommand{UserID: params.ID})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}

	common.Success(c, http.StatusOK, result)
}

// Delete удаляет аккаунт без поездок и бронирований.
//
// @Summary Delete account
// @Tags Users
// @Produce json
// @Param id path string true "User ID" format(uuid)
// @Success 204
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	var params UserIDParam
	if !BindURI(c, &params) {
		return
	}

	if !canActOnAccount(c, params.ID) {
		common.ForbiddenResponse(c, "You can only delete your own account")
		return
	}

	if err := h.deleteUser.Execute(c.Request.Context(), dtos.DeleteUserCommand{UserID: params.ID}); err != nil {
		common.HandleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// canActOnAccount: владелец аккаунта или админ.
func canActOnAccount(c *gin.Context, targetID string) bool {
	if middleware.GetAuthUserRole(c) == "ADMIN" {
		return true
	}
	return middleware.GetAuthUserID(c).String() == targetID
}

// RegisterRoutes регистрирует маршруты для UserHandler.
//
// Routes:
// - POST   /users                - Register (public)
// - GET    /users                - List users
// - GET    /users/:id            - Get user by ID
// - POST   /users/:id/anonymize  - Anonymize account (GDPR)
// - DELETE /users/:id            - Delete account
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.POST("/:id/anonymize", h.Anonymize)
		users.DELETE("/:id", h.Delete)
	}
}

// RegisterAuthRoutes регистрирует публичные auth маршруты.
func (h *UserHandler) RegisterAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
	}
}
