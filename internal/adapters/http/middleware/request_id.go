// Package middleware содержит HTTP middleware карпулинг-API.
//
// Middleware в Gin - это функции, которые выполняются до/после handlers.
// Здесь живут cross-cutting concerns: request id, логирование, CORS,
// rate limiting, метрики и аутентификация. Каждый middleware отвечает
// за одну задачу и подключается в router независимо от остальных.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/adapters/http/common"
)

const (
	// RequestIDHeader - имя заголовка для Request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey - ключ для хранения Request ID в контексте
	RequestIDContextKey = "request_id"

	// maxRequestIDLength - инородный X-Request-ID длиннее не принимаем,
	// чтобы клиент не раздувал логи произвольной строкой
	maxRequestIDLength = 64
)

// RequestID middleware присваивает каждому запросу уникальный ID.
//
// ID связывает записи логов одного запроса и возвращается клиенту
// в заголовке и в envelope ответа. Мобильный клиент может передать
// свой X-Request-ID (например, для retry того же бронирования) -
// тогда используем его; иначе генерируем новый UUID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		// Один и тот же ID видят logging middleware и response envelope
		c.Set(RequestIDContextKey, requestID)
		common.SetRequestID(c, requestID)

		c.Next()
	}
}

// validRequestID проверяет клиентский ID: непустой, ограниченной длины,
// из печатаемых ASCII символов (заголовок попадает в логи как есть).
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID извлекает Request ID из контекста Gin.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(RequestIDContextKey); exists {
		if strID, ok := id.(string); ok {
			return strID
		}
	}
	return ""
}
