// Package middleware - Rate Limiting middleware.
//
// Ограничивает частоту запросов по ключу (IP или пользователь).
// Счётчики in-memory: при нескольких инстансах API лимит действует
// на инстанс; для общего лимита нужен счётчик в Redis.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RateLimitConfig - конфигурация для rate limiting.
type RateLimitConfig struct {
	// Limit - максимум запросов за окно
	Limit int
	// Window - длина окна
	Window time.Duration
	// KeyFunc определяет ключ лимитирования; по умолчанию IP
	KeyFunc func(*gin.Context) string
	// OnLimitReached - callback при достижении лимита
	OnLimitReached func(*gin.Context)
}

// DefaultRateLimitConfig - общий лимит API: 100 запросов в минуту с IP.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Limit:  100,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateLimiter считает запросы по ключам в фиксированных окнах.
type rateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	config  *RateLimitConfig
}

// window - счётчик одного ключа в текущем окне.
type window struct {
	count   int
	startAt time.Time
}

func newRateLimiter(config *RateLimitConfig) *rateLimiter {
	rl := &rateLimiter{
		windows: make(map[string]*window),
		config:  config,
	}

	go rl.evictStale()

	return rl
}

// allow регистрирует запрос и возвращает решение, остаток лимита
// и время до сброса окна.
func (rl *rateLimiter) allow(key string) (bool, int, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.windows[key]

	if !exists || now.Sub(w.startAt) >= rl.config.Window {
		rl.windows[key] = &window{count: 1, startAt: now}
		return true, rl.config.Limit - 1, rl.config.Window
	}

	resetIn := rl.config.Window - now.Sub(w.startAt)

	if w.count >= rl.config.Limit {
		return false, 0, resetIn
	}

	w.count++
	return true, rl.config.Limit - w.count, resetIn
}

// evictStale периодически убирает ключи, не появлявшиеся два окна:
// пассажиры, давно не делавшие запросов, не держат память.
func (rl *rateLimiter) evictStale() {
	ticker := time.NewTicker(rl.config.Window * 2)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, w := range rl.windows {
			if now.Sub(w.startAt) > rl.config.Window*2 {
				delete(rl.windows, key)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimit middleware ограничивает частоту запросов (fixed window).
// При превышении возвращает 429 со стандартным envelope; лимиты
// сообщаются клиенту в заголовках X-RateLimit-* и Retry-After.
func RateLimit(config *RateLimitConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultRateLimitConfig()
	}

	limiter := newRateLimiter(config)

	return func(c *gin.Context) {
		key := config.KeyFunc(c)
		allowed, remaining, resetIn := limiter.allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(resetIn).Unix(), 10))

		if !allowed {
			retrySeconds := int(resetIn.Seconds())
			if retrySeconds < 1 {
				retrySeconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(retrySeconds))

			if config.OnLimitReached != nil {
				config.OnLimitReached(c)
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":        "TOO_MANY_REQUESTS",
					"message":     "Rate limit exceeded, please try again later",
					"retry_after": retrySeconds,
				},
				"request_id": GetRequestID(c),
				"timestamp":  time.Now().UTC(),
			})
			return
		}

		c.Next()
	}
}

// ============================================
// Endpoint-specific rate limiters
// ============================================

// AuthRateLimit - строгий лимит для login/registration, тормозит
// перебор паролей. Ключ включает путь, чтобы попытки логина не
// съедали лимит регистрации.
func AuthRateLimit() gin.HandlerFunc {
	return RateLimit(&RateLimitConfig{
		Limit:  10,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP() + ":" + c.Request.URL.Path
		},
	})
}

// BookingRateLimit - лимит бронирований. Считаем по пассажиру, а не
// по IP: несколько пассажиров за одним NAT не мешают друг другу.
func BookingRateLimit() gin.HandlerFunc {
	return RateLimit(&RateLimitConfig{
		Limit:  30,
		Window: time.Minute,
		KeyFunc: func(c *gin.Context) string {
			if userID := GetAuthUserID(c); userID != uuid.Nil {
				return "user:" + userID.String()
			}
			return "ip:" + c.ClientIP()
		},
	})
}
