// Package dtos определяет Data Transfer Objects для передачи данных между слоями.
//
// Почему нужны DTOs? (не использовать domain entities напрямую)
// 1. Разделение concerns: Domain entities могут меняться независимо от API
// 2. Безопасность: Не раскрываем внутренние поля (например, password hashes)
// 3. Простота: API может иметь более простое представление
//
// SOLID Principles:
// - SRP: DTO отвечает только за передачу данных
// - ISP: Разные DTOs для разных use cases (не один жирный DTO)
//
// Pattern: Data Transfer Object
package dtos

// ListMeta - мета-информация пагинации, возвращаемая списочными
// use cases вместе с данными.
type ListMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewListMeta вычисляет мета-информацию страницы.
// Пустой список даёт Total=0, TotalPages=0.
func NewListMeta(page, limit, total int) ListMeta {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return ListMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
