// Package ports - Unit of Work для атомарных сценариев.
package ports

import "context"

// UnitOfWork выполняет функцию в одной транзакции БД.
//
// Используется сценариями, пишущими в несколько таблиц (регистрация
// автомобиля создаёт Driver и Car). Бронирование на него НЕ
// полагается: его инварианты держат ограничения БД.
type UnitOfWork interface {
	// Execute выполняет fn в транзакции. Ошибка fn откатывает всё.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
