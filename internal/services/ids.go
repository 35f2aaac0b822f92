package services

import "github.com/google/uuid"

// isValidID проверяет форму идентификатора до похода в базу.
// Колонки типа uuid: кривой литерал дал бы ошибку каста (SQLSTATE 22P02)
// вместо честного ответа клиенту.
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
