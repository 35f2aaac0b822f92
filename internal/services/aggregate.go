package services

import "storerate_backend/internal/models"

// averageOf считает среднее по уже загруженному набору оценок.
// nil когда оценок нет - агрегат никогда не выдает 0 за "нет данных".
func averageOf(ratings []models.Rating) *float64 {
	if len(ratings) == 0 {
		return nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return &avg
}

// myRatingOf находит оценку конкретного пользователя в том же наборе,
// без второго запроса к базе.
func myRatingOf(ratings []models.Rating, userID string) *int {
	for _, r := range ratings {
		if r.UserID == userID {
			value := r.Value
			return &value
		}
	}
	return nil
}
