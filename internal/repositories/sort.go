package repositories

// orderClause строит ORDER BY из allow-list колонок.
// Неизвестное поле сортировки молча падает в defaultSortBy -
// колонку по умолчанию конкретного эндпоинта, не глобальную.
// Неизвестный порядок падает в desc.
func orderClause(allowed map[string]string, sortBy, sortOrder, defaultSortBy string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column, ok = allowed[defaultSortBy]
		if !ok {
			column = "created_at"
		}
	}

	direction := "DESC"
	if sortOrder == "asc" {
		direction = "ASC"
	}
	return column + " " + direction
}
