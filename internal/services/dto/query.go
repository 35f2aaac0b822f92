package dto

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ListQuery - общие параметры листингов: поиск, сортировка, пагинация.
// Числа принимаются строками: нечисловые значения не ошибка,
// а откат к значениям по умолчанию.
type ListQuery struct {
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
	Page      string `form:"page"`
	PageSize  string `form:"pageSize"`
}

// NormalizedQuery - разобранные параметры листинга.
// DefaultSortBy - колонка по умолчанию этого эндпоинта: именно к ней
// репозиторий откатит неизвестный sortBy.
type NormalizedQuery struct {
	Search        string
	SortBy        string
	SortOrder     string
	DefaultSortBy string
	Page          int
	PageSize      int
}

// Normalize разбирает query-параметры с откатом к дефолтам:
// page>=1, pageSize>=1, sortOrder из {asc,desc} иначе defaultOrder.
// Неизвестный sortBy здесь не фильтруется - репозиторий молча
// откатит его к DefaultSortBy.
func (q ListQuery) Normalize(defaultSortBy, defaultOrder string) NormalizedQuery {
	page := parsePositiveInt(q.Page, DefaultPage)
	pageSize := parsePositiveInt(q.PageSize, DefaultPageSize)

	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	sortOrder := strings.ToLower(q.SortOrder)
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultOrder
	}

	return NormalizedQuery{
		Search:        strings.TrimSpace(q.Search),
		SortBy:        sortBy,
		SortOrder:     sortOrder,
		DefaultSortBy: defaultSortBy,
		Page:          page,
		PageSize:      pageSize,
	}
}

func parsePositiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Pagination - контракт пагинации listing-ответов
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination считает totalPages = ceil(total/pageSize)
func NewPagination(total int64, page, pageSize int) Pagination {
	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	}
}

// ListResponse - конверт листинга: {data, pagination}
type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}
