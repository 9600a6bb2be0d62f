// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "storefront/internal/domain/repository"

// ListQuery carries the shared pagination and filter parameters of the
// admin list operations.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// ToParams converts the query into normalized repository list params.
func (q ListQuery) ToParams() repository.ListParams {
	return repository.ListParams{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		Status: q.Status,
	}.Normalize()
}

// Pagination describes the window a list result was cut from.
type Pagination struct {
	Page  int
	Limit int
	Total int64
}
