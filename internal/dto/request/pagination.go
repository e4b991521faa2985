package request

import (
	"math"

	"ecommerce-backend/pkg/utils"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	// MaxPage keeps (page-1)*per_page inside int for any allowed per_page.
	MaxPage = math.MaxInt / MaxPerPage
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// NewPaginatedRequest reads page and per_page query values, falling back to
// defaults for anything missing or not a positive number.
func NewPaginatedRequest(page, perPage string) PaginatedRequest {
	return PaginatedRequest{
		Page:    min(utils.ParseInt(page, DefaultPage), MaxPage),
		PerPage: min(utils.ParseInt(perPage, DefaultPerPage), MaxPerPage),
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (min(p.Page, MaxPage) - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		return MaxPerPage
	}
	return p.PerPage
}
