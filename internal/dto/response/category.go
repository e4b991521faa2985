package response

import "ecommerce-backend/internal/data/entity"

type SubCategoryResponse struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	SubCategories []SubCategoryResponse `json:"subCategories"`
}

func SubCategoryToResponse(s *entity.SubCategory) SubCategoryResponse {
	return SubCategoryResponse{
		ID:          s.ID.String(),
		CategoryID:  s.CategoryID.String(),
		Name:        s.Name,
		Description: s.Description,
		Position:    s.Position,
	}
}

func CategoryToResponse(c *entity.Category) CategoryResponse {
	subs := make([]SubCategoryResponse, 0, len(c.SubCategories))
	for i := range c.SubCategories {
		subs = append(subs, SubCategoryToResponse(&c.SubCategories[i]))
	}

	return CategoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		SubCategories: subs,
	}
}

func CategoriesToResponse(categories []*entity.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryToResponse(c))
	}
	return out
}
