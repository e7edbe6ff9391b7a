package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

// CategoryResponse is one dictionary entry in the list response.
type CategoryResponse struct {
	Name     string   `json:"name" doc:"Category name"`
	Keywords []string `json:"keywords" doc:"Keywords that select this category, in match order"`
}

// ListCategoriesResponseBody is the response body for listing categories.
type ListCategoriesResponseBody struct {
	Categories []CategoryResponse `json:"categories" doc:"Categories in classification priority order"`
}

// ListCategoriesOutput is the Huma output for listing categories.
type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	Dictionary catalog.Dictionary
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(dictionary catalog.Dictionary) *ListCategoriesHandler {
	return &ListCategoriesHandler{Dictionary: dictionary}
}

// Register registers the list categories endpoint with the Huma API.
func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the loaded category dictionary in its classification order.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(_ context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories := make([]CategoryResponse, len(h.Dictionary))
	for i, entry := range h.Dictionary {
		categories[i] = CategoryResponse{Name: entry.Name, Keywords: entry.Keywords}
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponseBody{Categories: categories}}, nil
}
