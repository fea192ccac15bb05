package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/kakwa/immowatch/internal/identity"
	domain "github.com/kakwa/immowatch/pkg/types"
)

// SearchProvider defines the store methods required by the search handler.
type SearchProvider interface {
	CreateSearch(ctx context.Context, s *domain.SearchSpec) (bool, error)
	DisableSearch(ctx context.Context, id, owner string) (bool, error)
	ListSearches(ctx context.Context, owner string) ([]domain.SearchSpec, error)
}

// SearchHandler handles search registry requests.
type SearchHandler struct {
	store SearchProvider
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(s SearchProvider) *SearchHandler {
	return &SearchHandler{store: s}
}

// CreateSearchInput is the request body for registering a search.
type CreateSearchInput struct {
	Body struct {
		Owner      string `json:"owner" minLength:"1" doc:"Owner of the search"`
		PostalCode string `json:"postal_code" minLength:"1" doc:"Postal code to search"`
		MinSurface string `json:"min_surface" minLength:"1" doc:"Minimum surface"`
		MaxPrice   string `json:"max_price" minLength:"1" doc:"Maximum price"`
		DealType   string `json:"deal_type,omitempty" enum:"rent,sale" doc:"Transaction kind, defaults to rent"`
		MinRooms   int    `json:"min_rooms,omitempty" minimum:"0" doc:"Minimum room count, 0 disables the filter"`
	}
}

// CreateSearchOutput is the response body for registering a search.
// Created is false when identical criteria were already registered.
type CreateSearchOutput struct {
	Body struct {
		Created bool              `json:"created" doc:"Whether a new search was stored"`
		Search  domain.SearchSpec `json:"search"`
	}
}

// ListSearchesInput is the query for listing an owner's searches.
type ListSearchesInput struct {
	Owner string `query:"owner" required:"true" minLength:"1" doc:"Owner of the searches"`
}

// ListSearchesOutput is the response body for listing searches.
type ListSearchesOutput struct {
	Body []domain.SearchSpec
}

// DeleteSearchInput identifies the search to disable.
type DeleteSearchInput struct {
	ID    string `path:"id" doc:"Search ID"`
	Owner string `query:"owner" required:"true" minLength:"1" doc:"Owner of the search"`
}

// DeleteSearchOutput is the response body for disabling a search.
type DeleteSearchOutput struct {
	Body StatusResponse
}

// Create registers a search. The search ID is derived from the owner
// and the criteria, so posting the same criteria twice stores nothing
// the second time.
func (h *SearchHandler) Create(
	ctx context.Context,
	input *CreateSearchInput,
) (*CreateSearchOutput, error) {
	owner := identity.NormalizeOwner(input.Body.Owner)
	dealType := domain.ParseDealType(input.Body.DealType)

	spec := &domain.SearchSpec{
		ID: identity.SearchID(
			owner, input.Body.PostalCode, input.Body.MinSurface,
			input.Body.MaxPrice, dealType, input.Body.MinRooms,
		),
		Owner:      owner,
		PostalCode: input.Body.PostalCode,
		MinSurface: input.Body.MinSurface,
		MaxPrice:   input.Body.MaxPrice,
		DealType:   dealType,
		MinRooms:   input.Body.MinRooms,
	}

	created, err := h.store.CreateSearch(ctx, spec)
	if err != nil {
		return nil, huma.Error500InternalServerError("creating search failed: " + err.Error())
	}

	resp := &CreateSearchOutput{}
	resp.Body.Created = created
	resp.Body.Search = *spec
	return resp, nil
}

// List returns all of an owner's searches.
func (h *SearchHandler) List(
	ctx context.Context,
	input *ListSearchesInput,
) (*ListSearchesOutput, error) {
	specs, err := h.store.ListSearches(ctx, identity.NormalizeOwner(input.Owner))
	if err != nil {
		return nil, huma.Error500InternalServerError("listing searches failed: " + err.Error())
	}

	if specs == nil {
		specs = []domain.SearchSpec{}
	}

	return &ListSearchesOutput{Body: specs}, nil
}

// Delete disables a search. Only the owner can disable their search; a
// mismatched owner gets the same 404 as a missing ID.
func (h *SearchHandler) Delete(
	ctx context.Context,
	input *DeleteSearchInput,
) (*DeleteSearchOutput, error) {
	disabled, err := h.store.DisableSearch(ctx, input.ID, identity.NormalizeOwner(input.Owner))
	if err != nil {
		return nil, huma.Error500InternalServerError("disabling search failed: " + err.Error())
	}
	if !disabled {
		return nil, huma.Error404NotFound("search not found")
	}

	resp := &DeleteSearchOutput{}
	resp.Body.Status = "disabled"
	return resp, nil
}

// RegisterSearchRoutes registers search registry endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/searches",
		Summary:     "Register a recurring search",
		Description: "Stores a search if the same owner has not already registered " +
			"identical criteria. Re-posting existing criteria reports created=false.",
		Tags:   []string{"searches"},
		Errors: []int{http.StatusInternalServerError},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "list-searches",
		Method:      http.MethodGet,
		Path:        "/api/v1/searches",
		Summary:     "List an owner's searches",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "delete-search",
		Method:      http.MethodDelete,
		Path:        "/api/v1/searches/{id}",
		Summary:     "Disable a search",
		Description: "Deactivates a search so future cycles skip it. " +
			"Stored listings and notification history are kept.",
		Tags:   []string{"searches"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Delete)
}
