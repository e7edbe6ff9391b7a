package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusResponse is the response body for the status endpoint.
type StatusResponse struct {
	Status string `json:"status" doc:"Service status"`
}

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body StatusResponse
}

// Handler handles GET /status.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Service status",
		Description: "Reports whether the service is up.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *struct{}) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponse{Status: "ok"}}, nil
}
