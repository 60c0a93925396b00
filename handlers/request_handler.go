package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type RequestHandler struct {
	requestService services.RequestService
}

func NewRequestHandler(requestService services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Create handles POST /api/requests.
// @Summary      Submit a join request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body map[string]string true "team_id, user_id, message"
// @Success      201 {object} models.Request
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /requests [post]
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TeamID  string `json:"team_id"`
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	request, err := h.requestService.Create(r.Context(), services.CreateRequestInput{
		TeamID:  input.TeamID,
		UserID:  input.UserID,
		Message: input.Message,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, request, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List handles GET /api/requests, listing the acting user's pending join
// requests.
// @Summary      List own join requests
// @Tags         requests
// @Produce      json
// @Security     Bearer
// @Success      200 {array} models.Request
// @Failure      401 {object} map[string]string
// @Router       /requests [get]
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	requests, err := h.requestService.ListForUser(r.Context(), identity)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, requests, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
