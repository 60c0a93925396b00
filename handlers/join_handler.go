package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type JoinHandler struct {
	joinService services.JoinService
}

func NewJoinHandler(joinService services.JoinService) *JoinHandler {
	return &JoinHandler{joinService: joinService}
}

// Create handles POST /api/joins, recording the acting user's membership in a
// team.
// @Summary      Join a team
// @Tags         joins
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body map[string]string true "team_id"
// @Success      201 {object} models.Join
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /joins [post]
func (h *JoinHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	var input struct {
		TeamID string `json:"team_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	join, err := h.joinService.Create(r.Context(), identity, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, join, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
