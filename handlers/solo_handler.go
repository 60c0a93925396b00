package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type SoloHandler struct {
	soloService services.SoloService
}

func NewSoloHandler(soloService services.SoloService) *SoloHandler {
	return &SoloHandler{soloService: soloService}
}

// Create handles POST /api/solos, registering the acting user for an event
// without a team.
// @Summary      Register solo for an event
// @Tags         solos
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body map[string]string true "event_id"
// @Success      201 {object} models.Solo
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /solos [post]
func (h *SoloHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	var input struct {
		EventID string `json:"event_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	solo, err := h.soloService.Create(r.Context(), identity, input.EventID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, solo, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListUsers handles GET /api/solos, listing the users registered solo for an
// event.
// @Summary      List solo users for an event
// @Tags         solos
// @Produce      json
// @Security     Bearer
// @Param        event_id query string true "event identifier"
// @Success      200 {array} models.User
// @Failure      401 {object} map[string]string
// @Router       /solos [get]
func (h *SoloHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.soloService.ListUsersByEvent(r.Context(), r.URL.Query().Get("event_id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, users, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
