package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type TeamHandler struct {
	teamService services.TeamService
}

func NewTeamHandler(teamService services.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create handles POST /api/teams. The acting user becomes the team's reader.
// @Summary      Form a team for an event
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body map[string]string true "event_id, name, desc"
// @Success      201 {object} models.Team
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /teams [post]
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	var input struct {
		EventID string `json:"event_id"`
		Name    string `json:"name"`
		Desc    string `json:"desc"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.teamService.Create(r.Context(), identity, services.CreateTeamInput{
		EventID: input.EventID,
		Name:    input.Name,
		Desc:    input.Desc,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get handles GET /api/teams.
// @Summary      Fetch a team by identifier
// @Tags         teams
// @Produce      json
// @Security     Bearer
// @Param        team_id query string true "team identifier"
// @Success      200 {object} models.Team
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /teams [get]
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	team, err := h.teamService.GetByID(r.Context(), r.URL.Query().Get("team_id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, team, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListByEvent handles GET /api/teams/event.
// @Summary      List the teams formed for an event
// @Tags         teams
// @Produce      json
// @Security     Bearer
// @Param        event_id query string true "event identifier"
// @Success      200 {array} models.Team
// @Failure      401 {object} map[string]string
// @Router       /teams/event [get]
func (h *TeamHandler) ListByEvent(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListByEvent(r.Context(), r.URL.Query().Get("event_id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, teams, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
