package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create handles POST /api/events.
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body map[string]string true "name, desc, url"
// @Success      201 {object} models.Event
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
		Desc string `json:"desc"`
		URL  string `json:"url"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	event, err := h.eventService.Create(r.Context(), services.CreateEventInput{
		Name: input.Name,
		Desc: input.Desc,
		URL:  input.URL,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, event, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// List handles GET /api/events.
// @Summary      List all events
// @Tags         events
// @Produce      json
// @Security     Bearer
// @Success      200 {array} models.Event
// @Failure      401 {object} map[string]string
// @Router       /events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, events, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Delete handles DELETE /api/events.
// @Summary      Delete an event
// @Tags         events
// @Accept       json
// @Security     Bearer
// @Param        request body map[string]string true "event_id"
// @Success      201
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /events [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input struct {
		EventID string `json:"event_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.eventService.Delete(r.Context(), input.EventID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
