package handlers

import (
	"net/http"

	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/middleware"
	"github.com/t3mp-0xCC/edd-2023-hotchpotch-web-backend/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /api/users.
// @Summary      Sign in
// @Description  Creates the acting user's row from the verified identity
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Success      201 {object} models.User
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	user, err := h.userService.SignIn(r.Context(), identity)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get handles GET /api/users. With a user_id or user_name query parameter it
// fetches that user; with neither it returns the acting user's own row.
// @Summary      Fetch a user
// @Tags         users
// @Produce      json
// @Security     Bearer
// @Param        user_id   query string false "user identifier"
// @Param        user_name query string false "user name"
// @Success      200 {object} models.User
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /users [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		unauthorizedResponse(w, r, "unauthorized")
		return
	}

	input := services.GetUserInput{
		UserID:   r.URL.Query().Get("user_id"),
		UserName: r.URL.Query().Get("user_name"),
	}

	user, err := h.userService.Get(r.Context(), identity, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, user, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
