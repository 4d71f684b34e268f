package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/services"
)

// UserDeleter defines the interface that the delete service must implement.
type UserDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteUserHandler returns an HTTP handler for user deletion.
// Deleting an already-deleted id yields the same not-found response.
// @Summary Delete user
// @Description Removes a user from the database. Needs authorization.
// @Tags user
// @Produce json
// @Param id path integer true "User id"
// @Success 200 {string} string "Confirmation message"
// @Failure 400 {object} handlers.ErrorResponse "User not found"
// @Failure 403 {string} string "Missing or invalid token"
// @Security BearerAuth
// @Router /api/user/delete/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Error removing user, user with id: %d can't be found", id))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, fmt.Sprintf("User with id: %d has been removed successfully", id))
	}
}
