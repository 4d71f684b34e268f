package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
	"github.com/sergioruizlaf/user-service/internal/services"
	"github.com/sergioruizlaf/user-service/internal/validation"
)

// UserUpdater defines the interface that the update service must implement.
type UserUpdater interface {
	Update(ctx context.Context, id int64, name, surname *string, active *bool, age *int) (*models.User, []validation.Violation, error)
}

// NewUpdateUserHandler returns an HTTP handler for partial user updates.
// Omitted parameters leave the corresponding fields unchanged, the
// active flag included.
// @Summary Update user
// @Description Applies the supplied fields to an existing user and re-validates the record. Needs authorization.
// @Tags user
// @Produce json
// @Param id path integer true "User id"
// @Param name query string false "Name"
// @Param surname query string false "Surname"
// @Param active query boolean false "Active flag"
// @Param age query integer false "Age"
// @Success 200 {object} models.User "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "User not found or validation failed"
// @Failure 403 {string} string "Missing or invalid token"
// @Security BearerAuth
// @Router /api/user/update/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		name := optionalString(r, "name")
		surname := optionalString(r, "surname")

		age, err := optionalInt(r, "age")
		if err != nil {
			writeError(w, http.StatusBadRequest, "age must be an integer")
			return
		}

		active, err := optionalBool(r, "active")
		if err != nil {
			writeError(w, http.StatusBadRequest, "active must be a boolean")
			return
		}

		user, violations, err := svc.Update(r.Context(), id, name, surname, active, age)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("Error updating user, user with id: %d can't be found", id))
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}
		if len(violations) > 0 {
			writeJSON(w, http.StatusBadRequest, violations)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
