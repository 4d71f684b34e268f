package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
	"github.com/sergioruizlaf/user-service/internal/services"
	"github.com/sergioruizlaf/user-service/internal/validation"
)

// UserCreator defines the interface that the create service must implement.
type UserCreator interface {
	Create(ctx context.Context, username, password string, name, surname, email *string, active bool, age *int) (*models.User, []validation.Violation, error)
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create user
// @Description Validates and creates a new user. The password is hashed before storing.
// @Tags user
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Param name query string false "Name"
// @Param surname query string false "Surname"
// @Param email query string false "Email"
// @Param active query boolean false "Active flag"
// @Param age query integer false "Age"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists or validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Unexpected failure"
// @Router /api/user/create [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		password := r.FormValue("password")
		name := optionalString(r, "name")
		surname := optionalString(r, "surname")
		email := optionalString(r, "email")

		age, err := optionalInt(r, "age")
		if err != nil {
			writeError(w, http.StatusBadRequest, "age must be an integer")
			return
		}

		active := false
		if v := r.FormValue("active"); v != "" {
			active, err = strconv.ParseBool(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "active must be a boolean")
				return
			}
		}

		user, violations, err := svc.Create(r.Context(), username, password, name, surname, email, active, age)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameExists):
				writeError(w, http.StatusBadRequest, "Username already exists")
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
