package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
	"github.com/sergioruizlaf/user-service/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// NewLoginHandler returns an HTTP handler for user login.
//
// The unknown-username message deliberately names the username, matching
// the historical behavior clients depend on.
//
// @Summary User login
// @Description Authenticates a user, issues a bearer token and records the login time
// @Tags auth
// @Produce json
// @Param username query string true "Username"
// @Param password query string true "Password"
// @Success 200 {object} models.User "Logged-in user including live token"
// @Failure 400 {object} handlers.ErrorResponse "Unknown username or bad password"
// @Failure 500 {object} handlers.ErrorResponse "Unexpected failure"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.FormValue("username")
		password := r.FormValue("password")

		user, err := svc.Login(r.Context(), username, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusBadRequest, fmt.Sprintf("User - %s - does not exist", username))
			case errors.Is(err, services.ErrInvalidPassword):
				writeError(w, http.StatusBadRequest, "Password not valid")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
