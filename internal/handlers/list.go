package handlers

import (
	"context"
	"net/http"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
)

// UserLister defines the interface that the list service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List users
// @Description Returns the full list of users
// @Tags user
// @Produce json
// @Success 200 {array} models.User "All users"
// @Failure 500 {object} handlers.ErrorResponse "Unexpected failure"
// @Router /api/user/list [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
