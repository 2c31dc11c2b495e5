package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/agarza/hoopstats/internal/repository"
	"go.uber.org/zap"
)

type UsersHandler struct {
	userRepo repository.UserRepository
	log      *zap.SugaredLogger
}

func NewUsersHandler(userRepo repository.UserRepository, log *zap.SugaredLogger) *UsersHandler {
	return &UsersHandler{userRepo: userRepo, log: log}
}

type UserListItem struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	CreatedAt   string `json:"createdAt"`
}

// List returns all users ordered by display name.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.GetAll(r.Context())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]UserListItem, 0, len(users))
	for _, user := range users {
		items = append(items, UserListItem{
			ID:          user.ID.String(),
			Username:    user.Username,
			DisplayName: user.DisplayName,
			CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]UserListItem{"users": items})
}
