package service

import (
	"github.com/agarza/hoopstats/internal/config"
	"github.com/agarza/hoopstats/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Session *SessionService
	Stats   *StatsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.UserSession, cfg),
		Session: NewSessionService(repos.ShootingSession, repos.User),
		Stats:   NewStatsService(repos.Stats, repos.User),
	}
}
