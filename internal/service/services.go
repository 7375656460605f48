package service

import (
	"github.com/personalab/persona-board/internal/config"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
)

type Services struct {
	AuthService    AuthService
	PersonaService PersonaService
	UploadService  UploadService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		PersonaService: NewPersonaService(storages.PersonaRepository, logger),
		UploadService:  NewUploadService(storages.FileStorage, cfg.Server.PublicBaseURL, logger),
	}
}
