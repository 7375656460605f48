package http

import (
	"net/http"

	gql "github.com/personalab/persona-board/internal/handler/graphql"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/service"
)

type Handler struct {
	services *service.Services

	graphql   http.Handler
	uploadDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, uploadDir string, logger *logger.Logger) (*Handler, error) {
	graphqlHandler, err := gql.NewHandler(services, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		graphql:   graphqlHandler,
		uploadDir: uploadDir,
		logger:    logger,
	}, nil
}
