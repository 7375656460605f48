// Package graphql exposes the persona catalogue as a GraphQL endpoint:
// schema construction, field resolvers, and the multipart upload
// middleware that lets mutations receive file streams.
package graphql

import (
	"net/http"

	gqlhandler "github.com/graphql-go/handler"

	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/service"
)

// NewHandler builds the executable schema over the given services and
// returns it as an http.Handler ready to be mounted on a router. The
// returned handler accepts both plain JSON requests and multipart
// requests carrying file uploads.
func NewHandler(services *service.Services, log *logger.Logger) (http.Handler, error) {
	schema, err := newSchema(&resolver{services: services})
	if err != nil {
		return nil, err
	}

	h := gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})

	log.Info().Msg("graphql handler created")
	return withUploads(h), nil
}
