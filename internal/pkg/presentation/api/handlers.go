package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bookbrainz/entity-api/internal/pkg/application/lookup"
	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/bookbrainz/entity-api/pkg/entities/projections"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

func RegisterHandlers(ctx context.Context, r *chi.Mux, resolver lookup.EntityResolver, kinds []entities.Kind) error {
	r.Use(Logger(logging.GetFromContext(ctx)))

	r.Get("/health", NewHealthHandler())

	for _, kind := range kinds {
		switch kind {
		case entities.KindEdition:
			registerEditionRoutes(r, resolver)
		default:
			return fmt.Errorf("no route bindings registered for entity kind %q", string(kind))
		}
	}

	return nil
}

// Route bindings for the edition kind: each granularity pairs a projection
// binding (relation path set + formatter) with the kind's not found
// message. Adding a granularity or another kind is additive only.
func registerEditionRoutes(r chi.Router, resolver lookup.EntityResolver) {
	const notFoundMessage = "Edition not found"

	r.Route("/edition/{bbid}", func(r chi.Router) {
		bindLookupRoute(r, "/", resolver, entities.KindEdition, notFoundMessage, projections.BasicInfoBinding())
		bindLookupRoute(r, "/aliases", resolver, entities.KindEdition, notFoundMessage, projections.AliasesBinding())
		bindLookupRoute(r, "/identifiers", resolver, entities.KindEdition, notFoundMessage, projections.IdentifiersBinding())
		bindLookupRoute(r, "/relationships", resolver, entities.KindEdition, notFoundMessage, projections.RelationshipsBinding())
	})
}

func bindLookupRoute[T any](r chi.Router, pattern string, resolver lookup.EntityResolver, kind entities.Kind, notFoundMessage string, binding projections.Binding[T]) {
	r.With(EntityLookup(resolver, kind, binding.Paths(), notFoundMessage)).
		Get(pattern, NewProjectionHandler(binding))
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
