package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bookbrainz/entity-api/internal/pkg/application/lookup"
	apierrors "github.com/bookbrainz/entity-api/internal/pkg/presentation/api/errors"
	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/bookbrainz/entity-api/pkg/entities/projections"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

type entityContextKey struct {
	name string
}

var entityCtxKey = &entityContextKey{"resolved-entity"}

// EntityLookup produces the gate middleware for one route binding: it
// extracts the id path parameter, resolves the entity with the binding's
// path set and packs the result into the request context. A missing entity
// short circuits with the binding's not found message; store failures pass
// through as 500s and are never reported as 404.
func EntityLookup(resolver lookup.EntityResolver, kind entities.Kind, paths entities.PathSet, notFoundMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logging.GetFromContext(ctx)

			bbid := chi.URLParam(r, "bbid")
			if bbid == "" {
				apierrors.ReportNotFound(w, notFoundMessage)
				return
			}

			if labeler, found := otelhttp.LabelerFromContext(ctx); found {
				labeler.Add(attribute.String(lookup.TraceAttributeEntityKind, string(kind)))
			}

			entity, err := resolver.Resolve(ctx, kind, bbid, paths)
			if err != nil {
				if errors.Is(err, entities.ErrNotFound) {
					log.Debug("entity not found", "kind", string(kind), "bbid", bbid)
					apierrors.ReportNotFound(w, notFoundMessage)
					return
				}

				log.Error("entity resolution failed", "kind", string(kind), "bbid", bbid, "err", err.Error())
				apierrors.ReportInternalError(w)
				return
			}

			ctx = context.WithValue(ctx, entityCtxKey, entity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EntityFromContext extracts the entity resolved by the lookup gate, if any.
func EntityFromContext(ctx context.Context) (*entities.Entity, bool) {
	entity, ok := ctx.Value(entityCtxKey).(*entities.Entity)
	return entity, ok
}

// NewProjectionHandler serializes the projection of the entity resolved by
// the gate. A formatter refusing the entity means the route was bound with
// mismatched paths, which is a programming error and surfaces as a 500.
func NewProjectionHandler[T any](binding projections.Binding[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)

		entity, ok := EntityFromContext(ctx)
		if !ok {
			log.Error("no resolved entity in request context")
			apierrors.ReportInternalError(w)
			return
		}

		view, err := binding.Format(entity)
		if err != nil {
			log.Error("projection failed", "err", err.Error())
			apierrors.ReportInternalError(w)
			return
		}

		body, err := json.Marshal(view)
		if err != nil {
			log.Error("failed to marshal projection to json", "err", err.Error())
			apierrors.ReportInternalError(w)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}
