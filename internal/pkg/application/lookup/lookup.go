package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("entity-api/lookup")

const (
	TraceAttributeEntityKind    string = "entitylookup.kind"
	TraceAttributeEntityID      string = "entitylookup.id"
	TraceAttributeRelationPaths string = "entitylookup.relations"
)

//go:generate moq -rm -out lookup_mock.go . EntityResolver

// EntityResolver resolves an entity by id together with a caller specified
// set of relation paths. The returned entity has exactly the requested
// relations populated; absence of the id is signalled with
// entities.ErrNotFound, never with a nil entity and nil error.
type EntityResolver interface {
	Resolve(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error)
}

// EntityStore materializes an entity and its requested relations in a
// single (internally batched) read. Implementations signal a missing id
// with entities.NewNotFoundError and must never coerce store level
// failures into that outcome.
type EntityStore interface {
	LoadEntity(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error)
}

type resolver struct {
	store EntityStore
}

func New(store EntityStore) EntityResolver {
	return &resolver{store: store}
}

func (r *resolver) Resolve(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
	var err error

	if !kind.Valid() {
		return nil, entities.NewUnknownKindError(
			fmt.Sprintf("entity kind %q is not registered", string(kind)),
		)
	}

	ctx, span := tracer.Start(ctx, "resolve-entity",
		trace.WithAttributes(
			attribute.String(TraceAttributeEntityKind, string(kind)),
			attribute.String(TraceAttributeEntityID, id),
			attribute.String(TraceAttributeRelationPaths, paths.String()),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var entity *entities.Entity
	entity, err = r.store.LoadEntity(ctx, kind, id, paths)

	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, err
		}

		err = fmt.Errorf("failed to load %s %s: %w", string(kind), id, err)
		return nil, err
	}

	return entity, nil
}
