package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads entities and their relations from Postgres. Each LoadEntity
// call sends a single batch: the scalar row query followed by one query per
// requested relation path, in path set order.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// relationLoader populates one or more relation paths from a single query.
// A loader that satisfies several paths (such as the relationship loader,
// which resolves both endpoint descriptors in the same join) lists them all
// in covers so that the remaining paths are skipped.
type relationLoader struct {
	covers []entities.RelationPath
	query  string
	scan   func(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error)
}

type kindQueries struct {
	scalarQuery string
	scanScalar  func(row pgx.Row) ([]entities.EntityDecoratorFunc, error)
	loaders     map[entities.RelationPath]*relationLoader
}

var queriesByKind = map[entities.Kind]*kindQueries{
	entities.KindEdition: editionQueries(),
}

func (s *Store) LoadEntity(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
	queries, ok := queriesByKind[kind]
	if !ok {
		return nil, entities.NewUnknownKindError(
			fmt.Sprintf("no queries registered for entity kind %q", string(kind)),
		)
	}

	bbid, err := uuid.Parse(id)
	if err != nil {
		// a malformed id can not name an existing entity
		return nil, entities.NewNotFoundError(
			fmt.Sprintf("no %s with id %s", string(kind), id),
		)
	}

	loaders := make([]*relationLoader, 0, paths.Len())
	covered := entities.NewPathSet()

	for _, p := range paths.Paths() {
		if covered.Contains(p) {
			continue
		}

		loader, ok := queries.loaders[p]
		if !ok {
			return nil, entities.NewUnknownRelationPathError(
				fmt.Sprintf("relation path %q is not valid for entity kind %q", string(p), string(kind)),
			)
		}

		loaders = append(loaders, loader)
		covered = covered.Union(entities.NewPathSet(loader.covers...))
	}

	batch := &pgx.Batch{}
	batch.Queue(queries.scalarQuery, bbid)
	for _, loader := range loaders {
		batch.Queue(loader.query, bbid)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	decorators, err := queries.scanScalar(results.QueryRow())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.NewNotFoundError(
				fmt.Sprintf("no %s with id %s", string(kind), id),
			)
		}
		return nil, fmt.Errorf("failed to read %s %s: %w", string(kind), id, err)
	}

	for _, loader := range loaders {
		rows, err := results.Query()
		if err != nil {
			return nil, fmt.Errorf("failed to read relations of %s %s: %w", string(kind), id, err)
		}

		more, err := loader.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to read relations of %s %s: %w", string(kind), id, err)
		}

		decorators = append(decorators, more...)
	}

	return entities.New(bbid, kind, paths, decorators...), nil
}

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "bookbrainz"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return pool, nil
}
