package projections

import (
	"github.com/bookbrainz/entity-api/pkg/entities"
)

// Binding pairs a formatter with the path set its entities must be resolved
// with. Bindings are only constructed here, so a route that resolves with
// Paths() cannot hand the formatter an entity resolved with a different set.
type Binding[T any] struct {
	paths  entities.PathSet
	format func(e *entities.Entity) (T, error)
}

func (b Binding[T]) Paths() entities.PathSet {
	return b.paths
}

func (b Binding[T]) Format(e *entities.Entity) (T, error) {
	return b.format(e)
}

func BasicInfoBinding() Binding[*BasicInfo] {
	return Binding[*BasicInfo]{
		paths:  entities.EditionBasicInfoPaths,
		format: FormatBasicInfo,
	}
}

func AliasesBinding() Binding[*AliasList] {
	return Binding[*AliasList]{
		paths:  entities.EditionAliasesPaths,
		format: FormatAliases,
	}
}

func IdentifiersBinding() Binding[*IdentifierList] {
	return Binding[*IdentifierList]{
		paths:  entities.EditionIdentifiersPaths,
		format: FormatIdentifiers,
	}
}

func RelationshipsBinding() Binding[*RelationshipList] {
	return Binding[*RelationshipList]{
		paths:  entities.EditionRelationshipsPaths,
		format: FormatRelationships,
	}
}
