package projections

import (
	"github.com/bookbrainz/entity-api/pkg/entities"
)

// BasicInfo is the summary projection of an edition. Field names and
// nesting are part of the public contract and must not change shape
// without a version bump.
type BasicInfo struct {
	BBID             string          `json:"bbid"`
	DefaultAlias     *entities.Alias `json:"defaultAlias"`
	Disambiguation   *string         `json:"disambiguation"`
	EditionFormat    *string         `json:"editionFormat"`
	Languages        []string        `json:"languages"`
	Status           *string         `json:"status"`
	ReleaseEventDate *string         `json:"releaseEventDate"`
	Pages            *int            `json:"pages"`
}

type AliasList struct {
	BBID    string           `json:"bbid"`
	Aliases []entities.Alias `json:"aliases"`
}

type IdentifierList struct {
	BBID        string                `json:"bbid"`
	Identifiers []entities.Identifier `json:"identifiers"`
}

type RelationshipList struct {
	BBID          string                  `json:"bbid"`
	Relationships []entities.Relationship `json:"relationships"`
}

// FormatBasicInfo projects an entity resolved with the basic info path set.
// Optional sub-relations that are absent on the entity itself, such as a
// missing default alias, project to null rather than failing.
func FormatBasicInfo(e *entities.Entity) (*BasicInfo, error) {
	if !e.LoadedWith(entities.EditionBasicInfoPaths) {
		return nil, entities.NewRelationNotRequestedError(
			"basic info requires relations " + entities.EditionBasicInfoPaths.String(),
		)
	}

	info := &BasicInfo{
		BBID:           e.BBID().String(),
		DefaultAlias:   e.ResolvedDefaultAlias(),
		Disambiguation: e.EntityDisambiguation(),
		EditionFormat:  e.FormatName(),
		Languages:      e.LanguageNames(),
		Status:         e.StatusName(),
		Pages:          e.PageCount(),
	}

	if events := e.ResolvedReleaseEvents(); len(events) > 0 {
		info.ReleaseEventDate = events[0].Date
	}

	return info, nil
}

// FormatAliases flattens the alias relation in store order. An entity with
// no aliases projects to an empty sequence.
func FormatAliases(e *entities.Entity) (*AliasList, error) {
	if !e.LoadedWith(entities.EditionAliasesPaths) {
		return nil, entities.NewRelationNotRequestedError(
			"aliases require relations " + entities.EditionAliasesPaths.String(),
		)
	}

	return &AliasList{
		BBID:    e.BBID().String(),
		Aliases: e.ResolvedAliases(),
	}, nil
}

func FormatIdentifiers(e *entities.Entity) (*IdentifierList, error) {
	if !e.LoadedWith(entities.EditionIdentifiersPaths) {
		return nil, entities.NewRelationNotRequestedError(
			"identifiers require relations " + entities.EditionIdentifiersPaths.String(),
		)
	}

	return &IdentifierList{
		BBID:        e.BBID().String(),
		Identifiers: e.ResolvedIdentifiers(),
	}, nil
}

func FormatRelationships(e *entities.Entity) (*RelationshipList, error) {
	if !e.LoadedWith(entities.EditionRelationshipsPaths) {
		return nil, entities.NewRelationNotRequestedError(
			"relationships require relations " + entities.EditionRelationshipsPaths.String(),
		)
	}

	return &RelationshipList{
		BBID:          e.BBID().String(),
		Relationships: e.ResolvedRelationships(),
	}, nil
}
