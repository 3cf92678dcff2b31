package entities

// Relation paths navigable from an Edition.
const (
	EditionDefaultAlias  RelationPath = "defaultAlias.language"
	EditionLanguages     RelationPath = "languageSet.languages"
	EditionFormat        RelationPath = "editionFormat"
	EditionStatus        RelationPath = "editionStatus"
	EditionReleaseEvents RelationPath = "releaseEventSet.releaseEvents"
	EditionAliases       RelationPath = "aliasSet.aliases.language"
	EditionIdentifiers   RelationPath = "identifierSet.identifiers.type"
	EditionRelationships RelationPath = "relationshipSet.relationships.type"
	EditionRelSources    RelationPath = "relationshipSet.relationships.source"
	EditionRelTargets    RelationPath = "relationshipSet.relationships.target"
)

// Pre-built path sets for the edition granularities. Route bindings and
// tests reference these by name instead of re-enumerating paths. Sets are
// composed from each other where they share paths, and overlap is expected:
// the same path may serve more than one granularity.
var (
	editionDefaultAliasPaths = NewPathSet(EditionDefaultAlias)

	EditionBasicInfoPaths = editionDefaultAliasPaths.Union(
		NewPathSet(EditionLanguages, EditionFormat, EditionStatus),
		NewPathSet(EditionReleaseEvents),
	)

	EditionAliasesPaths = NewPathSet(EditionAliases)

	EditionIdentifiersPaths = NewPathSet(EditionIdentifiers)

	EditionRelationshipsPaths = NewPathSet(
		EditionRelationships,
		EditionRelSources,
		EditionRelTargets,
	)
)

// PathSets returns the named path sets registered for a kind.
func PathSets(kind Kind) map[string]PathSet {
	if kind != KindEdition {
		return nil
	}

	return map[string]PathSet{
		"basic":         EditionBasicInfoPaths,
		"aliases":       EditionAliasesPaths,
		"identifiers":   EditionIdentifiersPaths,
		"relationships": EditionRelationshipsPaths,
	}
}
