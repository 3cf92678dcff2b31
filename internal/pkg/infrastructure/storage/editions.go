package storage

import (
	"encoding/json"

	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/jackc/pgx/v5"
)

func editionQueries() *kindQueries {
	defaultAlias := &relationLoader{
		covers: []entities.RelationPath{entities.EditionDefaultAlias},
		query: `SELECT a.name, a.sort_name, a."primary", l.name
			FROM edition e
			JOIN alias a ON a.id = e.default_alias_id
			LEFT JOIN language l ON l.id = a.language_id
			WHERE e.bbid = $1`,
		scan: scanDefaultAlias,
	}

	languages := &relationLoader{
		covers: []entities.RelationPath{entities.EditionLanguages},
		query: `SELECT l.name
			FROM edition e
			JOIN language_set__language lsl ON lsl.set_id = e.language_set_id
			JOIN language l ON l.id = lsl.language_id
			WHERE e.bbid = $1
			ORDER BY l.name`,
		scan: scanLanguages,
	}

	format := &relationLoader{
		covers: []entities.RelationPath{entities.EditionFormat},
		query: `SELECT f.label
			FROM edition e
			JOIN edition_format f ON f.id = e.format_id
			WHERE e.bbid = $1`,
		scan: scanLabel(entities.Format),
	}

	status := &relationLoader{
		covers: []entities.RelationPath{entities.EditionStatus},
		query: `SELECT s.label
			FROM edition e
			JOIN edition_status s ON s.id = e.status_id
			WHERE e.bbid = $1`,
		scan: scanLabel(entities.Status),
	}

	releaseEvents := &relationLoader{
		covers: []entities.RelationPath{entities.EditionReleaseEvents},
		query: `SELECT re."date"
			FROM edition e
			JOIN release_event_set__release_event rr ON rr.set_id = e.release_event_set_id
			JOIN release_event re ON re.id = rr.release_event_id
			WHERE e.bbid = $1
			ORDER BY re.id`,
		scan: scanReleaseEvents,
	}

	aliases := &relationLoader{
		covers: []entities.RelationPath{entities.EditionAliases},
		query: `SELECT a.name, a.sort_name, a."primary", l.name
			FROM edition e
			JOIN alias_set__alias asa ON asa.set_id = e.alias_set_id
			JOIN alias a ON a.id = asa.alias_id
			LEFT JOIN language l ON l.id = a.language_id
			WHERE e.bbid = $1
			ORDER BY a.id`,
		scan: scanAliases,
	}

	identifiers := &relationLoader{
		covers: []entities.RelationPath{entities.EditionIdentifiers},
		query: `SELECT it.label, i.value
			FROM edition e
			JOIN identifier_set__identifier isi ON isi.set_id = e.identifier_set_id
			JOIN identifier i ON i.id = isi.identifier_id
			JOIN identifier_type it ON it.id = i.type_id
			WHERE e.bbid = $1
			ORDER BY i.id`,
		scan: scanIdentifiers,
	}

	// one join resolves the relationship rows and both endpoint
	// descriptors, so the loader covers all three paths
	relationships := &relationLoader{
		covers: []entities.RelationPath{
			entities.EditionRelationships,
			entities.EditionRelSources,
			entities.EditionRelTargets,
		},
		query: `SELECT rt.label, r.attributes,
				src.bbid::text, sa.name, tgt.bbid::text, ta.name
			FROM edition e
			JOIN relationship_set__relationship rsr ON rsr.set_id = e.relationship_set_id
			JOIN relationship r ON r.id = rsr.relationship_id
			JOIN relationship_type rt ON rt.id = r.type_id
			JOIN entity src ON src.bbid = r.source_bbid
			LEFT JOIN alias sa ON sa.id = src.default_alias_id
			JOIN entity tgt ON tgt.bbid = r.target_bbid
			LEFT JOIN alias ta ON ta.id = tgt.default_alias_id
			WHERE e.bbid = $1
			ORDER BY r.id`,
		scan: scanRelationships,
	}

	return &kindQueries{
		scalarQuery: `SELECT e.name, e.disambiguation, e.pages FROM edition e WHERE e.bbid = $1`,
		scanScalar:  scanEditionScalars,
		loaders: map[entities.RelationPath]*relationLoader{
			entities.EditionDefaultAlias:  defaultAlias,
			entities.EditionLanguages:     languages,
			entities.EditionFormat:        format,
			entities.EditionStatus:        status,
			entities.EditionReleaseEvents: releaseEvents,
			entities.EditionAliases:       aliases,
			entities.EditionIdentifiers:   identifiers,
			entities.EditionRelationships: relationships,
			entities.EditionRelSources:    relationships,
			entities.EditionRelTargets:    relationships,
		},
	}
}

func scanEditionScalars(row pgx.Row) ([]entities.EntityDecoratorFunc, error) {
	var name string
	var disambiguation *string
	var pages *int

	err := row.Scan(&name, &disambiguation, &pages)
	if err != nil {
		return nil, err
	}

	decorators := []entities.EntityDecoratorFunc{entities.Name(name)}

	if disambiguation != nil {
		decorators = append(decorators, entities.Disambiguation(*disambiguation))
	}

	if pages != nil {
		decorators = append(decorators, entities.Pages(*pages))
	}

	return decorators, nil
}

// scanDefaultAlias reads zero or one rows. A missing default alias is a
// legal state and simply leaves the relation slot empty.
func scanDefaultAlias(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	alias, err := scanAlias(rows)
	if err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.DefaultAlias(alias)}, nil
}

func scanAliases(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	aliases := make([]entities.Alias, 0)

	for rows.Next() {
		alias, err := scanAlias(rows)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.Aliases(aliases)}, nil
}

func scanAlias(rows pgx.Rows) (entities.Alias, error) {
	alias := entities.Alias{}
	err := rows.Scan(&alias.Name, &alias.SortName, &alias.Primary, &alias.Language)
	return alias, err
}

func scanLanguages(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	names := make([]string, 0)

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.Languages(names)}, nil
}

// scanLabel handles single label relations such as the edition format and
// status. Zero rows leaves the slot empty.
func scanLabel(decorate func(string) entities.EntityDecoratorFunc) func(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	return func(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
		defer rows.Close()

		if !rows.Next() {
			return nil, rows.Err()
		}

		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}

		return []entities.EntityDecoratorFunc{decorate(label)}, nil
	}
}

func scanReleaseEvents(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	events := make([]entities.ReleaseEvent, 0)

	for rows.Next() {
		event := entities.ReleaseEvent{}
		if err := rows.Scan(&event.Date); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.ReleaseEvents(events)}, nil
}

func scanIdentifiers(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	identifiers := make([]entities.Identifier, 0)

	for rows.Next() {
		identifier := entities.Identifier{}
		if err := rows.Scan(&identifier.Type, &identifier.Value); err != nil {
			return nil, err
		}
		identifiers = append(identifiers, identifier)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.Identifiers(identifiers)}, nil
}

func scanRelationships(rows pgx.Rows) ([]entities.EntityDecoratorFunc, error) {
	defer rows.Close()

	relationships := make([]entities.Relationship, 0)

	for rows.Next() {
		rel := entities.Relationship{}
		var attributes []byte

		err := rows.Scan(
			&rel.Type, &attributes,
			&rel.SourceEntity.BBID, &rel.SourceEntity.Name,
			&rel.TargetEntity.BBID, &rel.TargetEntity.Name,
		)
		if err != nil {
			return nil, err
		}

		rel.Attributes = map[string]string{}
		if len(attributes) > 0 {
			if err := json.Unmarshal(attributes, &rel.Attributes); err != nil {
				return nil, err
			}
		}

		relationships = append(relationships, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return []entities.EntityDecoratorFunc{entities.Relationships(relationships)}, nil
}
