package projections

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

var english = "English"

func TestFormatBasicInfo(t *testing.T) {
	is := is.New(t)
	bbid := uuid.New()

	e := entities.New(bbid, entities.KindEdition, entities.EditionBasicInfoPaths,
		entities.Name("A Study in Scarlet"),
		entities.DefaultAlias(entities.Alias{
			Name: "A Study in Scarlet", SortName: "Study in Scarlet, A",
			Language: &english, Primary: true,
		}),
		entities.Disambiguation("first edition"),
		entities.Format("Hardcover"),
		entities.Status("Official"),
		entities.Languages([]string{"English"}),
		entities.ReleaseEvents([]entities.ReleaseEvent{{Date: strptr("1887-11-01")}}),
		entities.Pages(96),
	)

	info, err := FormatBasicInfo(e)
	is.NoErr(err)

	is.Equal(info.BBID, bbid.String())
	is.Equal(info.DefaultAlias.Name, "A Study in Scarlet")
	is.Equal(*info.Disambiguation, "first edition")
	is.Equal(*info.EditionFormat, "Hardcover")
	is.Equal(*info.Status, "Official")
	is.Equal(info.Languages, []string{"English"})
	is.Equal(*info.ReleaseEventDate, "1887-11-01")
	is.Equal(*info.Pages, 96)
}

func TestFormatBasicInfoWithAbsentDefaultAlias(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionBasicInfoPaths,
		entities.Name("untitled"),
		entities.Languages([]string{}),
	)

	info, err := FormatBasicInfo(e)
	is.NoErr(err)

	body, err := json.Marshal(info)
	is.NoErr(err)

	// a missing default alias projects to null, not an error
	is.True(strings.Contains(string(body), `"defaultAlias":null`))
	is.True(strings.Contains(string(body), `"languages":[]`))
}

func TestFormatAliasesWithZeroAliases(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionAliasesPaths,
		entities.Aliases([]entities.Alias{}),
	)

	list, err := FormatAliases(e)
	is.NoErr(err)
	is.True(list.Aliases != nil)
	is.Equal(len(list.Aliases), 0)

	body, err := json.Marshal(list)
	is.NoErr(err)
	is.True(strings.Contains(string(body), `"aliases":[]`))
}

func TestFormatAliasesPreservesStoreOrder(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionAliasesPaths,
		entities.Aliases([]entities.Alias{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		}),
	)

	list, err := FormatAliases(e)
	is.NoErr(err)

	names := []string{}
	for _, alias := range list.Aliases {
		names = append(names, alias.Name)
	}

	is.Equal(names, []string{"A", "B", "C"})
}

func TestFormatIdentifiers(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionIdentifiersPaths,
		entities.Identifiers([]entities.Identifier{
			{Type: "ISBN-13", Value: "9781566199094"},
		}),
	)

	list, err := FormatIdentifiers(e)
	is.NoErr(err)
	is.Equal(len(list.Identifiers), 1)
	is.Equal(list.Identifiers[0].Type, "ISBN-13")
}

func TestFormatRelationshipsResolvesBothEndpoints(t *testing.T) {
	is := is.New(t)
	source := uuid.New().String()
	target := uuid.New().String()

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionRelationshipsPaths,
		entities.Relationships([]entities.Relationship{
			{
				Type:         "Edition",
				SourceEntity: entities.EntityRef{BBID: source, Name: strptr("Arthur Conan Doyle")},
				TargetEntity: entities.EntityRef{BBID: target, Name: strptr("A Study in Scarlet")},
				Attributes:   map[string]string{},
			},
		}),
	)

	list, err := FormatRelationships(e)
	is.NoErr(err)
	is.Equal(len(list.Relationships), 1)
	is.Equal(list.Relationships[0].SourceEntity.BBID, source)
	is.Equal(*list.Relationships[0].TargetEntity.Name, "A Study in Scarlet")
}

func TestFormatterRejectsEntityResolvedWithOtherPathSet(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionAliasesPaths,
		entities.Aliases([]entities.Alias{}),
	)

	_, err := FormatBasicInfo(e)
	is.True(errors.Is(err, entities.ErrRelationNotRequested))

	_, err = FormatIdentifiers(e)
	is.True(errors.Is(err, entities.ErrRelationNotRequested))
}

func TestFormattersArePure(t *testing.T) {
	is := is.New(t)

	e := entities.New(uuid.New(), entities.KindEdition, entities.EditionAliasesPaths,
		entities.Aliases([]entities.Alias{
			{Name: "A", Language: &english}, {Name: "B"},
		}),
	)

	first, err := FormatAliases(e)
	is.NoErr(err)
	second, err := FormatAliases(e)
	is.NoErr(err)

	firstBody, _ := json.Marshal(first)
	secondBody, _ := json.Marshal(second)

	is.Equal(string(firstBody), string(secondBody))
}

func TestBindingsPairFormatterWithItsPathSet(t *testing.T) {
	is := is.New(t)

	is.Equal(BasicInfoBinding().Paths().String(), entities.EditionBasicInfoPaths.String())
	is.Equal(AliasesBinding().Paths().String(), entities.EditionAliasesPaths.String())
	is.Equal(IdentifiersBinding().Paths().String(), entities.EditionIdentifiersPaths.String())
	is.Equal(RelationshipsBinding().Paths().String(), entities.EditionRelationshipsPaths.String())
}

func strptr(s string) *string {
	return &s
}
