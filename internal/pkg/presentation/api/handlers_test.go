package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookbrainz/entity-api/internal/pkg/application/lookup"
	"github.com/bookbrainz/entity-api/internal/pkg/infrastructure/router"
	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestRetrieveBasicInfo(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	bbid := uuid.New()
	english := "English"

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return entities.New(bbid, kind, paths,
			entities.Name("A Study in Scarlet"),
			entities.DefaultAlias(entities.Alias{Name: "A Study in Scarlet", SortName: "Study in Scarlet, A", Language: &english, Primary: true}),
			entities.Disambiguation("first edition"),
			entities.Format("Hardcover"),
			entities.Status("Official"),
			entities.Languages([]string{"English"}),
			entities.ReleaseEvents([]entities.ReleaseEvent{}),
		), nil
	}

	resp, respBody := testRequest(is, ts, "/edition/"+bbid.String())
	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(resp.Header.Get("Content-Type"), "application/json")

	body := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(respBody), &body))

	is.Equal(body["bbid"], bbid.String())
	is.Equal(body["disambiguation"], "first edition")
	is.Equal(body["editionFormat"], "Hardcover")
	is.Equal(body["status"], "Official")

	defaultAlias, ok := body["defaultAlias"].(map[string]any)
	is.True(ok)
	is.Equal(defaultAlias["name"], "A Study in Scarlet")
	is.Equal(defaultAlias["language"], "English")

	// the gate resolved with the basic info path set
	is.Equal(len(resolver.ResolveCalls()), 1)
	is.Equal(resolver.ResolveCalls()[0].Paths.String(), entities.EditionBasicInfoPaths.String())
}

func TestEveryGranularityReturnsTheConfiguredNotFoundMessage(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return nil, entities.NewNotFoundError(fmt.Sprintf("no %s with id %s", string(kind), id))
	}

	unknown := uuid.New().String()

	for _, path := range []string{"", "/aliases", "/identifiers", "/relationships"} {
		resp, respBody := testRequest(is, ts, "/edition/"+unknown+path)

		is.Equal(resp.StatusCode, http.StatusNotFound)
		is.Equal(respBody, `{"message":"Edition not found"}`)
	}
}

func TestStoreFailureIsNeverReportedAsNotFound(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return nil, fmt.Errorf("connection refused")
	}

	resp, respBody := testRequest(is, ts, "/edition/"+uuid.New().String())

	is.Equal(resp.StatusCode, http.StatusInternalServerError)
	is.Equal(respBody, `{"message":"Internal Server Error"}`)
}

func TestRetrieveAliasesWithZeroAliases(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	bbid := uuid.New()

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return entities.New(bbid, kind, paths, entities.Aliases([]entities.Alias{})), nil
	}

	resp, respBody := testRequest(is, ts, "/edition/"+bbid.String()+"/aliases")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(respBody, fmt.Sprintf(`{"bbid":%q,"aliases":[]}`, bbid.String()))
}

func TestRetrieveIdentifiers(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	bbid := uuid.New()

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return entities.New(bbid, kind, paths,
			entities.Identifiers([]entities.Identifier{
				{Type: "ISBN-13", Value: "9781566199094"},
			}),
		), nil
	}

	resp, respBody := testRequest(is, ts, "/edition/"+bbid.String()+"/identifiers")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(respBody, fmt.Sprintf(`{"bbid":%q,"identifiers":[{"type":"ISBN-13","value":"9781566199094"}]}`, bbid.String()))
}

func TestRetrieveRelationships(t *testing.T) {
	is, ts, resolver := setupTest(t)
	defer ts.Close()

	bbid := uuid.New()
	author := "Arthur Conan Doyle"
	sourceBBID := uuid.New().String()

	resolver.ResolveFunc = func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
		return entities.New(bbid, kind, paths,
			entities.Relationships([]entities.Relationship{
				{
					Type:         "Author",
					SourceEntity: entities.EntityRef{BBID: sourceBBID, Name: &author},
					TargetEntity: entities.EntityRef{BBID: bbid.String()},
					Attributes:   map[string]string{},
				},
			}),
		), nil
	}

	resp, respBody := testRequest(is, ts, "/edition/"+bbid.String()+"/relationships")
	is.Equal(resp.StatusCode, http.StatusOK)

	list := struct {
		Relationships []entities.Relationship `json:"relationships"`
	}{}
	is.NoErr(json.Unmarshal([]byte(respBody), &list))

	is.Equal(len(list.Relationships), 1)
	is.Equal(list.Relationships[0].Type, "Author")
	is.Equal(*list.Relationships[0].SourceEntity.Name, author)
	is.Equal(list.Relationships[0].TargetEntity.Name, nil)
}

func TestRegisterHandlersRejectsKindWithoutBindings(t *testing.T) {
	is := is.New(t)

	r := router.New("entity-api-test")
	err := RegisterHandlers(context.Background(), r, &lookup.EntityResolverMock{}, []entities.Kind{entities.Kind("concert")})

	is.True(err != nil)
}

func TestHealthEndpoint(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, _ := testRequest(is, ts, "/health")
	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func testRequest(is *is.I, ts *httptest.Server, path string) (*http.Response, string) {
	req, _ := http.NewRequest(http.MethodGet, ts.URL+path, nil)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *lookup.EntityResolverMock) {
	is := is.New(t)

	resolver := &lookup.EntityResolverMock{
		ResolveFunc: func(ctx context.Context, kind entities.Kind, id string, paths entities.PathSet) (*entities.Entity, error) {
			return nil, entities.NewNotFoundError("no such entity")
		},
	}

	r := router.New("entity-api-test")
	err := RegisterHandlers(context.Background(), r, resolver, []entities.Kind{entities.KindEdition})
	is.NoErr(err)

	return is, httptest.NewServer(r), resolver
}
