package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bookbrainz/entity-api/pkg/entities"
	"github.com/bookbrainz/entity-api/pkg/entities/projections"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// LookupClient consumes the entity lookup API without re-implementing the
// wire contract. A 404 from the API maps to entities.ErrNotFound; any other
// non-200 status is an error.
type LookupClient interface {
	EditionBasicInfo(ctx context.Context, bbid string) (*projections.BasicInfo, error)
	EditionAliases(ctx context.Context, bbid string) (*projections.AliasList, error)
	EditionIdentifiers(ctx context.Context, bbid string) (*projections.IdentifierList, error)
	EditionRelationships(ctx context.Context, bbid string) (*projections.RelationshipList, error)
}

type lookupClient struct {
	baseURL    string
	httpClient http.Client
}

func New(baseURL string) LookupClient {
	return &lookupClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *lookupClient) EditionBasicInfo(ctx context.Context, bbid string) (*projections.BasicInfo, error) {
	return get[projections.BasicInfo](ctx, c, "/edition/"+bbid)
}

func (c *lookupClient) EditionAliases(ctx context.Context, bbid string) (*projections.AliasList, error) {
	return get[projections.AliasList](ctx, c, "/edition/"+bbid+"/aliases")
}

func (c *lookupClient) EditionIdentifiers(ctx context.Context, bbid string) (*projections.IdentifierList, error) {
	return get[projections.IdentifierList](ctx, c, "/edition/"+bbid+"/identifiers")
}

func (c *lookupClient) EditionRelationships(ctx context.Context, bbid string) (*projections.RelationshipList, error) {
	return get[projections.RelationshipList](ctx, c, "/edition/"+bbid+"/relationships")
}

func get[T any](ctx context.Context, c *lookupClient, path string) (*T, error) {
	url := c.baseURL + path

	logger := logging.GetFromContext(ctx)
	logger.Debug("fetching entity projection", "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		msg := struct {
			Message string `json:"message"`
		}{}

		if err := json.Unmarshal(respBody, &msg); err != nil || msg.Message == "" {
			msg.Message = "not found"
		}

		return nil, entities.NewNotFoundError(msg.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	result := new(T)
	if err := json.Unmarshal(respBody, result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result, nil
}
