package salesstoreclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	salesstoredomain "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/domain"
	"github.com/vfg2006/vendorhub-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSalesSummary(ctx context.Context, accessToken string) (*salesstoredomain.SummaryResponse, error)
	RecordSale(ctx context.Context, accessToken string, req salesstoredomain.RecordSaleRequest) error
	Health(ctx context.Context) error
}

type SalesStoreClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria o cliente do Sales Entry Store
func NewClient(cfg *config.Config) Client {
	return &SalesStoreClient{
		httpClient: &http.Client{
			Timeout: cfg.SalesStore.Timeout(),
		},
		baseURL: cfg.SalesStore.URL,
	}
}

func (c *SalesStoreClient) newRequest(ctx context.Context, method, resource, accessToken string, body io.Reader) (*http.Request, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, resource)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	return req, nil
}

// do executa a requisição e decodifica a resposta em out quando não for nil
func (c *SalesStoreClient) do(req *http.Request, operation string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar a requisição %s", operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStoreError(operation, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta de %s", operation)
	}

	return nil
}

func newStoreError(operation string, resp *http.Response) *salesstoredomain.StoreError {
	storeErr := &salesstoredomain.StoreError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return storeErr
	}

	var errResp salesstoredomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != nil {
		if detail, ok := errResp.Detail.(string); ok {
			storeErr.Detail = detail
			return storeErr
		}
	}

	storeErr.Detail = strings.TrimSpace(string(body))
	return storeErr
}
