package salesstoreclient

import (
	"context"
	"net/http"

	salesstoredomain "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/domain"
)

func (c *SalesStoreClient) GetSalesSummary(ctx context.Context, accessToken string) (*salesstoredomain.SummaryResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/sales/summary", accessToken, nil)
	if err != nil {
		return nil, err
	}

	var response salesstoredomain.SummaryResponse
	if err := c.do(req, "GET /sales/summary", &response); err != nil {
		return nil, err
	}

	return &response, nil
}
