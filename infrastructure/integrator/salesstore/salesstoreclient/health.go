package salesstoreclient

import (
	"context"
	"net/http"
)

// Health consulta GET /health; qualquer 2xx conta como online
func (c *SalesStoreClient) Health(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", "", nil)
	if err != nil {
		return err
	}

	return c.do(req, "GET /health", nil)
}
