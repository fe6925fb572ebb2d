package salesstoreclient

import (
	"bytes"
	"context"
	"net/http"

	"github.com/pkg/errors"
	salesstoredomain "github.com/vfg2006/vendorhub-api/infrastructure/integrator/salesstore/domain"
)

func (c *SalesStoreClient) RecordSale(ctx context.Context, accessToken string, sale salesstoredomain.RecordSaleRequest) error {
	payload, err := json.Marshal(sale)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a venda")
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/sales", accessToken, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	return c.do(req, "POST /sales", nil)
}
