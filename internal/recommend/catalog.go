package recommend

import (
	"context"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/errors"
)

// CatalogAll fetches the full backend catalog as canonical items.
func (c *Client) CatalogAll(ctx context.Context) ([]domain.ContentItem, error) {
	return c.catalog(ctx, "/catalog/all")
}

// CatalogByType fetches the backend catalog for one content type.
func (c *Client) CatalogByType(ctx context.Context, ctype domain.ContentType) ([]domain.ContentItem, error) {
	if !ctype.Valid() {
		return nil, errors.Validationf("unknown content type %q", ctype)
	}
	return c.catalog(ctx, "/catalog/"+string(ctype))
}

func (c *Client) catalog(ctx context.Context, path string) ([]domain.ContentItem, error) {
	var raw []RawItem
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetchFailed, "fetch catalog")
	}

	items := make([]domain.ContentItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, c.NormalizeItem(r))
	}
	return items, nil
}
