package sdk

import (
	"context"
	"net/http"
)

const (
	propertiesPath = "properties"
	purchasesPath  = "purchases"
	salesPath      = "sales"
)

// ListProperties returns properties, optionally only the caller's and
// narrowed by opts.Filter.
func (c *Client) ListProperties(ctx context.Context, opts ListOptions) ([]Property, error) {
	var properties []Property
	if err := c.do(ctx, http.MethodGet, listPath(propertiesPath, opts), nil, &properties); err != nil {
		return nil, err
	}
	return Filter(properties, opts.Filter)
}

// GetProperty fetches a single property.
func (c *Client) GetProperty(ctx context.Context, id int) (*Property, error) {
	path, err := resourcePath(propertiesPath, id)
	if err != nil {
		return nil, err
	}
	var property Property
	if err := c.do(ctx, http.MethodGet, path, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty lists a new property. The server assigns the owner.
func (c *Client) CreateProperty(ctx context.Context, property Property) error {
	if property.Status == "" {
		property.Status = StatusAvailable
	}
	return c.do(ctx, http.MethodPost, "/"+propertiesPath, property, nil)
}

// UpdateProperty replaces the editable fields of a property.
func (c *Client) UpdateProperty(ctx context.Context, id int, property Property) error {
	path, err := resourcePath(propertiesPath, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, property, nil)
}

// DeleteProperty removes a property.
func (c *Client) DeleteProperty(ctx context.Context, id int) error {
	path, err := resourcePath(propertiesPath, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ListPurchases returns recorded purchases.
func (c *Client) ListPurchases(ctx context.Context, opts ListOptions) ([]Purchase, error) {
	var purchases []Purchase
	if err := c.do(ctx, http.MethodGet, listPath(purchasesPath, opts), nil, &purchases); err != nil {
		return nil, err
	}
	return Filter(purchases, opts.Filter)
}

// GetPurchase fetches a single purchase.
func (c *Client) GetPurchase(ctx context.Context, id int) (*Purchase, error) {
	path, err := resourcePath(purchasesPath, id)
	if err != nil {
		return nil, err
	}
	var purchase Purchase
	if err := c.do(ctx, http.MethodGet, path, nil, &purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// CreatePurchase records a purchase. Agents and admins only.
func (c *Client) CreatePurchase(ctx context.Context, purchase Purchase) error {
	return c.do(ctx, http.MethodPost, "/"+purchasesPath, purchase, nil)
}

// UpdatePurchase amends a purchase. Agents may only amend their own.
func (c *Client) UpdatePurchase(ctx context.Context, id int, purchase Purchase) error {
	path, err := resourcePath(purchasesPath, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, purchase, nil)
}

// ListSales returns recorded sales.
func (c *Client) ListSales(ctx context.Context, opts ListOptions) ([]Sale, error) {
	var sales []Sale
	if err := c.do(ctx, http.MethodGet, listPath(salesPath, opts), nil, &sales); err != nil {
		return nil, err
	}
	return Filter(sales, opts.Filter)
}

// GetSale fetches a single sale.
func (c *Client) GetSale(ctx context.Context, id int) (*Sale, error) {
	path, err := resourcePath(salesPath, id)
	if err != nil {
		return nil, err
	}
	var sale Sale
	if err := c.do(ctx, http.MethodGet, path, nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// CreateSale records a sale. Agents and admins only.
func (c *Client) CreateSale(ctx context.Context, sale Sale) error {
	return c.do(ctx, http.MethodPost, "/"+salesPath, sale, nil)
}

// UpdateSale amends a sale. Agents may only amend their own.
func (c *Client) UpdateSale(ctx context.Context, id int, sale Sale) error {
	path, err := resourcePath(salesPath, id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, sale, nil)
}
