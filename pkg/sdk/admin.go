package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every account. Admin only.
func (c *Client) ListUsers(ctx context.Context, opts ListOptions) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return Filter(users, opts.Filter)
}

// SetUserRole changes the role of an account. Admin only.
func (c *Client) SetUserRole(ctx context.Context, userID int, role Role) error {
	if role < RoleAdmin || role > RoleUser {
		return fmt.Errorf("cannot assign %s", role)
	}
	path, err := resourcePath("admin/users", userID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path+"/role", User{RoleID: role}, nil)
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	path, err := resourcePath("admin/users", userID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// DeletePurchase removes a purchase record. Admin only.
func (c *Client) DeletePurchase(ctx context.Context, id int) error {
	path, err := resourcePath("admin/purchases", id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// DeleteSale removes a sale record. Admin only.
func (c *Client) DeleteSale(ctx context.Context, id int) error {
	path, err := resourcePath("admin/sales", id)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
