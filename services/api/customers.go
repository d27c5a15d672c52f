package api

import (
	"context"
	"fmt"
	"net/http"

	"goldenbay/models"
)

// ListCustomers returns the phone book, ordered by name upstream.
func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.doJSON(ctx, http.MethodGet, "/api/reservations/customers/", nil, nil, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// CreateCustomer adds a phone-book contact. Phone is the unique key; a
// duplicate surfaces as an upstream validation error.
func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	var created models.Customer
	if err := c.doJSON(ctx, http.MethodPost, "/api/reservations/customers/", nil, customer, &created); err != nil {
		return models.Customer{}, err
	}
	return created, nil
}

// UpdateCustomer patches an existing contact.
func (c *Client) UpdateCustomer(ctx context.Context, id int, customer models.Customer) (models.Customer, error) {
	var updated models.Customer
	path := fmt.Sprintf("/api/reservations/customers/%d/", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, customer, &updated); err != nil {
		return models.Customer{}, err
	}
	return updated, nil
}

// DeleteCustomer removes a contact. Upstream restricts this to Admins.
func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	path := fmt.Sprintf("/api/reservations/customers/%d/", id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
