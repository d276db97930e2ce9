package api

import (
	"context"
	"fmt"
	"net/http"
)

const (
	RestaurantActive = "ACTIVE"
	RestaurantClosed = "CLOSED"
)

type Restaurant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Cuisine  string `json:"cuisine"`
	Status   string `json:"status"`
}

type RestaurantPatch struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Cuisine  *string `json:"cuisine,omitempty"`
	Status   *string `json:"status,omitempty"`
}

func (c *Client) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	var out []Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurant/restaurants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, r Restaurant) (*Restaurant, error) {
	if r.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if r.Status == "" {
		r.Status = RestaurantActive
	}
	var out Restaurant
	if err := c.do(ctx, http.MethodPost, "/restaurant/restaurants", r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id int64, patch RestaurantPatch) (*Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/restaurant/restaurants/%d", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/restaurant/restaurants/%d", id), nil, nil)
}
