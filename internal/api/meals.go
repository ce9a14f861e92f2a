package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hammamikhairi/nextday/internal/domain"
)

// GetMeal fetches a meal record by id. Unknown ids return an error wrapping
// domain.ErrNotFound.
func (c *Client) GetMeal(ctx context.Context, id string) (*domain.MealRecord, error) {
	if id == "" {
		return nil, fmt.Errorf("api: empty meal id: %w", domain.ErrNotFound)
	}

	var fields map[string]any
	if err := c.do(ctx, http.MethodGet, "/meals/getMeal/"+url.PathEscape(id), nil, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("api: meal %s: %w", id, domain.ErrNotFound)
	}

	return &domain.MealRecord{ID: id, Fields: fields}, nil
}
