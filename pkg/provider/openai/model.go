package openai

import (
	"context"

	// Packages
	agent "github.com/mutablelogic/go-agent"
	schema "github.com/mutablelogic/go-agent/pkg/schema"
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns all available models
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	var response listModelsResponse
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("models")); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, agent.ErrProvider.Withf("%v", err)
	}

	result := make([]schema.Model, 0, len(response.Data))
	for _, m := range response.Data {
		result = append(result, m.toSchema())
	}
	return result, nil
}

// GetModel returns a specific model by name. There is no single-model
// endpoint on all compatible servers, so list and find.
func (c *Client) GetModel(ctx context.Context, name string) (*schema.Model, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range models {
		if m.Name == name {
			return &m, nil
		}
	}
	return nil, agent.ErrNotFound.Withf("model not found: %q", name)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts an API model to a schema.Model
func (m model) toSchema() schema.Model {
	return schema.Model{
		Name:    m.Id,
		OwnedBy: m.OwnedBy,
	}
}
