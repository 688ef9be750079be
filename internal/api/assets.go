package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/epeers/portview/internal/models"
)

// ListAssets fetches every asset
func (c *Client) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var assets []models.Asset
	if err := c.getJSON(ctx, "/assets/", nil, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

// CreateAsset creates an asset and returns it as stored by the backend
func (c *Client) CreateAsset(ctx context.Context, req *models.AssetRequest) (*models.Asset, error) {
	var asset models.Asset
	if err := c.sendJSON(ctx, http.MethodPost, "/assets/", nil, req, &asset); err != nil {
		return nil, err
	}
	return &asset, nil
}

// UpdateAsset replaces an asset and returns the stored version
func (c *Client) UpdateAsset(ctx context.Context, id int64, req *models.AssetRequest) (*models.Asset, error) {
	var asset models.Asset
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/assets/%d", id), nil, req, &asset); err != nil {
		return nil, err
	}
	if asset.ID == 0 {
		asset.ID = id
	}
	return &asset, nil
}

// DeleteAsset deletes an asset
func (c *Client) DeleteAsset(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/assets/%d", id), nil, nil, nil)
}

// ListCurrencies fetches every currency
func (c *Client) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.getJSON(ctx, "/currencies/", nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// ListExchangeRates fetches every exchange rate
func (c *Client) ListExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := c.getJSON(ctx, "/exchange-rates/", nil, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}

// ListSettings fetches every setting
func (c *Client) ListSettings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := c.getJSON(ctx, "/settings/", nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// GetSetting fetches a single setting by key
func (c *Client) GetSetting(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := c.getJSON(ctx, "/settings/"+url.PathEscape(key), nil, &setting); err != nil {
		return nil, err
	}
	return &setting, nil
}

// SaveSetting creates or overwrites a setting
func (c *Client) SaveSetting(ctx context.Context, req *models.SaveSettingRequest) (*models.Setting, error) {
	var setting models.Setting
	if err := c.sendJSON(ctx, http.MethodPost, "/settings/", nil, req, &setting); err != nil {
		return nil, err
	}
	if setting.Key == "" {
		setting = models.Setting{Key: req.Key, Value: req.Value, Description: req.Description}
	}
	return &setting, nil
}
