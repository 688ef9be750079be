package store

import (
	"context"

	"github.com/epeers/portview/internal/models"
)

// FetchAssets refreshes the asset list. Failures are recorded and the previous list is kept.
func (s *Store) FetchAssets(ctx context.Context) {
	_ = s.fetchAssets(ctx)
}

func (s *Store) fetchAssets(ctx context.Context) error {
	run := s.begin(OpFetchAssets)
	defer run.end()

	assets, err := s.client.ListAssets(ctx)
	if err != nil {
		run.fail(err)
		return err
	}

	s.SetAssets(assets)
	run.succeed()
	return nil
}

// CreateAsset creates an asset and appends it to the local list
func (s *Store) CreateAsset(ctx context.Context, req *models.AssetRequest) (*models.Asset, error) {
	run := s.begin(OpCreateAsset)
	defer run.end()

	asset, err := s.client.CreateAsset(ctx, req)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.AddAsset(*asset)
	run.succeed()
	return asset, nil
}

// UpdateAsset updates an asset and mirrors the result into the local list.
// A successful update of an asset absent from the local list changes nothing locally.
func (s *Store) UpdateAsset(ctx context.Context, id int64, req *models.AssetRequest) (*models.Asset, error) {
	run := s.begin(OpUpdateAsset)
	defer run.end()

	asset, err := s.client.UpdateAsset(ctx, id, req)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.ReplaceAsset(*asset)
	run.succeed()
	return asset, nil
}

// DeleteAsset deletes an asset and drops it from the local list (no-op locally if absent)
func (s *Store) DeleteAsset(ctx context.Context, id int64) error {
	run := s.begin(OpDeleteAsset)
	defer run.end()

	if err := s.client.DeleteAsset(ctx, id); err != nil {
		run.fail(err)
		return err
	}

	s.RemoveAsset(id)
	run.succeed()
	return nil
}

// FetchCurrencies refreshes the currency list and the primary currency.
// Failures are recorded and the previous list is kept.
func (s *Store) FetchCurrencies(ctx context.Context) {
	_ = s.fetchCurrencies(ctx)
}

func (s *Store) fetchCurrencies(ctx context.Context) error {
	run := s.begin(OpFetchCurrencies)
	defer run.end()

	currencies, err := s.client.ListCurrencies(ctx)
	if err != nil {
		run.fail(err)
		return err
	}

	s.SetCurrencies(currencies)
	run.succeed()
	return nil
}

// FetchExchangeRates refreshes the exchange rate list. Failures are recorded and the previous list is kept.
func (s *Store) FetchExchangeRates(ctx context.Context) {
	_ = s.fetchExchangeRates(ctx)
}

func (s *Store) fetchExchangeRates(ctx context.Context) error {
	run := s.begin(OpFetchExchangeRates)
	defer run.end()

	rates, err := s.client.ListExchangeRates(ctx)
	if err != nil {
		run.fail(err)
		return err
	}

	s.SetExchangeRates(rates)
	run.succeed()
	return nil
}
