package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jupabego97/reportes-react-sub000/cache"
	"github.com/jupabego97/reportes-react-sub000/models"
)

// FilterStore holds each user's active filter set as one JSON blob.
// Writes are last-write-wins and never validated beyond types; setting
// a field to nil clears that dimension.
type FilterStore struct {
	store cache.Store
}

func NewFilterStore(store cache.Store) *FilterStore {
	return &FilterStore{store: store}
}

var filterStore *FilterStore

func InitFilterStore(store cache.Store) {
	filterStore = NewFilterStore(store)
}

func GetFilterStore() *FilterStore {
	if filterStore == nil {
		filterStore = NewFilterStore(cache.NewMemoryStore())
	}
	return filterStore
}

func (fs *FilterStore) key(userID string) string {
	return "filters:active:" + userID
}

// Get returns the user's current filter set, or the defaults when
// nothing was ever saved.
func (fs *FilterStore) Get(ctx context.Context, userID string) (models.FilterSet, error) {
	raw, ok, err := fs.store.Get(ctx, fs.key(userID))
	if err != nil {
		return models.FilterSet{}, fmt.Errorf("load filters: %w", err)
	}
	if !ok {
		return models.DefaultFilterSet(), nil
	}

	var set models.FilterSet
	if err := json.Unmarshal(raw, &set); err != nil {
		// corrupt blob, fall back to defaults rather than failing the dashboard
		return models.DefaultFilterSet(), nil
	}
	return set, nil
}

// Set replaces the whole filter set.
func (fs *FilterStore) Set(ctx context.Context, userID string, set models.FilterSet) error {
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	return fs.store.Set(ctx, fs.key(userID), raw, 0)
}

// Update applies a mutation to the stored set and saves the result.
// All the per-field setters go through here.
func (fs *FilterStore) Update(ctx context.Context, userID string, mutate func(*models.FilterSet)) (models.FilterSet, error) {
	set, err := fs.Get(ctx, userID)
	if err != nil {
		return models.FilterSet{}, err
	}
	mutate(&set)
	if err := fs.Set(ctx, userID, set); err != nil {
		return models.FilterSet{}, err
	}
	return set, nil
}

func (fs *FilterStore) SetDateRange(ctx context.Context, userID string, inicio, fin *string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) {
		f.FechaInicio = inicio
		f.FechaFin = fin
	})
}

func (fs *FilterStore) SetProductos(ctx context.Context, userID string, productos []string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) { f.Productos = productos })
}

func (fs *FilterStore) SetVendedores(ctx context.Context, userID string, vendedores []string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) { f.Vendedores = vendedores })
}

func (fs *FilterStore) SetFamilias(ctx context.Context, userID string, familias []string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) { f.Familias = familias })
}

func (fs *FilterStore) SetMetodos(ctx context.Context, userID string, metodos []string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) { f.Metodos = metodos })
}

func (fs *FilterStore) SetProveedores(ctx context.Context, userID string, proveedores []string) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) { f.Proveedores = proveedores })
}

func (fs *FilterStore) SetPriceRange(ctx context.Context, userID string, min, max *float64) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) {
		f.PrecioMin = min
		f.PrecioMax = max
	})
}

func (fs *FilterStore) SetQuantityRange(ctx context.Context, userID string, min, max *int) (models.FilterSet, error) {
	return fs.Update(ctx, userID, func(f *models.FilterSet) {
		f.CantidadMin = min
		f.CantidadMax = max
	})
}

// Reset restores the documented defaults: every dimension cleared.
func (fs *FilterStore) Reset(ctx context.Context, userID string) (models.FilterSet, error) {
	set := models.DefaultFilterSet()
	if err := fs.Set(ctx, userID, set); err != nil {
		return models.FilterSet{}, err
	}
	return set, nil
}
