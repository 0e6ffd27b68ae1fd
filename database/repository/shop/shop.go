package shopRepo

import (
	"context"
	"fmt"
	"sort"

	"barbershop/database/store"
	"barbershop/models"
)

// ShopRepository covers the shopItems and orders collections.
type ShopRepository interface {
	CreateItem(ctx context.Context, item *models.ShopItem) (string, error)
	GetItem(ctx context.Context, id string) (*models.ShopItem, error)
	// GetItems returns items sorted by name.
	GetItems(ctx context.Context) ([]models.ShopItem, error)
	DeleteItem(ctx context.Context, id string) error

	CreateOrder(ctx context.Context, order *models.Order) (string, error)
	// GetOrdersByUsername returns orders oldest first.
	GetOrdersByUsername(ctx context.Context, username string) ([]models.Order, error)
	// GetOrders returns every order oldest first.
	GetOrders(ctx context.Context) ([]models.Order, error)
}

type StoreShopRepo struct {
	store store.Store
}

func NewStoreShopRepo(s store.Store) ShopRepository {
	return &StoreShopRepo{store: s}
}

func (r *StoreShopRepo) CreateItem(ctx context.Context, item *models.ShopItem) (string, error) {
	doc, err := store.Encode(item)
	if err != nil {
		return "", err
	}
	id, err := r.store.Create(ctx, store.ShopItems, doc)
	if err != nil {
		return "", err
	}
	item.ID = id
	return id, nil
}

func (r *StoreShopRepo) GetItem(ctx context.Context, id string) (*models.ShopItem, error) {
	doc, err := r.store.Get(ctx, store.ShopItems, id)
	if err != nil {
		return nil, err
	}
	var item models.ShopItem
	if err := store.Decode(doc, &item); err != nil {
		return nil, fmt.Errorf("failed to decode shop item %s: %w", id, err)
	}
	item.ID = id
	return &item, nil
}

func (r *StoreShopRepo) GetItems(ctx context.Context) ([]models.ShopItem, error) {
	records, err := r.store.List(ctx, store.ShopItems)
	if err != nil {
		return nil, err
	}
	items := make([]models.ShopItem, 0, len(records))
	for _, rec := range records {
		var item models.ShopItem
		if err := store.Decode(rec.Data, &item); err != nil {
			return nil, fmt.Errorf("failed to decode shop item %s: %w", rec.ID, err)
		}
		item.ID = rec.ID
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *StoreShopRepo) DeleteItem(ctx context.Context, id string) error {
	return r.store.Remove(ctx, store.ShopItems, id)
}

func (r *StoreShopRepo) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	doc, err := store.Encode(order)
	if err != nil {
		return "", err
	}
	id, err := r.store.Create(ctx, store.Orders, doc)
	if err != nil {
		return "", err
	}
	order.ID = id
	return id, nil
}

func (r *StoreShopRepo) GetOrders(ctx context.Context) ([]models.Order, error) {
	records, err := r.store.List(ctx, store.Orders)
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		var order models.Order
		if err := store.Decode(rec.Data, &order); err != nil {
			return nil, fmt.Errorf("failed to decode order %s: %w", rec.ID, err)
		}
		order.ID = rec.ID
		orders = append(orders, order)
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (r *StoreShopRepo) GetOrdersByUsername(ctx context.Context, username string) ([]models.Order, error) {
	all, err := r.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Order, 0)
	for _, o := range all {
		if o.Username == username {
			out = append(out, o)
		}
	}
	return out, nil
}
