package shop

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"barbershop/database/repository"
	sessionRepo "barbershop/database/repository/session"
	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"go.uber.org/zap"
)

// ShopService manages the product list, per-customer carts and orders.
type ShopService interface {
	ListItems(ctx context.Context) ([]models.ShopItem, error)
	AddItem(ctx context.Context, sess models.Session, name string, price float64) (*models.ShopItem, error)
	RemoveItem(ctx context.Context, sess models.Session, id string) error

	GetCart(ctx context.Context, sess models.Session) (*Cart, error)
	AddToCart(ctx context.Context, sess models.Session, itemID string) (*Cart, error)
	SetQuantity(ctx context.Context, sess models.Session, itemID string, quantity int) (*Cart, error)
	RemoveFromCart(ctx context.Context, sess models.Session, itemID string) (*Cart, error)
	Checkout(ctx context.Context, sess models.Session) (*models.Order, error)

	MyOrders(ctx context.Context, sess models.Session) ([]models.Order, error)
	AllOrders(ctx context.Context, sess models.Session) ([]models.Order, error)
}

// Cart is a customer's pending order.
type Cart struct {
	Lines []models.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

func (c *Cart) recompute() {
	total := 0.0
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	c.Total = roundCents(total)
}

func (c *Cart) find(itemID string) int {
	for i, l := range c.Lines {
		if l.ItemID == itemID {
			return i
		}
	}
	return -1
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type DefaultShopService struct {
	Repo     repository.ShopRepository
	Sessions repository.SessionStore
	Now      func() time.Time
}

func NewShopService(repo repository.ShopRepository, sessions repository.SessionStore) *DefaultShopService {
	return &DefaultShopService{Repo: repo, Sessions: sessions, Now: time.Now}
}

func storeFailure(op string, err error) error {
	if utils.KindOf(err) != "" {
		return err
	}
	return utils.StoreError(op, err)
}

func requireAdmin(sess models.Session) error {
	if !sess.IsAdmin {
		return utils.AuthError("administrator access required")
	}
	return nil
}

func cartKey(sess models.Session) string {
	return sessionRepo.CartPrefix + sess.ActiveUsername
}

func (s *DefaultShopService) ListItems(ctx context.Context) ([]models.ShopItem, error) {
	items, err := s.Repo.GetItems(ctx)
	if err != nil {
		return nil, storeFailure("list shop items", err)
	}
	return items, nil
}

func (s *DefaultShopService) AddItem(ctx context.Context, sess models.Session, name string, price float64) (*models.ShopItem, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, utils.ValidationError("item name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, utils.ValidationError("price must be a number of at least 0")
	}
	item := &models.ShopItem{Name: name, Price: roundCents(price)}
	if _, err := s.Repo.CreateItem(ctx, item); err != nil {
		return nil, storeFailure("add shop item", err)
	}
	utils.GetLogger().Info("shop: item added", zap.String("id", item.ID), zap.String("name", item.Name))
	return item, nil
}

func (s *DefaultShopService) RemoveItem(ctx context.Context, sess models.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return storeFailure("remove shop item", err)
	}
	return nil
}

func (s *DefaultShopService) loadCart(ctx context.Context, sess models.Session) (*Cart, error) {
	cart := &Cart{}
	if _, err := s.Sessions.Load(ctx, cartKey(sess), cart); err != nil {
		return nil, storeFailure("load cart", err)
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	cart.recompute()
	return cart, nil
}

func (s *DefaultShopService) saveCart(ctx context.Context, sess models.Session, cart *Cart) (*Cart, error) {
	cart.recompute()
	if err := s.Sessions.Save(ctx, cartKey(sess), cart); err != nil {
		return nil, storeFailure("save cart", err)
	}
	return cart, nil
}

func (s *DefaultShopService) GetCart(ctx context.Context, sess models.Session) (*Cart, error) {
	return s.loadCart(ctx, sess)
}

// AddToCart adds one unit, snapshotting the item's current name and price.
func (s *DefaultShopService) AddToCart(ctx context.Context, sess models.Session, itemID string) (*Cart, error) {
	item, err := s.Repo.GetItem(ctx, itemID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFoundError("shop item not found")
	}
	if err != nil {
		return nil, storeFailure("load shop item", err)
	}
	cart, err := s.loadCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	if i := cart.find(itemID); i >= 0 {
		cart.Lines[i].Quantity++
	} else {
		cart.Lines = append(cart.Lines, models.CartLine{ItemID: item.ID, Name: item.Name, Price: item.Price, Quantity: 1})
	}
	return s.saveCart(ctx, sess, cart)
}

// SetQuantity removes the line when quantity drops to zero or below.
func (s *DefaultShopService) SetQuantity(ctx context.Context, sess models.Session, itemID string, quantity int) (*Cart, error) {
	cart, err := s.loadCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	i := cart.find(itemID)
	if i < 0 {
		return nil, utils.NotFoundError("item is not in the cart")
	}
	if quantity <= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	} else {
		cart.Lines[i].Quantity = quantity
	}
	return s.saveCart(ctx, sess, cart)
}

func (s *DefaultShopService) RemoveFromCart(ctx context.Context, sess models.Session, itemID string) (*Cart, error) {
	cart, err := s.loadCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	if i := cart.find(itemID); i >= 0 {
		cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
	}
	return s.saveCart(ctx, sess, cart)
}

// Checkout turns the cart into an immutable order and empties the cart.
func (s *DefaultShopService) Checkout(ctx context.Context, sess models.Session) (*models.Order, error) {
	cart, err := s.loadCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return nil, utils.ValidationError("your cart is empty")
	}

	order := &models.Order{
		Username:     sess.ActiveUsername,
		CustomerName: sess.DisplayName(),
		Items:        make([]models.OrderLine, 0, len(cart.Lines)),
		Total:        cart.Total,
		CreatedAt:    s.Now(),
	}
	for _, l := range cart.Lines {
		order.Items = append(order.Items, models.OrderLine{ItemID: l.ItemID, Name: l.Name, Price: l.Price, Quantity: l.Quantity})
	}
	if _, err := s.Repo.CreateOrder(ctx, order); err != nil {
		utils.GetLogger().Error("shop: checkout failed", zap.String("username", sess.ActiveUsername), zap.Error(err))
		return nil, storeFailure("place order", err)
	}
	if err := s.Sessions.Clear(ctx, cartKey(sess)); err != nil {
		utils.GetLogger().Warn("shop: failed to clear cart", zap.String("username", sess.ActiveUsername), zap.Error(err))
	}
	utils.GetLogger().Info("shop: order placed", zap.String("id", order.ID), zap.String("username", order.Username), zap.Float64("total", order.Total))
	return order, nil
}

func (s *DefaultShopService) MyOrders(ctx context.Context, sess models.Session) ([]models.Order, error) {
	orders, err := s.Repo.GetOrdersByUsername(ctx, sess.ActiveUsername)
	if err != nil {
		return nil, storeFailure("list orders", err)
	}
	return orders, nil
}

func (s *DefaultShopService) AllOrders(ctx context.Context, sess models.Session) ([]models.Order, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	orders, err := s.Repo.GetOrders(ctx)
	if err != nil {
		return nil, storeFailure("list orders", err)
	}
	return orders, nil
}
