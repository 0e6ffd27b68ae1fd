package shop

import (
	"context"
	"testing"
	"time"

	sessionRepo "barbershop/database/repository/session"
	shopRepo "barbershop/database/repository/shop"
	"barbershop/database/store"
	"barbershop/models"
	"barbershop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = models.Session{ActiveUsername: "admin", IsAdmin: true}
	jane  = models.Session{ActiveUsername: "jdoe", CurrentUser: &models.UserAccount{Username: "jdoe", FullName: "Jane Doe"}}
)

func newShop(t *testing.T) *DefaultShopService {
	t.Helper()
	s := NewShopService(shopRepo.NewStoreShopRepo(store.NewMemoryStore()), sessionRepo.NewMemorySessionStore(time.Hour))
	tick := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	s.Now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	return s
}

func TestItems_AdminOnly(t *testing.T) {
	ctx := context.Background()
	s := newShop(t)

	_, err := s.AddItem(ctx, jane, "Pomade", 12)
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))

	_, err = s.AddItem(ctx, admin, "  ", 12)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	_, err = s.AddItem(ctx, admin, "Pomade", -1)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	pomade, err := s.AddItem(ctx, admin, "Pomade", 12.5)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, admin, "Comb", 4)
	require.NoError(t, err)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Comb", items[0].Name)

	assert.Equal(t, utils.KindAuth, utils.KindOf(s.RemoveItem(ctx, jane, pomade.ID)))
	require.NoError(t, s.RemoveItem(ctx, admin, pomade.ID))
	require.NoError(t, s.RemoveItem(ctx, admin, pomade.ID))
	items, err = s.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartAndCheckout(t *testing.T) {
	ctx := context.Background()
	s := newShop(t)
	pomade, err := s.AddItem(ctx, admin, "Pomade", 12.5)
	require.NoError(t, err)
	comb, err := s.AddItem(ctx, admin, "Comb", 4)
	require.NoError(t, err)

	_, err = s.Checkout(ctx, jane)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))

	_, err = s.AddToCart(ctx, jane, pomade.ID)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, jane, pomade.ID)
	require.NoError(t, err)
	cart, err := s.AddToCart(ctx, jane, comb.ID)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 29.0, cart.Total)

	cart, err = s.SetQuantity(ctx, jane, comb.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 37.0, cart.Total)

	_, err = s.AddToCart(ctx, jane, "missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	order, err := s.Checkout(ctx, jane)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "jdoe", order.Username)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, 37.0, order.Total)
	require.Len(t, order.Items, 2)
	assert.Equal(t, models.OrderLine{ItemID: pomade.ID, Name: "Pomade", Price: 12.5, Quantity: 2}, order.Items[0])

	cart, err = s.GetCart(ctx, jane)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Total)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	ctx := context.Background()
	s := newShop(t)
	comb, err := s.AddItem(ctx, admin, "Comb", 4)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, jane, comb.ID)
	require.NoError(t, err)

	cart, err := s.SetQuantity(ctx, jane, comb.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	_, err = s.SetQuantity(ctx, jane, comb.ID, 2)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))

	cart, err = s.RemoveFromCart(ctx, jane, comb.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestOrderHistory(t *testing.T) {
	ctx := context.Background()
	s := newShop(t)
	comb, err := s.AddItem(ctx, admin, "Comb", 4)
	require.NoError(t, err)
	bob := models.Session{ActiveUsername: "bob"}

	for _, sess := range []models.Session{jane, bob, jane} {
		_, err := s.AddToCart(ctx, sess, comb.ID)
		require.NoError(t, err)
		_, err = s.Checkout(ctx, sess)
		require.NoError(t, err)
	}

	mine, err := s.MyOrders(ctx, jane)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.True(t, mine[0].CreatedAt.Before(mine[1].CreatedAt))

	_, err = s.AllOrders(ctx, jane)
	assert.Equal(t, utils.KindAuth, utils.KindOf(err))
	all, err := s.AllOrders(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "bob", all[1].Username)
}
