package services

import (
	"context"
	"testing"
	"time"

	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeOrderRepo struct {
	orders      map[primitive.ObjectID]*models.Order
	updateCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*models.Order)}
}

func (f *fakeOrderRepo) List(ctx context.Context, guestOnly bool, limit int64) ([]models.Order, error) {
	var out []models.Order
	for _, o := range f.orders {
		if guestOnly && !o.Guest {
			continue
		}
		out = append(out, *o)
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Order, error) {
	f.updateCalls++
	order, ok := f.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	order.Status = status
	order.UpdatedAt = time.Now().UTC()
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	delete(f.orders, id)
	return order, nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) SumTotals(ctx context.Context) (float64, error) {
	var total float64
	for _, o := range f.orders {
		total += o.Total
	}
	return total, nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := fields["firstName"].(string); ok {
		user.FirstName = v
	}
	if v, ok := fields["email"].(string); ok {
		user.Email = v
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	delete(f.users, id)
	return user, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type decrementCall struct {
	productID primitive.ObjectID
	amount    int
}

// fakeInventory mirrors $inc semantics: known products get arithmetic with
// no floor, unknown ids are silent no-ops.
type fakeInventory struct {
	stocks map[primitive.ObjectID]int
	calls  []decrementCall
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{stocks: make(map[primitive.ObjectID]int)}
}

func (f *fakeInventory) DecrementStock(ctx context.Context, productID primitive.ObjectID, amount int) error {
	f.calls = append(f.calls, decrementCall{productID: productID, amount: amount})
	if _, ok := f.stocks[productID]; ok {
		f.stocks[productID] -= amount
	}
	return nil
}

func seedOrder(repo *fakeOrderRepo, productID primitive.ObjectID, quantity int) *models.Order {
	order := &models.Order{
		ID:          primitive.NewObjectID(),
		OrderNumber: models.GenerateOrderNumber(time.Now()),
		Status:      models.StatusPending,
		Items: []models.OrderItem{
			{ProductID: productID, Name: "Caftan", Price: 500, Quantity: quantity},
		},
		Total: 500 * float64(quantity),
	}
	repo.orders[order.ID] = order
	return order
}

func TestUpdateStatusPersistsValidStatuses(t *testing.T) {
	for _, status := range []string{
		models.StatusPending, models.StatusProcessing, models.StatusCompleted, models.StatusCancelled,
	} {
		repo := newFakeOrderRepo()
		inventory := newFakeInventory()
		svc := NewOrderService(repo, newFakeUserRepo(), inventory)

		order := seedOrder(repo, primitive.NewObjectID(), 1)

		updated, err := svc.UpdateStatus(context.Background(), order.ID, status)
		require.NoError(t, err, "status %q", status)
		assert.Equal(t, status, updated.Status)
		assert.Equal(t, status, repo.orders[order.ID].Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	inventory := newFakeInventory()
	svc := NewOrderService(repo, newFakeUserRepo(), inventory)

	order := seedOrder(repo, primitive.NewObjectID(), 1)

	_, err := svc.UpdateStatus(context.Background(), order.ID, "shipped")
	assert.ErrorIs(t, err, httperr.ErrInvalidStatus)
	assert.Equal(t, models.StatusPending, repo.orders[order.ID].Status, "order must be left unmodified")
	assert.Zero(t, repo.updateCalls, "no write should reach the repository")
	assert.Empty(t, inventory.calls)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	inventory := newFakeInventory()
	svc := NewOrderService(repo, newFakeUserRepo(), inventory)

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), models.StatusCompleted)
	assert.ErrorIs(t, err, httperr.ErrNotFound)
	assert.Empty(t, inventory.calls, "no inventory mutation on missing order")
}

func TestUpdateStatusDecrementsFirstItemByOne(t *testing.T) {
	repo := newFakeOrderRepo()
	inventory := newFakeInventory()
	svc := NewOrderService(repo, newFakeUserRepo(), inventory)

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	inventory.stocks[first] = 10
	inventory.stocks[second] = 10

	order := &models.Order{
		ID:     primitive.NewObjectID(),
		Status: models.StatusPending,
		Items: []models.OrderItem{
			{ProductID: first, Quantity: 3},
			{ProductID: second, Quantity: 2},
		},
	}
	repo.orders[order.ID] = order

	// The decrement fires on every successful status write, targets only the
	// first item, and ignores its quantity.
	for _, status := range []string{models.StatusCompleted, models.StatusCancelled, models.StatusPending} {
		_, err := svc.UpdateStatus(context.Background(), order.ID, status)
		require.NoError(t, err)
	}

	require.Len(t, inventory.calls, 3)
	for _, call := range inventory.calls {
		assert.Equal(t, first, call.productID)
		assert.Equal(t, 1, call.amount)
	}
	assert.Equal(t, 7, inventory.stocks[first])
	assert.Equal(t, 10, inventory.stocks[second], "second item must never be touched")
}

func TestUpdateStatusDrivesStockNegative(t *testing.T) {
	repo := newFakeOrderRepo()
	inventory := newFakeInventory()
	svc := NewOrderService(repo, newFakeUserRepo(), inventory)

	caftan := primitive.NewObjectID()
	inventory.stocks[caftan] = 2

	orderA := seedOrder(repo, caftan, 1)
	orderB := seedOrder(repo, caftan, 1)
	orderC := seedOrder(repo, caftan, 1)

	_, err := svc.UpdateStatus(context.Background(), orderA.ID, models.StatusCompleted)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), orderB.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 0, inventory.stocks[caftan])

	_, err = svc.UpdateStatus(context.Background(), orderC.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, -1, inventory.stocks[caftan], "no floor clamp")
}

func TestDeleteOrderIsSilentlyIdempotent(t *testing.T) {
	repo := newFakeOrderRepo()
	inventory := newFakeInventory()
	svc := NewOrderService(repo, newFakeUserRepo(), inventory)

	order := seedOrder(repo, primitive.NewObjectID(), 2)

	deleted, err := svc.Delete(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, deleted.ID)
	assert.Empty(t, inventory.calls, "delete never reverses inventory")

	again, err := svc.Delete(context.Background(), order.ID)
	require.NoError(t, err, "deleting a missing order succeeds silently")
	assert.Nil(t, again)
}

func TestCreateOrderEnforcesGuestInvariant(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, newFakeUserRepo(), newFakeInventory())

	items := []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}}

	// Guest order without guest info.
	_, err := svc.Create(context.Background(), CreateOrderInput{Guest: true, Items: items})
	assert.ErrorIs(t, err, httperr.ErrInvalidInput)

	// Registered order without a user id.
	_, err = svc.Create(context.Background(), CreateOrderInput{Guest: false, Items: items})
	assert.ErrorIs(t, err, httperr.ErrInvalidInput)

	// Registered order carrying guest info.
	_, err = svc.Create(context.Background(), CreateOrderInput{
		Guest:     false,
		UserID:    primitive.NewObjectID().Hex(),
		GuestInfo: &models.GuestInfo{Name: "A"},
		Items:     items,
	})
	assert.ErrorIs(t, err, httperr.ErrInvalidInput)

	// Valid guest order.
	order, err := svc.Create(context.Background(), CreateOrderInput{
		Guest:     true,
		GuestInfo: &models.GuestInfo{Name: "Amina", Email: "amina@example.com"},
		Items:     items,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.UserID.IsZero())
	assert.NotNil(t, order.GuestInfo)
	assert.Regexp(t, `^ORD-\d+-\d+$`, order.OrderNumber)

	// Valid registered order.
	order, err = svc.Create(context.Background(), CreateOrderInput{
		Guest:  false,
		UserID: primitive.NewObjectID().Hex(),
		Items:  items,
	})
	require.NoError(t, err)
	assert.False(t, order.UserID.IsZero())
	assert.Nil(t, order.GuestInfo)
}

func TestListEnrichesOrdersWithUserDetails(t *testing.T) {
	repo := newFakeOrderRepo()
	users := newFakeUserRepo()
	svc := NewOrderService(repo, users, newFakeInventory())

	userID := primitive.NewObjectID()
	users.users[userID] = &models.User{
		ID:        userID,
		FirstName: "Amina",
		LastName:  "Benali",
		Email:     "amina@example.com",
		Phone:     "0600000000",
		Address:   "12 rue des Consuls",
	}

	order := &models.Order{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Status: models.StatusPending,
		Items:  []models.OrderItem{{ProductID: primitive.NewObjectID(), Quantity: 1}},
	}
	repo.orders[order.ID] = order

	listed, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Amina", listed[0].User.FirstName)
	assert.Equal(t, "amina@example.com", listed[0].User.Email)
}

func TestListGuestUsesEmbeddedContact(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, newFakeUserRepo(), newFakeInventory())

	guest := &models.Order{
		ID:    primitive.NewObjectID(),
		Guest: true,
		GuestInfo: &models.GuestInfo{
			Name: "Sofia", Email: "sofia@example.com", Phone: "0611111111", Address: "Marrakech",
		},
		Status: models.StatusPending,
	}
	registered := &models.Order{
		ID:     primitive.NewObjectID(),
		UserID: primitive.NewObjectID(),
		Status: models.StatusPending,
	}
	repo.orders[guest.ID] = guest
	repo.orders[registered.ID] = registered

	listed, err := svc.ListGuest(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, listed, 1, "only guest orders are listed")
	assert.Equal(t, "Sofia", listed[0].User.Name)
	assert.Equal(t, "sofia@example.com", listed[0].User.Email)
}
