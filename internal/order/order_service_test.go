package order

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	kafka "github.com/hoanvukhai/cafe-shop-management/internal/messaging/kafka"
	ordererrors "github.com/hoanvukhai/cafe-shop-management/internal/order/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders map[string]*Order // key: public id
	byTable map[string]*Order

	createFn     func(ctx context.Context, o *Order) error
	updateFn     func(ctx context.Context, o *Order) error
	createItemFn func(ctx context.Context, it *OrderItem) error
	updateItemFn func(ctx context.Context, it *OrderItem) error
	deleteItemFn func(ctx context.Context, id string) error
	swapFn       func(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error
	listFn       func(ctx context.Context, status string, from, to *time.Time, offset, limit int) ([]Order, int64, error)
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  make(map[string]*Order),
		byTable: make(map[string]*Order),
	}
}

func (f *fakeOrderRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeOrderRepo) Create(ctx context.Context, o *Order) error {
	if f.createFn != nil {
		if err := f.createFn(ctx, o); err != nil {
			return err
		}
	}
	f.orders[o.PublicID] = o
	if o.Status == StatusPending {
		f.byTable[o.TableNumber] = o
	}
	return nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *Order) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, o)
	}
	return nil
}

func (f *fakeOrderRepo) FindByPublicID(ctx context.Context, publicID string) (*Order, error) {
	o, ok := f.orders[publicID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindActiveByTable(ctx context.Context, tableNumber string) (*Order, error) {
	o, ok := f.byTable[tableNumber]
	if !ok || o.Status != StatusPending {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) FindActive(ctx context.Context) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if o.Status == StatusPending {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status string, from, to *time.Time, offset, limit int) ([]Order, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, status, from, to, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakeOrderRepo) CreateItem(ctx context.Context, it *OrderItem) error {
	if f.createItemFn != nil {
		return f.createItemFn(ctx, it)
	}
	return nil
}

func (f *fakeOrderRepo) UpdateItem(ctx context.Context, it *OrderItem) error {
	if f.updateItemFn != nil {
		return f.updateItemFn(ctx, it)
	}
	return nil
}

func (f *fakeOrderRepo) DeleteItem(ctx context.Context, id string) error {
	if f.deleteItemFn != nil {
		return f.deleteItemFn(ctx, id)
	}
	return nil
}

func (f *fakeOrderRepo) FindItemByPublicID(ctx context.Context, orderID, itemPublicID string) (*OrderItem, error) {
	for _, o := range f.orders {
		if o.ID != orderID {
			continue
		}
		for i := range o.Items {
			if o.Items[i].PublicID == itemPublicID {
				return &o.Items[i], nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) ListPendingItems(ctx context.Context) ([]QueueEntry, error) {
	return nil, nil
}

func (f *fakeOrderRepo) SwapTables(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error {
	if f.swapFn != nil {
		return f.swapFn(ctx, orderID, toTable, otherOrderID, fromTable)
	}
	return nil
}

func (f *fakeOrderRepo) DeleteByDateRange(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

type fakeCounterRepo struct {
	next    int64
	resetFn func(ctx context.Context, orderDate string) error
}

func (f *fakeCounterRepo) WithTx(tx *sql.Tx) counter.Repository { return f }
func (f *fakeCounterRepo) NextValue(ctx context.Context, orderDate string) (int64, error) {
	f.next++
	return f.next, nil
}
func (f *fakeCounterRepo) Reset(ctx context.Context, orderDate string) error {
	if f.resetFn != nil {
		return f.resetFn(ctx, orderDate)
	}
	return nil
}

type fakeMenuRepoForOrder struct {
	items map[string]*menu.MenuItem
}

func (f *fakeMenuRepoForOrder) WithTx(tx *sql.Tx) menu.Repository { return f }
func (f *fakeMenuRepoForOrder) Create(ctx context.Context, m *menu.MenuItem) error {
	return nil
}
func (f *fakeMenuRepoForOrder) FindAll(ctx context.Context) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForOrder) FindAvailable(ctx context.Context) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForOrder) FindByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}
func (f *fakeMenuRepoForOrder) Update(ctx context.Context, m *menu.MenuItem) error { return nil }
func (f *fakeMenuRepoForOrder) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeMenuRepoForOrder) NextNumberForCategory(ctx context.Context, category string) (int64, error) {
	return 0, nil
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error                 { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error { return nil }

func defaultMenu() *fakeMenuRepoForOrder {
	return &fakeMenuRepoForOrder{items: map[string]*menu.MenuItem{
		"coffee_001": {ID: "coffee_001", Category: "coffee", Name: "Cà phê đen", Price: 20000, Available: true},
		"coffee_002": {ID: "coffee_002", Category: "coffee", Name: "Cà phê sữa", Price: 25000, Available: true},
		"snacks_001": {ID: "snacks_001", Category: "snacks", Name: "Hướng dương", Price: 10000, Available: false},
	}}
}

func newTestService(t *testing.T, repo *fakeOrderRepo, menuRepo menu.Repository, outbox *fakeOutboxRepo) (Service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	svc := NewService(db, repo, &fakeCounterRepo{}, menuRepo, outbox, nil)
	return svc, mock, func() { db.Close() }
}

func TestCreateOrder_SequenceFormatAndMerge(t *testing.T) {
	repo := newFakeOrderRepo()
	outbox := &fakeOutboxRepo{}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.CreateOrder(context.Background(), "Bảo", CreateOrderRequest{
		TableNumber: "Bàn 01",
		Items: []OrderItemInput{
			{DishID: "coffee_001", Quantity: 1},
			{DishID: "coffee_001", Quantity: 2},
			{DishID: "coffee_002", Quantity: 1, Note: "ít đường"},
		},
	})

	assert.NoError(t, err)
	wantSeq := counter.FormatSequence(time.Now().Format("20060102"), 1)
	assert.Equal(t, wantSeq, resp.SequenceNumber)
	// Hai dòng coffee_001 không ghi chú phải gộp làm một
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, int64(20000*3+25000), resp.Total)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "order_created", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_TableOccupied(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.byTable["Bàn 01"] = &Order{PublicID: "order_aaaa1111", Status: StatusPending}
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.CreateOrder(context.Background(), "Bảo", CreateOrderRequest{
		TableNumber: "Bàn 01",
		Items:       []OrderItemInput{{DishID: "coffee_001", Quantity: 1}},
	})

	assert.ErrorIs(t, err, ordererrors.ErrTableOccupied)
}

func TestCreateOrder_UnavailableDish(t *testing.T) {
	svc, _, cleanup := newTestService(t, newFakeOrderRepo(), defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.CreateOrder(context.Background(), "Bảo", CreateOrderRequest{
		TableNumber: "Bàn 02",
		Items:       []OrderItemInput{{DishID: "snacks_001", Quantity: 1}},
	})

	assert.Error(t, err)
}

func seedPendingOrder(repo *fakeOrderRepo, itemStatuses ...string) *Order {
	o := &Order{
		ID:             "11111111-1111-1111-1111-111111111111",
		PublicID:       "order_ab12cd34",
		SequenceNumber: "HD20250101-0001",
		TableNumber:    "Bàn 03",
		Status:         StatusPending,
	}
	for i, st := range itemStatuses {
		o.Items = append(o.Items, OrderItem{
			ID:       o.ID[:len(o.ID)-1] + string(rune('a'+i)),
			PublicID: "item_000000a" + string(rune('a'+i)),
			OrderID:  o.ID,
			DishID:   "coffee_001",
			DishName: "Cà phê đen",
			Price:    20000,
			Quantity: 1,
			Status:   st,
		})
	}
	repo.orders[o.PublicID] = o
	repo.byTable[o.TableNumber] = o
	return o
}

func TestPay_BlockedWhilePendingItems(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending, ItemStatusServed)
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.Pay(context.Background(), "order_ab12cd34")

	assert.ErrorIs(t, err, ordererrors.ErrUnpreparedItems)
}

func TestPay_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusServed, ItemStatusServed)
	outbox := &fakeOutboxRepo{}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Pay(context.Background(), "order_ab12cd34")

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.NotNil(t, resp.PaidAt)
	assert.NotNil(t, resp.CompletedAt)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "order_completed", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPay_AlreadyPaid(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedPendingOrder(repo, ItemStatusServed)
	now := time.Now()
	o.Status = StatusCompleted
	o.PaidAt = &now
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.Pay(context.Background(), "order_ab12cd34")

	assert.ErrorIs(t, err, ordererrors.ErrOrderAlreadyPaid)
}

func TestRemoveItem_LastItemCancelsOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending)
	outbox := &fakeOutboxRepo{}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), outbox)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.RemoveItem(context.Background(), "order_ab12cd34", "item_000000aa")

	assert.NoError(t, err)
	assert.Equal(t, StatusCanceled, resp.Status)
	assert.NotNil(t, resp.CanceledAt)
	assert.Len(t, outbox.events, 1)
	assert.Equal(t, "order_canceled", outbox.events[0].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateItemStatus_RejectsSkippingPrepared(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending)
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.UpdateItemStatus(context.Background(), "order_ab12cd34", "item_000000aa", ItemStatusServed)

	assert.ErrorIs(t, err, ordererrors.ErrInvalidItemTransition)
}

func TestUpdateItemStatus_ServedStampsTime(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPrepared)
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.UpdateItemStatus(context.Background(), "order_ab12cd34", "item_000000aa", ItemStatusServed)

	assert.NoError(t, err)
	assert.Equal(t, ItemStatusServed, resp.Items[0].Status)
	assert.NotNil(t, resp.Items[0].ServedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapTable_SameTableRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedPendingOrder(repo, ItemStatusPending)
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	_, err := svc.SwapTable(context.Background(), "order_ab12cd34", o.TableNumber)

	assert.ErrorIs(t, err, ordererrors.ErrTargetTableOccupied)
}

func TestSwapTable_Success(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedPendingOrder(repo, ItemStatusPending)
	swapped := false
	repo.swapFn = func(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error {
		assert.Equal(t, o.ID, orderID)
		assert.Equal(t, "Bàn 07", toTable)
		assert.Empty(t, otherOrderID)
		swapped = true
		return nil
	}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.SwapTable(context.Background(), "order_ab12cd34", "Bàn 07")

	assert.NoError(t, err)
	assert.True(t, swapped)
	assert.Equal(t, "Bàn 07", resp.TableNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSwapTable_OccupiedTargetSwapsBoth(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedPendingOrder(repo, ItemStatusPending)
	other := &Order{
		ID:          "33333333-3333-3333-3333-333333333333",
		PublicID:    "order_ffff0000",
		TableNumber: "Bàn 05",
		Status:      StatusPending,
	}
	repo.orders[other.PublicID] = other
	repo.byTable[other.TableNumber] = other
	repo.swapFn = func(ctx context.Context, orderID, toTable, otherOrderID, fromTable string) error {
		assert.Equal(t, o.ID, orderID)
		assert.Equal(t, "Bàn 05", toTable)
		assert.Equal(t, other.ID, otherOrderID)
		assert.Equal(t, "Bàn 03", fromTable)
		return nil
	}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.SwapTable(context.Background(), "order_ab12cd34", "Bàn 05")

	assert.NoError(t, err)
	assert.Equal(t, "Bàn 05", resp.TableNumber)
	// Order bên bàn đích nhận lại bàn cũ
	assert.Equal(t, "Bàn 03", other.TableNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItems_MergesIntoPendingLine(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending)
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.AddItems(context.Background(), "order_ab12cd34", AddItemsRequest{
		Items: []OrderItemInput{{DishID: "coffee_001", Quantity: 2}},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ReplacesLinesKeepsPreparedStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedPendingOrder(repo, ItemStatusPrepared)
	var deleted []string
	repo.deleteItemFn = func(ctx context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Save(context.Background(), "order_ab12cd34", SaveOrderRequest{
		Note: "khách chuyển ra ngoài hiên",
		Items: []OrderItemInput{
			{DishID: "coffee_001", Quantity: 2},
			{DishID: "coffee_002", Quantity: 1},
		},
	})

	assert.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Len(t, resp.Items, 2)
	// Dòng cũ trùng dish giữ trạng thái prepared, chỉ đổi số lượng
	assert.Equal(t, ItemStatusPrepared, resp.Items[0].Status)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, ItemStatusPending, resp.Items[1].Status)
	assert.Equal(t, "khách chuyển ra ngoài hiên", resp.Note)
	assert.Equal(t, o.PublicID, resp.OrderID)
}

func TestSave_DropsLinesMissingFromRequest(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending, ItemStatusPending)
	var deleted []string
	repo.deleteItemFn = func(ctx context.Context, id string) error {
		deleted = append(deleted, id)
		return nil
	}
	svc, mock, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Save(context.Background(), "order_ab12cd34", SaveOrderRequest{
		Items: []OrderItemInput{{DishID: "coffee_002", Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "coffee_002", resp.Items[0].DishID)
	assert.Len(t, deleted, 2)
}

func TestGetQueue_PartitionsOpenOrders(t *testing.T) {
	repo := newFakeOrderRepo()
	seedPendingOrder(repo, ItemStatusPending)
	ready := &Order{
		ID:          "22222222-2222-2222-2222-222222222222",
		PublicID:    "order_ef56ab78",
		TableNumber: "Bàn 05",
		Status:      StatusPending,
		Items:       []OrderItem{{PublicID: "item_000000ba", DishID: "coffee_002", Status: ItemStatusServed}},
	}
	repo.orders[ready.PublicID] = ready
	repo.byTable[ready.TableNumber] = ready
	svc, _, cleanup := newTestService(t, repo, defaultMenu(), &fakeOutboxRepo{})
	defer cleanup()

	resp, err := svc.GetQueue(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.WaitingOrders, 1)
	assert.Equal(t, "order_ab12cd34", resp.WaitingOrders[0].OrderID)
	assert.Len(t, resp.ReadyOrders, 1)
	assert.Equal(t, "order_ef56ab78", resp.ReadyOrders[0].OrderID)
}
