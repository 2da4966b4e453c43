package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/events"
	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	menuerrors "github.com/hoanvukhai/cafe-shop-management/internal/menu/errors"
	kafka "github.com/hoanvukhai/cafe-shop-management/internal/messaging/kafka"
	ordererrors "github.com/hoanvukhai/cafe-shop-management/internal/order/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/counter"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier đẩy tín hiệu realtime cho màn hình bàn và quầy pha chế.
type Notifier interface {
	OrderChanged(ctx context.Context, orderID, tableNumber string)
}

//go:generate mockgen -source=order_service.go -destination=mock/order_service_mock.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, actor string, req CreateOrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*OrderResponse, error)
	GetOrderByTable(ctx context.Context, tableNumber string) (*OrderResponse, error)
	ListOrders(ctx context.Context, q ListOrdersQuery) ([]OrderResponse, int64, error)

	Save(ctx context.Context, orderID string, req SaveOrderRequest) (*OrderResponse, error)
	AddItems(ctx context.Context, orderID string, req AddItemsRequest) (*OrderResponse, error)
	UpdateItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*OrderResponse, error)
	UpdateItemNote(ctx context.Context, orderID, itemID, note string) (*OrderResponse, error)
	UpdateItemStatus(ctx context.Context, orderID, itemID, status string) (*OrderResponse, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (*OrderResponse, error)

	Pay(ctx context.Context, orderID string) (*OrderResponse, error)
	Cancel(ctx context.Context, orderID string) (*OrderResponse, error)
	SwapTable(ctx context.Context, orderID, toTable string) (*OrderResponse, error)

	GetTableBoard(ctx context.Context) ([]TableBoardEntry, error)
	GetQueue(ctx context.Context) (*QueueResponse, error)

	ResetDay(ctx context.Context, date string) (int64, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	counterRepo counter.Repository
	menuRepo    menu.Repository
	outboxRepo  kafka.OutboxRepository
	notifier    Notifier
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	menuRepo menu.Repository,
	outboxRepo kafka.OutboxRepository,
	notifier Notifier,
) Service {
	return &service{
		db:          db,
		repo:        repo,
		counterRepo: counterRepo,
		menuRepo:    menuRepo,
		outboxRepo:  outboxRepo,
		notifier:    notifier,
	}
}

func newPublicID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *service) CreateOrder(ctx context.Context, actor string, req CreateOrderRequest) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	if !IsValidTable(req.TableNumber) {
		return nil, ordererrors.ErrInvalidTable
	}

	// Mỗi bàn chỉ có một order đang mở. Bàn đã có order thì gọi thêm món.
	if _, err := s.repo.FindActiveByTable(ctx, req.TableNumber); err == nil {
		return nil, ordererrors.ErrTableOccupied
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	orderDate := now.Format("20060102")

	seq, err := s.counterRepo.WithTx(tx).NextValue(ctx, orderDate)
	if err != nil {
		log.Error(fmt.Sprintf("lấy số thứ tự hóa đơn thất bại: %v", err))
		return nil, err
	}

	o := &Order{
		ID:             uuid.NewString(),
		PublicID:       newPublicID("order"),
		SequenceNumber: counter.FormatSequence(orderDate, seq),
		TableNumber:    req.TableNumber,
		Status:         StatusPending,
		Note:           req.Note,
		CreatedBy:      actor,
		CreatedAt:      now,
		ModifiedAt:     now,
	}
	for i := range items {
		items[i].OrderID = o.ID
	}
	o.Items = items

	if err := s.repo.WithTx(tx).Create(ctx, o); err != nil {
		log.Error(fmt.Sprintf("tạo order thất bại: %v", err))
		return nil, err
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.OrderCreatedEventType, o); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("đã mở order %s (%s) cho %s", o.PublicID, o.SequenceNumber, o.TableNumber))
	s.notify(ctx, o)

	resp := toOrderResponse(o)
	return &resp, nil
}

// buildItems chụp tên/giá từ menu và gộp các dòng trùng món + ghi chú.
func (s *service) buildItems(ctx context.Context, inputs []OrderItemInput) ([]OrderItem, error) {
	type key struct{ dishID, note string }
	merged := make(map[key]*OrderItem)
	var ordered []*OrderItem

	for _, in := range inputs {
		k := key{dishID: in.DishID, note: in.Note}
		if existing, ok := merged[k]; ok {
			existing.Quantity += in.Quantity
			continue
		}

		dish, err := s.menuRepo.FindByID(ctx, in.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, menuerrors.ErrMenuItemNotFound
			}
			return nil, err
		}
		if !dish.Available {
			return nil, menuerrors.ErrMenuItemUnavailable
		}

		it := &OrderItem{
			ID:       uuid.NewString(),
			PublicID: newPublicID("item"),
			DishID:   dish.ID,
			DishName: dish.Name,
			Price:    dish.Price,
			Quantity: in.Quantity,
			Note:     in.Note,
			Status:   ItemStatusPending,
		}
		merged[k] = it
		ordered = append(ordered, it)
	}

	out := make([]OrderItem, 0, len(ordered))
	for _, it := range ordered {
		out = append(out, *it)
	}
	return out, nil
}

func (s *service) GetOrder(ctx context.Context, orderID string) (*OrderResponse, error) {
	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *service) GetOrderByTable(ctx context.Context, tableNumber string) (*OrderResponse, error) {
	if !IsValidTable(tableNumber) {
		return nil, ordererrors.ErrInvalidTable
	}
	o, err := s.repo.FindActiveByTable(ctx, tableNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderNotFound
		}
		return nil, err
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *service) ListOrders(ctx context.Context, q ListOrdersQuery) ([]OrderResponse, int64, error) {
	var from, to *time.Time
	if q.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", q.Date, time.Local)
		if err != nil {
			return nil, 0, ordererrors.ErrInvalidDate
		}
		end := day.AddDate(0, 0, 1)
		from, to = &day, &end
	}

	offset := (q.Page - 1) * q.Limit
	rows, total, err := s.repo.List(ctx, q.Status, from, to, offset, q.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]OrderResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toOrderResponse(&rows[i]))
	}
	return out, total, nil
}

/// Save là nút "lưu order" trên màn hình gọi món: thay ghi chú và danh
// sách món bằng nội dung mới. Dòng cũ trùng dish + ghi chú giữ nguyên
// trạng thái pha chế (chỉ đổi số lượng), dòng không còn trong danh
// sách bị xóa, dòng mới thêm vào ở trạng thái pending.
func (s *service) Save(ctx context.Context, orderID string, req SaveOrderRequest) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}

	newItems, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txRepo := s.repo.WithTx(tx)

	reused := make(map[string]bool, len(o.Items))
	kept := make([]OrderItem, 0, len(newItems))
	for _, in := range newItems {
		var old *OrderItem
		for i := range o.Items {
			it := &o.Items[i]
			if !reused[it.ID] && it.DishID == in.DishID && it.Note == in.Note {
				old = it
				break
			}
		}
		if old != nil {
			old.Quantity = in.Quantity
			if err := txRepo.UpdateItem(ctx, old); err != nil {
				return nil, err
			}
			reused[old.ID] = true
			kept = append(kept, *old)
			continue
		}
		in.OrderID = o.ID
		if err := txRepo.CreateItem(ctx, &in); err != nil {
			return nil, err
		}
		kept = append(kept, in)
	}
	for i := range o.Items {
		if reused[o.Items[i].ID] {
			continue
		}
		if err := txRepo.DeleteItem(ctx, o.Items[i].ID); err != nil {
			return nil, err
		}
	}

	o.Items = kept
	o.Note = req.Note
	o.ModifiedAt = time.Now()
	if err := txRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Debug(fmt.Sprintf("đã lưu lại order %s với %d dòng", o.PublicID, len(kept)))
	s.notify(ctx, o)

	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *service) AddItems(ctx context.Context, orderID string, req AddItemsRequest) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}

	newItems, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txRepo := s.repo.WithTx(tx)

	for _, in := range newItems {
		// Món trùng (cùng dish + ghi chú, còn pending) thì cộng dồn số lượng
		mergedInto := false
		for i := range o.Items {
			existing := &o.Items[i]
			if existing.DishID == in.DishID && existing.Note == in.Note && existing.Status == ItemStatusPending {
				existing.Quantity += in.Quantity
				if err := txRepo.UpdateItem(ctx, existing); err != nil {
					return nil, err
				}
				mergedInto = true
				break
			}
		}
		if !mergedInto {
			in.OrderID = o.ID
			if err := txRepo.CreateItem(ctx, &in); err != nil {
				return nil, err
			}
			o.Items = append(o.Items, in)
		}
	}

	o.ModifiedAt = time.Now()
	if err := txRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Debug(fmt.Sprintf("đã thêm %d dòng vào order %s", len(req.Items), o.PublicID))
	s.notify(ctx, o)

	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *service) UpdateItemQuantity(ctx context.Context, orderID, itemID string, quantity int) (*OrderResponse, error) {
	return s.mutateItem(ctx, orderID, itemID, func(it *OrderItem) error {
		it.Quantity = quantity
		return nil
	})
}

func (s *service) UpdateItemNote(ctx context.Context, orderID, itemID, note string) (*OrderResponse, error) {
	return s.mutateItem(ctx, orderID, itemID, func(it *OrderItem) error {
		it.Note = note
		return nil
	})
}

// Quy tắc chuyển trạng thái món: pending <-> prepared <-> served.
// Không nhảy cóc pending -> served.
var allowedItemTransitions = map[string][]string{
	ItemStatusPending:  {ItemStatusPrepared},
	ItemStatusPrepared: {ItemStatusPending, ItemStatusServed},
	ItemStatusServed:   {ItemStatusPrepared},
}

func (s *service) UpdateItemStatus(ctx context.Context, orderID, itemID, status string) (*OrderResponse, error) {
	return s.mutateItem(ctx, orderID, itemID, func(it *OrderItem) error {
		allowed := false
		for _, next := range allowedItemTransitions[it.Status] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return ordererrors.ErrInvalidItemTransition
		}

		it.Status = status
		if status == ItemStatusServed {
			now := time.Now()
			it.ServedAt = &now
		} else {
			it.ServedAt = nil
		}
		return nil
	})
}

func (s *service) mutateItem(ctx context.Context, orderID, itemID string, mutate func(*OrderItem) error) (*OrderResponse, error) {
	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}

	it, err := s.repo.FindItemByPublicID(ctx, o.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderItemNotFound
		}
		return nil, err
	}

	if err := mutate(it); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	txRepo := s.repo.WithTx(tx)

	if err := txRepo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	o.ModifiedAt = time.Now()
	if err := txRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.notify(ctx, o)
	return s.GetOrder(ctx, orderID)
}

// RemoveItem xóa món khỏi order. Xóa món cuối cùng thì hủy luôn order,
// không để order rỗng treo trên bàn.
func (s *service) RemoveItem(ctx context.Context, orderID, itemID string) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}

	it, err := s.repo.FindItemByPublicID(ctx, o.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderItemNotFound
		}
		return nil, err
	}

	lastItem := len(o.Items) == 1

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)
	if err := txRepo.DeleteItem(ctx, it.ID); err != nil {
		return nil, err
	}

	now := time.Now()
	o.ModifiedAt = now
	if lastItem {
		o.Status = StatusCanceled
		o.CanceledAt = &now
	}
	if err := txRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if lastItem {
		o.Items = nil
		if err := s.writeLifecycleEvent(ctx, tx, events.OrderCanceledEventType, o); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if lastItem {
		log.Info(fmt.Sprintf("order %s bị hủy vì xóa món cuối cùng", o.PublicID))
	}
	s.notify(ctx, o)

	return s.GetOrder(ctx, orderID)
}

// Pay chốt hóa đơn. Còn món chưa pha xong thì chưa cho thanh toán.
func (s *service) Pay(ctx context.Context, orderID string) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		if o.PaidAt != nil {
			return nil, ordererrors.ErrOrderAlreadyPaid
		}
		return nil, ordererrors.ErrOrderNotPending
	}
	if o.HasPendingItems() {
		return nil, ordererrors.ErrUnpreparedItems
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	o.Status = StatusCompleted
	o.PaidAt = &now
	o.CompletedAt = &now
	o.ModifiedAt = now

	if err := s.repo.WithTx(tx).Update(ctx, o); err != nil {
		log.Error(fmt.Sprintf("chốt order %s thất bại: %v", o.PublicID, err))
		return nil, err
	}

	if err := s.writeLifecycleEvent(ctx, tx, events.OrderCompletedEventType, o); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("đã thanh toán order %s, tổng %d", o.PublicID, o.Total()))
	s.notify(ctx, o)

	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *service) Cancel(ctx context.Context, orderID string) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.PaidAt != nil {
		return nil, ordererrors.ErrOrderAlreadyPaid
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now()
	o.Status = StatusCanceled
	o.CanceledAt = &now
	o.ModifiedAt = now

	if err := s.repo.WithTx(tx).Update(ctx, o); err != nil {
		return nil, err
	}
	if err := s.writeLifecycleEvent(ctx, tx, events.OrderCanceledEventType, o); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info(fmt.Sprintf("đã hủy order %s", o.PublicID))
	s.notify(ctx, o)

	resp := toOrderResponse(o)
	return &resp, nil
}

// SwapTable chuyển order sang bàn khác trong một transaction. Bàn đích
// đang có order mở thì hai order hoán đổi số bàn cho nhau.
func (s *service) SwapTable(ctx context.Context, orderID, toTable string) (*OrderResponse, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	if !IsValidTable(toTable) {
		return nil, ordererrors.ErrInvalidTable
	}

	o, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ordererrors.ErrOrderNotPending
	}
	if o.TableNumber == toTable {
		return nil, ordererrors.ErrTargetTableOccupied
	}

	var other *Order
	if cur, err := s.repo.FindActiveByTable(ctx, toTable); err == nil {
		other = cur
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	otherID := ""
	if other != nil {
		otherID = other.ID
	}
	if err := s.repo.WithTx(tx).SwapTables(ctx, o.ID, toTable, otherID, o.TableNumber); err != nil {
		log.Error(fmt.Sprintf("chuyển bàn order %s thất bại: %v", o.PublicID, err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	fromTable := o.TableNumber
	o.TableNumber = toTable
	if other != nil {
		other.TableNumber = fromTable
		log.Info(fmt.Sprintf("order %s và %s hoán đổi bàn %s <-> %s", o.PublicID, other.PublicID, fromTable, toTable))
		s.notify(ctx, other)
	} else {
		log.Info(fmt.Sprintf("order %s chuyển từ %s sang %s", o.PublicID, fromTable, toTable))
	}
	s.notify(ctx, o)

	return s.GetOrder(ctx, orderID)
}

func (s *service) GetTableBoard(ctx context.Context) ([]TableBoardEntry, error) {
	active, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	byTable := make(map[string]*Order, len(active))
	for i := range active {
		byTable[active[i].TableNumber] = &active[i]
	}

	board := make([]TableBoardEntry, 0, 21)
	for _, t := range TableNames() {
		entry := TableBoardEntry{TableNumber: t}
		if o, ok := byTable[t]; ok {
			entry.Occupied = true
			entry.OrderID = o.PublicID
			entry.Total = o.Total()
			entry.ItemCount = len(o.Items)
			for _, it := range o.Items {
				switch it.Status {
				case ItemStatusPending:
					entry.PendingItems++
				case ItemStatusServed:
					entry.ServedItems++
				}
			}
		}
		board = append(board, entry)
	}
	return board, nil
}

// GetQueue trả hàng đợi pha chế: món chờ theo thứ tự gọi, và order
// đang mở chia hai nhóm còn món pending / đã pha xong hết.
func (s *service) GetQueue(ctx context.Context) (*QueueResponse, error) {
	items, err := s.repo.ListPendingItems(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	resp := &QueueResponse{Items: items}
	for i := range active {
		o := &active[i]
		if o.HasPendingItems() {
			resp.WaitingOrders = append(resp.WaitingOrders, toOrderResponse(o))
		} else {
			resp.ReadyOrders = append(resp.ReadyOrders, toOrderResponse(o))
		}
	}
	return resp, nil
}

// ResetDay xóa toàn bộ order của một ngày và đưa bộ đếm hóa đơn về 0.
// Chỉ dùng khi dọn dữ liệu chạy thử hoặc nhập lại từ đầu ngày.
func (s *service) ResetDay(ctx context.Context, date string) (int64, error) {
	log := contextutil.GetLogger(ctx).Named("order.service")

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, ordererrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	deleted, err := s.repo.WithTx(tx).DeleteByDateRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}
	if err := s.counterRepo.WithTx(tx).Reset(ctx, day.Format("20060102")); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}

	log.Warn(fmt.Sprintf("đã reset ngày %s, xóa %d order", date, deleted))
	return deleted, nil
}

func (s *service) findOrder(ctx context.Context, orderID string) (*Order, error) {
	o, err := s.repo.FindByPublicID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ordererrors.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *service) writeLifecycleEvent(ctx context.Context, tx *sql.Tx, eventType string, o *Order) error {
	snapshots := make([]events.OrderLineSnapshot, 0, len(o.Items))
	for _, it := range o.Items {
		snapshots = append(snapshots, events.OrderLineSnapshot{
			DishID:   it.DishID,
			DishName: it.DishName,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	evt := events.OrderLifecycleEvent{
		EventType:      eventType,
		RequestID:      contextutil.GetRequestID(ctx),
		OrderID:        o.PublicID,
		SequenceNumber: o.SequenceNumber,
		TableNumber:    o.TableNumber,
		Total:          o.Total(),
		Items:          snapshots,
		OccurredAt:     time.Now(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     evt.RequestID,
		AggregateType: "order",
		AggregateID:   o.PublicID,
		EventType:     eventType,
		Topic:         events.OrderLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) notify(ctx context.Context, o *Order) {
	if s.notifier == nil {
		return
	}
	s.notifier.OrderChanged(ctx, o.PublicID, o.TableNumber)
}

func toOrderResponse(o *Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ItemID:   it.PublicID,
			DishID:   it.DishID,
			DishName: it.DishName,
			Price:    it.Price,
			Quantity: it.Quantity,
			Note:     it.Note,
			Status:   it.Status,
			ServedAt: it.ServedAt,
		})
	}

	return OrderResponse{
		OrderID:        o.PublicID,
		SequenceNumber: o.SequenceNumber,
		TableNumber:    o.TableNumber,
		Status:         o.Status,
		Note:           o.Note,
		Total:          o.Total(),
		Items:          items,
		CreatedAt:      o.CreatedAt,
		ModifiedAt:     o.ModifiedAt,
		CompletedAt:    o.CompletedAt,
		PaidAt:         o.PaidAt,
		CanceledAt:     o.CanceledAt,
	}
}
