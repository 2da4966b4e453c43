package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	menuerrors "github.com/hoanvukhai/cafe-shop-management/internal/menu/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeMenuRepo struct {
	createFn        func(ctx context.Context, m *MenuItem) error
	findAllFn       func(ctx context.Context) ([]MenuItem, error)
	findAvailableFn func(ctx context.Context) ([]MenuItem, error)
	findByIDFn      func(ctx context.Context, id string) (*MenuItem, error)
	updateFn        func(ctx context.Context, m *MenuItem) error
	deleteFn        func(ctx context.Context, id string) error
	nextNumberFn    func(ctx context.Context, category string) (int64, error)
}

func (f *fakeMenuRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeMenuRepo) Create(ctx context.Context, m *MenuItem) error {
	return f.createFn(ctx, m)
}
func (f *fakeMenuRepo) FindAll(ctx context.Context) ([]MenuItem, error) {
	return f.findAllFn(ctx)
}
func (f *fakeMenuRepo) FindAvailable(ctx context.Context) ([]MenuItem, error) {
	return f.findAvailableFn(ctx)
}
func (f *fakeMenuRepo) FindByID(ctx context.Context, id string) (*MenuItem, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeMenuRepo) Update(ctx context.Context, m *MenuItem) error {
	return f.updateFn(ctx, m)
}
func (f *fakeMenuRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeMenuRepo) NextNumberForCategory(ctx context.Context, category string) (int64, error) {
	return f.nextNumberFn(ctx, category)
}

func TestGetPublicMenu_GroupsByCategoryOrder(t *testing.T) {
	repo := &fakeMenuRepo{
		findAvailableFn: func(ctx context.Context) ([]MenuItem, error) {
			return []MenuItem{
				{ID: "snacks_001", Category: "snacks", Name: "Hướng dương", Price: 10000, Available: true},
				{ID: "coffee_001", Category: "coffee", Name: "Cà phê đen", Price: 20000, Available: true},
				{ID: "coffee_002", Category: "coffee", Name: "Cà phê sữa", Price: 25000, Available: true},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	resp, err := svc.GetPublicMenu(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.Categories, 2)
	assert.Equal(t, "coffee", resp.Categories[0].Category)
	assert.Len(t, resp.Categories[0].Items, 2)
	assert.Equal(t, "snacks", resp.Categories[1].Category)
}

func TestCreateMenuItem_GeneratesSequentialID(t *testing.T) {
	var created *MenuItem
	repo := &fakeMenuRepo{
		nextNumberFn: func(ctx context.Context, category string) (int64, error) {
			assert.Equal(t, "coffee", category)
			return 14, nil
		},
		createFn: func(ctx context.Context, m *MenuItem) error {
			created = m
			return nil
		},
	}
	svc := NewService(repo, nil)

	resp, err := svc.Create(context.Background(), CreateMenuItemRequest{
		Category: "coffee",
		Name:     "Bạc xỉu",
		Price:    29000,
	})

	assert.NoError(t, err)
	assert.Equal(t, "coffee_014", resp.ID)
	assert.True(t, created.Available)
}

func TestCreateMenuItem_RejectsUnknownCategory(t *testing.T) {
	svc := NewService(&fakeMenuRepo{}, nil)

	_, err := svc.Create(context.Background(), CreateMenuItemRequest{
		Category: "sushi",
		Name:     "Sushi cá hồi",
		Price:    90000,
	})

	assert.ErrorIs(t, err, menuerrors.ErrInvalidCategory)
}

func TestGetMenuItem_NotFound(t *testing.T) {
	repo := &fakeMenuRepo{
		findByIDFn: func(ctx context.Context, id string) (*MenuItem, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.GetByID(context.Background(), "coffee_999")

	assert.ErrorIs(t, err, menuerrors.ErrMenuItemNotFound)
}

func TestUpdateMenuItem_TogglesAvailability(t *testing.T) {
	existing := &MenuItem{ID: "coffee_001", Category: "coffee", Name: "Cà phê đen", Price: 20000, Available: true}
	repo := &fakeMenuRepo{
		findByIDFn: func(ctx context.Context, id string) (*MenuItem, error) {
			return existing, nil
		},
		updateFn: func(ctx context.Context, m *MenuItem) error {
			return nil
		},
	}
	svc := NewService(repo, nil)

	off := false
	resp, err := svc.Update(context.Background(), "coffee_001", UpdateMenuItemRequest{Available: &off})

	assert.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, int64(20000), resp.Price)
}

func TestGetPublicMenu_ServesFromCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	cached := &MenuResponse{Categories: []MenuCategoryResponse{
		{Category: "coffee", Items: []MenuItemResponse{
			{ID: "coffee_001", Category: "coffee", Name: "Cà phê đen", Price: 20000, Available: true},
		}},
	}}
	payload, err := json.Marshal(cached)
	assert.NoError(t, err)
	mock.ExpectGet(menuCacheKey).SetVal(string(payload))

	repo := &fakeMenuRepo{
		findAvailableFn: func(ctx context.Context) ([]MenuItem, error) {
			t.Fatal("cache hit không được chạm vào database")
			return nil, nil
		},
	}
	svc := NewService(repo, rdb)

	resp, err := svc.GetPublicMenu(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.Categories, 1)
	assert.Equal(t, "coffee", resp.Categories[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPublicMenu_WritesCacheOnMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	items := []MenuItem{
		{ID: "coffee_001", Category: "coffee", Name: "Cà phê đen", Price: 20000, Available: true},
	}
	expected := groupByCategory(items)
	payload, err := json.Marshal(expected)
	assert.NoError(t, err)

	mock.ExpectGet(menuCacheKey).RedisNil()
	mock.ExpectSet(menuCacheKey, payload, menuCacheTTL).SetVal("OK")

	repo := &fakeMenuRepo{
		findAvailableFn: func(ctx context.Context) ([]MenuItem, error) {
			return items, nil
		},
	}
	svc := NewService(repo, rdb)

	resp, err := svc.GetPublicMenu(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp.Categories, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
