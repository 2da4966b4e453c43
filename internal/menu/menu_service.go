package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	menuerrors "github.com/hoanvukhai/cafe-shop-management/internal/menu/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const (
	menuCacheKey = "menu:public:v1"
	menuCacheTTL = 60 * time.Second
)

//go:generate mockgen -source=menu_service.go -destination=mock/menu_service_mock.go -package=mock
type Service interface {
	GetPublicMenu(ctx context.Context) (*MenuResponse, error)
	ListAll(ctx context.Context) ([]MenuItemResponse, error)
	GetByID(ctx context.Context, id string) (*MenuItemResponse, error)
	Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error)
	Update(ctx context.Context, id string, req UpdateMenuItemRequest) (*MenuItemResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	redis *redis.Client
	sf    singleflight.Group
}

func NewService(repo Repository, redisClient *redis.Client) Service {
	return &service{repo: repo, redis: redisClient}
}

// GetPublicMenu trả menu cho màn hình order. Cache Redis 60s và gom các
// request trùng qua singleflight để quầy đông giờ cao điểm không dồn
// query xuống Postgres.
func (s *service) GetPublicMenu(ctx context.Context) (*MenuResponse, error) {
	log := contextutil.GetLogger(ctx).Named("menu.service")

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, menuCacheKey).Result()
		if err == nil {
			var resp MenuResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				log.Debug("menu cache hit")
				return &resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(menuCacheKey, func() (interface{}, error) {
		items, err := s.repo.FindAvailable(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}
		resp := groupByCategory(items)

		if s.redis != nil {
			payload, jsonErr := json.Marshal(resp)
			if jsonErr == nil {
				if cacheErr := s.redis.Set(ctx, menuCacheKey, payload, menuCacheTTL).Err(); cacheErr != nil {
					log.Warn(fmt.Sprintf("không ghi được cache menu: %v", cacheErr))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		log.Error(fmt.Sprintf("load menu thất bại: %v", err))
		return nil, err
	}
	return v.(*MenuResponse), nil
}

func (s *service) ListAll(ctx context.Context) ([]MenuItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]MenuItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toResponse(m))
	}
	return out, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*MenuItemResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	resp := toResponse(*m)
	return &resp, nil
}

func (s *service) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemResponse, error) {
	log := contextutil.GetLogger(ctx).Named("menu.service")

	if !IsValidCategory(req.Category) {
		return nil, menuerrors.ErrInvalidCategory
	}

	n, err := s.repo.NextNumberForCategory(ctx, req.Category)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	item := &MenuItem{
		ID:        fmt.Sprintf("%s_%03d", req.Category, n),
		Category:  req.Category,
		Name:      req.Name,
		Price:     req.Price,
		Available: true,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		log.Error(fmt.Sprintf("tạo món thất bại: %v", err))
		return nil, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	log.Info(fmt.Sprintf("đã thêm món %s (%s)", item.Name, item.ID))

	resp := toResponse(*item)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateMenuItemRequest) (*MenuItemResponse, error) {
	log := contextutil.GetLogger(ctx).Named("menu.service")

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := s.repo.Update(ctx, item); err != nil {
		log.Error(fmt.Sprintf("cập nhật món %s thất bại: %v", id, err))
		return nil, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)

	resp := toResponse(*item)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := contextutil.GetLogger(ctx).Named("menu.service")

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error(fmt.Sprintf("xóa món %s thất bại: %v", id, err))
		return mapRepositoryError(err)
	}

	s.invalidateCache(ctx)
	log.Info(fmt.Sprintf("đã xóa món %s", id))
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, menuCacheKey).Err(); err != nil {
		contextutil.GetLogger(ctx).Named("menu.service").
			Warn(fmt.Sprintf("không xóa được cache menu: %v", err))
	}
}

func toResponse(m MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        m.ID,
		Category:  m.Category,
		Name:      m.Name,
		Price:     m.Price,
		Available: m.Available,
	}
}

func groupByCategory(items []MenuItem) *MenuResponse {
	byCategory := make(map[string][]MenuItemResponse)
	for _, m := range items {
		byCategory[m.Category] = append(byCategory[m.Category], toResponse(m))
	}

	resp := &MenuResponse{Categories: make([]MenuCategoryResponse, 0, len(Categories))}
	for _, c := range Categories {
		if rows, ok := byCategory[c]; ok {
			resp.Categories = append(resp.Categories, MenuCategoryResponse{
				Category: c,
				Items:    rows,
			})
		}
	}
	return resp
}
