package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	recipeerrors "github.com/hoanvukhai/cafe-shop-management/internal/recipe/errors"
	"github.com/hoanvukhai/cafe-shop-management/internal/shared/contextutil"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=recipe_service.go -destination=mock/recipe_service_mock.go -package=mock
type Service interface {
	ListRecipes(ctx context.Context) ([]RecipeResponse, error)
	GetRecipe(ctx context.Context, menuItemID string) (*RecipeResponse, error)
	UpsertRecipe(ctx context.Context, req UpsertRecipeRequest) (*RecipeResponse, error)
	ListPrepInstructions(ctx context.Context) ([]PrepInstructionResponse, error)
	GetPrepInstruction(ctx context.Context, key string) (*PrepInstructionResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListRecipes(ctx context.Context) ([]RecipeResponse, error) {
	rows, err := s.repo.FindAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RecipeResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRecipeResponse(r))
	}
	return out, nil
}

func (s *service) GetRecipe(ctx context.Context, menuItemID string) (*RecipeResponse, error) {
	rec, err := s.repo.FindRecipeByMenuItemID(ctx, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipeerrors.ErrRecipeNotFound
		}
		return nil, err
	}
	resp := toRecipeResponse(*rec)
	return &resp, nil
}

func (s *service) UpsertRecipe(ctx context.Context, req UpsertRecipeRequest) (*RecipeResponse, error) {
	log := contextutil.GetLogger(ctx).Named("recipe.service")

	steps, _ := json.Marshal(req.Steps)
	tools, _ := json.Marshal(req.ServingTools)

	rec := &Recipe{
		MenuItemID:   req.MenuItemID,
		Name:         req.Name,
		Steps:        datatypes.JSON(steps),
		ServingTools: datatypes.JSON(tools),
		Notes:        req.Notes,
	}
	if err := s.repo.UpsertRecipe(ctx, rec); err != nil {
		log.Error(fmt.Sprintf("lưu công thức %s thất bại: %v", req.MenuItemID, err))
		return nil, err
	}

	log.Info(fmt.Sprintf("đã lưu công thức cho %s", req.MenuItemID))
	resp := toRecipeResponse(*rec)
	return &resp, nil
}

func (s *service) ListPrepInstructions(ctx context.Context) ([]PrepInstructionResponse, error) {
	rows, err := s.repo.FindAllPrepInstructions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PrepInstructionResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPrepResponse(p))
	}
	return out, nil
}

func (s *service) GetPrepInstruction(ctx context.Context, key string) (*PrepInstructionResponse, error) {
	p, err := s.repo.FindPrepInstructionByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipeerrors.ErrPrepInstructionNotFound
		}
		return nil, err
	}
	resp := toPrepResponse(*p)
	return &resp, nil
}

func decodeStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func toRecipeResponse(r Recipe) RecipeResponse {
	return RecipeResponse{
		MenuItemID:   r.MenuItemID,
		Name:         r.Name,
		Steps:        decodeStrings(r.Steps),
		ServingTools: decodeStrings(r.ServingTools),
		Notes:        r.Notes,
	}
}

func toPrepResponse(p PrepInstruction) PrepInstructionResponse {
	return PrepInstructionResponse{
		Key:         p.Key,
		Name:        p.Name,
		Ingredients: decodeStrings(p.Ingredients),
		Equipment:   decodeStrings(p.Equipment),
		Steps:       decodeStrings(p.Steps),
		Yield:       p.Yield,
		Notes:       p.Notes,
	}
}
