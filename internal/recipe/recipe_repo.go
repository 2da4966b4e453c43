package recipe

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=recipe_repo.go -destination=mock/recipe_repo_mock.go -package=mock
type Repository interface {
	FindAllRecipes(ctx context.Context) ([]Recipe, error)
	FindRecipeByMenuItemID(ctx context.Context, menuItemID string) (*Recipe, error)
	UpsertRecipe(ctx context.Context, r *Recipe) error
	FindAllPrepInstructions(ctx context.Context) ([]PrepInstruction, error)
	FindPrepInstructionByKey(ctx context.Context, key string) (*PrepInstruction, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllRecipes(ctx context.Context) ([]Recipe, error) {
	var rows []Recipe
	err := r.db.WithContext(ctx).Order("menu_item_id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindRecipeByMenuItemID(ctx context.Context, menuItemID string) (*Recipe, error) {
	var rec Recipe
	err := r.db.WithContext(ctx).First(&rec, "menu_item_id = ?", menuItemID).Error
	return &rec, err
}

func (r *repository) UpsertRecipe(ctx context.Context, rec *Recipe) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "menu_item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "steps", "serving_tools", "notes", "updated_at"}),
		}).
		Create(rec).Error
}

func (r *repository) FindAllPrepInstructions(ctx context.Context) ([]PrepInstruction, error) {
	var rows []PrepInstruction
	err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindPrepInstructionByKey(ctx context.Context, key string) (*PrepInstruction, error) {
	var p PrepInstruction
	err := r.db.WithContext(ctx).First(&p, "key = ?", key).Error
	return &p, err
}
