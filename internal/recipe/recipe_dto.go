package recipe

type RecipeResponse struct {
	MenuItemID   string   `json:"menu_item_id"`
	Name         string   `json:"name"`
	Steps        []string `json:"steps"`
	ServingTools []string `json:"serving_tools,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

type PrepInstructionResponse struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Equipment   []string `json:"equipment,omitempty"`
	Steps       []string `json:"steps"`
	Yield       string   `json:"yield,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

type UpsertRecipeRequest struct {
	MenuItemID   string   `json:"menu_item_id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Steps        []string `json:"steps" binding:"required,min=1"`
	ServingTools []string `json:"serving_tools"`
	Notes        string   `json:"notes"`
}
