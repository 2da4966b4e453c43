package menu

type CreateMenuItemRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
}

type UpdateMenuItemRequest struct {
	Name      *string `json:"name"`
	Price     *int64  `json:"price"`
	Available *bool   `json:"available"`
}

type MenuItemResponse struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

// MenuResponse nhóm món theo danh mục, giữ thứ tự của Categories
type MenuResponse struct {
	Categories []MenuCategoryResponse `json:"categories"`
}

type MenuCategoryResponse struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}
