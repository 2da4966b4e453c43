package task

type CreateTaskRequest struct {
	Description   string `json:"description" binding:"required"`
	Section       string `json:"section" binding:"required,oneof=morning afternoon weekly"`
	FrequencyDays int    `json:"frequency_days" binding:"min=0"`
	SortOrder     int    `json:"sort_order"`
}

type UpdateTaskRequest struct {
	Description   *string `json:"description"`
	FrequencyDays *int    `json:"frequency_days"`
	SortOrder     *int    `json:"sort_order"`
}

type TaskResponse struct {
	ID             uint    `json:"id"`
	Description    string  `json:"description"`
	Section        string  `json:"section"`
	FrequencyDays  int     `json:"frequency_days,omitempty"`
	Completed      bool    `json:"completed"`
	LastCompleted  *string `json:"last_completed,omitempty"`
	TodayCompleted *string `json:"today_completed,omitempty"`
}

type ChecklistResponse struct {
	Morning   []TaskResponse `json:"morning"`
	Afternoon []TaskResponse `json:"afternoon"`
	Weekly    []TaskResponse `json:"weekly"`
	Pending   PendingCounts  `json:"pending"`
}

type PendingCounts struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Weekly    int `json:"weekly"`
}
