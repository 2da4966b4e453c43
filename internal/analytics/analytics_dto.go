package analytics

// PeriodQuery: period = day|week|month|year.
// day/week nhận date=YYYY-MM-DD, month nhận month=YYYY-MM, year nhận year=YYYY.
type PeriodQuery struct {
	Period string `form:"period" binding:"omitempty,oneof=day week month year"`
	Date   string `form:"date"`
	Month  string `form:"month"`
	Year   string `form:"year"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=50"`
}

type RevenuePoint struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

type RevenueResponse struct {
	From      string         `json:"from"`
	To        string         `json:"to"`
	Orders    int64          `json:"orders"`
	Revenue   int64          `json:"revenue"`
	ItemsSold int64          `json:"items_sold"`
	ByDay     []RevenuePoint `json:"by_day"`
}

type BestSellerEntry struct {
	DishID   string `json:"dish_id"`
	DishName string `json:"dish_name"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type PeakHourEntry struct {
	Hour    int   `json:"hour"`
	Orders  int64 `json:"orders"`
	Revenue int64 `json:"revenue"`
}
