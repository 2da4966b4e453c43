package task

import "time"

const (
	SectionMorning   = "morning"
	SectionAfternoon = "afternoon"
	SectionWeekly    = "weekly"

	// DateLayout: mốc hoàn thành lưu dạng "20250101" theo giờ địa phương
	DateLayout = "20060102"
)

// Task là một đầu việc trong checklist của quán. Việc sáng/chiều reset
// theo ngày, việc định kỳ (weekly) tự mở lại sau FrequencyDays ngày.
type Task struct {
	ID             uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Description    string  `gorm:"column:description;type:text;not null"`
	Section        string  `gorm:"column:section;type:varchar(15);not null;index"`
	FrequencyDays  int     `gorm:"column:frequency_days;not null;default:0"`
	Completed      bool    `gorm:"column:completed;not null;default:false"`
	LastCompleted  *string `gorm:"column:last_completed;type:varchar(8)"`
	TodayCompleted *string `gorm:"column:today_completed;type:varchar(8)"`
	SortOrder      int     `gorm:"column:sort_order;not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func IsValidSection(section string) bool {
	return section == SectionMorning || section == SectionAfternoon || section == SectionWeekly
}

// Today trả về ngày hiện tại dạng "20060102" theo giờ địa phương.
func Today() string {
	return time.Now().Format(DateLayout)
}

// IsOverdue: việc định kỳ đã hoàn thành quá FrequencyDays ngày thì phải
// mở lại. So sánh trên mốc ngày, không tính giờ.
func (t *Task) IsOverdue(today string) bool {
	if t.Section != SectionWeekly || !t.Completed || t.TodayCompleted == nil || t.FrequencyDays <= 0 {
		return false
	}
	done, err := time.ParseInLocation(DateLayout, *t.TodayCompleted, time.Local)
	if err != nil {
		return false
	}
	now, err := time.ParseInLocation(DateLayout, today, time.Local)
	if err != nil {
		return false
	}
	return !now.Before(done.AddDate(0, 0, t.FrequencyDays))
}

// Reopen mở lại việc định kỳ quá hạn: giữ mốc cũ vào LastCompleted.
func (t *Task) Reopen() {
	t.Completed = false
	t.LastCompleted = t.TodayCompleted
	t.TodayCompleted = nil
}
