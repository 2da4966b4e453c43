package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTaskRepo struct {
	tasks  map[uint]*Task
	nextID uint
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]*Task), nextID: 1}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t *Task) error {
	t.ID = f.nextID
	f.nextID++
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t *Task) error {
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id uint) error {
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id uint) (*Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) FindAll(ctx context.Context) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTaskRepo) FindBySection(ctx context.Context, section string) ([]Task, error) {
	var out []Task
	for _, t := range f.tasks {
		if t.Section == section {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ResetDaily(ctx context.Context) (int64, error) {
	var affected int64
	for _, t := range f.tasks {
		if t.Section == SectionMorning || t.Section == SectionAfternoon {
			t.Completed = false
			t.TodayCompleted = nil
			affected++
		}
	}
	return affected, nil
}

func TestToggle_MarksCompletedWithToday(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateTaskRequest{
		Description: "Lau máy pha cà phê",
		Section:     SectionMorning,
	})
	assert.NoError(t, err)

	resp, err := svc.Toggle(context.Background(), created.ID)

	assert.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, Today(), *resp.TodayCompleted)

	// Toggle lần hai bỏ đánh dấu
	resp, err = svc.Toggle(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Nil(t, resp.TodayCompleted)
}

func TestToggle_UncheckShiftsTodayIntoLastCompleted(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	earlier := "20250101"
	today := Today()
	repo.Create(context.Background(), &Task{
		Description:    "Tưới cây trước quán",
		Section:        SectionWeekly,
		FrequencyDays:  3,
		Completed:      true,
		LastCompleted:  &earlier,
		TodayCompleted: &today,
	})

	resp, err := svc.Toggle(context.Background(), 1)

	assert.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Nil(t, resp.TodayCompleted)
	// Dấu hôm nay lui về last_completed, không bị xóa mất
	assert.Equal(t, today, *resp.LastCompleted)
}

func TestIsOverdue_FrequencySevenDays(t *testing.T) {
	done := "20250101"
	weekly := &Task{
		Section:        SectionWeekly,
		FrequencyDays:  7,
		Completed:      true,
		TodayCompleted: &done,
	}

	// Hoàn thành 01/01, tần suất 7 ngày: 07/01 chưa tới hạn, 08/01 quá hạn
	assert.False(t, weekly.IsOverdue("20250107"))
	assert.True(t, weekly.IsOverdue("20250108"))
	assert.True(t, weekly.IsOverdue("20250120"))
}

func TestSweepOverdue_ReopensAndKeepsHistory(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	longAgo := time.Now().AddDate(0, 0, -10).Format(DateLayout)
	repo.Create(context.Background(), &Task{
		Description:    "Vệ sinh tủ lạnh",
		Section:        SectionWeekly,
		FrequencyDays:  7,
		Completed:      true,
		TodayCompleted: &longAgo,
	})
	recent := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	repo.Create(context.Background(), &Task{
		Description:    "Rửa thùng đá",
		Section:        SectionWeekly,
		FrequencyDays:  3,
		Completed:      true,
		TodayCompleted: &recent,
	})

	reopened, err := svc.SweepOverdue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, reopened)

	overdue := repo.tasks[1]
	assert.False(t, overdue.Completed)
	assert.Equal(t, longAgo, *overdue.LastCompleted)
	assert.Nil(t, overdue.TodayCompleted)

	fresh := repo.tasks[2]
	assert.True(t, fresh.Completed)

	// Worker quét mỗi phút, lần quét tiếp theo không đổi gì thêm
	reopened, err = svc.SweepOverdue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, reopened)
}

func TestResetDaily_SkipsWeekly(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo)

	today := Today()
	repo.Create(context.Background(), &Task{Section: SectionMorning, Completed: true, TodayCompleted: &today})
	repo.Create(context.Background(), &Task{Section: SectionAfternoon, Completed: true, TodayCompleted: &today})
	repo.Create(context.Background(), &Task{Section: SectionWeekly, FrequencyDays: 7, Completed: true, TodayCompleted: &today})

	affected, err := svc.ResetDaily(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.False(t, repo.tasks[1].Completed)
	assert.True(t, repo.tasks[3].Completed)
}

func TestCreate_WeeklyRequiresFrequency(t *testing.T) {
	svc := NewService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), CreateTaskRequest{
		Description: "Khử cặn máy nước nóng",
		Section:     SectionWeekly,
	})

	assert.Error(t, err)
}
