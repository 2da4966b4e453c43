package timesheet

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/hoanvukhai/cafe-shop-management/internal/menu"
	"github.com/hoanvukhai/cafe-shop-management/internal/staff"
	timesheeterrors "github.com/hoanvukhai/cafe-shop-management/internal/timesheet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTimesheetRepo struct {
	records map[string]*Record
	open    map[string]*Record // key: user id
}

func newFakeTimesheetRepo() *fakeTimesheetRepo {
	return &fakeTimesheetRepo{
		records: make(map[string]*Record),
		open:    make(map[string]*Record),
	}
}

func (f *fakeTimesheetRepo) WithTx(tx *sql.Tx) Repository { return f }

func (f *fakeTimesheetRepo) Create(ctx context.Context, r *Record) error {
	f.records[r.ID] = r
	if r.CheckOut == nil {
		f.open[r.UserID] = r
	}
	return nil
}

func (f *fakeTimesheetRepo) Update(ctx context.Context, r *Record) error {
	f.records[r.ID] = r
	if r.CheckOut != nil {
		delete(f.open, r.UserID)
	}
	return nil
}

func (f *fakeTimesheetRepo) Delete(ctx context.Context, id string) error {
	delete(f.records, id)
	return nil
}

func (f *fakeTimesheetRepo) FindByID(ctx context.Context, id string) (*Record, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeTimesheetRepo) FindOpenByUser(ctx context.Context, userID string) (*Record, error) {
	r, ok := f.open[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeTimesheetRepo) List(ctx context.Context, userID, status string, from, to time.Time) ([]Record, error) {
	var out []Record
	for _, r := range f.records {
		if userID != "" && r.UserID != userID {
			continue
		}
		if r.CheckIn.Before(from) || !r.CheckIn.Before(to) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeTimesheetRepo) ReplaceAdjustments(ctx context.Context, recordID string, adjustments []PayAdjustment) error {
	if r, ok := f.records[recordID]; ok {
		r.Adjustments = adjustments
	}
	return nil
}

type fakeStaffRepoForTS struct {
	staff map[string]*staff.Staff
}

func (f *fakeStaffRepoForTS) Create(ctx context.Context, s *staff.Staff) error { return nil }
func (f *fakeStaffRepoForTS) FindAll(ctx context.Context) ([]staff.Staff, error) {
	return nil, nil
}
func (f *fakeStaffRepoForTS) FindByUserID(ctx context.Context, userID string) (*staff.Staff, error) {
	s, ok := f.staff[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}
func (f *fakeStaffRepoForTS) Update(ctx context.Context, s *staff.Staff) error { return nil }

type fakeMenuRepoForTS struct {
	items map[string]*menu.MenuItem
}

func (f *fakeMenuRepoForTS) WithTx(tx *sql.Tx) menu.Repository { return f }
func (f *fakeMenuRepoForTS) Create(ctx context.Context, m *menu.MenuItem) error {
	return nil
}
func (f *fakeMenuRepoForTS) FindAll(ctx context.Context) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForTS) FindAvailable(ctx context.Context) ([]menu.MenuItem, error) {
	return nil, nil
}
func (f *fakeMenuRepoForTS) FindByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}
func (f *fakeMenuRepoForTS) Update(ctx context.Context, m *menu.MenuItem) error { return nil }
func (f *fakeMenuRepoForTS) Delete(ctx context.Context, id string) error        { return nil }
func (f *fakeMenuRepoForTS) NextNumberForCategory(ctx context.Context, category string) (int64, error) {
	return 0, nil
}

func newTimesheetService(t *testing.T, repo Repository) (Service, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	staffRepo := &fakeStaffRepoForTS{staff: map[string]*staff.Staff{
		"user1": {UserID: "user1", Name: "Bảo", Role: "employee", SalaryPerHour: 25000, Active: true},
		"user6": {UserID: "user6", Name: "Lành", Role: "employee", SalaryPerHour: 20000, Active: true},
	}}
	menuRepo := &fakeMenuRepoForTS{items: map[string]*menu.MenuItem{
		"coffee_002": {ID: "coffee_002", Name: "Cà phê sữa", Price: 25000, Available: true},
	}}

	svc := NewService(db, repo, staffRepo, menuRepo)
	return svc, mock, func() { db.Close() }
}

func TestBaseSalaryFor_RoundsToNearestDong(t *testing.T) {
	checkIn := time.Date(2025, 1, 1, 7, 0, 0, 0, time.Local)
	checkOut := checkIn.Add(5*time.Hour + 30*time.Minute)

	// 5.5 giờ x 25000 = 137500
	assert.Equal(t, int64(137500), BaseSalaryFor(checkIn, checkOut, 25000))

	// 1 phút x 25000/60 = 416.67 -> 417
	assert.Equal(t, int64(417), BaseSalaryFor(checkIn, checkIn.Add(time.Minute), 25000))
}

func TestCheckIn_BlockedWhileShiftOpen(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	_, err := svc.CheckIn(context.Background(), "user1")
	assert.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), "user1")
	assert.ErrorIs(t, err, timesheeterrors.ErrAlreadyCheckedIn)
}

func TestCheckOut_ComputesSalary(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	resp, err := svc.CheckIn(context.Background(), "user1")
	assert.NoError(t, err)

	// Lùi giờ check-in 2 tiếng để ca có độ dài thật
	rec := repo.records[resp.ID]
	rec.CheckIn = rec.CheckIn.Add(-2 * time.Hour)

	out, err := svc.CheckOut(context.Background(), "user1")

	assert.NoError(t, err)
	assert.NotNil(t, out.CheckOut)
	assert.InDelta(t, 2.0, *out.DurationHours, 0.01)
	assert.InDelta(t, float64(50000), float64(*out.BaseSalary), 5)
	assert.Equal(t, *out.BaseSalary, out.Salary)
}

func TestCheckIn_SameSecondKeepsBothShifts(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	// Hai nhân viên vào ca cùng giây (đầu ca là chuyện thường ngày)
	first, err := svc.CheckIn(context.Background(), "user1")
	assert.NoError(t, err)
	second, err := svc.CheckIn(context.Background(), "user6")
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.records, 2)
}

func TestCheckIn_OpenShiftHasNoDerivedPay(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	resp, err := svc.CheckIn(context.Background(), "user1")

	assert.NoError(t, err)
	assert.Nil(t, resp.CheckOut)
	// Chưa check-out thì chưa có giờ công lẫn lương cơ bản
	assert.Nil(t, resp.DurationHours)
	assert.Nil(t, resp.BaseSalary)
}

func TestAdminUpdate_AdjustmentsKeepBaseSalary(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, mock, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	checkIn := time.Date(2025, 1, 1, 7, 0, 0, 0, time.Local)
	checkOut := checkIn.Add(4 * time.Hour)
	created, err := svc.AdminCreate(context.Background(), AdminCreateRequest{
		UserID:   "user1",
		CheckIn:  checkIn,
		CheckOut: &checkOut,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(100000), *created.BaseSalary)

	mock.ExpectBegin()
	mock.ExpectCommit()

	adjustments := []AdjustmentInput{
		{Kind: AdjustmentBonus, Reason: "Làm thêm dọn kho", Amount: 30000},
		{Kind: AdjustmentDeduction, MenuItemID: strPtr("coffee_002")},
	}
	updated, err := svc.AdminUpdate(context.Background(), created.ID, AdminUpdateRequest{
		Adjustments: &adjustments,
	})

	assert.NoError(t, err)
	// Sửa thưởng/phạt không đổi giờ công và lương cơ bản
	assert.Equal(t, *created.BaseSalary, *updated.BaseSalary)
	assert.InDelta(t, *created.DurationHours, *updated.DurationHours, 0.001)
	// Phạt theo món không nhập tiền: 50% giá món = 12500
	assert.Equal(t, int64(100000+30000-12500), updated.Salary)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecompute_AllowsNegativeSalary(t *testing.T) {
	checkIn := time.Date(2025, 1, 1, 7, 0, 0, 0, time.Local)
	checkOut := checkIn.Add(time.Hour)
	rec := &Record{
		CheckIn:       checkIn,
		CheckOut:      &checkOut,
		SalaryPerHour: 20000,
		Adjustments: []PayAdjustment{
			{Kind: AdjustmentDeduction, Amount: 50000},
		},
	}

	rec.Recompute()

	assert.Equal(t, int64(20000), rec.BaseSalary)
	assert.Equal(t, int64(-30000), rec.Salary)
}

func TestApprove_RequiresCheckOut(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	resp, err := svc.CheckIn(context.Background(), "user1")
	assert.NoError(t, err)

	_, err = svc.Approve(context.Background(), resp.ID, "admin-1")

	assert.ErrorIs(t, err, timesheeterrors.ErrShiftStillOpen)
}

func TestApprove_StampsConfirmation(t *testing.T) {
	repo := newFakeTimesheetRepo()
	svc, _, cleanup := newTimesheetService(t, repo)
	defer cleanup()

	checkIn := time.Date(2025, 1, 1, 7, 0, 0, 0, time.Local)
	checkOut := checkIn.Add(4 * time.Hour)
	created, err := svc.AdminCreate(context.Background(), AdminCreateRequest{
		UserID:   "user6",
		CheckIn:  checkIn,
		CheckOut: &checkOut,
	})
	assert.NoError(t, err)

	approved, err := svc.Approve(context.Background(), created.ID, "admin-1")

	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)
	assert.NotNil(t, approved.ConfirmedAt)
	assert.Equal(t, "admin-1", *approved.ConfirmedBy)

	// Đã duyệt thì không sửa được nữa
	note := "sửa sau duyệt"
	_, err = svc.AdminUpdate(context.Background(), created.ID, AdminUpdateRequest{Note: &note})
	assert.ErrorIs(t, err, timesheeterrors.ErrRecordNotPending)
}

func strPtr(s string) *string { return &s }
