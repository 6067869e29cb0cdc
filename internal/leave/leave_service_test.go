package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave"
	leaveerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	createFn      func(ctx context.Context, l *leave.LeaveRequest) error
	findByIDFn    func(ctx context.Context, companyID, id string) (*leave.LeaveRequest, error)
	updateFn      func(ctx context.Context, l *leave.LeaveRequest) error
	hasOverlapFn  func(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)
	findBalanceFn func(ctx context.Context, companyID, employeeID, leaveType string, year int) (*leave.LeaveBalance, error)
	saveBalanceFn func(ctx context.Context, b *leave.LeaveBalance) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository { return f }
func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}
func (f *fakeLeaveRepository) FindAllByCompany(ctx context.Context, companyID string) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepository) ListApprovedByEmployeeAndRange(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}
func (f *fakeLeaveRepository) HasOverlappingApproved(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	if f.hasOverlapFn != nil {
		return f.hasOverlapFn(ctx, companyID, employeeID, startDate, endDate, excludeID)
	}
	return false, nil
}
func (f *fakeLeaveRepository) FindBalance(ctx context.Context, companyID, employeeID, leaveType string, year int) (*leave.LeaveBalance, error) {
	if f.findBalanceFn != nil {
		return f.findBalanceFn(ctx, companyID, employeeID, leaveType, year)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeLeaveRepository) ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]leave.LeaveBalance, error) {
	return nil, nil
}
func (f *fakeLeaveRepository) SaveBalance(ctx context.Context, b *leave.LeaveBalance) error {
	if f.saveBalanceFn != nil {
		return f.saveBalanceFn(ctx, b)
	}
	return nil
}

type leaveServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeLeaveRepository
	service leave.Service
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	deps := &leaveServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    &fakeLeaveRepository{},
	}
	deps.service = leave.NewService(db, deps.repo, nil)
	return deps
}

func pendingRequest(companyID uuid.UUID, leaveType string, days int) *leave.LeaveRequest {
	start := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	return &leave.LeaveRequest{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: uuid.New(),
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, days-1),
		TotalDays:  days,
		Status:     leave.StatusPending,
		CreatedBy:  uuid.New(),
	}
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	approverID := uuid.New().String()

	t.Run("paid leave deducts the balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "ANNUAL", 3)
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}
		deps.repo.findBalanceFn = func(ctx context.Context, cid, eid, leaveType string, year int) (*leave.LeaveBalance, error) {
			assert.Equal(t, "ANNUAL", leaveType)
			assert.Equal(t, 2026, year)
			return &leave.LeaveBalance{
				CompanyID:  companyID,
				EmployeeID: req.EmployeeID,
				LeaveType:  "ANNUAL",
				Year:       2026,
				Entitled:   10,
				Used:       4,
			}, nil
		}

		var savedBalance *leave.LeaveBalance
		deps.repo.saveBalanceFn = func(ctx context.Context, b *leave.LeaveBalance) error {
			savedBalance = b
			return nil
		}
		var updated *leave.LeaveRequest
		deps.repo.updateFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			updated = l
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)

		assert.NotNil(t, savedBalance)
		assert.Equal(t, 7, savedBalance.Used)
		assert.Equal(t, 3, savedBalance.Remaining())
		assert.NotNil(t, updated)
		assert.Equal(t, leave.StatusApproved, updated.Status)
		assert.NotNil(t, updated.ApprovedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("insufficient balance rejects approval", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "ANNUAL", 5)
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}
		deps.repo.findBalanceFn = func(ctx context.Context, cid, eid, leaveType string, year int) (*leave.LeaveBalance, error) {
			return &leave.LeaveBalance{Entitled: 10, Used: 8}, nil
		}
		deps.repo.saveBalanceFn = func(ctx context.Context, b *leave.LeaveBalance) error {
			t.Fatal("balance must not be written")
			return nil
		}
		deps.repo.updateFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			t.Fatal("request must not be updated")
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
		assert.Equal(t, leave.StatusPending, req.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing balance row rejects paid leave", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "SICK", 2)
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInsufficientBalance)
	})

	t.Run("unpaid leave skips the balance", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "UNPAID", 4)
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}
		deps.repo.findBalanceFn = func(ctx context.Context, cid, eid, leaveType string, year int) (*leave.LeaveBalance, error) {
			t.Fatal("unpaid leave has no balance to read")
			return nil, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("overlapping approved range rejects", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "ANNUAL", 3)
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}
		deps.repo.hasOverlapFn = func(ctx context.Context, cid, eid string, start, end time.Time, excludeID *string) (bool, error) {
			assert.NotNil(t, excludeID)
			assert.Equal(t, req.ID.String(), *excludeID)
			return true, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("non-pending request rejects", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		req := pendingRequest(companyID, "ANNUAL", 3)
		req.Status = leave.StatusApproved
		deps.repo.findByIDFn = func(ctx context.Context, cid, id string) (*leave.LeaveRequest, error) {
			return req, nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Approve(ctx, companyID.String(), approverID, req.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrNotPending)
	})
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()

	t.Run("valid request lands pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		var created *leave.LeaveRequest
		deps.repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			created = l
			return nil
		}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Create(ctx, companyID, actorID, leave.CreateLeaveRequest{
			EmployeeID: uuid.New().String(),
			LeaveType:  "ANNUAL",
			StartDate:  "2026-06-10",
			EndDate:    "2026-06-12",
			Reason:     "family",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, 3, resp.TotalDays)
		assert.NotNil(t, created)
		assert.Equal(t, 3, created.TotalDays)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, leave.CreateLeaveRequest{
			EmployeeID: uuid.New().String(),
			LeaveType:  "SABBATICAL",
			StartDate:  "2026-06-10",
			EndDate:    "2026-06-12",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrUnknownLeaveType)
	})

	t.Run("inverted date range", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, leave.CreateLeaveRequest{
			EmployeeID: uuid.New().String(),
			LeaveType:  "ANNUAL",
			StartDate:  "2026-06-12",
			EndDate:    "2026-06-10",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}
