package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/config"
	leaveerrors "github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/leave/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, companyID, approverID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, approverID, id string, req RejectLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, id string) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID string) ([]LeaveResponse, error)
	GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalanceResponse, error)
}

type service struct {
	db    *sql.DB
	repo  Repository
	types map[string]config.LeaveTypeRule
}

func NewService(db *sql.DB, repo Repository, types map[string]config.LeaveTypeRule) Service {
	if types == nil {
		types = config.DefaultLeaveTypes()
	}
	return &service{db: db, repo: repo, types: types}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	if _, ok := s.types[req.LeaveType]; !ok {
		return LeaveResponse{}, leaveerrors.ErrUnknownLeaveType
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlappingApproved(ctx, companyID, req.EmployeeID, startDate, endDate, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	row := &LeaveRequest{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  countDays(startDate, endDate),
		Reason:     req.Reason,
		Status:     StatusPending,
		CreatedBy:  uuid.MustParse(actorID),
	}

	if err := qtx.Create(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*row), nil
}

// Approve moves a pending request to APPROVED and deducts the employee's
// balance for balance-tracked (paid) leave types. This is the only place
// the balance is ever deducted; payroll calculation reads it but never
// deducts again.
func (s *service) Approve(ctx context.Context, companyID, approverID, id string) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	excludeID := row.ID.String()
	overlap, err := qtx.HasOverlappingApproved(ctx, companyID, row.EmployeeID.String(), row.StartDate, row.EndDate, &excludeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if rule, ok := s.types[row.LeaveType]; ok && rule.Paid {
		balance, err := qtx.FindBalance(ctx, companyID, row.EmployeeID.String(), row.LeaveType, row.StartDate.Year())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
			}
			return LeaveResponse{}, err
		}
		if balance.Remaining() < row.TotalDays {
			return LeaveResponse{}, leaveerrors.ErrInsufficientBalance
		}
		balance.Used += row.TotalDays
		if err := qtx.SaveBalance(ctx, balance); err != nil {
			return LeaveResponse{}, err
		}
	}

	now := time.Now().UTC()
	approver := uuid.MustParse(approverID)
	row.Status = StatusApproved
	row.ApprovedBy = &approver
	row.ApprovedAt = &now

	if err := qtx.Update(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Reject(ctx context.Context, companyID, approverID, id string, req RejectLeaveRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	approver := uuid.MustParse(approverID)
	row.Status = StatusRejected
	row.ApprovedBy = &approver
	row.RejectionReason = &req.Reason

	if err := qtx.Update(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) Cancel(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	row.Status = StatusCancelled

	if err := qtx.Update(ctx, row); err != nil {
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetBalances(ctx context.Context, companyID, employeeID string, year int) ([]LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListBalances(ctx, companyID, employeeID, year)
	if err != nil {
		return nil, err
	}
	res := make([]LeaveBalanceResponse, len(rows))
	for i, b := range rows {
		res[i] = LeaveBalanceResponse{
			EmployeeID: b.EmployeeID.String(),
			LeaveType:  b.LeaveType,
			Year:       b.Year,
			Entitled:   b.Entitled,
			Used:       b.Used,
			Remaining:  b.Remaining(),
		}
	}
	return res, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		CompanyID:       l.CompanyID.String(),
		EmployeeID:      l.EmployeeID.String(),
		LeaveType:       l.LeaveType,
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          l.Status,
		CreatedBy:       l.CreatedBy.String(),
		RejectionReason: l.RejectionReason,
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	return resp
}
