package qc

import (
	"context"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/reportquery"
	"stitchmes/pkg/utils"
)

type QCService interface {
	Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error)
	GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error)
}

type QCServiceImpl struct {
	Repo QCRepository
}

func NewQCService(repo QCRepository) QCService {
	return &QCServiceImpl{Repo: repo}
}

func (s *QCServiceImpl) Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return s.Repo.ListPage(ctx, q)
}

func (s *QCServiceImpl) ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return s.Repo.ListAll(ctx, q)
}

func (s *QCServiceImpl) CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error) {
	shiftDate, err := utils.ParseShiftDate(input.ShiftDate)
	if err != nil {
		return nil, common_models.NewValidationError("shift_date", "must be a YYYY-MM-DD date")
	}
	entryTs, err := utils.ParseEntryTs(input.EntryTs, time.Now())
	if err != nil {
		return nil, common_models.NewValidationError("entry_ts", "unparseable timestamp")
	}
	if input.QtyInspected <= 0 {
		return nil, common_models.NewValidationError("qty_inspected", "must be a positive number")
	}
	if input.QtyPassed < 0 || input.QtyRejected < 0 {
		return nil, common_models.NewValidationError("qty_passed", "pass/reject counts cannot be negative")
	}
	if input.QtyPassed+input.QtyRejected > input.QtyInspected {
		return nil, common_models.NewValidationError("qty_inspected", "pass + reject exceeds inspected quantity")
	}
	if input.QtyRejected > 0 && input.DefectType == "" {
		return nil, common_models.NewValidationError("defect_type", "is required when pieces are rejected")
	}

	entry := &Entry{
		EntryTs:        entryTs,
		ShiftDate:      shiftDate,
		EmployeeNumber: claims.EmployeeNumber,
		InspectorName:  claims.Name,
		SalesOrder:     input.SalesOrder,
		DetailNumber:   input.DetailNumber,
		QtyInspected:   input.QtyInspected,
		QtyPassed:      input.QtyPassed,
		QtyRejected:    input.QtyRejected,
		DefectType:     input.DefectType,
		Notes:          input.Notes,
	}

	id, err := s.Repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *QCServiceImpl) GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error) {
	entry, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claims.Role == utils.RoleWorker && entry.EmployeeNumber != claims.EmployeeNumber {
		return nil, common_models.ErrNotFound
	}
	return entry, nil
}
