package production

import (
	"context"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/reportquery"
	"stitchmes/pkg/utils"
)

type ProductionService interface {
	Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error)
	GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error)
}

type ProductionServiceImpl struct {
	Repo ProductionRepository
}

func NewProductionService(repo ProductionRepository) ProductionService {
	return &ProductionServiceImpl{Repo: repo}
}

func (s *ProductionServiceImpl) Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return s.Repo.ListPage(ctx, q)
}

func (s *ProductionServiceImpl) ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return s.Repo.ListAll(ctx, q)
}

func (s *ProductionServiceImpl) CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error) {
	shiftDate, err := utils.ParseShiftDate(input.ShiftDate)
	if err != nil {
		return nil, common_models.NewValidationError("shift_date", "must be a YYYY-MM-DD date")
	}
	entryTs, err := utils.ParseEntryTs(input.EntryTs, time.Now())
	if err != nil {
		return nil, common_models.NewValidationError("entry_ts", "unparseable timestamp")
	}
	if input.Pieces <= 0 {
		return nil, common_models.NewValidationError("pieces", "must be a positive number")
	}
	if input.MachineNumber <= 0 {
		return nil, common_models.NewValidationError("machine_number", "must be a positive number")
	}
	if input.DesignNumber == "" {
		return nil, common_models.NewValidationError("design_number", "is required")
	}

	entry := &Entry{
		EntryTs:        entryTs,
		ShiftDate:      shiftDate,
		EmployeeNumber: claims.EmployeeNumber,
		EmployeeName:   claims.Name,
		MachineNumber:  input.MachineNumber,
		SalesOrder:     input.SalesOrder,
		DesignNumber:   input.DesignNumber,
		Pieces:         input.Pieces,
		StitchCount:    input.StitchCount,
		IsSample:       input.IsSample,
		Notes:          input.Notes,
	}

	id, err := s.Repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *ProductionServiceImpl) GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error) {
	entry, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Workers only see their own entries; a foreign id reads as missing
	if claims.Role == utils.RoleWorker && entry.EmployeeNumber != claims.EmployeeNumber {
		return nil, common_models.ErrNotFound
	}
	return entry, nil
}
