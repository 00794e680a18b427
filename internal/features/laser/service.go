package laser

import (
	"context"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/reportquery"
	"stitchmes/pkg/utils"
)

type LaserService interface {
	Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error)
	GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error)
}

type LaserServiceImpl struct {
	Repo LaserRepository
}

func NewLaserService(repo LaserRepository) LaserService {
	return &LaserServiceImpl{Repo: repo}
}

func (s *LaserServiceImpl) Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return s.Repo.ListPage(ctx, q)
}

func (s *LaserServiceImpl) ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return s.Repo.ListAll(ctx, q)
}

func (s *LaserServiceImpl) CreateEntry(ctx context.Context, input CreateEntryInput, claims *utils.UserClaims) (*Entry, error) {
	shiftDate, err := utils.ParseShiftDate(input.ShiftDate)
	if err != nil {
		return nil, common_models.NewValidationError("shift_date", "must be a YYYY-MM-DD date")
	}
	entryTs, err := utils.ParseEntryTs(input.EntryTs, time.Now())
	if err != nil {
		return nil, common_models.NewValidationError("entry_ts", "unparseable timestamp")
	}
	if input.QtyCut <= 0 {
		return nil, common_models.NewValidationError("qty_cut", "must be a positive number")
	}
	if input.Material == "" {
		return nil, common_models.NewValidationError("material", "is required")
	}

	entry := &Entry{
		EntryTs:        entryTs,
		ShiftDate:      shiftDate,
		EmployeeNumber: claims.EmployeeNumber,
		OperatorName:   claims.Name,
		SalesOrder:     input.SalesOrder,
		DetailNumber:   input.DetailNumber,
		Material:       input.Material,
		QtyCut:         input.QtyCut,
		IsThreeD:       input.IsThreeD,
		Notes:          input.Notes,
	}

	id, err := s.Repo.Insert(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = id
	return entry, nil
}

func (s *LaserServiceImpl) GetEntry(ctx context.Context, id int64, claims *utils.UserClaims) (*Entry, error) {
	entry, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if claims.Role == utils.RoleWorker && entry.EmployeeNumber != claims.EmployeeNumber {
		return nil, common_models.ErrNotFound
	}
	return entry, nil
}
