package emblem

import (
	"context"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/reportquery"
	"stitchmes/pkg/utils"
)

type EmblemService interface {
	Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error)
	ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error)
	CreateSubmission(ctx context.Context, input CreateSubmissionInput, claims *utils.UserClaims) (*Submission, error)
	GetSubmission(ctx context.Context, id int64, claims *utils.UserClaims) (*Submission, error)
}

type EmblemServiceImpl struct {
	Repo EmblemRepository
}

func NewEmblemService(repo EmblemRepository) EmblemService {
	return &EmblemServiceImpl{Repo: repo}
}

func (s *EmblemServiceImpl) Report(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return s.Repo.ListPage(ctx, q)
}

func (s *EmblemServiceImpl) ExportRows(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return s.Repo.ListAll(ctx, q)
}

func validEmblemType(t string) bool {
	return t == TypeSew || t == TypeSticker || t == TypeHeatSeal
}

func (s *EmblemServiceImpl) CreateSubmission(ctx context.Context, input CreateSubmissionInput, claims *utils.UserClaims) (*Submission, error) {
	shiftDate, err := utils.ParseShiftDate(input.ShiftDate)
	if err != nil {
		return nil, common_models.NewValidationError("shift_date", "must be a YYYY-MM-DD date")
	}
	entryTs, err := utils.ParseEntryTs(input.EntryTs, time.Now())
	if err != nil {
		return nil, common_models.NewValidationError("entry_ts", "unparseable timestamp")
	}
	if len(input.Items) == 0 {
		return nil, common_models.NewValidationError("items", "at least one emblem line is required")
	}

	sub := &Submission{
		EntryTs:        entryTs,
		ShiftDate:      shiftDate,
		EmployeeNumber: claims.EmployeeNumber,
		OperatorName:   claims.Name,
		SalesOrder:     input.SalesOrder,
		Notes:          input.Notes,
		Items:          make([]Item, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		if !validEmblemType(item.EmblemType) {
			return nil, common_models.NewValidationError("emblem_type", "must be sew, sticker, or heat_seal")
		}
		if item.Qty <= 0 {
			return nil, common_models.NewValidationError("qty", "must be a positive number")
		}
		sub.Items = append(sub.Items, Item{EmblemType: item.EmblemType, Qty: item.Qty})
	}

	if err := s.Repo.InsertSubmission(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *EmblemServiceImpl) GetSubmission(ctx context.Context, id int64, claims *utils.UserClaims) (*Submission, error) {
	sub, err := s.Repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	if claims.Role == utils.RoleWorker && sub.EmployeeNumber != claims.EmployeeNumber {
		return nil, common_models.ErrNotFound
	}
	return sub, nil
}
