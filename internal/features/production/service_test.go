package production

import (
	"context"
	"errors"
	"testing"
	"time"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/reportquery"
	"stitchmes/pkg/utils"
)

type fakeRepo struct {
	inserted *Entry
	nextID   int64
	byID     map[int64]*Entry
}

func (f *fakeRepo) ListPage(ctx context.Context, q reportquery.Query) (*reportquery.Result, error) {
	return &reportquery.Result{}, nil
}

func (f *fakeRepo) ListAll(ctx context.Context, q reportquery.Query) ([]map[string]interface{}, error) {
	return nil, nil
}

func (f *fakeRepo) Insert(ctx context.Context, entry *Entry) (int64, error) {
	f.inserted = entry
	return f.nextID, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Entry, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, common_models.ErrNotFound
}

func validInput() CreateEntryInput {
	return CreateEntryInput{
		ShiftDate:     "2025-06-15",
		MachineNumber: 4,
		SalesOrder:    7001234,
		DesignNumber:  "D-5521",
		Pieces:        48,
		StitchCount:   192000,
	}
}

func workerClaims() *utils.UserClaims {
	return &utils.UserClaims{EmployeeNumber: 3001, Name: "Marisol Vega", Role: utils.RoleWorker}
}

func TestCreateEntryValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *CreateEntryInput)
		wantField string
	}{
		{
			name:      "Missing Shift Date",
			mutate:    func(in *CreateEntryInput) { in.ShiftDate = "" },
			wantField: "shift_date",
		},
		{
			name:      "Bad Shift Date",
			mutate:    func(in *CreateEntryInput) { in.ShiftDate = "06/15/2025" },
			wantField: "shift_date",
		},
		{
			name:      "Bad Entry Timestamp",
			mutate:    func(in *CreateEntryInput) { in.EntryTs = "yesterday" },
			wantField: "entry_ts",
		},
		{
			name:      "Zero Pieces",
			mutate:    func(in *CreateEntryInput) { in.Pieces = 0 },
			wantField: "pieces",
		},
		{
			name:      "Negative Pieces",
			mutate:    func(in *CreateEntryInput) { in.Pieces = -3 },
			wantField: "pieces",
		},
		{
			name:      "Missing Machine",
			mutate:    func(in *CreateEntryInput) { in.MachineNumber = 0 },
			wantField: "machine_number",
		},
		{
			name:      "Missing Design",
			mutate:    func(in *CreateEntryInput) { in.DesignNumber = "" },
			wantField: "design_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewProductionService(&fakeRepo{nextID: 1})
			in := validInput()
			tt.mutate(&in)

			_, err := service.CreateEntry(context.Background(), in, workerClaims())

			var vErr *common_models.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestCreateEntryStampsEmployeeFromClaims(t *testing.T) {
	repo := &fakeRepo{nextID: 42}
	service := NewProductionService(repo)

	entry, err := service.CreateEntry(context.Background(), validInput(), workerClaims())
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if entry.ID != 42 {
		t.Errorf("ID = %d, want 42", entry.ID)
	}
	if repo.inserted.EmployeeNumber != 3001 {
		t.Errorf("EmployeeNumber = %d, want claims value 3001", repo.inserted.EmployeeNumber)
	}
	if repo.inserted.EmployeeName != "Marisol Vega" {
		t.Errorf("EmployeeName = %q, want claims value", repo.inserted.EmployeeName)
	}
	if repo.inserted.EntryTs.IsZero() {
		t.Error("empty entry_ts should default to submission time")
	}
}

func TestGetEntryWorkerOwnership(t *testing.T) {
	own := &Entry{ID: 1, EmployeeNumber: 3001, ShiftDate: time.Now()}
	foreign := &Entry{ID: 2, EmployeeNumber: 3002, ShiftDate: time.Now()}
	repo := &fakeRepo{byID: map[int64]*Entry{1: own, 2: foreign}}
	service := NewProductionService(repo)

	t.Run("Worker Reads Own Entry", func(t *testing.T) {
		got, err := service.GetEntry(context.Background(), 1, workerClaims())
		if err != nil {
			t.Fatalf("GetEntry: %v", err)
		}
		if got.ID != 1 {
			t.Errorf("ID = %d, want 1", got.ID)
		}
	})

	t.Run("Foreign Entry Reads As Missing", func(t *testing.T) {
		_, err := service.GetEntry(context.Background(), 2, workerClaims())
		if !errors.Is(err, common_models.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("Manager Reads Any Entry", func(t *testing.T) {
		manager := &utils.UserClaims{EmployeeNumber: 2001, Name: "Dana Whitfield", Role: utils.RoleManager}
		got, err := service.GetEntry(context.Background(), 2, manager)
		if err != nil {
			t.Fatalf("GetEntry: %v", err)
		}
		if got.ID != 2 {
			t.Errorf("ID = %d, want 2", got.ID)
		}
	})

	t.Run("Unknown Id", func(t *testing.T) {
		_, err := service.GetEntry(context.Background(), 99, workerClaims())
		if !errors.Is(err, common_models.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestReportDefinitionAllowLists(t *testing.T) {
	def := Definition()

	if def.DefaultSort == "" {
		t.Error("DefaultSort must be set")
	}
	if _, ok := def.SortKeys[def.DefaultSort]; !ok {
		t.Errorf("DefaultSort %q should itself be an allow-listed key", def.DefaultSort)
	}
	if def.MinPageSize < 1 || def.DefaultPageSize < def.MinPageSize || def.DefaultPageSize > def.MaxPageSize {
		t.Errorf("page bounds inconsistent: min=%d default=%d max=%d",
			def.MinPageSize, def.DefaultPageSize, def.MaxPageSize)
	}
	if len(def.CSVColumns) == 0 {
		t.Error("CSVColumns must be set for exports")
	}
}
