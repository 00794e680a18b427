package user

import (
	"context"
	"database/sql"
	"errors"

	common_models "stitchmes/internal/common/models"
	"stitchmes/internal/database"
)

type UserRepository interface {
	GetByEmployeeNumber(ctx context.Context, employeeNumber int) (*Employee, error)
	Create(ctx context.Context, employee *Employee) error
}

type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(pg *database.PostgresDB) UserRepository {
	return &UserRepositoryImpl{db: pg.DB}
}

func (r *UserRepositoryImpl) GetByEmployeeNumber(ctx context.Context, employeeNumber int) (*Employee, error) {
	var e Employee
	err := r.db.QueryRowContext(ctx,
		`SELECT employee_number, name, role, password_hash, active, created_at
		 FROM employees WHERE employee_number = $1`,
		employeeNumber,
	).Scan(&e.EmployeeNumber, &e.Name, &e.Role, &e.PasswordHash, &e.Active, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common_models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *UserRepositoryImpl) Create(ctx context.Context, employee *Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (employee_number, name, role, password_hash, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, NOW())
		 ON CONFLICT (employee_number) DO UPDATE SET name = $2, role = $3, password_hash = $4, active = $5`,
		employee.EmployeeNumber, employee.Name, employee.Role, employee.PasswordHash, employee.Active,
	)
	return err
}
