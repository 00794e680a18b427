package user

import "time"

// Employee is a factory worker, manager, or admin who can log in
type Employee struct {
	EmployeeNumber int       `json:"employee_number"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	PasswordHash   string    `json:"-"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}
