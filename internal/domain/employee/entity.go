package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	UserID           *string
	EmployeeCode     string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Position         string
	DepartmentID     string
	Salary           decimal.Decimal
	HireDate         time.Time
	Status           Status
	ManagerName      *string
	AvatarURL        *string
	Address          Address
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phone_number"`
}

// FullName returns the display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
