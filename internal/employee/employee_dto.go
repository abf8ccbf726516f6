package employee

import (
	"github.com/ipriyanshu25/office.enoylity/internal/shared/listquery"
)

type BankDetailsPayload struct {
	AccountNumber string `json:"account_number" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
}

type AddressPayload struct {
	Line1 string `json:"line1" binding:"required"`
	City  string `json:"city" binding:"required"`
	State string `json:"state" binding:"required"`
	Pin   string `json:"pin" binding:"required"`
}

// SaveEmployeeRequest is the add-mode form payload. EmployeeID may be blank,
// in which case the next counter value is assigned. annual_salary from the
// client is ignored; the server derives it from base_salary.
type SaveEmployeeRequest struct {
	EmployeeID    string             `json:"employeeId"`
	Name          string             `json:"name" binding:"required"`
	Email         string             `json:"email" binding:"required,email"`
	Phone         string             `json:"phone" binding:"required"`
	DOB           string             `json:"dob" binding:"required"`
	AdharNumber   string             `json:"adharnumber" binding:"required"`
	PANNumber     string             `json:"pan_number" binding:"required"`
	DateOfJoining string             `json:"date_of_joining" binding:"required"`
	Department    string             `json:"department"`
	Designation   string             `json:"designation"`
	BaseSalary    int64              `json:"base_salary" binding:"required"`
	AnnualSalary  int64              `json:"annual_salary"`
	BankDetails   BankDetailsPayload `json:"bank_details" binding:"required"`
	Address       AddressPayload     `json:"address" binding:"required"`
}

// UpdateEmployeeRequest is the edit-mode payload; the identifier is
// mandatory and immutable.
type UpdateEmployeeRequest struct {
	EmployeeID    string             `json:"employeeId" binding:"required"`
	Name          string             `json:"name" binding:"required"`
	Email         string             `json:"email" binding:"required,email"`
	Phone         string             `json:"phone" binding:"required"`
	DOB           string             `json:"dob" binding:"required"`
	AdharNumber   string             `json:"adharnumber" binding:"required"`
	PANNumber     string             `json:"pan_number" binding:"required"`
	DateOfJoining string             `json:"date_of_joining" binding:"required"`
	Department    string             `json:"department"`
	Designation   string             `json:"designation"`
	BaseSalary    int64              `json:"base_salary" binding:"required"`
	AnnualSalary  int64              `json:"annual_salary"`
	BankDetails   BankDetailsPayload `json:"bank_details" binding:"required"`
	Address       AddressPayload     `json:"address" binding:"required"`
}

type GetListRequest struct {
	listquery.Params
}

type DeleteEmployeeRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
}

type BankDetailsResponse struct {
	AccountNumber string `json:"account_number"`
	IFSC          string `json:"ifsc"`
	BankName      string `json:"bank_name"`
}

type AddressResponse struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Pin   string `json:"pin"`
}

type EmployeeResponse struct {
	EmployeeID    string              `json:"employeeId"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	DOB           string              `json:"dob"`
	AdharNumber   string              `json:"adharnumber"`
	PANNumber     string              `json:"pan_number"`
	DateOfJoining string              `json:"date_of_joining"`
	Department    string              `json:"department,omitempty"`
	Designation   string              `json:"designation,omitempty"`
	BaseSalary    int64               `json:"base_salary"`
	AnnualSalary  int64               `json:"annual_salary"`
	BankDetails   BankDetailsResponse `json:"bank_details"`
	Address       AddressResponse     `json:"address"`
}

type ListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalPages int                `json:"totalPages"`
}

// OptionResponse is the slim shape the payslip and user-access forms consume.
type OptionResponse struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
}
