package payslip

// SalaryComponent is one row of the salary structure the generate form posts
// (Basic Pay, House Rent Allowance, and so on).
type SalaryComponent struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount"`
}

// GeneratePayslipRequest mirrors the generate form payload. Date arrives as
// DD-MM-YYYY and month as MM-YYYY; the TDS key is spelled exactly as the form
// sends it.
type GeneratePayslipRequest struct {
	EmployeeID      string            `json:"employee_id" binding:"required"`
	LOP             float64           `json:"lop"`
	Date            string            `json:"date" binding:"required"`
	Month           string            `json:"month" binding:"required"`
	SalaryStructure []SalaryComponent `json:"salary_structure" binding:"required,min=1,dive"`
	TDS             float64           `json:"Tax Deduction at Source (TDS)"`
}

type GetPayslipsRequest struct {
	Search   string `json:"search"`
	Month    string `json:"month"`
	Year     string `json:"year"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type DeletePayslipRequest struct {
	PayslipID string `json:"payslipId" binding:"required"`
}

type PayslipResponse struct {
	PayslipID       string             `json:"payslipId"`
	EmployeeID      string             `json:"employeeId"`
	EmployeeName    string             `json:"employeeName,omitempty"`
	Month           int                `json:"month"`
	Year            int                `json:"year"`
	GeneratedOn     string             `json:"generated_on"`
	LOPDays         float64            `json:"lop_days"`
	SalaryStructure []SalaryComponent  `json:"salary_structure,omitempty"`
	EmpSnapshot     map[string]float64 `json:"emp_snapshot,omitempty"`
}

type PaginationResponse struct {
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
}

type ListResponse struct {
	Payslips   []PayslipResponse  `json:"payslips"`
	Pagination PaginationResponse `json:"pagination"`
}

// GeneratedDocument carries the persisted row plus the rendered PDF up to
// the handler.
type GeneratedDocument struct {
	Payslip  PayslipResponse
	FileName string
	PDF      []byte
}
