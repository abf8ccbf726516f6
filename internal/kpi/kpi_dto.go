package kpi

// Field casing below follows the dashboard payloads exactly, including the
// capitalized Remark on the add/update forms.

type AddKPIRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	ProjectName string `json:"projectName" binding:"required"`
	StartDate   string `json:"startdate" binding:"required"`
	Deadline    string `json:"deadline" binding:"required"`
	Remark      string `json:"Remark"`
}

type UpdateKPIRequest struct {
	KpiID       string `json:"kpiId" binding:"required"`
	ProjectName string `json:"projectName"`
	Remark      string `json:"Remark"`
	Points      *int   `json:"points"`
}

type GetAllRequest struct {
	Search    string `json:"search"`
	Page      int    `json:"page"`
	PageSize  int    `json:"pageSize"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type GetByEmployeeRequest struct {
	GetAllRequest
	EmployeeID string `json:"employeeId" binding:"required"`
}

type PunchRequest struct {
	KpiID  string `json:"kpiId" binding:"required"`
	Remark string `json:"remark"`
	Status string `json:"status" binding:"required"`
}

type DeleteKPIRequest struct {
	KpiID string `json:"kpiId" binding:"required"`
}

type PunchResponse struct {
	PunchDate string `json:"punchDate"`
	Remark    string `json:"remark"`
	Status    string `json:"status"`
}

type KPIResponse struct {
	KpiID        string          `json:"kpiId"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	ProjectName  string          `json:"projectName"`
	StartDate    *string         `json:"startdate"`
	Deadline     *string         `json:"deadline"`
	Remark       string          `json:"remark"`
	Points       int             `json:"points"`
	Punches      []PunchResponse `json:"punches"`
	CreatedAt    string          `json:"createdAt"`
}

type ListResponse struct {
	Kpis     []KPIResponse `json:"kpis"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Total    int           `json:"total"`
}
