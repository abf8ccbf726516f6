package subadmin

// RegisterRequest mirrors the user-access form payload, lowercase keys and
// all. adminid is informational; the actor is taken from the session.
type RegisterRequest struct {
	AdminID     string         `json:"adminid"`
	EmployeeID  string         `json:"employeeid" binding:"required"`
	Username    string         `json:"username" binding:"required,min=3"`
	Password    string         `json:"password" binding:"required,min=6"`
	Permissions map[string]int `json:"permissions" binding:"required"`
}

type GetListRequest struct {
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type DeleteRequest struct {
	SubadminID string `json:"subadminId" binding:"required"`
}

type SubadminResponse struct {
	SubadminID  string         `json:"subadminId"`
	EmployeeID  string         `json:"employeeId"`
	Username    string         `json:"username"`
	Permissions map[string]int `json:"permissions"`
}

type ListResponse struct {
	Subadmins []SubadminResponse `json:"subadmins"`
	Total     int                `json:"total"`
}
