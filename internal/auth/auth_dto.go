package auth

// LoginRequest carries email for the admin and username for subadmins; the
// form posts both through the same field.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Role        string         `json:"role"`
	AdminID     string         `json:"adminId,omitempty"`
	SubadminID  string         `json:"subadminId,omitempty"`
	Permissions map[string]int `json:"permissions,omitempty"`
	EmployeeID  string         `json:"employeeId"`
	Token       string         `json:"token"`
}

// UpdateAdminRequest changes the admin credentials. Either field may be
// omitted to keep its current value.
type UpdateAdminRequest struct {
	AdminID  string `json:"adminId" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}
