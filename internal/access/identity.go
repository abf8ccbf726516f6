package access

// Identity is the session the auth middleware extracts from a verified
// token. Permissions is nil for admins; for subadmins a missing or
// malformed flag set degrades to empty, never to an error.
type Identity struct {
	Role        string
	ActorID     string // adminId or subadminId
	EmployeeID  string
	Permissions map[string]int
}

func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// HasFlag reports whether the named permission flag is granted (value 1).
func (id Identity) HasFlag(name string) bool {
	if id.Permissions == nil {
		return false
	}
	return id.Permissions[name] == 1
}
