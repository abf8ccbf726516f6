package access

// Roles persisted on login records. Admin implicitly satisfies every
// capability check; subadmins carry an explicit permission-flag set.
const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
)

// Domains and actions routes are gated on.
const (
	DomainEmployee   = "employee"
	DomainInvoice    = "invoice"
	DomainPayslip    = "payslip"
	DomainKPI        = "kpi"
	DomainUserAccess = "useraccess"
	DomainSettings   = "settings"

	ActionView     = "view"
	ActionAdd      = "add"
	ActionGenerate = "generate"
	ActionManage   = "manage"
	ActionDelete   = "delete"
)

// Permission flag names exactly as stored on subadmin records and shown in
// the user-access form.
const (
	PermViewPayslip     = "View payslip details"
	PermGeneratePayslip = "Generate payslip"
	PermViewInvoice     = "View Invoice details"
	PermGenerateInvoice = "Generate invoice details"
	PermAddEmployee     = "Add Employee Details"
	PermViewEmployee    = "View Employee Details"
	PermManageKPI       = "Manage KPI"
	PermUserAccess      = "User Access"
	PermManageSettings  = "Manage Settings"
)

// PermissionNames lists every grantable flag, in the order the form shows them.
var PermissionNames = []string{
	PermViewPayslip,
	PermGeneratePayslip,
	PermViewInvoice,
	PermGenerateInvoice,
	PermAddEmployee,
	PermViewEmployee,
	PermManageKPI,
	PermUserAccess,
	PermManageSettings,
}

type capabilityKey struct {
	Domain string
	Action string
}

// capabilityTable is the single place a (domain, action) pair maps to the
// permission flag it needs. Every screen consults this through the gate
// instead of repeating its own role/flag expression.
var capabilityTable = map[capabilityKey]string{
	{DomainEmployee, ActionView}:     PermViewEmployee,
	{DomainEmployee, ActionAdd}:      PermAddEmployee,
	{DomainEmployee, ActionDelete}:   PermAddEmployee,
	{DomainInvoice, ActionView}:      PermViewInvoice,
	{DomainInvoice, ActionGenerate}:  PermGenerateInvoice,
	{DomainInvoice, ActionDelete}:    PermGenerateInvoice,
	{DomainPayslip, ActionView}:      PermViewPayslip,
	{DomainPayslip, ActionGenerate}:  PermGeneratePayslip,
	{DomainPayslip, ActionDelete}:    PermGeneratePayslip,
	{DomainKPI, ActionManage}:        PermManageKPI,
	{DomainUserAccess, ActionManage}: PermUserAccess,
	{DomainSettings, ActionManage}:   PermManageSettings,
}

// RequiredPermission resolves the flag a capability needs. ok=false means the
// capability is unknown, which always denies for non-admins.
func RequiredPermission(domain, action string) (string, bool) {
	name, ok := capabilityTable[capabilityKey{Domain: domain, Action: action}]
	return name, ok
}
