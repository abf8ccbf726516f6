package settings

// EditableFields groups the sections the invoice settings screen edits. Each
// section is a free-form label → value map.
type EditableFields struct {
	CompanyInfo   map[string]string `json:"company_info,omitempty"`
	BankDetails   map[string]string `json:"bank_details,omitempty"`
	PayPalDetails map[string]string `json:"paypal_details,omitempty"`
}

type InvoiceSettingsResponse struct {
	SettingsID     string         `json:"settings_id"`
	InvoiceType    string         `json:"invoice_type"`
	EditableFields EditableFields `json:"editable_fields"`
}

// UpdateInvoiceSettingsRequest mirrors the save payload: the invoice type
// plus whichever sections the screen touched. Omitted sections keep their
// stored values.
type UpdateInvoiceSettingsRequest struct {
	InvoiceType   string            `json:"invoice_type" binding:"required"`
	CompanyInfo   map[string]string `json:"company_info"`
	BankDetails   map[string]string `json:"bank_details"`
	PayPalDetails map[string]string `json:"paypal_details"`
}

type SalaryCompanyInfo struct {
	CompanyTitle string `json:"company_title"`
	CompanyName  string `json:"company_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
}

type SalarySettingsResponse struct {
	SettingsID  string            `json:"settings_id"`
	CompanyInfo SalaryCompanyInfo `json:"company_info"`
}

type UpdateSalarySettingsRequest struct {
	SettingsID  string            `json:"settings_id"`
	CompanyInfo SalaryCompanyInfo `json:"company_info" binding:"required"`
}
