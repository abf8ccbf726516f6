package invoice

import (
	"fmt"
	"sort"

	"github.com/ipriyanshu25/office.enoylity/internal/settings"
)

func paymentMethodLabel(code int) string {
	switch code {
	case PaymentPayPal:
		return "PayPal"
	case PaymentBankTransfer:
		return "Bank Transfer"
	default:
		return "Other"
	}
}

// sectionLines renders a settings section in stable label order.
func sectionLines(section map[string]string) []string {
	keys := make([]string, 0, len(section))
	for k := range section {
		if section[k] != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, section[k]))
	}
	return lines
}

// buildDocumentLines lays the invoice out as the text lines the shared PDF
// writer renders. The profile comes from the settings screen; an empty one
// falls back to just the entity display name.
func buildDocumentLines(entity BusinessEntity, profile settings.EditableFields, inv InvoiceResponse) []string {
	lines := []string{entity.DisplayName}
	lines = append(lines, sectionLines(profile.CompanyInfo)...)

	lines = append(lines,
		"",
		fmt.Sprintf("INVOICE %s", inv.InvoiceNumber),
		fmt.Sprintf("Invoice date: %s", inv.InvoiceDate),
		fmt.Sprintf("Due date: %s", inv.DueDate),
		"",
		"Bill to:",
		inv.BillTo.Name,
	)

	if inv.BillTo.Address != "" {
		lines = append(lines, inv.BillTo.Address)
	}
	if inv.BillTo.Email != "" {
		lines = append(lines, inv.BillTo.Email)
	}
	if inv.BillTo.Phone != "" {
		lines = append(lines, inv.BillTo.Phone)
	}

	lines = append(lines, "", "Items:")
	for _, item := range inv.Items {
		lines = append(lines, fmt.Sprintf("%s  x%d  @ %.2f  = %.2f",
			item.Description, item.Quantity, item.Price, float64(item.Quantity)*item.Price))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Total: %.2f", inv.Total),
		fmt.Sprintf("Payment method: %s", paymentMethodLabel(inv.PaymentMethod)),
	)

	switch inv.PaymentMethod {
	case PaymentPayPal:
		lines = append(lines, sectionLines(profile.PayPalDetails)...)
	case PaymentBankTransfer:
		lines = append(lines, sectionLines(profile.BankDetails)...)
		if inv.BankNote != "" {
			lines = append(lines, fmt.Sprintf("Bank note: %s", inv.BankNote))
		}
	}

	if inv.Note != "" {
		lines = append(lines, "", inv.Note)
	}

	return lines
}
