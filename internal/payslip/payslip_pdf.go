package payslip

import (
	"fmt"
	"time"

	"github.com/ipriyanshu25/office.enoylity/internal/settings"
)

// buildDocumentLines lays the payslip out as text lines for the shared PDF
// writer. The company block comes from the salary settings screen.
func buildDocumentLines(company settings.SalaryCompanyInfo, slip PayslipResponse, netPay float64) []string {
	var lines []string

	if company.CompanyTitle != "" {
		lines = append(lines, company.CompanyTitle)
	}
	if company.CompanyName != "" {
		lines = append(lines, company.CompanyName)
	}
	if company.AddressLine1 != "" {
		lines = append(lines, company.AddressLine1)
	}
	if company.AddressLine2 != "" {
		lines = append(lines, company.AddressLine2)
	}

	lines = append(lines,
		"",
		fmt.Sprintf("PAYSLIP  %s %d", time.Month(slip.Month).String(), slip.Year),
		fmt.Sprintf("Employee: %s (%s)", slip.EmployeeName, slip.EmployeeID),
		fmt.Sprintf("Generated on: %s", slip.GeneratedOn),
		"",
		"Earnings:",
	)

	var gross float64
	for _, comp := range slip.SalaryStructure {
		lines = append(lines, fmt.Sprintf("%s  %.2f", comp.Name, comp.Amount))
		gross += comp.Amount
	}

	tds := slip.EmpSnapshot["Tax Deduction at Source (TDS)"]

	lines = append(lines,
		"",
		fmt.Sprintf("Gross pay: %.2f", gross),
		fmt.Sprintf("Loss of pay days: %.1f", slip.LOPDays),
		fmt.Sprintf("Tax Deduction at Source (TDS): %.2f", tds),
		fmt.Sprintf("Net pay: %.2f", netPay),
	)

	return lines
}
