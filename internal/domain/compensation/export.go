package compensation

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// RegisterCSV renders a monthly salary register, one row per employee.
func RegisterCSV(summary MonthSummary) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"employee_id", "name", "role", "tier", "monthly_points", "base_salary", "incentive", "allowance", "gross", "net"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, b := range summary.Breakdowns {
		record := []string{
			b.EmployeeID,
			b.Name,
			b.Role,
			b.Tier,
			strconv.FormatFloat(b.MonthlyPoints, 'f', 2, 64),
			strconv.FormatInt(b.BaseSalary, 10),
			strconv.FormatInt(b.Incentive, 10),
			strconv.FormatInt(b.Allowance, 10),
			strconv.FormatInt(b.Gross, 10),
			strconv.FormatInt(b.Net, 10),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// StatementPDF renders one employee's monthly salary statement.
func StatementPDF(b Breakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statement")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", b.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Role / Tier: %s / %s", b.Role, b.Tier))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Month: %s", b.Month))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly points: %.2f", b.MonthlyPoints))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %d", b.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Incentive: %d", b.Incentive))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowance: %d", b.Allowance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Gross: %d", b.Gross))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net: %d", b.Net))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
