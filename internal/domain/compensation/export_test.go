package compensation

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestRegisterCSV(t *testing.T) {
	summary := MonthSummary{
		Month: "2025-03",
		Breakdowns: []Breakdown{
			{
				EmployeeID:    "emp-1",
				Name:          "Mina Okabe",
				Role:          "engineer",
				Tier:          "T3",
				Month:         "2025-03",
				MonthlyPoints: 1200.5,
				BaseSalary:    400000,
				Incentive:     30000,
				Allowance:     10000,
				Gross:         440000,
				Net:           396000,
			},
			{
				EmployeeID: "emp-2",
				Name:       "Dan Petrov",
				Role:       "designer",
				Tier:       "T2",
				Month:      "2025-03",
			},
		},
	}

	payload, err := RegisterCSV(summary)
	if err != nil {
		t.Fatalf("RegisterCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(payload)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "employee_id" || rows[0][9] != "net" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][4] != "1200.50" {
		t.Errorf("monthly points column = %q, want 1200.50", rows[1][4])
	}
	if rows[1][9] != "396000" {
		t.Errorf("net column = %q, want 396000", rows[1][9])
	}
	if rows[2][5] != "0" {
		t.Errorf("zero base salary column = %q, want 0", rows[2][5])
	}
}

func TestStatementPDF(t *testing.T) {
	payload, err := StatementPDF(Breakdown{
		EmployeeID:    "emp-1",
		Name:          "Mina Okabe",
		Role:          "engineer",
		Tier:          "T3",
		Month:         "2025-03",
		MonthlyPoints: 1200.5,
		BaseSalary:    400000,
		Gross:         440000,
		Net:           396000,
	})
	if err != nil {
		t.Fatalf("StatementPDF: %v", err)
	}
	if !strings.HasPrefix(string(payload), "%PDF") {
		t.Fatal("statement payload is not a PDF document")
	}
}
