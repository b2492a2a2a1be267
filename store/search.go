package store

import (
	"strings"

	"Employee-Onboarding-System/models"
)

// Filter returns the records whose searchable fields contain the query as a
// case-insensitive substring. A blank query keeps every record.
func Filter[T any](records []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}
	matched := make([]T, 0, len(records))
	for _, record := range records {
		for _, field := range fields(record) {
			if strings.Contains(strings.ToLower(field), query) {
				matched = append(matched, record)
				break
			}
		}
	}
	return matched
}

// FilterEmployees searches employees by name, email, phone and position.
func FilterEmployees(employees []models.Employee, query string) []models.Employee {
	return Filter(employees, query, func(e models.Employee) []string {
		return []string{e.Name, e.Email, e.Phone, e.Position}
	})
}

// FilterAadhars searches aadhar records by holder name and number.
func FilterAadhars(aadhars []models.Aadhar, query string) []models.Aadhar {
	return Filter(aadhars, query, func(a models.Aadhar) []string {
		return []string{a.AadharName, a.AadharNo}
	})
}

// FilterPans searches PAN records by holder name and number.
func FilterPans(pans []models.Pan, query string) []models.Pan {
	return Filter(pans, query, func(p models.Pan) []string {
		return []string{p.PanName, p.PanNo}
	})
}

// FilterBankDetails searches bank records by holder, bank name and account.
func FilterBankDetails(details []models.BankDetail, query string) []models.BankDetail {
	return Filter(details, query, func(b models.BankDetail) []string {
		return []string{b.HolderName, b.BankName, b.AccountNo}
	})
}
