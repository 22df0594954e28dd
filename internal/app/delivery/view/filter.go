package view

import (
	"sinan-service/internal/pkg/dto/responses"
	"strconv"
	"strings"
)

// FilterRecords is the list screen's search box: a case-insensitive substring
// match against the patient name or the decimal record id. A blank term
// returns the input unchanged. Pure projection, no state effect.
func FilterRecords(records []responses.Notification, term string) []responses.Notification {
	term = strings.TrimSpace(term)
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	filtered := make([]responses.Notification, 0, len(records))
	for _, record := range records {
		name := strings.ToLower(record.PatientName)
		id := strconv.FormatInt(record.ID, 10)
		if strings.Contains(name, needle) || strings.Contains(id, needle) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// SerumWorklist splits the records shown on the serum screen: only records
// whose payload indicates serum, partitioned by whether it was applied yet.
func SerumWorklist(records []responses.Notification) (pending, done []responses.Notification) {
	pending = make([]responses.Notification, 0)
	done = make([]responses.Notification, 0)
	for _, record := range records {
		if record.Data.IndicacaoSoro != "1" {
			continue
		}
		if record.Data.SoroAplicado {
			done = append(done, record)
		} else {
			pending = append(pending, record)
		}
	}
	return pending, done
}
