// Package export serialises registrations for download.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"eventregistration/internal/domain"
)

// CSVFilename is the attachment name used for CSV downloads.
const CSVFilename = "registrations.csv"

var csvHeader = []string{"ID", "Name", "Email", "Phone", "Year", "Branch", "Event"}

// RegistrationRecord is one registration in the JSON export.
// swagger:model RegistrationRecord
type RegistrationRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Year      string `json:"year"`
	Branch    string `json:"branch"`
	AfterNote string `json:"after_note"`
	Event     string `json:"event"`
}

// WriteCSV writes a header row and one row per registration, in the order given.
// The after-registration note is not exported.
func WriteCSV(w io.Writer, items []*domain.RegistrationWithEvent) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range items {
		reg := it.Registration
		row := []string{
			strconv.FormatInt(reg.ID, 10),
			reg.Name,
			reg.Email,
			reg.Phone,
			reg.Year,
			reg.Branch,
			it.EventTitle(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Records converts registrations to their JSON export form. The result is never nil.
func Records(items []*domain.RegistrationWithEvent) []RegistrationRecord {
	records := make([]RegistrationRecord, 0, len(items))
	for _, it := range items {
		reg := it.Registration
		records = append(records, RegistrationRecord{
			ID:        reg.ID,
			Name:      reg.Name,
			Email:     reg.Email,
			Phone:     reg.Phone,
			Year:      reg.Year,
			Branch:    reg.Branch,
			AfterNote: reg.Note(),
			Event:     it.EventTitle(),
		})
	}
	return records
}

// WriteJSON writes registrations as a JSON array.
func WriteJSON(w io.Writer, items []*domain.RegistrationWithEvent) error {
	return json.NewEncoder(w).Encode(Records(items))
}
