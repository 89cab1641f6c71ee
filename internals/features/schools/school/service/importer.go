// file: internals/features/schools/school/service/importer.go
package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
)

/* =========================
   Importer CSV data UDISE
   — header fleksibel (alias umum ekspor UDISE), normalisasi enum per
   baris, baris tanpa udise_code / nama di-skip dan dilaporkan.
========================= */

type ImportSummary struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// alias header → field kanonik
var headerAliases = map[string]string{
	"udise_code":  "udise_code",
	"udise":       "udise_code",
	"udisecode":   "udise_code",
	"school_name": "school_name",
	"name":        "school_name",
	"state":       "state",
	"state_name":  "state",
	"district":    "district",
	"block":       "block",
	"village":     "village",
	"management":  "management",
	"location":    "location",
	"school_type": "school_type",
	"type":        "school_type",

	"establishment_year": "establishment_year",
	"year_established":   "establishment_year",
	"total_students":     "total_students",
	"total_teachers":     "total_teachers",
	"contact_phone":      "contact_phone",
	"contact_email":      "contact_email",
	"latitude":           "latitude",
	"longitude":          "longitude",
}

func canonHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	if canon, ok := headerAliases[h]; ok {
		return canon
	}
	return ""
}

// ParseSchoolsCSV: baca seluruh CSV → model ternormalisasi + ringkasan.
// Error parse fatal (CSV rusak) dikembalikan sebagai error; baris jelek
// individual hanya menambah Skipped + catatan di Errors.
func ParseSchoolsCSV(r io.Reader) ([]*schoolModel.SchoolModel, ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // toleransi kolom pincang per baris

	header, err := reader.Read()
	if err != nil {
		return nil, ImportSummary{}, fmt.Errorf("gagal membaca header CSV: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		if canon := canonHeader(h); canon != "" {
			colIdx[canon] = i
		}
	}
	if _, ok := colIdx["udise_code"]; !ok {
		return nil, ImportSummary{}, errors.New("kolom udise_code tidak ditemukan di header CSV")
	}
	if _, ok := colIdx["school_name"]; !ok {
		return nil, ImportSummary{}, errors.New("kolom school_name tidak ditemukan di header CSV")
	}

	get := func(rec []string, field string) string {
		idx, ok := colIdx[field]
		if !ok || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	var (
		out     []*schoolModel.SchoolModel
		summary ImportSummary
		line    = 1 // header = baris 1
	)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("baris %d: %v", line, err))
			continue
		}

		udise := get(rec, "udise_code")
		name := get(rec, "school_name")
		if udise == "" || name == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, fmt.Sprintf("baris %d: udise_code/nama kosong", line))
			continue
		}

		m := &schoolModel.SchoolModel{
			SchoolUdiseCode: udise,
			SchoolName:      name,

			SchoolState:    schoolModel.NormalizePlace(get(rec, "state")),
			SchoolDistrict: schoolModel.NormalizePlace(get(rec, "district")),
			SchoolBlock:    schoolModel.NormalizePlace(get(rec, "block")),
			SchoolVillage:  schoolModel.NormalizePlace(get(rec, "village")),

			SchoolManagement: schoolModel.NormalizeManagement(get(rec, "management")),
			SchoolLocation:   schoolModel.NormalizeLocation(get(rec, "location")),
			SchoolType:       schoolModel.NormalizeSchoolType(get(rec, "school_type")),

			SchoolIsActive: true,
		}

		m.SchoolEstablishmentYear = parseIntPtr(get(rec, "establishment_year"))
		m.SchoolTotalStudents = parseIntPtr(get(rec, "total_students"))
		m.SchoolTotalTeachers = parseIntPtr(get(rec, "total_teachers"))
		if v := get(rec, "contact_phone"); v != "" {
			m.SchoolContactPhone = &v
		}
		if v := get(rec, "contact_email"); v != "" {
			m.SchoolContactEmail = &v
		}
		m.SchoolLatitude = parseFloatPtr(get(rec, "latitude"))
		m.SchoolLongitude = parseFloatPtr(get(rec, "longitude"))

		out = append(out, m)
	}

	return out, summary, nil
}

// ImportSchools: insert satu-satu; duplikat udise_code dilewati (dicatat),
// error lain menghentikan import.
func ImportSchools(db *gorm.DB, rows []*schoolModel.SchoolModel, createdBy *uuid.UUID) (ImportSummary, error) {
	var summary ImportSummary
	for _, m := range rows {
		m.SchoolCreatedBy = createdBy
		if err := db.Create(m).Error; err != nil {
			if IsDuplicateKey(err) {
				summary.Skipped++
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("udise_code %s sudah ada, dilewati", m.SchoolUdiseCode))
				continue
			}
			return summary, err
		}
		summary.Imported++
	}
	return summary, nil
}

// nilai numerik jelek → nil, bukan error (data sumber sering kotor)
func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
