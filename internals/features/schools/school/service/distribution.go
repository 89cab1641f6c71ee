// file: internals/features/schools/school/service/distribution.go
package service

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
)

/* =========================
   Distribution Aggregator
   — breakdown kategori untuk chart: management / location / school_type.
   totalSchools dihitung SEKALI dengan predicate yang sama, bukan dari
   penjumlahan salah satu breakdown (bisa beda saat ada field null).
========================= */

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type SchoolDistribution struct {
	ManagementTypeDistribution []LabelCount `json:"managementTypeDistribution"`
	LocationDistribution       []LabelCount `json:"locationDistribution"`
	SchoolTypeDistribution     []LabelCount `json:"schoolTypeDistribution"`
	TotalSchools               int64        `json:"totalSchools"`
}

// kolom yang boleh di-group (whitelist — jangan interpolasi input user)
var groupableColumns = map[string]struct{}{
	"school_management": {},
	"school_location":   {},
	"school_type":       {},
}

// SortDistribution: count desc, tie-break label asc — urutan chart stabil
func SortDistribution(rows []LabelCount) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
}

func groupCount(db *gorm.DB, f SchoolFilter, activeOnly bool, column string) ([]LabelCount, error) {
	if _, ok := groupableColumns[column]; !ok {
		return nil, fmt.Errorf("kolom %q tidak bisa di-group", column)
	}

	q := db.Model(&schoolModel.SchoolModel{})
	q = ApplyFilter(q, f)
	if activeOnly {
		q = q.Where("school_is_active = ?", true)
	}

	rows := make([]LabelCount, 0, 8)
	err := q.
		Select(column+" AS label, COUNT(*) AS count").
		Where(column+" IS NOT NULL AND "+column+" <> ''").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// label dengan count nol tidak pernah muncul (GROUP BY hasil match saja)
	SortDistribution(rows)
	return rows, nil
}

// BuildDistribution: tiga breakdown + total. Kegagalan store dipropagasi
// ke caller — jangan pernah dikembalikan sebagai hasil kosong/nol.
func BuildDistribution(db *gorm.DB, f SchoolFilter, activeOnly bool) (*SchoolDistribution, error) {
	management, err := groupCount(db, f, activeOnly, "school_management")
	if err != nil {
		return nil, err
	}
	location, err := groupCount(db, f, activeOnly, "school_location")
	if err != nil {
		return nil, err
	}
	schoolType, err := groupCount(db, f, activeOnly, "school_type")
	if err != nil {
		return nil, err
	}

	totalQ := ApplyFilter(db.Model(&schoolModel.SchoolModel{}), f)
	if activeOnly {
		totalQ = totalQ.Where("school_is_active = ?", true)
	}
	var total int64
	if err := totalQ.Count(&total).Error; err != nil {
		return nil, err
	}

	return &SchoolDistribution{
		ManagementTypeDistribution: management,
		LocationDistribution:       location,
		SchoolTypeDistribution:     schoolType,
		TotalSchools:               total,
	}, nil
}
