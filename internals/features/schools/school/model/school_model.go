// file: internals/features/schools/school/model/school_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

/* =========================
   Enums (mapped as string)
   — nilai dijaga oleh CHECK di DB, normalisasi di boundary ingestion
========================= */

type ManagementType string

const (
	ManagementGovernment     ManagementType = "Government"
	ManagementPrivateUnaided ManagementType = "Private Unaided"
	ManagementPrivateAided   ManagementType = "Private Aided"
	ManagementOther          ManagementType = "Other"
)

type LocationType string

const (
	LocationRural LocationType = "Rural"
	LocationUrban LocationType = "Urban"
	LocationOther LocationType = "Other"
)

type SchoolType string

const (
	SchoolTypeCoEd  SchoolType = "Co-Ed"
	SchoolTypeGirls SchoolType = "Girls"
	SchoolTypeBoys  SchoolType = "Boys"
	SchoolTypeOther SchoolType = "Other"
)

// Sentinel untuk data sumber yang kosong (string kosong dilarang invariannya)
const UnknownPlace = "Unknown"

/* =========================
   Normalisasi enum (ingestion boundary)
   — nilai tak dikenal → member "Other", tidak pernah ditolak
========================= */

func NormalizeManagement(s string) ManagementType {
	switch canon(s) {
	case "government", "govt", "govt.":
		return ManagementGovernment
	case "private unaided", "private-unaided", "pvt unaided":
		return ManagementPrivateUnaided
	case "private aided", "private-aided", "pvt aided":
		return ManagementPrivateAided
	default:
		return ManagementOther
	}
}

func NormalizeLocation(s string) LocationType {
	switch canon(s) {
	case "rural":
		return LocationRural
	case "urban":
		return LocationUrban
	default:
		return LocationOther
	}
}

func NormalizeSchoolType(s string) SchoolType {
	switch canon(s) {
	case "co-ed", "coed", "co ed", "co-education", "co-educational":
		return SchoolTypeCoEd
	case "girls", "girl":
		return SchoolTypeGirls
	case "boys", "boy":
		return SchoolTypeBoys
	default:
		return SchoolTypeOther
	}
}

// NormalizePlace: trim + sentinel "Unknown" untuk nilai kosong
func NormalizePlace(s string) string {
	v := strings.TrimSpace(s)
	if v == "" {
		return UnknownPlace
	}
	return v
}

func canon(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.TrimSpace(s)), " "))
}

/* =========================
   School model
========================= */

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Identitas — UDISE unik global (aktif maupun non-aktif)
	SchoolUdiseCode string `gorm:"type:varchar(20);not null;uniqueIndex;column:school_udise_code" json:"school_udise_code"`
	SchoolName      string `gorm:"type:varchar(255);not null;column:school_name" json:"school_name"`

	// Hirarki geografis (state → district → block → village)
	SchoolState    string `gorm:"type:varchar(100);not null;column:school_state" json:"school_state"`
	SchoolDistrict string `gorm:"type:varchar(100);not null;column:school_district" json:"school_district"`
	SchoolBlock    string `gorm:"type:varchar(100);not null;column:school_block" json:"school_block"`
	SchoolVillage  string `gorm:"type:varchar(100);not null;column:school_village" json:"school_village"`

	// Kategori (closed set, dinormalisasi saat ingestion)
	SchoolManagement ManagementType `gorm:"type:varchar(30);not null;column:school_management" json:"school_management"`
	SchoolLocation   LocationType   `gorm:"type:varchar(10);not null;column:school_location" json:"school_location"`
	SchoolType       SchoolType     `gorm:"type:varchar(10);not null;column:school_type" json:"school_type"`

	// Soft delete flag (bukan gorm.DeletedAt — record tetap kelihatan
	// lewat include_inactive, hard delete bukan jalur default)
	SchoolIsActive bool `gorm:"type:boolean;not null;default:true;column:school_is_active" json:"school_is_active"`

	// Deskriptif opsional
	SchoolEstablishmentYear *int           `gorm:"type:int;column:school_establishment_year" json:"school_establishment_year,omitempty"`
	SchoolTotalStudents     *int           `gorm:"type:int;column:school_total_students" json:"school_total_students,omitempty"`
	SchoolTotalTeachers     *int           `gorm:"type:int;column:school_total_teachers" json:"school_total_teachers,omitempty"`
	SchoolFacilities        datatypes.JSON `gorm:"type:jsonb;column:school_facilities" json:"school_facilities,omitempty"`
	SchoolMediums           pq.StringArray `gorm:"type:text[];column:school_mediums" json:"school_mediums,omitempty"`
	SchoolContactPhone      *string        `gorm:"type:varchar(20);column:school_contact_phone" json:"school_contact_phone,omitempty"`
	SchoolContactEmail      *string        `gorm:"type:varchar(255);column:school_contact_email" json:"school_contact_email,omitempty"`
	SchoolLatitude          *float64       `gorm:"type:double precision;column:school_latitude" json:"school_latitude,omitempty"`
	SchoolLongitude         *float64       `gorm:"type:double precision;column:school_longitude" json:"school_longitude,omitempty"`

	// Pemilik dicatat, tidak memengaruhi visibilitas query
	SchoolCreatedBy *uuid.UUID `gorm:"type:uuid;column:school_created_by" json:"school_created_by,omitempty"`

	// Audit
	SchoolCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:school_updated_at" json:"school_updated_at"`
}

func (SchoolModel) TableName() string { return "schools" }
