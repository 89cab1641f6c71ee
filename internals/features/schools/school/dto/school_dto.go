// file: internals/features/schools/school/dto/school_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
)

/* =========================
   Requests
========================= */

// SchoolCreateRequest: payload create — field wajib vs opsional eksplisit,
// bukan dictionary bebas yang di-merge ke record.
type SchoolCreateRequest struct {
	UdiseCode string `json:"udise_code" validate:"required,min=5,max=20"`
	Name      string `json:"school_name" validate:"required,min=2,max=255"`

	State    string `json:"state" validate:"required,max=100"`
	District string `json:"district" validate:"required,max=100"`
	Block    string `json:"block" validate:"required,max=100"`
	Village  string `json:"village" validate:"required,max=100"`

	// enum bebas diisi apa saja — dinormalisasi, tidak pernah ditolak
	Management string `json:"management" validate:"required"`
	Location   string `json:"location" validate:"required"`
	SchoolType string `json:"school_type" validate:"required"`

	EstablishmentYear *int           `json:"establishment_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	TotalStudents     *int           `json:"total_students,omitempty" validate:"omitempty,min=0"`
	TotalTeachers     *int           `json:"total_teachers,omitempty" validate:"omitempty,min=0"`
	Facilities        datatypes.JSON `json:"facilities,omitempty"`
	Mediums           []string       `json:"mediums,omitempty"`
	ContactPhone      *string        `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	ContactEmail      *string        `json:"contact_email,omitempty" validate:"omitempty,email"`
	Latitude          *float64       `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude         *float64       `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// ToModel: normalisasi enum & tempat di boundary ingestion
func (r *SchoolCreateRequest) ToModel(createdBy *uuid.UUID) *schoolModel.SchoolModel {
	return &schoolModel.SchoolModel{
		SchoolUdiseCode: strings.TrimSpace(r.UdiseCode),
		SchoolName:      strings.TrimSpace(r.Name),

		SchoolState:    schoolModel.NormalizePlace(r.State),
		SchoolDistrict: schoolModel.NormalizePlace(r.District),
		SchoolBlock:    schoolModel.NormalizePlace(r.Block),
		SchoolVillage:  schoolModel.NormalizePlace(r.Village),

		SchoolManagement: schoolModel.NormalizeManagement(r.Management),
		SchoolLocation:   schoolModel.NormalizeLocation(r.Location),
		SchoolType:       schoolModel.NormalizeSchoolType(r.SchoolType),

		SchoolIsActive: true,

		SchoolEstablishmentYear: r.EstablishmentYear,
		SchoolTotalStudents:     r.TotalStudents,
		SchoolTotalTeachers:     r.TotalTeachers,
		SchoolFacilities:        r.Facilities,
		SchoolMediums:           pq.StringArray(r.Mediums),
		SchoolContactPhone:      r.ContactPhone,
		SchoolContactEmail:      r.ContactEmail,
		SchoolLatitude:          r.Latitude,
		SchoolLongitude:         r.Longitude,

		SchoolCreatedBy: createdBy,
	}
}

// SchoolUpdateRequest: partial update — hanya field non-nil yang diterapkan
type SchoolUpdateRequest struct {
	Name *string `json:"school_name,omitempty" validate:"omitempty,min=2,max=255"`

	State    *string `json:"state,omitempty" validate:"omitempty,max=100"`
	District *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Block    *string `json:"block,omitempty" validate:"omitempty,max=100"`
	Village  *string `json:"village,omitempty" validate:"omitempty,max=100"`

	Management *string `json:"management,omitempty"`
	Location   *string `json:"location,omitempty"`
	SchoolType *string `json:"school_type,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`

	EstablishmentYear *int           `json:"establishment_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	TotalStudents     *int           `json:"total_students,omitempty" validate:"omitempty,min=0"`
	TotalTeachers     *int           `json:"total_teachers,omitempty" validate:"omitempty,min=0"`
	Facilities        datatypes.JSON `json:"facilities,omitempty"`
	Mediums           []string       `json:"mediums,omitempty"`
	ContactPhone      *string        `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	ContactEmail      *string        `json:"contact_email,omitempty" validate:"omitempty,email"`
	Latitude          *float64       `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude         *float64       `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// ApplyUpdate: terapkan patch ke model (re-normalisasi enum & tempat).
// udise_code sengaja tidak bisa diubah lewat update.
func ApplyUpdate(m *schoolModel.SchoolModel, u *SchoolUpdateRequest) {
	if u.Name != nil {
		m.SchoolName = strings.TrimSpace(*u.Name)
	}
	if u.State != nil {
		m.SchoolState = schoolModel.NormalizePlace(*u.State)
	}
	if u.District != nil {
		m.SchoolDistrict = schoolModel.NormalizePlace(*u.District)
	}
	if u.Block != nil {
		m.SchoolBlock = schoolModel.NormalizePlace(*u.Block)
	}
	if u.Village != nil {
		m.SchoolVillage = schoolModel.NormalizePlace(*u.Village)
	}
	if u.Management != nil {
		m.SchoolManagement = schoolModel.NormalizeManagement(*u.Management)
	}
	if u.Location != nil {
		m.SchoolLocation = schoolModel.NormalizeLocation(*u.Location)
	}
	if u.SchoolType != nil {
		m.SchoolType = schoolModel.NormalizeSchoolType(*u.SchoolType)
	}
	if u.IsActive != nil {
		m.SchoolIsActive = *u.IsActive
	}
	if u.EstablishmentYear != nil {
		m.SchoolEstablishmentYear = u.EstablishmentYear
	}
	if u.TotalStudents != nil {
		m.SchoolTotalStudents = u.TotalStudents
	}
	if u.TotalTeachers != nil {
		m.SchoolTotalTeachers = u.TotalTeachers
	}
	if len(u.Facilities) > 0 {
		m.SchoolFacilities = u.Facilities
	}
	if u.Mediums != nil {
		m.SchoolMediums = pq.StringArray(u.Mediums)
	}
	if u.ContactPhone != nil {
		m.SchoolContactPhone = u.ContactPhone
	}
	if u.ContactEmail != nil {
		m.SchoolContactEmail = u.ContactEmail
	}
	if u.Latitude != nil {
		m.SchoolLatitude = u.Latitude
	}
	if u.Longitude != nil {
		m.SchoolLongitude = u.Longitude
	}
}

/* =========================
   Response
========================= */

type SchoolResponse struct {
	SchoolID  uuid.UUID `json:"school_id"`
	UdiseCode string    `json:"udise_code"`
	Name      string    `json:"school_name"`

	State    string `json:"state"`
	District string `json:"district"`
	Block    string `json:"block"`
	Village  string `json:"village"`

	Management string `json:"management"`
	Location   string `json:"location"`
	SchoolType string `json:"school_type"`

	IsActive bool `json:"is_active"`

	EstablishmentYear *int           `json:"establishment_year,omitempty"`
	TotalStudents     *int           `json:"total_students,omitempty"`
	TotalTeachers     *int           `json:"total_teachers,omitempty"`
	Facilities        datatypes.JSON `json:"facilities,omitempty"`
	Mediums           []string       `json:"mediums,omitempty"`
	ContactPhone      *string        `json:"contact_phone,omitempty"`
	ContactEmail      *string        `json:"contact_email,omitempty"`
	Latitude          *float64       `json:"latitude,omitempty"`
	Longitude         *float64       `json:"longitude,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(m *schoolModel.SchoolModel) SchoolResponse {
	return SchoolResponse{
		SchoolID:  m.SchoolID,
		UdiseCode: m.SchoolUdiseCode,
		Name:      m.SchoolName,

		State:    m.SchoolState,
		District: m.SchoolDistrict,
		Block:    m.SchoolBlock,
		Village:  m.SchoolVillage,

		Management: string(m.SchoolManagement),
		Location:   string(m.SchoolLocation),
		SchoolType: string(m.SchoolType),

		IsActive: m.SchoolIsActive,

		EstablishmentYear: m.SchoolEstablishmentYear,
		TotalStudents:     m.SchoolTotalStudents,
		TotalTeachers:     m.SchoolTotalTeachers,
		Facilities:        m.SchoolFacilities,
		Mediums:           []string(m.SchoolMediums),
		ContactPhone:      m.SchoolContactPhone,
		ContactEmail:      m.SchoolContactEmail,
		Latitude:          m.SchoolLatitude,
		Longitude:         m.SchoolLongitude,

		CreatedAt: m.SchoolCreatedAt,
		UpdatedAt: m.SchoolUpdatedAt,
	}
}
