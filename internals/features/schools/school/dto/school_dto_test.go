package dto

import (
	"testing"

	"github.com/google/uuid"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
)

func strPtr(s string) *string { return &s }

func TestSchoolCreateRequestToModel(t *testing.T) {
	creator := uuid.New()
	req := SchoolCreateRequest{
		UdiseCode:  " 23010100101 ",
		Name:       "  Govt Primary School  ",
		State:      "MP",
		District:   "Bhopal",
		Block:      "",
		Village:    "  ",
		Management: "govt",
		Location:   "RURAL",
		SchoolType: "coed",
	}

	m := req.ToModel(&creator)

	if m.SchoolUdiseCode != "23010100101" {
		t.Errorf("udise not trimmed: %q", m.SchoolUdiseCode)
	}
	if m.SchoolName != "Govt Primary School" {
		t.Errorf("name not trimmed: %q", m.SchoolName)
	}
	if m.SchoolBlock != schoolModel.UnknownPlace || m.SchoolVillage != schoolModel.UnknownPlace {
		t.Errorf("blank places must map to sentinel: block=%q village=%q", m.SchoolBlock, m.SchoolVillage)
	}
	if m.SchoolManagement != schoolModel.ManagementGovernment {
		t.Errorf("management = %q", m.SchoolManagement)
	}
	if m.SchoolLocation != schoolModel.LocationRural {
		t.Errorf("location = %q", m.SchoolLocation)
	}
	if m.SchoolType != schoolModel.SchoolTypeCoEd {
		t.Errorf("school_type = %q", m.SchoolType)
	}
	if !m.SchoolIsActive {
		t.Error("new school must start active")
	}
	if m.SchoolCreatedBy == nil || *m.SchoolCreatedBy != creator {
		t.Errorf("created_by = %v, want %v", m.SchoolCreatedBy, creator)
	}
}

func TestApplyUpdate(t *testing.T) {
	base := func() *schoolModel.SchoolModel {
		return &schoolModel.SchoolModel{
			SchoolUdiseCode:  "23010100101",
			SchoolName:       "Old Name",
			SchoolState:      "MP",
			SchoolDistrict:   "Bhopal",
			SchoolManagement: schoolModel.ManagementGovernment,
			SchoolLocation:   schoolModel.LocationRural,
			SchoolType:       schoolModel.SchoolTypeCoEd,
			SchoolIsActive:   true,
		}
	}

	t.Run("nil fields untouched", func(t *testing.T) {
		m := base()
		ApplyUpdate(m, &SchoolUpdateRequest{})
		if m.SchoolName != "Old Name" || m.SchoolState != "MP" || !m.SchoolIsActive {
			t.Fatalf("empty patch mutated model: %+v", m)
		}
	})

	t.Run("set fields applied with normalization", func(t *testing.T) {
		m := base()
		active := false
		ApplyUpdate(m, &SchoolUpdateRequest{
			Name:       strPtr("  New Name "),
			Management: strPtr("unrecognized thing"),
			Location:   strPtr("urban"),
			IsActive:   &active,
		})
		if m.SchoolName != "New Name" {
			t.Errorf("name = %q", m.SchoolName)
		}
		if m.SchoolManagement != schoolModel.ManagementOther {
			t.Errorf("unknown management must normalize to Other, got %q", m.SchoolManagement)
		}
		if m.SchoolLocation != schoolModel.LocationUrban {
			t.Errorf("location = %q", m.SchoolLocation)
		}
		if m.SchoolIsActive {
			t.Error("is_active=false not applied")
		}
	})

	t.Run("udise immutable through patch", func(t *testing.T) {
		m := base()
		ApplyUpdate(m, &SchoolUpdateRequest{Name: strPtr("X Y")})
		if m.SchoolUdiseCode != "23010100101" {
			t.Fatalf("udise changed: %q", m.SchoolUdiseCode)
		}
	})

	t.Run("blank place patch becomes sentinel", func(t *testing.T) {
		m := base()
		ApplyUpdate(m, &SchoolUpdateRequest{District: strPtr("   ")})
		if m.SchoolDistrict != schoolModel.UnknownPlace {
			t.Fatalf("district = %q, want %q", m.SchoolDistrict, schoolModel.UnknownPlace)
		}
	})
}

func TestFromModelRoundtripsCoreFields(t *testing.T) {
	m := &schoolModel.SchoolModel{
		SchoolID:         uuid.New(),
		SchoolUdiseCode:  "23010100101",
		SchoolName:       "Govt Primary School",
		SchoolState:      "MP",
		SchoolDistrict:   "Bhopal",
		SchoolBlock:      "Huzur",
		SchoolVillage:    "Phanda",
		SchoolManagement: schoolModel.ManagementGovernment,
		SchoolLocation:   schoolModel.LocationRural,
		SchoolType:       schoolModel.SchoolTypeCoEd,
		SchoolIsActive:   true,
	}

	r := FromModel(m)
	if r.SchoolID != m.SchoolID || r.UdiseCode != m.SchoolUdiseCode || r.Name != m.SchoolName {
		t.Fatalf("identity fields mismatch: %+v", r)
	}
	if r.State != "MP" || r.District != "Bhopal" || r.Block != "Huzur" || r.Village != "Phanda" {
		t.Fatalf("hierarchy mismatch: %+v", r)
	}
	if r.Management != "Government" || r.Location != "Rural" || r.SchoolType != "Co-Ed" {
		t.Fatalf("enum mismatch: %+v", r)
	}
	if !r.IsActive {
		t.Fatal("is_active lost")
	}
}
