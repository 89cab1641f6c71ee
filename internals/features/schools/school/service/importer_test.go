package service

import (
	"strings"
	"testing"

	schoolModel "schoolku_backend/internals/features/schools/school/model"
)

func TestParseSchoolsCSV(t *testing.T) {
	t.Run("happy path with normalization", func(t *testing.T) {
		csvData := strings.Join([]string{
			"udise_code,school_name,state,district,block,village,management,location,school_type,total_students",
			"23010100101,Govt Primary School Phanda,MP,Bhopal,Huzur,Phanda,govt,rural,coed,145",
			"23010100102,St Mary Convent,MP,Bhopal,Huzur,Phanda,private unaided,URBAN,Girls,",
		}, "\n")

		rows, sum, err := ParseSchoolsCSV(strings.NewReader(csvData))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 || sum.Skipped != 0 {
			t.Fatalf("rows=%d skipped=%d, want 2/0", len(rows), sum.Skipped)
		}

		first := rows[0]
		if first.SchoolManagement != schoolModel.ManagementGovernment {
			t.Errorf("management = %q, want Government", first.SchoolManagement)
		}
		if first.SchoolLocation != schoolModel.LocationRural {
			t.Errorf("location = %q, want Rural", first.SchoolLocation)
		}
		if first.SchoolType != schoolModel.SchoolTypeCoEd {
			t.Errorf("school_type = %q, want Co-Ed", first.SchoolType)
		}
		if first.SchoolTotalStudents == nil || *first.SchoolTotalStudents != 145 {
			t.Errorf("total_students = %v, want 145", first.SchoolTotalStudents)
		}
		if !first.SchoolIsActive {
			t.Error("imported rows must start active")
		}

		second := rows[1]
		if second.SchoolManagement != schoolModel.ManagementPrivateUnaided {
			t.Errorf("management = %q, want Private Unaided", second.SchoolManagement)
		}
		if second.SchoolLocation != schoolModel.LocationUrban {
			t.Errorf("location = %q, want Urban", second.SchoolLocation)
		}
		if second.SchoolTotalStudents != nil {
			t.Errorf("empty numeric field must stay nil, got %v", second.SchoolTotalStudents)
		}
	})

	t.Run("header aliases accepted", func(t *testing.T) {
		csvData := "UDISE,Name,State Name,District\n" +
			"23010100103,Some School,MP,Bhopal\n"
		rows, _, err := ParseSchoolsCSV(strings.NewReader(csvData))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("rows = %d, want 1", len(rows))
		}
		if rows[0].SchoolUdiseCode != "23010100103" {
			t.Errorf("udise = %q", rows[0].SchoolUdiseCode)
		}
		// kolom hirarki yang tidak ada di CSV → sentinel Unknown
		if rows[0].SchoolBlock != schoolModel.UnknownPlace {
			t.Errorf("block = %q, want %q", rows[0].SchoolBlock, schoolModel.UnknownPlace)
		}
	})

	t.Run("bad rows skipped with line numbers", func(t *testing.T) {
		csvData := strings.Join([]string{
			"udise_code,school_name",
			"23010100104,Valid School",
			",Missing Udise",
			"23010100105,",
		}, "\n")

		rows, sum, err := ParseSchoolsCSV(strings.NewReader(csvData))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || sum.Skipped != 2 {
			t.Fatalf("rows=%d skipped=%d, want 1/2", len(rows), sum.Skipped)
		}
		if len(sum.Errors) != 2 {
			t.Fatalf("errors = %v, want 2 entries", sum.Errors)
		}
		if !strings.Contains(sum.Errors[0], "baris 3") {
			t.Errorf("error should carry line number: %q", sum.Errors[0])
		}
	})

	t.Run("missing required header is fatal", func(t *testing.T) {
		if _, _, err := ParseSchoolsCSV(strings.NewReader("state,district\nMP,Bhopal\n")); err == nil {
			t.Fatal("want error for missing udise_code header")
		}
		if _, _, err := ParseSchoolsCSV(strings.NewReader("udise_code\n1\n")); err == nil {
			t.Fatal("want error for missing school_name header")
		}
	})

	t.Run("garbage numerics become nil", func(t *testing.T) {
		csvData := "udise_code,school_name,total_students,latitude\n" +
			"23010100106,School,banyak,not-a-float\n"
		rows, _, err := ParseSchoolsCSV(strings.NewReader(csvData))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows[0].SchoolTotalStudents != nil || rows[0].SchoolLatitude != nil {
			t.Fatalf("garbage numerics must be nil: %+v", rows[0])
		}
	})
}

func TestCanonHeader(t *testing.T) {
	cases := map[string]string{
		"UDISE Code":  "udise_code",
		"udise-code":  "udise_code",
		" Name ":      "school_name",
		"Type":        "school_type",
		"unknown_col": "",
	}
	for in, want := range cases {
		if got := canonHeader(in); got != want {
			t.Errorf("canonHeader(%q) = %q, want %q", in, got, want)
		}
	}
}
