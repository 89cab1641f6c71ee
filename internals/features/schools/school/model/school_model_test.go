package model

import "testing"

func TestNormalizeManagement(t *testing.T) {
	cases := map[string]ManagementType{
		"Government":       ManagementGovernment,
		"government":       ManagementGovernment,
		"GOVT":             ManagementGovernment,
		"  govt.  ":        ManagementGovernment,
		"Private Unaided":  ManagementPrivateUnaided,
		"private-unaided":  ManagementPrivateUnaided,
		"pvt aided":        ManagementPrivateAided,
		"Private   Aided":  ManagementPrivateAided, // spasi ganda di-collapse
		"":                 ManagementOther,
		"Madrasah":         ManagementOther,
		"semi government?": ManagementOther,
	}
	for in, want := range cases {
		if got := NormalizeManagement(in); got != want {
			t.Errorf("NormalizeManagement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeLocation(t *testing.T) {
	cases := map[string]LocationType{
		"Rural":    LocationRural,
		"URBAN":    LocationUrban,
		" urban ":  LocationUrban,
		"":         LocationOther,
		"suburban": LocationOther,
	}
	for in, want := range cases {
		if got := NormalizeLocation(in); got != want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeSchoolType(t *testing.T) {
	cases := map[string]SchoolType{
		"Co-Ed":          SchoolTypeCoEd,
		"coed":           SchoolTypeCoEd,
		"CO ED":          SchoolTypeCoEd,
		"co-educational": SchoolTypeCoEd,
		"Girls":          SchoolTypeGirls,
		"girl":           SchoolTypeGirls,
		"BOYS":           SchoolTypeBoys,
		"":               SchoolTypeOther,
		"mixed":          SchoolTypeOther,
	}
	for in, want := range cases {
		if got := NormalizeSchoolType(in); got != want {
			t.Errorf("NormalizeSchoolType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizePlace(t *testing.T) {
	if got := NormalizePlace("  Bhopal  "); got != "Bhopal" {
		t.Errorf("trim failed: %q", got)
	}
	if got := NormalizePlace("   "); got != UnknownPlace {
		t.Errorf("blank should map to sentinel, got %q", got)
	}
	if got := NormalizePlace(""); got != UnknownPlace {
		t.Errorf("empty should map to sentinel, got %q", got)
	}
}
