package service

import (
	"reflect"
	"testing"
)

func TestSortDistribution(t *testing.T) {
	t.Run("count desc then label asc", func(t *testing.T) {
		rows := []LabelCount{
			{Label: "Private Unaided", Count: 30},
			{Label: "Government", Count: 120},
			{Label: "Private Aided", Count: 30},
			{Label: "Other", Count: 5},
		}
		SortDistribution(rows)

		want := []LabelCount{
			{Label: "Government", Count: 120},
			{Label: "Private Aided", Count: 30},
			{Label: "Private Unaided", Count: 30},
			{Label: "Other", Count: 5},
		}
		if !reflect.DeepEqual(rows, want) {
			t.Fatalf("got %+v, want %+v", rows, want)
		}
	})

	t.Run("empty and single row are fine", func(t *testing.T) {
		SortDistribution(nil)
		one := []LabelCount{{Label: "Rural", Count: 1}}
		SortDistribution(one)
		if one[0].Label != "Rural" {
			t.Fatalf("single row mutated: %+v", one)
		}
	})
}

func TestGroupableColumnsWhitelist(t *testing.T) {
	for _, col := range []string{"school_management", "school_location", "school_type"} {
		if _, ok := groupableColumns[col]; !ok {
			t.Errorf("column %q missing from whitelist", col)
		}
	}
	// input user tidak boleh lolos ke GROUP BY
	for _, col := range []string{"school_name", "1; DROP TABLE schools", ""} {
		if _, ok := groupableColumns[col]; ok {
			t.Errorf("column %q must not be groupable", col)
		}
	}
}
