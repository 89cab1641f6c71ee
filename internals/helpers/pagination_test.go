package helper

import "testing"

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults", "", "", 1, 20, 0},
		{"explicit", "3", "10", 3, 10, 20},
		{"page non-numeric", "abc", "10", 1, 10, 0},
		{"page zero", "0", "10", 1, 10, 0},
		{"page negative", "-5", "10", 1, 10, 0},
		{"limit non-numeric", "2", "xyz", 2, 20, 20},
		{"limit zero", "2", "0", 2, 20, 20},
		{"limit above max clamped", "1", "500", 1, 100, 0},
		{"limit at max kept", "1", "100", 1, 100, 0},
		{"whitespace tolerated", " 2 ", " 5 ", 2, 5, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePaging(tc.page, tc.limit, DefaultLimit, MaxLimit)
			if got.Page != tc.wantPage || got.Limit != tc.wantLimit || got.Skip != tc.wantSkip {
				t.Fatalf("NormalizePaging(%q,%q) = %+v, want page=%d limit=%d skip=%d",
					tc.page, tc.limit, got, tc.wantPage, tc.wantLimit, tc.wantSkip)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	t.Run("empty result has zero pages", func(t *testing.T) {
		p := BuildPagination(0, Paging{Page: 1, Limit: 20})
		if p.TotalPages != 0 {
			t.Fatalf("TotalPages = %d, want 0", p.TotalPages)
		}
		if p.HasNextPage || p.HasPrevPage {
			t.Fatalf("empty result should have no next/prev: %+v", p)
		}
	})

	t.Run("ceil division", func(t *testing.T) {
		cases := []struct {
			total     int64
			limit     int
			wantPages int
		}{
			{1, 20, 1},
			{20, 20, 1},
			{21, 20, 2},
			{200, 20, 10},
			{101, 100, 2},
		}
		for _, tc := range cases {
			p := BuildPagination(tc.total, Paging{Page: 1, Limit: tc.limit})
			if p.TotalPages != tc.wantPages {
				t.Errorf("total=%d limit=%d: TotalPages = %d, want %d",
					tc.total, tc.limit, p.TotalPages, tc.wantPages)
			}
		}
	})

	t.Run("next and prev flags", func(t *testing.T) {
		p := BuildPagination(50, Paging{Page: 2, Limit: 20})
		if !p.HasNextPage || !p.HasPrevPage {
			t.Fatalf("middle page should have both flags: %+v", p)
		}
		p = BuildPagination(50, Paging{Page: 3, Limit: 20})
		if p.HasNextPage || !p.HasPrevPage {
			t.Fatalf("last page: %+v", p)
		}
	})

	t.Run("guards bad paging", func(t *testing.T) {
		p := BuildPagination(10, Paging{Page: 0, Limit: 0})
		if p.CurrentPage != 1 || p.Limit != DefaultLimit {
			t.Fatalf("guard failed: %+v", p)
		}
	})

	// union semua window harus menutup seluruh record tanpa overlap
	t.Run("windows cover all records exactly once", func(t *testing.T) {
		const total = 47
		const limit = 10
		meta := BuildPagination(total, NormalizePaging("1", "10", DefaultLimit, MaxLimit))
		covered := 0
		for page := 1; page <= meta.TotalPages; page++ {
			p := NormalizePaging("", "", DefaultLimit, MaxLimit)
			p.Page, p.Limit = page, limit
			p.Skip = (page - 1) * limit
			size := limit
			if p.Skip+size > total {
				size = total - p.Skip
			}
			if size <= 0 {
				t.Fatalf("page %d yields empty window", page)
			}
			covered += size
		}
		if covered != total {
			t.Fatalf("windows cover %d records, want %d", covered, total)
		}
	})
}
