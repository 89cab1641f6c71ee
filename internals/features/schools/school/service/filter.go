// file: internals/features/schools/school/service/filter.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* =========================
   Filter Builder
   — fungsi murni: query params → daftar klausa WHERE.
   Kebijakan hirarki: STRICT-NESTING. district hanya dihormati bila state
   ada; block butuh state+district; village butuh ketiga induknya. Filter
   anak tanpa induk di-drop diam-diam (bukan error). Kebijakan yang sama
   dipakai endpoint filter-options — jangan dicampur varian independent.
========================= */

type SchoolFilter struct {
	State    string
	District string
	Block    string
	Village  string

	Management string
	Location   string
	SchoolType string

	Search string
}

// FilterFromQuery: baca query params list/statistics/filters
func FilterFromQuery(c *fiber.Ctx) SchoolFilter {
	return SchoolFilter{
		State:    strings.TrimSpace(c.Query("state")),
		District: strings.TrimSpace(c.Query("district")),
		Block:    strings.TrimSpace(c.Query("block")),
		Village:  strings.TrimSpace(c.Query("village")),

		Management: strings.TrimSpace(c.Query("management")),
		Location:   strings.TrimSpace(c.Query("location")),
		SchoolType: strings.TrimSpace(c.Query("school_type")),

		Search: strings.TrimSpace(c.Query("search")),
	}
}

// Effective: terapkan strict-nesting — turunan tanpa induk dibuang.
func (f SchoolFilter) Effective() SchoolFilter {
	out := f
	if out.State == "" {
		out.District = ""
	}
	if out.State == "" || out.District == "" {
		out.Block = ""
	}
	if out.State == "" || out.District == "" || out.Block == "" {
		out.Village = ""
	}
	return out
}

// WhereClause: satu constraint SQL + argumennya
type WhereClause struct {
	Expr string
	Args []any
}

// Clauses: predicate final (urutan deterministik — enak di-test).
// Nilai malformed tetap jadi equality literal: match nothing, bukan error.
func (f SchoolFilter) Clauses() []WhereClause {
	eff := f.Effective()

	out := make([]WhereClause, 0, 8)
	if eff.State != "" {
		out = append(out, WhereClause{Expr: "school_state = ?", Args: []any{eff.State}})
	}
	if eff.District != "" {
		out = append(out, WhereClause{Expr: "school_district = ?", Args: []any{eff.District}})
	}
	if eff.Block != "" {
		out = append(out, WhereClause{Expr: "school_block = ?", Args: []any{eff.Block}})
	}
	if eff.Village != "" {
		out = append(out, WhereClause{Expr: "school_village = ?", Args: []any{eff.Village}})
	}
	if eff.Management != "" {
		out = append(out, WhereClause{Expr: "school_management = ?", Args: []any{eff.Management}})
	}
	if eff.Location != "" {
		out = append(out, WhereClause{Expr: "school_location = ?", Args: []any{eff.Location}})
	}
	if eff.SchoolType != "" {
		out = append(out, WhereClause{Expr: "school_type = ?", Args: []any{eff.SchoolType}})
	}
	if eff.Search != "" {
		pattern := "%" + eff.Search + "%"
		out = append(out, WhereClause{
			Expr: "(school_name ILIKE ? OR school_udise_code ILIKE ?)",
			Args: []any{pattern, pattern},
		})
	}
	return out
}

// ApplyFilter: pasang predicate ke query GORM
func ApplyFilter(db *gorm.DB, f SchoolFilter) *gorm.DB {
	for _, cl := range f.Clauses() {
		db = db.Where(cl.Expr, cl.Args...)
	}
	return db
}
