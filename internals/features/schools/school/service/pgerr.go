// file: internals/features/schools/school/service/pgerr.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// --- PG error mapping ---
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsDuplicateKey: pelanggaran unique Postgres (SQLSTATE 23505)
func IsDuplicateKey(err error) bool {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}

// MapPGError: 23505 unique_violation → 409, 23503 FK violation → 400,
// sisanya → 500 (kegagalan store tidak boleh disamarkan jadi hasil kosong)
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return fiber.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		}
	}
	return fiber.StatusInternalServerError, err.Error()
}
