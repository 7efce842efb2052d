package service

import (
	"strings"
	"testing"
	"time"
	"unicode"

	"kiosco/internal/infra"
	"kiosco/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Helpers ───────────────────────────────────────────────────────────────────

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, t.Name())
	db, err := infra.NewDatabase("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// fixedClock always returns the same instant, in local time.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedProducto(t *testing.T, db *gorm.DB, descripcion string, precio *decimal.Decimal, stock int) *model.Producto {
	t.Helper()
	p := &model.Producto{Descripcion: descripcion, Precio: precio, Stock: stock}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedCliente(t *testing.T, db *gorm.DB, nombre string) *model.Cliente {
	t.Helper()
	c := &model.Cliente{Nombre: nombre}
	require.NoError(t, db.Create(c).Error)
	return c
}

func stockDe(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var p model.Producto
	require.NoError(t, db.First(&p, id).Error)
	return p.Stock
}

func contar(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
