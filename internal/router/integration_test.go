//go:build integration

package router

// Runs the sale flow against real Postgres + Redis containers.
// go test -tags integration ./internal/router/... -v

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"kiosco/internal/infra"
	"kiosco/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

func setupContainers(t *testing.T) (*gorm.DB, *redis.Client) {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("kiosco_test"),
		tcPostgres.WithUsername("kiosco"),
		tcPostgres.WithPassword("kiosco"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := infra.NewDatabase(pgURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(rdURL)
	require.NoError(t, err)
	require.NotNil(t, rdb)
	t.Cleanup(func() { _ = rdb.Close() })

	return db, rdb
}

func TestIntegration_VentaYLogout(t *testing.T) {
	db, rdb := setupContainers(t)
	c := newClient(t, db, rdb)

	w := c.get("/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":"connected","redis":"connected"}`, w.Body.String())

	c.login("laura@kiosco.test", "secreta")

	w = c.form(http.MethodPost, "/dashboard/productos", url.Values{
		"descripcion": {"Gaseosa"}, "stock": {"5"}, "precio": {"1200.50"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = c.form(http.MethodPost, "/dashboard/ventas", url.Values{"producto[]": {"1"}, "cantidad[]": {"2"}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A failed sale leaves no invoice behind.
	w = c.form(http.MethodPost, "/dashboard/ventas", url.Values{"producto[]": {"1", "1"}, "cantidad[]": {"2", "2"}})
	assert.Equal(t, http.StatusConflict, w.Code)

	var facturas int64
	require.NoError(t, db.Model(&model.Factura{}).Count(&facturas).Error)
	assert.Equal(t, int64(1), facturas)

	var p model.Producto
	require.NoError(t, db.First(&p, 1).Error)
	assert.Equal(t, 3, p.Stock)

	// Logout revokes through Redis; the old cookie is refused afterwards.
	robada := c.cookie
	w = c.form(http.MethodPost, "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	keys, err := rdb.Keys(context.Background(), "kiosco:sesion:revocada:*").Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)

	c.cookie = robada
	w = c.get("/dashboard")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
