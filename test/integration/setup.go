//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/squad-builder/internal/domain"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSeason = "2025-26"

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx, "postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции. Проверьте, что файл migrations/000001_init.up.sql существует")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

var clubs = []string{"ARS", "LIV", "MCI", "CHE", "TOT", "NEW", "AVL", "BHA"}

// seedPlayers заполняет справочник: GK 1-3, DEF 11-18, MID 21-28, FWD 31-35.
// Цена растет с номером, чтобы порядок выдачи был предсказуемым.
func seedPlayers(t *testing.T, db *sql.DB) {
	groups := []struct {
		pos   domain.Position
		first int
		count int
		base  float64
	}{
		{domain.PositionGK, 1, 3, 4.0},
		{domain.PositionDEF, 11, 8, 4.0},
		{domain.PositionMID, 21, 8, 5.0},
		{domain.PositionFWD, 31, 5, 6.0},
	}

	for _, g := range groups {
		for i := 0; i < g.count; i++ {
			id := g.first + i
			_, err := db.Exec(
				`INSERT INTO players (id, season, name, position, team, price, extra) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				id, testSeason, fmt.Sprintf("%s Player %d", g.pos, id), string(g.pos),
				clubs[id%len(clubs)], g.base+float64(i)*0.5, `{"form": 1.5}`,
			)
			require.NoError(t, err)
		}
	}
}
