package db

import (
	"testing"

	"github.com/bagdasarian/squad-builder/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		User:     "squad",
		Password: "secret",
		DBName:   "squad_builder",
		SSLMode:  "disable",
	})

	assert.Equal(t, "host=db port=5433 user=squad password=secret dbname=squad_builder sslmode=disable", dsn)
}
