package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a postgres container with the full schema applied.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS countries (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		code TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS cities (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		country_id BIGINT NOT NULL REFERENCES countries (id) ON DELETE CASCADE,
		UNIQUE (country_id, name)
	);

	CREATE TABLE IF NOT EXISTS species (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		threatened TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		city_id BIGINT NOT NULL REFERENCES cities (id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL DEFAULT now(),
		updated_at TIMESTAMP NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS users_species (
		user_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		species_id BIGINT NOT NULL REFERENCES species (id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, species_id)
	);

	CREATE TABLE IF NOT EXISTS species_countries (
		species_id BIGINT NOT NULL REFERENCES species (id) ON DELETE CASCADE,
		country_id BIGINT NOT NULL REFERENCES countries (id) ON DELETE CASCADE,
		PRIMARY KEY (species_id, country_id)
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedLocation inserts a country and a city in it, returning both ids.
func seedLocation(t *testing.T, db *sqlx.DB, countryName, code, cityName string) (countryID, cityID int64) {
	t.Helper()
	err := db.Get(&countryID, "INSERT INTO countries (name, code) VALUES ($1, $2) RETURNING id", countryName, code)
	assert.NoError(t, err)
	err = db.Get(&cityID, "INSERT INTO cities (name, country_id) VALUES ($1, $2) RETURNING id", cityName, countryID)
	assert.NoError(t, err)
	return countryID, cityID
}

// seedUser inserts a user in the given city and returns its id.
func seedUser(t *testing.T, db *sqlx.DB, username, email string, cityID int64) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id,
		"INSERT INTO users (username, email, password_hash, city_id) VALUES ($1, $2, 'hash', $3) RETURNING id",
		username, email, cityID)
	assert.NoError(t, err)
	return id
}

// seedSpecies inserts a species and returns its id.
func seedSpecies(t *testing.T, db *sqlx.DB, name, threatened string) int64 {
	t.Helper()
	var id int64
	err := db.Get(&id, "INSERT INTO species (name, threatened) VALUES ($1, $2) RETURNING id", name, threatened)
	assert.NoError(t, err)
	return id
}
