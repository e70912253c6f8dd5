package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"

	// Memory runs the whole store in process, seeded with demo data. Used
	// for local development and tests.
	Memory DBType = "memory"
)

type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
