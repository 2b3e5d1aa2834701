package repositories

import (
	"context"
	_ "embed"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// schemaStatements splits schema.sql into individual statements.
func schemaStatements() []string {
	var stmts []string
	for _, stmt := range strings.Split(schema, ";\n") {
		if s := strings.TrimSpace(stmt); s != "" {
			stmts = append(stmts, strings.TrimSuffix(s, ";"))
		}
	}
	return stmts
}

// Migrate creates the tables and seeds the reference data. It is safe to run repeatedly.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements() {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(ctx, stmt, nil, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
