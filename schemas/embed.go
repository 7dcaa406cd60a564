// Package schemas provides the embedded SQL schema of the terms table, one file per database/sql driver.
package schemas

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Migrations contains migrations/<driver name>.sql for every supported driver.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// Statements returns the schema statements for a database/sql driver name, in file order.
func Statements(driverName string) ([]string, error) {
	contents, err := Migrations.ReadFile("migrations/" + driverName + ".sql")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no schema for driver %q", driverName)
		}
		return nil, fmt.Errorf("Migrations.ReadFile(%s) > %w", driverName, err)
	}

	var statements []string
	for _, stmt := range strings.Split(string(contents), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements, nil
}
