// Where: internal/scaffold/database.go
// What: Database settings derived from the answers record.
// Why: Compose rendering, env generation, and provisioning must agree on one shape.
package scaffold

import "fmt"

// DatabaseSettings describes the development database for the generated project.
type DatabaseSettings struct {
	Provider string
	Image    string
	Service  string
	Port     int
	User     string
	Password string
	Name     string
	URL      string
}

// DatabaseSettingsFor derives the dev database settings from the answers.
// Returns a zero value when no database was selected.
func DatabaseSettingsFor(a Answers) DatabaseSettings {
	switch a.Database {
	case DatabaseSQLite:
		return DatabaseSettings{
			Provider: DatabaseSQLite,
			Name:     a.ProjectName,
			URL:      "file:./dev.db",
		}
	case DatabasePostgres:
		s := DatabaseSettings{
			Provider: DatabasePostgres,
			Image:    "postgres:16-alpine",
			Service:  "db",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     a.ProjectName,
		}
		s.URL = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s", s.User, s.Password, s.Port, s.Name)
		return s
	case DatabaseMySQL:
		s := DatabaseSettings{
			Provider: DatabaseMySQL,
			Image:    "mysql:8.4",
			Service:  "db",
			Port:     3306,
			User:     "root",
			Password: "mysql",
			Name:     a.ProjectName,
		}
		s.URL = fmt.Sprintf("mysql://%s:%s@localhost:%d/%s", s.User, s.Password, s.Port, s.Name)
		return s
	default:
		return DatabaseSettings{Provider: DatabaseNone}
	}
}
