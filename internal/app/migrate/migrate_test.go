package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/skoglund/gatehouse/db"
)

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New("", nil); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestEmbeddedMigrationsPresent(t *testing.T) {
	entries, err := fs.ReadDir(db.Migrations, migrationsRoot)
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatalf("expected at least one embedded migration")
	}

	var foundUsers bool
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			t.Fatalf("unexpected non-sql file embedded: %q", entry.Name())
		}
		if strings.Contains(entry.Name(), "create_users") {
			foundUsers = true
		}
	}
	if !foundUsers {
		t.Fatalf("users table migration missing from embedded set")
	}
}
