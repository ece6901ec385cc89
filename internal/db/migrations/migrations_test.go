package migrations

import (
	"errors"
	"testing"
	"testing/fstest"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestParseMigrationFilename(t *testing.T) {
	version, name, err := parseMigrationFilename("0007_add_shows.up.sql")
	if err != nil {
		t.Fatalf("parseMigrationFilename: %v", err)
	}
	if version != 7 || name != "add_shows" {
		t.Fatalf("got %d %q", version, name)
	}

	if _, _, err := parseMigrationFilename("noversion.up.sql"); err == nil {
		t.Fatalf("expected error for missing separator")
	}
	if _, _, err := parseMigrationFilename("abc_thing.up.sql"); err == nil {
		t.Fatalf("expected error for non-numeric version")
	}
}

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	files, err := getMigrationFiles(migrationFiles)
	if err != nil {
		t.Fatalf("getMigrationFiles: %v", err)
	}
	if len(files) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	if files[0].Version != 1 || files[0].Down == "" {
		t.Fatalf("unexpected first migration %+v", files[0])
	}
	for i := 1; i < len(files); i++ {
		if files[i-1].Version >= files[i].Version {
			t.Fatalf("migrations out of order: %d then %d", files[i-1].Version, files[i].Version)
		}
	}
}

func TestRunAppliesOnlyPendingMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/0001_first.up.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
		"sql/0002_second.up.sql": {Data: []byte("CREATE TABLE b (id INT)")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE b \(id INT\)`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(2, "second").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := run(db, fsys); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRunRollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	fsys := fstest.MapFS{
		"sql/0001_broken.up.sql": {Data: []byte("CREATE TABLE oops")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE oops").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	if err := run(db, fsys); err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
