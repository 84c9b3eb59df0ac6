package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	stdgorm "gorm.io/gorm"

	"github.com/AngeelRdz/resume-angeel-dev/database"
	"github.com/AngeelRdz/resume-angeel-dev/database/repository"
	"github.com/AngeelRdz/resume-angeel-dev/pkg/profile"
)

func newMockConnection(t *testing.T) (*database.Connection, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gdb, err := stdgorm.Open(dialector, &stdgorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}

	return database.MakeConnectionFrom(gdb, nil), mock, sqlDB
}

func TestProfilesGetProfileStoreFailure(t *testing.T) {
	conn, mock, sqlDB := newMockConnection(t)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cause := errors.New("connection reset by peer")

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).WillReturnError(cause)

	repo := repository.Profiles{DB: conn}

	found, err := repo.GetProfile(context.Background(), profile.GetProfileParams{})
	if found != nil {
		t.Fatal("expected no profile on a store failure")
	}

	if !errors.Is(err, cause) {
		t.Fatalf("the store error must propagate, got %v", err)
	}

	if !strings.Contains(err.Error(), "fetch profile") {
		t.Fatalf("expected the fetch context in the error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
