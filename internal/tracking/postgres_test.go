package tracking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleRecord() *UploadRecord {
	return &UploadRecord{
		ID:            "11111111-2222-3333-4444-555555555555",
		UserID:        "u1",
		FileName:      "data.csv",
		FileSize:      15 * 1024 * 1024,
		FileType:      "text/csv",
		Provider:      storage.ProviderOORT,
		UploadURL:     "https://labsmarket.s3-standard.oortech.com/uploads/1-data.csv",
		PointsAwarded: 6,
		CreatedAt:     time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rec := sampleRecord()

	mock.ExpectExec(`INSERT INTO uploads .*`).
		WithArgs(rec.ID, rec.UserID, rec.FileName, rec.FileSize, rec.FileType,
			"OORT", rec.UploadURL, rec.PointsAwarded, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert_DBExecError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	boom := errors.New("connection refused")
	mock.ExpectExec(`INSERT INTO uploads .*`).WillReturnError(boom)

	err := repo.Insert(context.Background(), sampleRecord())
	if !errors.Is(err, boom) {
		t.Fatalf("want wrapped exec error, got %v", err)
	}
}

func TestInsert_UnexpectedRowsAffected(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO uploads .*`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Insert(context.Background(), sampleRecord()); err == nil {
		t.Fatal("want error for 0 rows affected, got nil")
	}
}

func TestSelectByUser_ReturnsRowsNewestFirst(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	newer := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "file_size", "file_type",
		"storage_provider", "upload_url", "points_awarded", "created_at",
	}).
		AddRow("id2", "u1", "b.png", int64(1024), "image/png", "AWS", "https://x/b.png", 2, newer).
		AddRow("id1", "u1", "a.csv", int64(2048), "text/csv", "OORT", "https://x/a.csv", 4, older)

	mock.ExpectQuery(`SELECT .* from uploads\s+WHERE user_id=\$1 ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.SelectByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != "id2" || got[1].ID != "id1" {
		t.Fatalf("order = %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].Provider != storage.ProviderAWS {
		t.Fatalf("provider = %q", got[0].Provider)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSelectByUser_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* from uploads`).WillReturnError(errors.New("boom"))

	if _, err := repo.SelectByUser(context.Background(), "u1"); err == nil {
		t.Fatal("want error, got nil")
	}
}

func TestSumPoints(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points_awarded\), 0\) from uploads WHERE user_id=\$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))

	total, err := repo.SumPoints(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Fatalf("total = %d, want 42", total)
	}
}

func TestSumPoints_NoRowsIsZero(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(points_awarded\), 0\) from uploads`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

	total, err := repo.SumPoints(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}
}
