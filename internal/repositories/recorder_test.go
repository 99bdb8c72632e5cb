package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-ats/internal/models"
)

func TestNopRecorder(t *testing.T) {
	r := NewNopRecorder()

	assert.False(t, r.Enabled())
	assert.NoError(t, r.Record(&models.AnalysisReport{ID: uuid.New()}))

	_, err := r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrAnalysisNotFound)

	recent, err := r.Recent(10)
	assert.NoError(t, err)
	assert.Empty(t, recent)
}

func TestRepositoryRecorder_RoundTrip(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewRepositoryRecorder(NewAnalysisRepository(db))
	assert.True(t, r.Enabled())

	report := &models.AnalysisReport{
		ID:        uuid.New(),
		Skills:    []string{"Go"},
		Results:   []models.MatchResult{{Name: "cv.txt", Score: 100, Matched: []string{"Go"}}},
		CreatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "analysis_runs"`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	require.NoError(t, r.Record(report))

	rows := sqlmock.NewRows(runColumns).AddRow(
		report.ID.String(), `["Go"]`, `[{"name":"cv.txt","score":100,"matched":["Go"],"missing":null}]`, `null`, report.CreatedAt,
	)
	mock.ExpectQuery(`SELECT \* FROM "analysis_runs"`).WillReturnRows(rows)

	got, err := r.Get(report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, "cv.txt", got.Results[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
