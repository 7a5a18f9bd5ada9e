package interactioninfra

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/interaction"
)

func newMockRepository(t *testing.T) (*PostgresInteractionRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewPostgresInteractionRepository(db), mock
}

func interactionRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "hiring_process_id", "type", "title", "content", "occurred_at", "created_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "proc-1", "phone-call", nil, "Recruiter called about next steps", now, now)
	}
	return rows
}

func newTestInteraction() *interaction.Interaction {
	now := time.Now()
	return &interaction.Interaction{
		ID:              kernel.NewInteractionID("int-1"),
		HiringProcessID: kernel.NewProcessID("proc-1"),
		Type:            interaction.TypePhoneCall,
		Content:         "Recruiter called about next steps",
		OccurredAt:      now,
		CreatedAt:       now,
	}
}

func TestCreate(t *testing.T) {
	t.Run("inserts through the parent process", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("INSERT INTO interactions").
			WithArgs("int-1", "phone-call", nil, "Recruiter called about next steps",
				sqlmock.AnyArg(), sqlmock.AnyArg(), "proc-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), kernel.NewUserID("user-1"), newTestInteraction())

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted or foreign parent yields not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("INSERT INTO interactions").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Create(context.Background(), kernel.NewUserID("user-2"), newTestInteraction())

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestList(t *testing.T) {
	t.Run("pages the timeline newest first", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("proc-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		mock.MatchExpectationsInOrder(false) // count and page run concurrently
		mock.ExpectQuery("SELECT COUNT\\(\\*\\)\\s+FROM interactions i").
			WithArgs("proc-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectQuery("ORDER BY i\\.occurred_at DESC, i\\.created_at DESC\\s+LIMIT \\$3 OFFSET \\$4").
			WithArgs("proc-1", "user-1", 5, 0).
			WillReturnRows(interactionRows("int-1", "int-2", "int-3", "int-4", "int-5"))

		result, err := repo.List(context.Background(),
			kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"), kernel.PaginationOptions{})

		require.NoError(t, err)
		assert.Len(t, result.Items, 5)
		assert.Equal(t, 7, result.Page.Total)
		assert.Equal(t, 2, result.Page.Pages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown parent is not-found, not an empty page", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("proc-missing", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.List(context.Background(),
			kernel.NewProcessID("proc-missing"), kernel.NewUserID("user-1"), kernel.PaginationOptions{})

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("DELETE FROM interactions i\\s+USING hiring_processes p").
			WithArgs("int-1", "proc-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(),
			kernel.NewInteractionID("int-1"), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second delete is not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("DELETE FROM interactions").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(),
			kernel.NewInteractionID("int-1"), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}
