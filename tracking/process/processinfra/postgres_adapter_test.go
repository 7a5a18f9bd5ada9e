package processinfra

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/process"
)

var pqUniqueViolation = pq.Error{Code: "23505"}

func newMockRepository(t *testing.T) (*PostgresProcessRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewPostgresProcessRepository(db), mock
}

func processRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "company_name", "job_title", "status", "salary",
		"currency", "salary_rate_type", "created_at", "updated_at", "deleted_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, "user-1", "Acme", nil, "ongoing", nil, "USD", "monthly", now, now, nil)
	}
	return rows
}

func TestCreate(t *testing.T) {
	t.Run("inserts the row", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("INSERT INTO hiring_processes").
			WillReturnResult(sqlmock.NewResult(0, 1))

		now := time.Now()
		err := repo.Create(context.Background(), &process.HiringProcess{
			ID:             kernel.NewProcessID("proc-1"),
			UserID:         kernel.NewUserID("user-1"),
			CompanyName:    kernel.CompanyName("Acme"),
			Status:         process.StatusFirstContact,
			Currency:       kernel.CurrencyUSD,
			SalaryRateType: kernel.SalaryRateMonthly,
			CreatedAt:      now,
			UpdatedAt:      now,
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByID(t *testing.T) {
	t.Run("scopes the query to owner and live rows", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("FROM hiring_processes\\s+WHERE id = \\$1 AND user_id = \\$2 AND deleted_at IS NULL").
			WithArgs("proc-1", "user-1").
			WillReturnRows(processRows("proc-1"))

		proc, err := repo.GetByID(context.Background(), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.NoError(t, err)
		assert.Equal(t, kernel.NewProcessID("proc-1"), proc.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps no rows to not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("FROM hiring_processes").
			WithArgs("proc-missing", "user-1").
			WillReturnRows(processRows())

		_, err := repo.GetByID(context.Background(), kernel.NewProcessID("proc-missing"), kernel.NewUserID("user-1"))

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestList(t *testing.T) {
	t.Run("runs count and page queries with shared predicates", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.MatchExpectationsInOrder(false) // count and page run concurrently

		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM hiring_processes WHERE user_id = $1 AND deleted_at IS NULL")).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		mock.ExpectQuery("FROM hiring_processes\\s+WHERE user_id = \\$1 AND deleted_at IS NULL\\s+ORDER BY updated_at DESC\\s+LIMIT \\$2 OFFSET \\$3").
			WithArgs("user-1", 5, 5).
			WillReturnRows(processRows("proc-6", "proc-7", "proc-8", "proc-9", "proc-10"))

		result, err := repo.List(context.Background(),
			kernel.NewUserID("user-1"),
			kernel.PaginationOptions{Page: 2, PageSize: 5},
			process.ListProcessesFilter{},
		)

		require.NoError(t, err)
		assert.Len(t, result.Items, 5)
		assert.Equal(t, 12, result.Page.Total)
		assert.Equal(t, 3, result.Page.Pages)
		assert.Equal(t, 2, result.Page.Number)
		assert.False(t, result.Empty)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies status and salary filters", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.MatchExpectationsInOrder(false)

		wantArgs := []driver.Value{"user-1", sqlmock.AnyArg(), int64(50000)}

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM hiring_processes WHERE user_id = \\$1 AND deleted_at IS NULL AND status = ANY\\(\\$2\\) AND salary IS NOT NULL AND salary > 0 AND salary >= \\$3").
			WithArgs(wantArgs...).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		mock.ExpectQuery("status = ANY\\(\\$2\\) AND salary IS NOT NULL AND salary > 0 AND salary >= \\$3\\s+ORDER BY updated_at DESC\\s+LIMIT \\$4 OFFSET \\$5").
			WithArgs("user-1", sqlmock.AnyArg(), int64(50000), 5, 0).
			WillReturnRows(processRows("proc-1"))

		declared := true
		min := int64(50000)
		result, err := repo.List(context.Background(),
			kernel.NewUserID("user-1"),
			kernel.PaginationOptions{},
			process.ListProcessesFilter{
				Statuses:       []process.ProcessStatus{process.StatusOngoing, process.StatusOnHold},
				SalaryDeclared: &declared,
				SalaryMin:      &min,
			},
		)

		require.NoError(t, err)
		assert.Len(t, result.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("undeclared salary filter matches null and zero", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.MatchExpectationsInOrder(false)

		mock.ExpectQuery(regexp.QuoteMeta("(salary IS NULL OR salary = 0)")).
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery("\\(salary IS NULL OR salary = 0\\)\\s+ORDER BY updated_at DESC").
			WithArgs("user-1", 5, 0).
			WillReturnRows(processRows())

		declared := false
		result, err := repo.List(context.Background(),
			kernel.NewUserID("user-1"),
			kernel.PaginationOptions{},
			process.ListProcessesFilter{SalaryDeclared: &declared},
		)

		require.NoError(t, err)
		assert.True(t, result.Empty)
		assert.Equal(t, 0, result.Page.Pages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdate(t *testing.T) {
	t.Run("sets only the present fields plus updated_at", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("UPDATE hiring_processes SET company_name = \\$1, updated_at = \\$2\\s+WHERE id = \\$3 AND user_id = \\$4 AND deleted_at IS NULL\\s+RETURNING").
			WithArgs("Initech", sqlmock.AnyArg(), "proc-1", "user-1").
			WillReturnRows(processRows("proc-1"))

		name := kernel.CompanyName("Initech")
		proc, err := repo.Update(context.Background(),
			kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"),
			process.UpdateProcessRequest{CompanyName: &name},
		)

		require.NoError(t, err)
		assert.Equal(t, kernel.NewProcessID("proc-1"), proc.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("soft-deleted row is reported as not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("UPDATE hiring_processes SET").
			WillReturnRows(processRows())

		status := process.StatusOngoing
		_, err := repo.Update(context.Background(),
			kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"),
			process.UpdateProcessRequest{Status: &status},
		)

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("marks the row deleted", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE hiring_processes\\s+SET deleted_at = \\$1").
			WithArgs(sqlmock.AnyArg(), "proc-1", "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SoftDelete(context.Background(), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second delete is a no-op", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE hiring_processes").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("proc-1", "user-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		err := repo.SoftDelete(context.Background(), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown or foreign row is not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("UPDATE hiring_processes").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("proc-1", "user-2").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		err := repo.SoftDelete(context.Background(), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-2"))

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}

func TestDetails(t *testing.T) {
	detailsRows := func(n int) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{
			"id", "hiring_process_id", "website", "location", "benefits",
			"contacted_via", "contact_person", "interview_steps",
			"created_at", "updated_at", "deleted_at",
		})
		now := time.Now()
		for i := 0; i < n; i++ {
			rows.AddRow("det-1", "proc-1", nil, nil, nil, nil, nil, 3, now, now, nil)
		}
		return rows
	}

	t.Run("get joins the parent for ownership", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("INNER JOIN hiring_processes p ON p\\.id = d\\.hiring_process_id").
			WithArgs("proc-1", "user-1").
			WillReturnRows(detailsRows(1))

		details, err := repo.GetDetails(context.Background(), kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"))

		require.NoError(t, err)
		assert.Equal(t, 3, details.InterviewSteps)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate create is a conflict", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectExec("INSERT INTO company_details").
			WillReturnError(&pqUniqueViolation)

		err := repo.CreateDetails(context.Background(), &process.CompanyDetails{
			ID:              kernel.NewDetailsID("det-1"),
			HiringProcessID: kernel.NewProcessID("proc-1"),
		})

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeConflict))
	})

	t.Run("update on deleted parent is not-found", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectQuery("UPDATE company_details d SET").
			WillReturnRows(detailsRows(0))

		steps := 5
		_, err := repo.UpdateDetails(context.Background(),
			kernel.NewProcessID("proc-1"), kernel.NewUserID("user-1"),
			process.UpdateCompanyDetailsRequest{InterviewSteps: &steps},
		)

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeNotFound))
	})
}
