package processinfra

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/tracking/process"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresProcessRepository implements process.Repository using PostgreSQL
type PostgresProcessRepository struct {
	db *sqlx.DB
}

// NewPostgresProcessRepository creates a new PostgreSQL process repository
func NewPostgresProcessRepository(db *sqlx.DB) *PostgresProcessRepository {
	return &PostgresProcessRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

const processColumns = `
	id, user_id, company_name, job_title, status, salary,
	currency, salary_rate_type, created_at, updated_at, deleted_at`

type processModel struct {
	ID             string     `db:"id"`
	UserID         string     `db:"user_id"`
	CompanyName    string     `db:"company_name"`
	JobTitle       *string    `db:"job_title"`
	Status         string     `db:"status"`
	Salary         *int64     `db:"salary"`
	Currency       string     `db:"currency"`
	SalaryRateType string     `db:"salary_rate_type"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

// toEntity converts database model to domain entity
func (m *processModel) toEntity() *process.HiringProcess {
	var jobTitle *kernel.JobTitle
	if m.JobTitle != nil {
		jt := kernel.JobTitle(*m.JobTitle)
		jobTitle = &jt
	}

	return &process.HiringProcess{
		ID:             kernel.ProcessID(m.ID),
		UserID:         kernel.UserID(m.UserID),
		CompanyName:    kernel.CompanyName(m.CompanyName),
		JobTitle:       jobTitle,
		Status:         process.ProcessStatus(m.Status),
		Salary:         m.Salary,
		Currency:       kernel.Currency(m.Currency),
		SalaryRateType: kernel.SalaryRateType(m.SalaryRateType),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      m.DeletedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(p *process.HiringProcess) *processModel {
	var jobTitle *string
	if p.JobTitle != nil {
		jt := string(*p.JobTitle)
		jobTitle = &jt
	}

	return &processModel{
		ID:             string(p.ID),
		UserID:         string(p.UserID),
		CompanyName:    string(p.CompanyName),
		JobTitle:       jobTitle,
		Status:         string(p.Status),
		Salary:         p.Salary,
		Currency:       string(p.Currency),
		SalaryRateType: string(p.SalaryRateType),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		DeletedAt:      p.DeletedAt,
	}
}

const detailsColumns = `
	id, hiring_process_id, website, location, benefits, contacted_via,
	contact_person, interview_steps, created_at, updated_at, deleted_at`

type detailsModel struct {
	ID              string     `db:"id"`
	HiringProcessID string     `db:"hiring_process_id"`
	Website         *string    `db:"website"`
	Location        *string    `db:"location"`
	Benefits        *string    `db:"benefits"`
	ContactedVia    *string    `db:"contacted_via"`
	ContactPerson   *string    `db:"contact_person"`
	InterviewSteps  int        `db:"interview_steps"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

func (m *detailsModel) toEntity() *process.CompanyDetails {
	return &process.CompanyDetails{
		ID:              kernel.DetailsID(m.ID),
		HiringProcessID: kernel.ProcessID(m.HiringProcessID),
		Website:         m.Website,
		Location:        m.Location,
		Benefits:        m.Benefits,
		ContactedVia:    m.ContactedVia,
		ContactPerson:   m.ContactPerson,
		InterviewSteps:  m.InterviewSteps,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       m.DeletedAt,
	}
}

func detailsFromEntity(d *process.CompanyDetails) *detailsModel {
	return &detailsModel{
		ID:              string(d.ID),
		HiringProcessID: string(d.HiringProcessID),
		Website:         d.Website,
		Location:        d.Location,
		Benefits:        d.Benefits,
		ContactedVia:    d.ContactedVia,
		ContactPerson:   d.ContactPerson,
		InterviewSteps:  d.InterviewSteps,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		DeletedAt:       d.DeletedAt,
	}
}

// ============================================================================
// Filter Builder
// ============================================================================

// buildListFilters translates the optional filters into AND-able
// predicates. argCount continues the caller's positional numbering.
func buildListFilters(filter process.ListProcessesFilter, argCount int) ([]string, []interface{}, int) {
	conditions := []string{}
	args := []interface{}{}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argCount))
		args = append(args, pq.Array(statuses))
		argCount++
	}

	if filter.SalaryDeclared != nil {
		// Zero salary counts as "not declared"
		if *filter.SalaryDeclared {
			conditions = append(conditions, "salary IS NOT NULL AND salary > 0")
		} else {
			conditions = append(conditions, "(salary IS NULL OR salary = 0)")
		}
	}

	if filter.SalaryMin != nil {
		conditions = append(conditions, fmt.Sprintf("salary >= $%d", argCount))
		args = append(args, *filter.SalaryMin)
		argCount++
	}

	if filter.SalaryMax != nil {
		conditions = append(conditions, fmt.Sprintf("salary <= $%d", argCount))
		args = append(args, *filter.SalaryMax)
		argCount++
	}

	return conditions, args, argCount
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create inserts a fully-formed new hiring process
func (r *PostgresProcessRepository) Create(ctx context.Context, proc *process.HiringProcess) error {
	model := fromEntity(proc)

	query := `
		INSERT INTO hiring_processes (
			id, user_id, company_name, job_title, status, salary,
			currency, salary_rate_type, created_at, updated_at, deleted_at
		) VALUES (
			:id, :user_id, :company_name, :job_title, :status, :salary,
			:currency, :salary_rate_type, :created_at, :updated_at, :deleted_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return process.ErrProcessAlreadyExists()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return fmt.Errorf("invalid user_id reference: %w", err)
			}
		}
		return fmt.Errorf("failed to create hiring process: %w", err)
	}

	return nil
}

// GetByID retrieves one hiring process scoped to its owner
func (r *PostgresProcessRepository) GetByID(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) (*process.HiringProcess, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM hiring_processes
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`, processColumns)

	var model processModel
	err := r.db.GetContext(ctx, &model, query, string(id), string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, process.ErrProcessNotFound()
		}
		return nil, fmt.Errorf("failed to get hiring process by id: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves a page of the user's hiring processes plus the total
// count. Page and count queries share the exact same predicates and run
// concurrently; the store's default read consistency is enough here.
func (r *PostgresProcessRepository) List(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions, filter process.ListProcessesFilter) (*kernel.Paginated[process.HiringProcess], error) {
	pagination = pagination.Normalized()

	conditions := []string{"user_id = $1", "deleted_at IS NULL"}
	args := []interface{}{string(userID)}

	filterConditions, filterArgs, argCount := buildListFilters(filter, 2)
	conditions = append(conditions, filterConditions...)
	args = append(args, filterArgs...)

	whereClause := "WHERE " + strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM hiring_processes %s", whereClause)

	pageQuery := fmt.Sprintf(`
		SELECT %s
		FROM hiring_processes
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, processColumns, whereClause, argCount, argCount+1)

	pageArgs := make([]interface{}, 0, len(args)+2)
	pageArgs = append(pageArgs, args...)
	pageArgs = append(pageArgs, pagination.PageSize, pagination.Offset())

	var (
		wg       sync.WaitGroup
		total    int
		models   []processModel
		countErr error
		pageErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		countErr = r.db.GetContext(ctx, &total, countQuery, args...)
	}()
	go func() {
		defer wg.Done()
		pageErr = r.db.SelectContext(ctx, &models, pageQuery, pageArgs...)
	}()
	wg.Wait()

	if countErr != nil {
		return nil, fmt.Errorf("failed to count hiring processes: %w", countErr)
	}
	if pageErr != nil {
		return nil, fmt.Errorf("failed to list hiring processes: %w", pageErr)
	}

	entities := make([]process.HiringProcess, 0, len(models))
	for _, model := range models {
		entities = append(entities, *model.toEntity())
	}

	return &kernel.Paginated[process.HiringProcess]{
		Items: entities,
		Page:  kernel.NewPage(pagination.Page, pagination.PageSize, total),
		Empty: len(entities) == 0,
	}, nil
}

// Update applies the present fields of req as one conditional UPDATE.
// The ownership and soft-delete predicates live in the statement itself
// so no check-then-write window exists.
func (r *PostgresProcessRepository) Update(ctx context.Context, id kernel.ProcessID, userID kernel.UserID, req process.UpdateProcessRequest) (*process.HiringProcess, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if req.CompanyName != nil {
		setClauses = append(setClauses, fmt.Sprintf("company_name = $%d", argCount))
		args = append(args, string(*req.CompanyName))
		argCount++
	}
	if req.JobTitle != nil {
		setClauses = append(setClauses, fmt.Sprintf("job_title = $%d", argCount))
		args = append(args, string(*req.JobTitle))
		argCount++
	}
	if req.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argCount))
		args = append(args, string(*req.Status))
		argCount++
	}
	if req.Salary != nil {
		setClauses = append(setClauses, fmt.Sprintf("salary = $%d", argCount))
		args = append(args, *req.Salary)
		argCount++
	}
	if req.Currency != nil {
		setClauses = append(setClauses, fmt.Sprintf("currency = $%d", argCount))
		args = append(args, string(*req.Currency))
		argCount++
	}
	if req.SalaryRateType != nil {
		setClauses = append(setClauses, fmt.Sprintf("salary_rate_type = $%d", argCount))
		args = append(args, string(*req.SalaryRateType))
		argCount++
	}

	// updated_at is re-stamped even when no other field changed
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	query := fmt.Sprintf(`
		UPDATE hiring_processes SET %s
		WHERE id = $%d AND user_id = $%d AND deleted_at IS NULL
		RETURNING %s
	`, strings.Join(setClauses, ", "), argCount, argCount+1, processColumns)

	args = append(args, string(id), string(userID))

	var model processModel
	err := r.db.GetContext(ctx, &model, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, process.ErrProcessNotFound()
		}
		return nil, fmt.Errorf("failed to update hiring process: %w", err)
	}

	return model.toEntity(), nil
}

// SoftDelete marks a hiring process deleted. Matching zero rows means
// either the row is already deleted (a no-op by contract) or it does
// not belong to the caller (not-found).
func (r *PostgresProcessRepository) SoftDelete(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) error {
	query := `
		UPDATE hiring_processes
		SET deleted_at = $1,
		    updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, string(id), string(userID))
	if err != nil {
		return fmt.Errorf("failed to delete hiring process: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		existsQuery := `SELECT EXISTS(SELECT 1 FROM hiring_processes WHERE id = $1 AND user_id = $2)`

		var exists bool
		if err := r.db.GetContext(ctx, &exists, existsQuery, string(id), string(userID)); err != nil {
			return fmt.Errorf("failed to check hiring process existence: %w", err)
		}
		if !exists {
			return process.ErrProcessNotFound()
		}
		// Already soft-deleted: idempotent no-op
	}

	return nil
}

// ============================================================================
// Company Details
// ============================================================================

// GetDetails retrieves the company details of a hiring process. The
// join re-verifies parent ownership and liveness on every read.
func (r *PostgresProcessRepository) GetDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) (*process.CompanyDetails, error) {
	query := `
		SELECT
			d.id, d.hiring_process_id, d.website, d.location, d.benefits,
			d.contacted_via, d.contact_person, d.interview_steps,
			d.created_at, d.updated_at, d.deleted_at
		FROM company_details d
		INNER JOIN hiring_processes p ON p.id = d.hiring_process_id
		WHERE d.hiring_process_id = $1
		  AND p.user_id = $2
		  AND p.deleted_at IS NULL
		  AND d.deleted_at IS NULL
	`

	var model detailsModel
	err := r.db.GetContext(ctx, &model, query, string(processID), string(userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, process.ErrDetailsNotFound()
		}
		return nil, fmt.Errorf("failed to get company details: %w", err)
	}

	return model.toEntity(), nil
}

// CreateDetails inserts the single company-details row of a process
func (r *PostgresProcessRepository) CreateDetails(ctx context.Context, details *process.CompanyDetails) error {
	model := detailsFromEntity(details)

	query := `
		INSERT INTO company_details (
			id, hiring_process_id, website, location, benefits,
			contacted_via, contact_person, interview_steps,
			created_at, updated_at, deleted_at
		) VALUES (
			:id, :hiring_process_id, :website, :location, :benefits,
			:contacted_via, :contact_person, :interview_steps,
			:created_at, :updated_at, :deleted_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation on hiring_process_id
				return process.ErrDetailsAlreadyExist()
			}
			if pqErr.Code == "23503" { // foreign_key_violation
				return process.ErrProcessNotFound()
			}
		}
		return fmt.Errorf("failed to create company details: %w", err)
	}

	return nil
}

// UpdateDetails applies the present fields of req to the details row
func (r *PostgresProcessRepository) UpdateDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, req process.UpdateCompanyDetailsRequest) (*process.CompanyDetails, error) {
	setClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Website != nil {
		setClauses = append(setClauses, fmt.Sprintf("website = $%d", argCount))
		args = append(args, *req.Website)
		argCount++
	}
	if req.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", argCount))
		args = append(args, *req.Location)
		argCount++
	}
	if req.Benefits != nil {
		setClauses = append(setClauses, fmt.Sprintf("benefits = $%d", argCount))
		args = append(args, *req.Benefits)
		argCount++
	}
	if req.ContactedVia != nil {
		setClauses = append(setClauses, fmt.Sprintf("contacted_via = $%d", argCount))
		args = append(args, *req.ContactedVia)
		argCount++
	}
	if req.ContactPerson != nil {
		setClauses = append(setClauses, fmt.Sprintf("contact_person = $%d", argCount))
		args = append(args, *req.ContactPerson)
		argCount++
	}
	if req.InterviewSteps != nil {
		setClauses = append(setClauses, fmt.Sprintf("interview_steps = $%d", argCount))
		args = append(args, *req.InterviewSteps)
		argCount++
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argCount))
	args = append(args, time.Now())
	argCount++

	query := fmt.Sprintf(`
		UPDATE company_details d SET %s
		FROM hiring_processes p
		WHERE p.id = d.hiring_process_id
		  AND d.hiring_process_id = $%d
		  AND p.user_id = $%d
		  AND p.deleted_at IS NULL
		  AND d.deleted_at IS NULL
		RETURNING
			d.id, d.hiring_process_id, d.website, d.location, d.benefits,
			d.contacted_via, d.contact_person, d.interview_steps,
			d.created_at, d.updated_at, d.deleted_at
	`, strings.Join(setClauses, ", "), argCount, argCount+1)

	args = append(args, string(processID), string(userID))

	var model detailsModel
	err := r.db.GetContext(ctx, &model, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, process.ErrDetailsNotFound()
		}
		return nil, fmt.Errorf("failed to update company details: %w", err)
	}

	return model.toEntity(), nil
}

// SoftDeleteDetails marks the details row deleted. Idempotent like the
// parent's soft delete.
func (r *PostgresProcessRepository) SoftDeleteDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) error {
	query := `
		UPDATE company_details d
		SET deleted_at = $1,
		    updated_at = $1
		FROM hiring_processes p
		WHERE p.id = d.hiring_process_id
		  AND d.hiring_process_id = $2
		  AND p.user_id = $3
		  AND p.deleted_at IS NULL
		  AND d.deleted_at IS NULL
	`

	now := time.Now()
	result, err := r.db.ExecContext(ctx, query, now, string(processID), string(userID))
	if err != nil {
		return fmt.Errorf("failed to delete company details: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		existsQuery := `
			SELECT EXISTS(
				SELECT 1
				FROM company_details d
				INNER JOIN hiring_processes p ON p.id = d.hiring_process_id
				WHERE d.hiring_process_id = $1 AND p.user_id = $2 AND p.deleted_at IS NULL
			)
		`

		var exists bool
		if err := r.db.GetContext(ctx, &exists, existsQuery, string(processID), string(userID)); err != nil {
			return fmt.Errorf("failed to check company details existence: %w", err)
		}
		if !exists {
			return process.ErrDetailsNotFound()
		}
	}

	return nil
}
