package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/PrinceSD2/lms-sub001/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, name, email, phone, alternate_phone, debt_category, debt_types,
	source, total_debt_amount, number_of_creditors, monthly_debt_payment,
	credit_score_range, address, city, state, zipcode, notes, status,
	created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		nullString(lead.Email),
		nullString(lead.Phone),
		nullString(lead.AlternatePhone),
		nullString(lead.DebtCategory),
		pq.Array(lead.DebtTypes),
		lead.Source,
		lead.TotalDebtAmount,
		lead.NumberOfCreditors,
		lead.MonthlyDebtPayment,
		nullString(lead.CreditScoreRange),
		nullString(lead.Address),
		nullString(lead.City),
		nullString(lead.State),
		nullString(lead.Zipcode),
		nullString(lead.Notes),
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

// List returns one page of leads, newest first, plus the total row count for
// the paginator.
func (r *LeadRepository) List(ctx context.Context, limit, offset int) ([]*entity.Lead, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, lead)
	}
	return leads, total, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead               entity.Lead
		email              sql.NullString
		phone              sql.NullString
		alternatePhone     sql.NullString
		debtCategory       sql.NullString
		totalDebtAmount    sql.NullFloat64
		numberOfCreditors  sql.NullInt64
		monthlyDebtPayment sql.NullFloat64
		creditScoreRange   sql.NullString
		address            sql.NullString
		city               sql.NullString
		state              sql.NullString
		zipcode            sql.NullString
		notes              sql.NullString
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&email,
		&phone,
		&alternatePhone,
		&debtCategory,
		pq.Array(&lead.DebtTypes),
		&lead.Source,
		&totalDebtAmount,
		&numberOfCreditors,
		&monthlyDebtPayment,
		&creditScoreRange,
		&address,
		&city,
		&state,
		&zipcode,
		&notes,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Email = email.String
	lead.Phone = phone.String
	lead.AlternatePhone = alternatePhone.String
	lead.DebtCategory = debtCategory.String
	lead.CreditScoreRange = creditScoreRange.String
	lead.Address = address.String
	lead.City = city.String
	lead.State = state.String
	lead.Zipcode = zipcode.String
	lead.Notes = notes.String

	if totalDebtAmount.Valid {
		v := totalDebtAmount.Float64
		lead.TotalDebtAmount = &v
	}
	if numberOfCreditors.Valid {
		v := int(numberOfCreditors.Int64)
		lead.NumberOfCreditors = &v
	}
	if monthlyDebtPayment.Valid {
		v := monthlyDebtPayment.Float64
		lead.MonthlyDebtPayment = &v
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
