package pgdb

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"prequal-reporting-api/internal/common"
	"prequal-reporting-api/migrations"
	"prequal-reporting-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// newTestDB opens an in-memory SQLite database and applies the production
// migrations to it.
func newTestDB(t *testing.T) *postgres.Postgres {
	t.Helper()

	db, err := sql.Open("sqlite", "file::memory:?_time_format=sqlite")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Up(driver, "sqlite"))

	return postgres.FromDB(db, squirrel.Question)
}

type fixtures struct {
	t  *testing.T
	pg *postgres.Postgres
}

func newFixtures(t *testing.T, pg *postgres.Postgres) *fixtures {
	return &fixtures{t: t, pg: pg}
}

func (f *fixtures) exec(b squirrel.InsertBuilder) {
	f.t.Helper()

	sqlReq, args, err := b.ToSql()
	require.NoError(f.t, err)
	_, err = f.pg.Database.ExecContext(context.Background(), sqlReq, args...)
	require.NoError(f.t, err)
}

func (f *fixtures) organization(id int64, name string, orgType string) {
	f.exec(f.pg.SqlBuilder.Insert("organization").
		Columns("id", "name", "organization_type").
		Values(id, name, orgType))
}

func (f *fixtures) vendor(id int64, name string, address1 *string, phone *string) {
	f.exec(f.pg.SqlBuilder.Insert("organization").
		Columns("id", "name", "organization_type", "address1", "phone_number").
		Values(id, name, common.Vendor, address1, phone))
}

func (f *fixtures) template(name string, riskLevel *string, active bool) uuid.UUID {
	id := uuid.New()
	f.exec(f.pg.SqlBuilder.Insert("template").
		Columns("id", "name", "risk_level", "is_active").
		Values(id.String(), name, riskLevel, active))

	return id
}

type assignmentOpts struct {
	visible bool
	active  bool
	deleted bool
}

func (f *fixtures) assign(clientId int64, templateId uuid.UUID, opts assignmentOpts) uuid.UUID {
	id := uuid.New()
	var deletedOn *time.Time
	if opts.deleted {
		now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		deletedOn = &now
	}
	f.exec(f.pg.SqlBuilder.Insert("client_template").
		Columns("id", "client_id", "template_id", "display_order", "visible", "active", "deleted_on").
		Values(id.String(), clientId, templateId.String(), 1, opts.visible, opts.active, deletedOn))

	return id
}

func (f *fixtures) section(id int64, templateId uuid.UUID, name string, active bool) {
	f.exec(f.pg.SqlBuilder.Insert("template_section").
		Columns("id", "template_id", "name", "order_number", "is_active").
		Values(id, templateId.String(), name, id, active))
}

func (f *fixtures) subSection(id int64, sectionId int64, name string, active bool) {
	f.exec(f.pg.SqlBuilder.Insert("template_sub_section").
		Columns("id", "template_section_id", "name", "order_number", "is_active").
		Values(id, sectionId, name, id, active))
}

func (f *fixtures) question(id int64, subSectionId int64, text string, bankId *int64, riskLevel *string, active bool) {
	f.exec(f.pg.SqlBuilder.Insert("question").
		Columns("id", "template_sub_section_id", "text", "order_number", "is_active", "question_bank_id", "risk_level").
		Values(id, subSectionId, text, id, active, bankId, riskLevel))
}

func (f *fixtures) questionColumn(id int64, questionId int64) {
	f.exec(f.pg.SqlBuilder.Insert("question_column").
		Columns("id", "question_id", "column_name").
		Values(id, questionId, "answer"))
}

func (f *fixtures) prequalification(id int64, vendorId int64, clientId int64, start time.Time) {
	f.exec(f.pg.SqlBuilder.Insert("prequalification").
		Columns("id", "vendor_id", "client_id", "status_id", "prequalification_start", "prequalification_create").
		Values(id, vendorId, clientId, 1, start, start))
}

func (f *fixtures) answer(id int64, prequalificationId int64, questionColumnId int64, value *string, deleted bool) {
	var deletedOn *time.Time
	if deleted {
		now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		deletedOn = &now
	}
	f.exec(f.pg.SqlBuilder.Insert("prequalification_user_input").
		Columns("id", "prequalification_id", "question_column_id", "user_input", "deleted_on").
		Values(id, prequalificationId, questionColumnId, value, deletedOn))
}

func ptr[T any](v T) *T {
	return &v
}
