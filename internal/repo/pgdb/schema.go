package pgdb

import (
	"context"
	"fmt"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type SchemaRepo struct {
	*postgres.Postgres
}

func NewSchemaRepo(pgdb *postgres.Postgres) *SchemaRepo {
	return &SchemaRepo{pgdb}
}

// GetActiveAssignments returns the client's template assignments that are
// active, visible and not soft-deleted.
func (r *SchemaRepo) GetActiveAssignments(ctx context.Context, clientId int64) ([]entity.ClientTemplateAssignment, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select("id", "client_id", "template_id", "display_order", "visible", "active", "default_template", "deleted_on").
		From("client_template").
		Where("client_id = ?", clientId).
		Where(squirrel.Eq{"active": true, "visible": true}).
		Where("deleted_on IS NULL").
		OrderBy("display_order ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, fmt.Errorf("query client templates: %w", err)
	}
	defer rows.Close()

	assignments := make([]entity.ClientTemplateAssignment, 0)
	for rows.Next() {
		var a entity.ClientTemplateAssignment
		if err := rows.Scan(&a.Id, &a.ClientId, &a.TemplateId, &a.DisplayOrder,
			&a.Visible, &a.Active, &a.DefaultTemplate, &a.DeletedOn); err != nil {
			return nil, fmt.Errorf("scan client template: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate client templates: %w", err)
	}

	return assignments, nil
}

// GetActiveQuestionsByTemplateIds joins question -> sub-section -> section ->
// template once and keeps only rows where every level is active.
func (r *SchemaRepo) GetActiveQuestionsByTemplateIds(ctx context.Context, templateIds []uuid.UUID) ([]entity.ResolvedQuestion, error) {
	if len(templateIds) == 0 {
		return make([]entity.ResolvedQuestion, 0), nil
	}

	ids := make([]string, 0, len(templateIds))
	for _, id := range templateIds {
		ids = append(ids, id.String())
	}

	sqlReq, args, err := r.SqlBuilder.
		Select(
			"q.id", "q.text", "q.data_type", "q.order_number", "q.is_mandatory", "q.question_bank_id",
			"q.risk_level", "q.safety_level", "q.category", "q.description",
			"ss.id", "ss.name", "s.id", "s.name", "t.id", "t.name", "t.risk_level",
		).
		From("question q").
		InnerJoin("template_sub_section ss on ss.id = q.template_sub_section_id").
		InnerJoin("template_section s on s.id = ss.template_section_id").
		InnerJoin("template t on t.id = s.template_id").
		Where(squirrel.Eq{"t.id": ids}).
		Where(squirrel.Eq{"q.is_active": true, "ss.is_active": true, "s.is_active": true, "t.is_active": true}).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]entity.ResolvedQuestion, 0)
	for rows.Next() {
		var q entity.ResolvedQuestion
		if err := rows.Scan(&q.Id, &q.Text, &q.DataType, &q.Order, &q.IsMandatory, &q.QuestionBankId,
			&q.RiskLevel, &q.SafetyLevel, &q.Category, &q.Description,
			&q.SubSectionId, &q.SubSectionName, &q.SectionId, &q.SectionName,
			&q.TemplateId, &q.TemplateName, &q.TemplateRisk); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}
