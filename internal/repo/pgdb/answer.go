package pgdb

import (
	"context"
	"fmt"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

type AnswerRepo struct {
	*postgres.Postgres
}

func NewAnswerRepo(pgdb *postgres.Postgres) *AnswerRepo {
	return &AnswerRepo{pgdb}
}

// GetAnswers resolves answers through the question_column mapping. Soft
// deleted inputs are skipped. Rows come back ordered by input id so later
// inputs follow earlier ones.
func (r *AnswerRepo) GetAnswers(ctx context.Context, prequalificationIds []int64, questionIds []int64) ([]entity.Answer, error) {
	if len(prequalificationIds) == 0 || len(questionIds) == 0 {
		return make([]entity.Answer, 0), nil
	}

	sqlReq, args, err := r.SqlBuilder.
		Select("ui.id", "ui.prequalification_id", "ui.question_column_id", "qc.question_id", "ui.user_input").
		From("prequalification_user_input ui").
		InnerJoin("question_column qc on qc.id = ui.question_column_id").
		Where(squirrel.Eq{"ui.prequalification_id": prequalificationIds}).
		Where(squirrel.Eq{"qc.question_id": questionIds}).
		Where("ui.deleted_on IS NULL").
		OrderBy("ui.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	answers := make([]entity.Answer, 0)
	for rows.Next() {
		var a entity.Answer
		if err := rows.Scan(&a.Id, &a.PrequalificationId, &a.QuestionColumnId, &a.QuestionId, &a.Value); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}

	return answers, nil
}
