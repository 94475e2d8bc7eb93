package repo

import (
	"context"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/repo/pgdb"
	"prequal-reporting-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Organization interface {
	GetOrganizationsByTypes(ctx context.Context, types []string) ([]entity.Organization, error)
	GetOrganizationsByIds(ctx context.Context, ids []int64) ([]entity.Organization, error)
}

type Schema interface {
	GetActiveAssignments(ctx context.Context, clientId int64) ([]entity.ClientTemplateAssignment, error)
	GetActiveQuestionsByTemplateIds(ctx context.Context, templateIds []uuid.UUID) ([]entity.ResolvedQuestion, error)
}

type Prequalification interface {
	GetPrequalificationsByClientId(ctx context.Context, clientId int64) ([]entity.Prequalification, error)
}

type Answer interface {
	GetAnswers(ctx context.Context, prequalificationIds []int64, questionIds []int64) ([]entity.Answer, error)
}

type Repositories struct {
	Diagnostics
	Organization
	Schema
	Prequalification
	Answer
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics:      pgdb.NewDiagnosticsRepo(p),
		Organization:     pgdb.NewOrganizationRepo(p),
		Schema:           pgdb.NewSchemaRepo(p),
		Prequalification: pgdb.NewPrequalificationRepo(p),
		Answer:           pgdb.NewAnswerRepo(p),
	}
}
