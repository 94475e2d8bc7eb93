package service

import (
	"context"
	"sync"

	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/repo"

	"github.com/google/uuid"
)

type fakeOrganizationRepo struct {
	orgs      []entity.Organization
	err       error
	typesSeen []string
}

func (r *fakeOrganizationRepo) GetOrganizationsByTypes(_ context.Context, types []string) ([]entity.Organization, error) {
	r.typesSeen = types
	if r.err != nil {
		return nil, r.err
	}
	return r.orgs, nil
}

func (r *fakeOrganizationRepo) GetOrganizationsByIds(_ context.Context, ids []int64) ([]entity.Organization, error) {
	if r.err != nil {
		return nil, r.err
	}
	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]entity.Organization, 0)
	for _, o := range r.orgs {
		if _, ok := wanted[o.Id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeSchemaRepo struct {
	assignments   map[int64][]entity.ClientTemplateAssignment
	questions     []entity.ResolvedQuestion
	assignmentErr error
	questionErr   error

	mu             sync.Mutex
	questionCalls  int
	templateIdsArg []uuid.UUID
}

func (r *fakeSchemaRepo) GetActiveAssignments(_ context.Context, clientId int64) ([]entity.ClientTemplateAssignment, error) {
	if r.assignmentErr != nil {
		return nil, r.assignmentErr
	}
	return r.assignments[clientId], nil
}

func (r *fakeSchemaRepo) GetActiveQuestionsByTemplateIds(_ context.Context, templateIds []uuid.UUID) ([]entity.ResolvedQuestion, error) {
	r.mu.Lock()
	r.questionCalls++
	r.templateIdsArg = templateIds
	r.mu.Unlock()

	if r.questionErr != nil {
		return nil, r.questionErr
	}
	wanted := make(map[uuid.UUID]struct{}, len(templateIds))
	for _, id := range templateIds {
		wanted[id] = struct{}{}
	}
	out := make([]entity.ResolvedQuestion, 0)
	for _, q := range r.questions {
		if _, ok := wanted[q.TemplateId]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakePrequalificationRepo struct {
	prequalifications []entity.Prequalification
	err               error
}

func (r *fakePrequalificationRepo) GetPrequalificationsByClientId(_ context.Context, clientId int64) ([]entity.Prequalification, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Prequalification, 0)
	for _, p := range r.prequalifications {
		if p.ClientId == clientId {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct {
	answers []entity.Answer
	err     error

	mu    sync.Mutex
	calls int
}

func (r *fakeAnswerRepo) GetAnswers(_ context.Context, prequalificationIds []int64, questionIds []int64) ([]entity.Answer, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	preqs := make(map[int64]struct{}, len(prequalificationIds))
	for _, id := range prequalificationIds {
		preqs[id] = struct{}{}
	}
	questions := make(map[int64]struct{}, len(questionIds))
	for _, id := range questionIds {
		questions[id] = struct{}{}
	}
	out := make([]entity.Answer, 0)
	for _, a := range r.answers {
		_, p := preqs[a.PrequalificationId]
		_, q := questions[a.QuestionId]
		if p && q {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeDiagnosticsRepo struct {
	err error
}

func (r *fakeDiagnosticsRepo) Ping(context.Context) error {
	return r.err
}

type fakeRepos struct {
	diagnostics      *fakeDiagnosticsRepo
	organization     *fakeOrganizationRepo
	schema           *fakeSchemaRepo
	prequalification *fakePrequalificationRepo
	answer           *fakeAnswerRepo
}

func newFakeRepos() *fakeRepos {
	return &fakeRepos{
		diagnostics:      &fakeDiagnosticsRepo{},
		organization:     &fakeOrganizationRepo{},
		schema:           &fakeSchemaRepo{assignments: map[int64][]entity.ClientTemplateAssignment{}},
		prequalification: &fakePrequalificationRepo{},
		answer:           &fakeAnswerRepo{},
	}
}

func (f *fakeRepos) repositories() *repo.Repositories {
	return &repo.Repositories{
		Diagnostics:      f.diagnostics,
		Organization:     f.organization,
		Schema:           f.schema,
		Prequalification: f.prequalification,
		Answer:           f.answer,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func question(id int64, templateId uuid.UUID, bankId *int64, risk *string) entity.ResolvedQuestion {
	return entity.ResolvedQuestion{
		Id:             id,
		Text:           "question",
		DataType:       "text",
		Order:          int(id),
		QuestionBankId: bankId,
		RiskLevel:      risk,
		SubSectionId:   10,
		SubSectionName: "SS",
		SectionId:      1,
		SectionName:    "S",
		TemplateId:     templateId,
		TemplateName:   "T",
	}
}
