package service

import (
	"context"
	"fmt"
	"prequal-reporting-api/internal/common"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/repo"

	"github.com/google/uuid"
)

type SchemaService struct {
	organizationRepo repo.Organization
	schemaRepo       repo.Schema
}

func NewSchemaService(repos *repo.Repositories) *SchemaService {
	return &SchemaService{
		organizationRepo: repos.Organization,
		schemaRepo:       repos.Schema,
	}
}

func (s *SchemaService) GetClients(ctx context.Context) ([]entity.ClientOutputModel, error) {
	orgs, err := s.organizationRepo.GetOrganizationsByTypes(ctx, common.ClientOrganizationTypes)
	if err != nil {
		return nil, fmt.Errorf("get clients: %w", err)
	}

	return mapClients(orgs), nil
}

// ResolveQuestions returns every active question reachable from the client's
// active and visible template assignments. The result has no defined order.
// An unknown client, or one without assignments, yields an empty slice.
func (s *SchemaService) ResolveQuestions(ctx context.Context, clientId int64) ([]entity.ResolvedQuestion, error) {
	if clientId <= 0 {
		return make([]entity.ResolvedQuestion, 0), nil
	}

	assignments, err := s.schemaRepo.GetActiveAssignments(ctx, clientId)
	if err != nil {
		return nil, fmt.Errorf("get template assignments: %w", err)
	}

	templateIds := make([]uuid.UUID, 0, len(assignments))
	seen := make(map[uuid.UUID]struct{}, len(assignments))
	for _, a := range assignments {
		if _, ok := seen[a.TemplateId]; ok {
			continue
		}
		seen[a.TemplateId] = struct{}{}
		templateIds = append(templateIds, a.TemplateId)
	}

	if len(templateIds) == 0 {
		return make([]entity.ResolvedQuestion, 0), nil
	}

	questions, err := s.schemaRepo.GetActiveQuestionsByTemplateIds(ctx, templateIds)
	if err != nil {
		return nil, fmt.Errorf("get questions: %w", err)
	}

	return questions, nil
}

func (s *SchemaService) GetDeduplicatedSchema(ctx context.Context, clientId int64) ([]entity.DeduplicatedQuestion, error) {
	questions, err := s.ResolveQuestions(ctx, clientId)
	if err != nil {
		return nil, err
	}

	return Deduplicate(questions), nil
}

func (s *SchemaService) GetQuestionsWithRiskLevels(ctx context.Context, clientId int64) ([]entity.QuestionWithRiskLevels, error) {
	questions, err := s.ResolveQuestions(ctx, clientId)
	if err != nil {
		return nil, err
	}

	return MergeRiskLevels(questions), nil
}
