package service

import (
	"prequal-reporting-api/internal/entity"
)

func mapQuestion(q *entity.ResolvedQuestion) entity.QuestionOutputModel {
	category := q.SectionName
	if q.Category != nil && *q.Category != "" {
		category = *q.Category
	}

	return entity.QuestionOutputModel{
		Id:             q.Id,
		Text:           q.Text,
		Type:           q.DataType,
		Category:       category,
		Required:       q.IsMandatory,
		Order:          q.Order,
		SectionId:      q.SectionId,
		SectionName:    q.SectionName,
		SubSectionId:   q.SubSectionId,
		TemplateId:     q.TemplateId.String(),
		QuestionBankId: q.QuestionBankId,
	}
}

func mapClient(o *entity.Organization) entity.ClientOutputModel {
	return entity.ClientOutputModel{
		Id:   o.Id,
		Name: o.Name,
	}
}

func mapClients(orgs []entity.Organization) []entity.ClientOutputModel {
	s := make([]entity.ClientOutputModel, 0, len(orgs))
	for i := range orgs {
		s = append(s, mapClient(&orgs[i]))
	}

	return s
}
