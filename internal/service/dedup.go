package service

import (
	"sort"

	"prequal-reporting-api/internal/common"
	"prequal-reporting-api/internal/entity"

	"github.com/google/uuid"
)

type questionGroup struct {
	key  entity.BankKey
	rows []entity.ResolvedQuestion
}

func (g *questionGroup) first() *entity.ResolvedQuestion {
	return &g.rows[0]
}

func (g *questionGroup) merged() bool {
	return g.key.Kind == entity.BankKeyShared && len(g.rows) > 1
}

// riskLevels returns the distinct effective risk levels in first-seen order.
func (g *questionGroup) riskLevels() []string {
	levels := make([]string, 0, 1)
	seen := make(map[string]struct{})
	for i := range g.rows {
		level, ok := g.rows[i].EffectiveRiskLevel()
		if !ok {
			continue
		}
		if _, dup := seen[level]; dup {
			continue
		}
		seen[level] = struct{}{}
		levels = append(levels, level)
	}

	return levels
}

func (g *questionGroup) templateCount() int {
	templates := make(map[uuid.UUID]struct{})
	for i := range g.rows {
		templates[g.rows[i].TemplateId] = struct{}{}
	}

	return len(templates)
}

func (g *questionGroup) questionIds() []int64 {
	ids := make([]int64, 0, len(g.rows))
	for i := range g.rows {
		ids = append(ids, g.rows[i].Id)
	}

	return ids
}

// groupQuestions sorts a copy of the input by question id and groups it by
// bank key. Shared banks come first ordered by bank id, unique questions
// follow ordered by question id.
func groupQuestions(questions []entity.ResolvedQuestion) []*questionGroup {
	sorted := make([]entity.ResolvedQuestion, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Id < sorted[j].Id })

	byKey := make(map[entity.BankKey]*questionGroup)
	groups := make([]*questionGroup, 0)
	for _, q := range sorted {
		key := entity.BankKeyOf(&q)
		g, ok := byKey[key]
		if !ok {
			g = &questionGroup{key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, q)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i].key, groups[j].key
		if a.Kind != b.Kind {
			return a.Kind == entity.BankKeyShared
		}
		return a.Id < b.Id
	})

	return groups
}

// Deduplicate collapses questions sharing a bank id into a single entry. A
// merged entry never carries a single risk level since its rows may disagree;
// the distinct levels are listed in RiskLevels instead.
func Deduplicate(questions []entity.ResolvedQuestion) []entity.DeduplicatedQuestion {
	groups := groupQuestions(questions)

	out := make([]entity.DeduplicatedQuestion, 0, len(groups))
	for _, g := range groups {
		first := g.first()
		dq := entity.DeduplicatedQuestion{
			QuestionOutputModel: mapQuestion(first),
			Description:         first.Description,
			RiskLevels:          g.riskLevels(),
			TemplateCount:       g.templateCount(),
			IsDuplicate:         g.merged(),
			QuestionIds:         g.questionIds(),
		}
		if !dq.IsDuplicate {
			if level, ok := first.EffectiveRiskLevel(); ok {
				dq.RiskLevel = &level
			}
		}
		out = append(out, dq)
	}

	return out
}

// MergeRiskLevels groups like Deduplicate but keeps every risk level visible.
func MergeRiskLevels(questions []entity.ResolvedQuestion) []entity.QuestionWithRiskLevels {
	groups := groupQuestions(questions)

	out := make([]entity.QuestionWithRiskLevels, 0, len(groups))
	for _, g := range groups {
		first := g.first()
		out = append(out, entity.QuestionWithRiskLevels{
			QuestionId:     first.Id,
			QuestionText:   first.Text,
			QuestionBankId: first.QuestionBankId,
			RiskLevels:     g.riskLevels(),
			TemplateCount:  g.templateCount(),
			DragType:       common.ColumnQuestion,
		})
	}

	return out
}
