package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"prequal-reporting-api/internal/common"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/repo"

	"golang.org/x/sync/errgroup"
)

type ReportService struct {
	organizationRepo     repo.Organization
	prequalificationRepo repo.Prequalification
	answerRepo           repo.Answer
}

func NewReportService(repos *repo.Repositories) *ReportService {
	return &ReportService{
		organizationRepo:     repos.Organization,
		prequalificationRepo: repos.Prequalification,
		answerRepo:           repos.Answer,
	}
}

// latestPerVendor keeps the most recently started prequalification of every
// vendor. Equal start times go to the highest id.
func latestPerVendor(prequalifications []entity.Prequalification) map[int64]entity.Prequalification {
	latest := make(map[int64]entity.Prequalification)
	for _, p := range prequalifications {
		current, ok := latest[p.VendorId]
		if !ok || isNewer(&p, &current) {
			latest[p.VendorId] = p
		}
	}

	return latest
}

func isNewer(a, b *entity.Prequalification) bool {
	if !a.PrequalificationStart.Equal(b.PrequalificationStart) {
		return a.PrequalificationStart.After(b.PrequalificationStart)
	}

	return a.Id > b.Id
}

type answerKey struct {
	prequalificationId int64
	questionId         int64
}

// indexAnswers keeps the answer with the highest id for every
// (prequalification, question) pair.
func indexAnswers(answers []entity.Answer) map[answerKey]entity.Answer {
	index := make(map[answerKey]entity.Answer, len(answers))
	for _, a := range answers {
		key := answerKey{a.PrequalificationId, a.QuestionId}
		if current, ok := index[key]; !ok || a.Id > current.Id {
			index[key] = a
		}
	}

	return index
}

func requestedQuestionIds(columns []entity.ReportColumn) []int64 {
	ids := make([]int64, 0)
	seen := make(map[int64]struct{})
	for _, c := range columns {
		if c.Type != common.ColumnQuestion || c.QuestionId == nil {
			continue
		}
		if _, ok := seen[*c.QuestionId]; ok {
			continue
		}
		seen[*c.QuestionId] = struct{}{}
		ids = append(ids, *c.QuestionId)
	}

	return ids
}

// GenerateReport builds one row per vendor prequalified under the client.
// Every cell that cannot be resolved holds the N/A sentinel; any store
// failure fails the whole report.
func (s *ReportService) GenerateReport(ctx context.Context, columns []entity.ReportColumn, clientId int64) (*entity.ReportResult, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	headers := make([]string, 0, len(columns))
	for _, c := range columns {
		headers = append(headers, c.DisplayName)
	}

	// no such client, nothing to report
	if clientId <= 0 {
		return entity.NewReportResult(headers, nil), nil
	}

	prequalifications, err := s.prequalificationRepo.GetPrequalificationsByClientId(ctx, clientId)
	if err != nil {
		return nil, fmt.Errorf("get prequalifications: %w", err)
	}

	latest := latestPerVendor(prequalifications)
	if len(latest) == 0 {
		return entity.NewReportResult(headers, nil), nil
	}

	vendorIds := make([]int64, 0, len(latest))
	prequalificationIds := make([]int64, 0, len(latest))
	for vendorId, p := range latest {
		vendorIds = append(vendorIds, vendorId)
		prequalificationIds = append(prequalificationIds, p.Id)
	}
	sort.Slice(vendorIds, func(i, j int) bool { return vendorIds[i] < vendorIds[j] })
	sort.Slice(prequalificationIds, func(i, j int) bool { return prequalificationIds[i] < prequalificationIds[j] })

	var (
		vendors []entity.Organization
		answers []entity.Answer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vendors, err = s.organizationRepo.GetOrganizationsByIds(gctx, vendorIds)
		if err != nil {
			return fmt.Errorf("get vendors: %w", err)
		}
		return nil
	})

	questionIds := requestedQuestionIds(columns)
	if len(questionIds) > 0 {
		g.Go(func() error {
			var err error
			answers, err = s.answerRepo.GetAnswers(gctx, prequalificationIds, questionIds)
			if err != nil {
				return fmt.Errorf("get answers: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	vendorsById := make(map[int64]*entity.Organization, len(vendors))
	for i := range vendors {
		vendorsById[vendors[i].Id] = &vendors[i]
	}
	answerIndex := indexAnswers(answers)

	// vendors without an organization row go last
	sort.SliceStable(vendorIds, func(i, j int) bool {
		a, b := vendorsById[vendorIds[i]], vendorsById[vendorIds[j]]
		if (a == nil) != (b == nil) {
			return b == nil
		}
		if an, bn := vendorName(a), vendorName(b); an != bn {
			return an < bn
		}
		return vendorIds[i] < vendorIds[j]
	})

	rows := make([]entity.ReportRow, 0, len(vendorIds))
	for _, vendorId := range vendorIds {
		vendor := vendorsById[vendorId]
		prequalificationId := latest[vendorId].Id

		row := make(entity.ReportRow, 0, len(columns))
		for _, c := range columns {
			row = append(row, entity.ReportCell{
				Header: c.DisplayName,
				Value:  resolveCell(&c, vendor, prequalificationId, answerIndex),
			})
		}
		rows = append(rows, row)
	}

	return entity.NewReportResult(headers, rows), nil
}

func vendorName(o *entity.Organization) string {
	if o == nil {
		return ""
	}

	return strings.ToLower(o.Name)
}

func resolveCell(c *entity.ReportColumn, vendor *entity.Organization, prequalificationId int64, answers map[answerKey]entity.Answer) string {
	switch c.Type {
	case common.ColumnVendorStat:
		return vendorStatValue(vendor, c.FieldName)
	case common.ColumnQuestion:
		if c.QuestionId == nil {
			return common.NotAvailable
		}
		a, ok := answers[answerKey{prequalificationId, *c.QuestionId}]
		if !ok || a.Value == nil {
			return common.NotAvailable
		}
		return *a.Value
	default:
		return common.NotAvailable
	}
}
