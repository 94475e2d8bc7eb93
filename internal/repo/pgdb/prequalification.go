package pgdb

import (
	"context"
	"fmt"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/pkg/postgres"
)

type PrequalificationRepo struct {
	*postgres.Postgres
}

func NewPrequalificationRepo(pgdb *postgres.Postgres) *PrequalificationRepo {
	return &PrequalificationRepo{pgdb}
}

// GetPrequalificationsByClientId returns every prequalification of the
// client, all vendors and all cycles included.
func (r *PrequalificationRepo) GetPrequalificationsByClientId(ctx context.Context, clientId int64) ([]entity.Prequalification, error) {
	sqlReq, args, err := r.SqlBuilder.
		Select("id", "vendor_id", "client_id", "status_id", "client_template_id",
			"prequalification_start", "prequalification_finish", "prequalification_create").
		From("prequalification").
		Where("client_id = ?", clientId).
		OrderBy("vendor_id ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, fmt.Errorf("query prequalifications: %w", err)
	}
	defer rows.Close()

	prequalifications := make([]entity.Prequalification, 0)
	for rows.Next() {
		var p entity.Prequalification
		if err := rows.Scan(&p.Id, &p.VendorId, &p.ClientId, &p.StatusId, &p.ClientTemplateId,
			&p.PrequalificationStart, &p.PrequalificationFinish, &p.PrequalificationCreate); err != nil {
			return nil, fmt.Errorf("scan prequalification: %w", err)
		}
		prequalifications = append(prequalifications, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prequalifications: %w", err)
	}

	return prequalifications, nil
}
