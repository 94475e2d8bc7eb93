package pgdb

import (
	"context"
	"database/sql"
	"fmt"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

var organizationColumns = []string{
	"id", "name", "organization_type",
	"address1", "address2", "address3", "city", "state", "zip", "country",
	"phone_number", "fax_number", "website_url",
	"federal_id_number", "tax_id",
	"principal_company_officer_name", "org_representative_name", "org_representative_email",
	"insert_date_time", "update_date_time",
}

type OrganizationRepo struct {
	*postgres.Postgres
}

func NewOrganizationRepo(pgdb *postgres.Postgres) *OrganizationRepo {
	return &OrganizationRepo{pgdb}
}

func (r *OrganizationRepo) GetOrganizationsByTypes(ctx context.Context, types []string) ([]entity.Organization, error) {
	if len(types) == 0 {
		return make([]entity.Organization, 0), nil
	}

	sqlReq, args, err := r.SqlBuilder.
		Select(organizationColumns...).
		From("organization").
		Where(squirrel.Eq{"organization_type": types}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryOrganizations(ctx, sqlReq, args)
}

func (r *OrganizationRepo) GetOrganizationsByIds(ctx context.Context, ids []int64) ([]entity.Organization, error) {
	if len(ids) == 0 {
		return make([]entity.Organization, 0), nil
	}

	sqlReq, args, err := r.SqlBuilder.
		Select(organizationColumns...).
		From("organization").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryOrganizations(ctx, sqlReq, args)
}

func (r *OrganizationRepo) queryOrganizations(ctx context.Context, sqlReq string, args []interface{}) ([]entity.Organization, error) {
	rows, err := r.Database.QueryContext(ctx, sqlReq, args...)
	if err != nil {
		return nil, fmt.Errorf("query organizations: %w", err)
	}
	defer rows.Close()

	organizations := make([]entity.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		organizations = append(organizations, org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate organizations: %w", err)
	}

	return organizations, nil
}

func scanOrganization(rows *sql.Rows) (entity.Organization, error) {
	var o entity.Organization
	err := rows.Scan(&o.Id, &o.Name, &o.OrganizationType,
		&o.Address1, &o.Address2, &o.Address3, &o.City, &o.State, &o.Zip, &o.Country,
		&o.PhoneNumber, &o.FaxNumber, &o.WebsiteURL,
		&o.FederalIDNumber, &o.TaxID,
		&o.PrincipalCompanyOfficerName, &o.OrgRepresentativeName, &o.OrgRepresentativeEmail,
		&o.InsertDateTime, &o.UpdateDateTime)

	return o, err
}
