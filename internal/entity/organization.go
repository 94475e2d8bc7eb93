package entity

import "time"

// db model
type Organization struct {
	Id                          int64      `db:"id"`
	Name                        string     `db:"name"`
	OrganizationType            *string    `db:"organization_type"`
	Address1                    *string    `db:"address1"`
	Address2                    *string    `db:"address2"`
	Address3                    *string    `db:"address3"`
	City                        *string    `db:"city"`
	State                       *string    `db:"state"`
	Zip                         *string    `db:"zip"`
	Country                     *string    `db:"country"`
	PhoneNumber                 *string    `db:"phone_number"`
	FaxNumber                   *string    `db:"fax_number"`
	WebsiteURL                  *string    `db:"website_url"`
	FederalIDNumber             *string    `db:"federal_id_number"`
	TaxID                       *string    `db:"tax_id"`
	PrincipalCompanyOfficerName *string    `db:"principal_company_officer_name"`
	OrgRepresentativeName       *string    `db:"org_representative_name"`
	OrgRepresentativeEmail      *string    `db:"org_representative_email"`
	InsertDateTime              *time.Time `db:"insert_date_time"`
	UpdateDateTime              *time.Time `db:"update_date_time"`
}

// controller model
type ClientOutputModel struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// controller model
type VendorStatField struct {
	FieldName   string `json:"fieldName"`
	DisplayName string `json:"displayName"`
	DragType    string `json:"dragType"`
}
