package service

import (
	"prequal-reporting-api/internal/common"
	"prequal-reporting-api/internal/entity"
)

type vendorStat struct {
	fieldName   string
	displayName string
	value       func(o *entity.Organization) *string
}

var vendorStats = []vendorStat{
	{"Name", "Vendor Name", func(o *entity.Organization) *string { return &o.Name }},
	{"Address1", "Address Line 1", func(o *entity.Organization) *string { return o.Address1 }},
	{"Address2", "Address Line 2", func(o *entity.Organization) *string { return o.Address2 }},
	{"City", "City", func(o *entity.Organization) *string { return o.City }},
	{"State", "State", func(o *entity.Organization) *string { return o.State }},
	{"Zip", "Zip Code", func(o *entity.Organization) *string { return o.Zip }},
	{"Country", "Country", func(o *entity.Organization) *string { return o.Country }},
	{"PhoneNumber", "Phone Number", func(o *entity.Organization) *string { return o.PhoneNumber }},
	{"FaxNumber", "Fax Number", func(o *entity.Organization) *string { return o.FaxNumber }},
	{"WebsiteURL", "Website", func(o *entity.Organization) *string { return o.WebsiteURL }},
	{"FederalIDNumber", "Federal ID", func(o *entity.Organization) *string { return o.FederalIDNumber }},
	{"TaxID", "Tax ID", func(o *entity.Organization) *string { return o.TaxID }},
	{"PrincipalCompanyOfficerName", "Principal Officer", func(o *entity.Organization) *string { return o.PrincipalCompanyOfficerName }},
	{"OrgRepresentativeName", "Representative Name", func(o *entity.Organization) *string { return o.OrgRepresentativeName }},
	{"OrgRepresentativeEmail", "Representative Email", func(o *entity.Organization) *string { return o.OrgRepresentativeEmail }},
}

// legacy field names still sent by saved report layouts
var vendorStatAliases = map[string]string{
	"VendorName": "Name",
	"Address":    "Address1",
}

var vendorStatsByName = func() map[string]vendorStat {
	m := make(map[string]vendorStat, len(vendorStats))
	for _, s := range vendorStats {
		m[s.fieldName] = s
	}
	return m
}()

// vendorStatValue resolves an allow-listed attribute of the vendor. Unknown
// fields, a missing vendor or a NULL attribute all resolve to the N/A sentinel.
func vendorStatValue(vendor *entity.Organization, fieldName string) string {
	if vendor == nil {
		return common.NotAvailable
	}
	if alias, ok := vendorStatAliases[fieldName]; ok {
		fieldName = alias
	}

	stat, ok := vendorStatsByName[fieldName]
	if !ok {
		return common.NotAvailable
	}

	v := stat.value(vendor)
	if v == nil {
		return common.NotAvailable
	}

	return *v
}

type VendorService struct{}

func NewVendorService() *VendorService {
	return &VendorService{}
}

func (s *VendorService) GetVendorStatFields() []entity.VendorStatField {
	fields := make([]entity.VendorStatField, 0, len(vendorStats))
	for _, stat := range vendorStats {
		fields = append(fields, entity.VendorStatField{
			FieldName:   stat.fieldName,
			DisplayName: stat.displayName,
			DragType:    common.ColumnVendorStat,
		})
	}

	return fields
}
