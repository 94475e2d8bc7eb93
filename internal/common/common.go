package common

// Organization types.
const (
	SuperClient = "Super Client"
	Admin       = "Admin"
	Client      = "Client"
	Vendor      = "Vendor"
)

// ClientOrganizationTypes are the organization types listed as report clients.
var ClientOrganizationTypes = []string{SuperClient, Admin, Client}

// Report column kinds.
const (
	ColumnVendorStat = "vendor-stat"
	ColumnQuestion   = "question"
)

// NotAvailable marks a report cell whose value could not be resolved.
const NotAvailable = "N/A"
