package service

import (
	"context"
	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/repo"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Schema interface {
	GetClients(ctx context.Context) ([]entity.ClientOutputModel, error)

	ResolveQuestions(ctx context.Context, clientId int64) ([]entity.ResolvedQuestion, error)
	GetDeduplicatedSchema(ctx context.Context, clientId int64) ([]entity.DeduplicatedQuestion, error)
	GetQuestionsWithRiskLevels(ctx context.Context, clientId int64) ([]entity.QuestionWithRiskLevels, error)
}

type Report interface {
	GenerateReport(ctx context.Context, columns []entity.ReportColumn, clientId int64) (*entity.ReportResult, error)
}

type Vendor interface {
	GetVendorStatFields() []entity.VendorStatField
}

type Exporter interface {
	Export(report *entity.ReportResult) ([]byte, error)
	ContentType() string
	Extension() string
}

type Services struct {
	Diagnostics Diagnostics
	Schema      Schema
	Report      Report
	Vendor      Vendor
	Excel       Exporter
	CSV         Exporter
}

type Options struct {
	// SchemaCache is optional. Without it every schema request hits the store.
	SchemaCache SchemaCache
	Logger      *zap.Logger
}

func NewServices(repos *repo.Repositories, opts Options) *Services {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var schema Schema = NewSchemaService(repos)
	if opts.SchemaCache != nil {
		schema = NewCachedSchemaService(schema, opts.SchemaCache, logger)
	}

	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Schema:      schema,
		Report:      NewReportService(repos),
		Vendor:      NewVendorService(),
		Excel:       NewExcelExporter(),
		CSV:         NewCSVExporter(),
	}
}
