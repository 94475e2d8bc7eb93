package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"prequal-reporting-api/internal/entity"
	"prequal-reporting-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type reportRoutesHandler struct {
	schemaService service.Schema
	reportService service.Report
	excel         service.Exporter
	csv           service.Exporter
	validate      *validator.Validate
	now           func() time.Time
}

func newReportRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *reportRoutesHandler {
	h := &reportRoutesHandler{
		schemaService: services.Schema,
		reportService: services.Report,
		excel:         services.Excel,
		csv:           services.CSV,
		validate:      v,
		now:           time.Now,
	}

	outer.GET("/reports/clients", h.GetClients)
	outer.GET("/reports/schema/:clientId", h.GetSchema)
	outer.GET("/reports/questions/:clientId", h.GetQuestions)
	outer.POST("/reports/generate", h.GenerateReport)
	outer.POST("/reports/export/excel", h.ExportExcel)
	outer.POST("/reports/export/csv", h.ExportCSV)

	return h
}

func parseClientId(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, service.ErrInvalidClientId
	}

	return id, nil
}

// writeServiceError maps service errors to a status code and writes the reason.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	reason := "Internal server error"

	switch {
	case errors.Is(err, service.ErrNoColumns),
		errors.Is(err, service.ErrInvalidClientId),
		errors.Is(err, service.ErrNothingToExport):
		status = http.StatusBadRequest
		reason = err.Error()
	}

	if e := c.JSON(status, errorResponse{reason}); e != nil {
		return e
	}

	return err
}

// /reports/clients
func (h *reportRoutesHandler) GetClients(c echo.Context) error {
	clients, err := h.schemaService.GetClients(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, clients); e != nil {
		return e
	}

	return nil
}

// /reports/schema/:clientId
func (h *reportRoutesHandler) GetSchema(c echo.Context) error {
	clientId, err := parseClientId(c.Param("clientId"))
	if err != nil {
		return writeServiceError(c, err)
	}

	schema, err := h.schemaService.GetDeduplicatedSchema(c.Request().Context(), clientId)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, schema); e != nil {
		return e
	}

	return nil
}

// /reports/questions/:clientId
func (h *reportRoutesHandler) GetQuestions(c echo.Context) error {
	clientId, err := parseClientId(c.Param("clientId"))
	if err != nil {
		return writeServiceError(c, err)
	}

	questions, err := h.schemaService.GetQuestionsWithRiskLevels(c.Request().Context(), clientId)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, questions); e != nil {
		return e
	}

	return nil
}

type reportColumnInput struct {
	Type        string `json:"type" validate:"required,oneof=vendor-stat question"`
	QuestionId  *int64 `json:"questionId" validate:"required_if=Type question"`
	FieldName   string `json:"fieldName" validate:"max=100"`
	DisplayName string `json:"displayName" validate:"required,max=200"`
}

// /reports/generate?clientId=
func (h *reportRoutesHandler) GenerateReport(c echo.Context) error {
	clientId, err := parseClientId(c.QueryParam("clientId"))
	if err != nil {
		return writeServiceError(c, err)
	}

	var input []reportColumnInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	columns := make([]entity.ReportColumn, 0, len(input))
	for _, col := range input {
		if err := h.validate.Struct(col); err != nil {
			if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
				return e
			}

			return err
		}

		columns = append(columns, entity.ReportColumn{
			Type:        col.Type,
			FieldName:   col.FieldName,
			QuestionId:  col.QuestionId,
			DisplayName: col.DisplayName,
		})
	}

	report, err := h.reportService.GenerateReport(c.Request().Context(), columns, clientId)
	if err != nil {
		return writeServiceError(c, err)
	}
	if e := c.JSON(http.StatusOK, report); e != nil {
		return e
	}

	return nil
}

type exportInput struct {
	ColumnHeaders []string                 `json:"columnHeaders"`
	Rows          []map[string]interface{} `json:"rows"`
}

// toReport lays every row out in columnHeaders order.
func (in *exportInput) toReport() *entity.ReportResult {
	rows := make([]entity.ReportRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		row := make(entity.ReportRow, 0, len(in.ColumnHeaders))
		for _, header := range in.ColumnHeaders {
			row = append(row, entity.ReportCell{Header: header, Value: stringifyCell(r[header])})
		}
		rows = append(rows, row)
	}

	return entity.NewReportResult(in.ColumnHeaders, rows)
}

// /reports/export/excel
func (h *reportRoutesHandler) ExportExcel(c echo.Context) error {
	return h.export(c, h.excel)
}

// /reports/export/csv
func (h *reportRoutesHandler) ExportCSV(c echo.Context) error {
	return h.export(c, h.csv)
}

func (h *reportRoutesHandler) export(c echo.Context, exporter service.Exporter) error {
	var input exportInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	b, err := exporter.Export(input.toReport())
	if err != nil {
		return writeServiceError(c, err)
	}

	filename := service.ExportFilename(exporter, h.now())
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	if e := c.Blob(http.StatusOK, exporter.ContentType(), b); e != nil {
		return e
	}

	return nil
}
