package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	app "github.com/sped/diario-import/internal/application/diario"
)

const (
	attendanceField = "attendance"
	migratedField   = "migrated"

	HeaderGenerated    = "X-Diario-Generated"
	MIMEApplicationSQL = "application/sql; charset=UTF-8"
)

type DiarioHandler struct {
	useCase app.ConvertDiario
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewDiarioHandler(useCase app.ConvertDiario) *DiarioHandler {
	return &DiarioHandler{useCase: useCase}
}

// ConvertDiario accepts a multipart upload with the attendance export and
// the migrated snapshot and answers with the generated SQL script.
func (h *DiarioHandler) ConvertDiario(c echo.Context) error {
	attendance, err := c.FormFile(attendanceField)
	if err != nil {
		return badRequest(c, "bad_request", "attendance file is required")
	}
	migrated, err := c.FormFile(migratedField)
	if err != nil {
		return badRequest(c, "bad_request", "migrated file is required")
	}

	attendanceFile, err := attendance.Open()
	if err != nil {
		return internalError(c)
	}
	defer attendanceFile.Close()

	migratedFile, err := migrated.Open()
	if err != nil {
		return internalError(c)
	}
	defer migratedFile.Close()

	out, err := h.useCase.Execute(c.Request().Context(), app.ConvertDiarioInput{
		Migrated:       migratedFile,
		Attendance:     attendanceFile,
		AttendanceName: attendance.Filename,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidMigratedSnapshot):
			return badRequest(c, "invalid_migrated", "migrated must be a JSON array of diario rows")
		case errors.Is(err, app.ErrInvalidAttendance):
			return badRequest(c, "invalid_attendance", "attendance must be a ';' separated CSV or an xlsx workbook")
		case errors.Is(err, app.ErrInvalidImportInput):
			return badRequest(c, "bad_request", "attendance and migrated files are required")
		}
		return internalError(c)
	}

	c.Response().Header().Set(HeaderGenerated, strconv.FormatInt(out.Summary.GeneratedCount, 10))
	return c.Blob(http.StatusOK, MIMEApplicationSQL, out.Script)
}

func badRequest(c echo.Context, code, message string) error {
	return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
		Code:    code,
		Message: message,
	}})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "internal_error",
		Message: "failed to convert diario",
	}})
}
