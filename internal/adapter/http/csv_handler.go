package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bde-backend/internal/usecase/csvio"
)

type CSVHandler struct{ exchanger *csvio.Exchanger }

func NewCSVHandler(exchanger *csvio.Exchanger) *CSVHandler {
	return &CSVHandler{exchanger: exchanger}
}

func (h *CSVHandler) Export(c echo.Context) error {
	entity := c.Param("entity")
	out, err := h.exchanger.Export(c.Request().Context(), entity)
	if errors.Is(err, csvio.ErrUnknownEntity) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown entity"})
	} else if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%s.csv`, entity))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

func (h *CSVHandler) Import(c echo.Context) error {
	entity := c.Param("entity")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file upload"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable file upload"})
	}
	defer f.Close()

	sum, err := h.exchanger.Import(c.Request().Context(), entity, f)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, sum)
	case errors.Is(err, csvio.ErrUnknownEntity):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown entity"})
	case csvio.IsImportError(err), errors.Is(err, gorm.ErrDuplicatedKey):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		return err
	}
}
