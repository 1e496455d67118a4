package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bde-backend/internal/adapter/repository/sqldb"
	"bde-backend/internal/domain/bde"
	"bde-backend/internal/usecase/csvio"
)

func newCSVHandler(t *testing.T) (*CSVHandler, bde.Store) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&bde.Employee{},
		&bde.Machine{},
		&bde.WorkOrder{},
		&bde.Operation{},
		&bde.ActivityRecord{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	store := sqldb.NewStore(db)
	return NewCSVHandler(csvio.NewExchanger(store)), store
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func doImport(t *testing.T, h *CSVHandler, entity, csv string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	body, contentType := multipartBody(t, entity+".csv", csv)
	req := httptest.NewRequest(stdhttp.MethodPost, "/csv/"+entity, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues(entity)
	if err := h.Import(c); err != nil {
		t.Fatalf("Import error: %v", err)
	}
	return rec
}

func TestImportCSV_Machines(t *testing.T) {
	h, store := newCSVHandler(t)

	rec := doImport(t, h, "machines",
		"code,name,description,location,active\n"+
			"M-02,Fräse,Hochgeschwindigkeitsfräse,Halle B,true\n")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var sum csvio.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &sum); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if sum.Inserted != 1 || sum.Updated != 0 {
		t.Fatalf("summary = %+v, want {1 0}", sum)
	}

	m, err := store.Machines.GetByCode(context.Background(), "M-02")
	if err != nil {
		t.Fatalf("machine not stored: %v", err)
	}
	if !m.Active {
		t.Fatalf("active = false, want true")
	}
}

func TestImportCSV_RowErrorReturns400(t *testing.T) {
	h, _ := newCSVHandler(t)

	rec := doImport(t, h, "operations",
		"code,order_number\nOP-10,WO-MISSING\n")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}
	var er ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &er)
	if !strings.Contains(er.Error, "WO-MISSING") {
		t.Fatalf("error = %q", er.Error)
	}
}

func TestImportCSV_UnknownEntity(t *testing.T) {
	h, _ := newCSVHandler(t)
	rec := doImport(t, h, "widgets", "a\n1\n")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	h, _ := newCSVHandler(t)
	e := newEchoWithValidator()

	req := httptest.NewRequest(stdhttp.MethodPost, "/csv/machines", strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues("machines")

	if err := h.Import(c); err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestExportCSV_MachinesAfterImport(t *testing.T) {
	h, _ := newCSVHandler(t)
	doImport(t, h, "machines",
		"code,name,description,location,active\n"+
			"M-02,Fräse,Hochgeschwindigkeitsfräse,Halle B,true\n")

	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodGet, "/csv/machines", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues("machines")

	if err := h.Export(c); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("content-type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(cd, "machines.csv") {
		t.Fatalf("content-disposition = %q", cd)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "code,name,description,location,active\n") {
		t.Fatalf("header line missing:\n%s", body)
	}
	if !strings.Contains(body, "M-02") || !strings.Contains(body, "true") {
		t.Fatalf("exported row missing:\n%s", body)
	}
}

func TestExportCSV_UnknownEntity(t *testing.T) {
	h, _ := newCSVHandler(t)
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodGet, "/csv/widgets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("entity")
	c.SetParamValues("widgets")

	if err := h.Export(c); err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
