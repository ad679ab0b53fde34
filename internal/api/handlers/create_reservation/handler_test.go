package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	bookTable "github.com/m04kA/SMC-ReservationService/internal/usecase/book_table"
)

type fakeUseCase struct {
	err  error
	resp *bookTable.Response
	got  *bookTable.Request
}

func (uc *fakeUseCase) Execute(_ context.Context, req *bookTable.Request) (*bookTable.Response, error) {
	uc.got = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserName, "alice")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	startTime := time.Date(2025, 6, 16, 19, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &bookTable.Response{
		TableID:      "Table13",
		StartTime:    startTime,
		CustomerName: "Alice Johnson",
		Username:     "alice",
		Seats:        8,
		IsVIP:        true,
		CreatedAt:    time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, `{"tableId":"Table13","startTime":"2025-06-16T19:00:00Z","customerName":"Alice Johnson"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"VIP"`)
	// Владелец берется из заголовка, а не из тела
	assert.Equal(t, "alice", uc.got.Username)
	assert.True(t, uc.got.StartTime.Equal(startTime))
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "slot taken", err: bookTable.ErrSlotTaken, wantCode: http.StatusConflict},
		{name: "table not found", err: bookTable.ErrTableNotFound, wantCode: http.StatusNotFound},
		{name: "past time", err: bookTable.ErrPastTime, wantCode: http.StatusBadRequest},
		{name: "invalid input", err: bookTable.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal", err: bookTable.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err},
				`{"tableId":"Table1","startTime":"2025-06-16T19:00:00Z","customerName":"Bob"}`)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{broken`},
		{name: "unknown field", body: `{"tableId":"Table1","bogus":1}`},
		{name: "bad time format", body: `{"tableId":"Table1","startTime":"19:00","customerName":"Bob"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{}, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
