package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/handler"
	"shortlink/internal/handler/mocks"
	"shortlink/internal/validation"
)

const baseURL = "http://short.url"

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockLinkService, *mocks.MockPinger) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := mocks.NewMockLinkService(t)
	pinger := mocks.NewMockPinger(t)
	h := handler.New(svc, pinger, logger, baseURL)
	return h, svc, pinger
}

func newServer(t *testing.T) (*echo.Echo, *mocks.MockLinkService, *mocks.MockPinger) {
	h, svc, pinger := newTestHandler(t)
	e := echo.New()
	h.Register(e)
	return e, svc, pinger
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// CreateLink tests

func TestCreateLink_Success(t *testing.T) {
	e, svc, _ := newServer(t)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().Create(mock.Anything, "https://example.com", "").Return(&domain.Link{
		ShortCode:   "xyz7890",
		OriginalURL: "https://example.com",
		CreatedAt:   createdAt,
	}, nil)

	rec := serve(e, http.MethodPost, "/api/v1/links", `{"url":"https://example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.LinkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "xyz7890", resp.ShortCode)
	assert.Equal(t, "http://short.url/xyz7890", resp.ShortURL)
	assert.Equal(t, "https://example.com", resp.OriginalURL)
	assert.Zero(t, resp.Clicks)
	assert.Nil(t, resp.LastClicked)
	require.NotNil(t, resp.CreatedAt)
	assert.True(t, createdAt.Equal(*resp.CreatedAt))
}

func TestCreateLink_CustomCode(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Create(mock.Anything, "https://example.com", "abc123").
		Return(&domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com"}, nil)

	rec := serve(e, http.MethodPost, "/api/v1/links", `{"url":"https://example.com","code":"abc123"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"short_code":"abc123"`)
}

func TestCreateLink_InvalidJSON(t *testing.T) {
	e, _, _ := newServer(t)

	rec := serve(e, http.MethodPost, "/api/v1/links", `invalid json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestCreateLink_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"EmptyURL", fmt.Errorf("%w: %w", domain.ErrInvalidURL, validation.ErrEmptyURL), http.StatusBadRequest, "url is required"},
		{"InvalidURLFormat", fmt.Errorf("%w: %w", domain.ErrInvalidURL, validation.ErrInvalidURLFormat), http.StatusBadRequest, "invalid url format"},
		{"UnsafeProtocol", fmt.Errorf("%w: %w", domain.ErrInvalidURL, validation.ErrUnsafeProtocol), http.StatusBadRequest, "url protocol not allowed"},
		{"URLTooLong", fmt.Errorf("%w: %w", domain.ErrInvalidURL, validation.ErrURLTooLong), http.StatusBadRequest, "url exceeds maximum length"},
		{"PrivateIP", fmt.Errorf("%w: %w", domain.ErrInvalidURL, validation.ErrPrivateIPNotAllowed), http.StatusBadRequest, "private ip addresses not allowed"},
		{"CodeLength", fmt.Errorf("%w: %w", domain.ErrInvalidCode, validation.ErrCodeLength), http.StatusBadRequest, "short code length out of range"},
		{"CodeCharset", fmt.Errorf("%w: %w", domain.ErrInvalidCode, validation.ErrCodeCharset), http.StatusBadRequest, "short code must be alphanumeric"},
		{"CodeExists", domain.ErrCodeExists, http.StatusConflict, "short code already exists"},
		{"AllocationExhausted", domain.ErrAllocationExhausted, http.StatusServiceUnavailable, "could not allocate"},
		{"StoreFailure", errors.New("connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, svc, _ := newServer(t)

			svc.EXPECT().Create(mock.Anything, "test", "").Return(nil, tt.err)

			rec := serve(e, http.MethodPost, "/api/v1/links", `{"url":"test"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
		})
	}
}

// ListLinks tests

func TestListLinks(t *testing.T) {
	e, svc, _ := newServer(t)

	last := time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)
	svc.EXPECT().List(mock.Anything).Return([]domain.Link{
		{ShortCode: "abc123", OriginalURL: "https://a.example"},
		{ShortCode: "def456", OriginalURL: "https://b.example", Clicks: 4, LastClicked: &last},
	}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/links", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.ListLinksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Links, 2)
	assert.Equal(t, "http://short.url/abc123", resp.Links[0].ShortURL)
	assert.Nil(t, resp.Links[0].CreatedAt)
	assert.Equal(t, int64(4), resp.Links[1].Clicks)
	require.NotNil(t, resp.Links[1].LastClicked)
	assert.True(t, last.Equal(*resp.Links[1].LastClicked))
}

func TestListLinks_Empty(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().List(mock.Anything).Return(nil, nil)

	rec := serve(e, http.MethodGet, "/api/v1/links", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"links":[]}`, rec.Body.String())
}

func TestListLinks_ServiceError(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	rec := serve(e, http.MethodGet, "/api/v1/links", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// GetLink and DeleteLink tests

func TestGetLink(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Get(mock.Anything, "abc123").
		Return(&domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com", Clicks: 7}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/links/abc123", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clicks":7`)
}

func TestGetLink_NotFound(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Get(mock.Anything, "nothere").Return(nil, domain.ErrNotFound)

	rec := serve(e, http.MethodGet, "/api/v1/links/nothere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "link not found")
}

func TestDeleteLink(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Delete(mock.Anything, "abc123").
		Return(&domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com", Clicks: 2}, nil)

	rec := serve(e, http.MethodDelete, "/api/v1/links/abc123", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clicks":2`)
}

func TestDeleteLink_NotFound(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Delete(mock.Anything, "nothere").Return(nil, domain.ErrNotFound)

	rec := serve(e, http.MethodDelete, "/api/v1/links/nothere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Redirect tests

func TestRedirect_Success(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Resolve(mock.Anything, "abc123").
		Return(&domain.Link{ShortCode: "abc123", OriginalURL: "https://example.com/target", Clicks: 1}, nil)

	rec := serve(e, http.MethodGet, "/abc123", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/target", rec.Header().Get(echo.HeaderLocation))
}

func TestRedirect_EmptyCode(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("code")
	c.SetParamValues("")

	err := h.Redirect(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRedirect_NotFound(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Resolve(mock.Anything, "nothere").Return(nil, domain.ErrNotFound)

	rec := serve(e, http.MethodGet, "/nothere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
}

func TestRedirect_ServiceError(t *testing.T) {
	e, svc, _ := newServer(t)

	svc.EXPECT().Resolve(mock.Anything, "abc123").Return(nil, errors.New("db error"))

	rec := serve(e, http.MethodGet, "/abc123", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// Health endpoint tests

func TestHealth(t *testing.T) {
	e, _, pinger := newServer(t)

	pinger.EXPECT().Ping(mock.Anything).Return(nil)

	rec := serve(e, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestHealth_StoreDown(t *testing.T) {
	e, _, pinger := newServer(t)

	pinger.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp: connection refused"))

	rec := serve(e, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}
