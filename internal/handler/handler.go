package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/domain"
	"shortlink/internal/validation"
)

var (
	errInvalidBody      = map[string]string{"error": "invalid request body"}
	errURLRequired      = map[string]string{"error": "url is required"}
	errCodeRequired     = map[string]string{"error": "code is required"}
	errLinkNotFound     = map[string]string{"error": "link not found"}
	errInvalidURL       = map[string]string{"error": "invalid url format"}
	errUnsafeURL        = map[string]string{"error": "url protocol not allowed"}
	errURLTooLong       = map[string]string{"error": "url exceeds maximum length"}
	errPrivateIP        = map[string]string{"error": "private ip addresses not allowed"}
	errCodeLength       = map[string]string{"error": "short code length out of range"}
	errCodeCharset      = map[string]string{"error": "short code must be alphanumeric"}
	errInvalidCode      = map[string]string{"error": "invalid short code"}
	errCodeExists       = map[string]string{"error": "short code already exists"}
	errAllocation       = map[string]string{"error": "could not allocate a short code, try again"}
	errInternal         = map[string]string{"error": "internal server error"}
	errStoreUnavailable = map[string]string{"status": "unavailable"}
	respHealthOK        = map[string]string{"status": "ok"}
)

const healthTimeout = 2 * time.Second

type Handler struct {
	links   LinkService
	pinger  Pinger
	logger  *slog.Logger
	baseURL string
}

func New(links LinkService, pinger Pinger, logger *slog.Logger, baseURL string) *Handler {
	return &Handler{
		links:   links,
		pinger:  pinger,
		logger:  logger,
		baseURL: baseURL,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	api.POST("/links", h.CreateLink)
	api.GET("/links", h.ListLinks)
	api.GET("/links/:code", h.GetLink)
	api.DELETE("/links/:code", h.DeleteLink)
	e.GET("/:code", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Error("store ping failed", slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errStoreUnavailable)
	}
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) CreateLink(c echo.Context) error {
	var req domain.CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}

	link, err := h.links.Create(c.Request().Context(), req.URL, req.Code)
	if err != nil {
		return h.handleError(c, "failed to create link", err)
	}

	return c.JSON(http.StatusCreated, domain.NewLinkResponse(link, h.baseURL))
}

func (h *Handler) ListLinks(c echo.Context) error {
	links, err := h.links.List(c.Request().Context())
	if err != nil {
		return h.handleError(c, "failed to list links", err)
	}

	resp := domain.ListLinksResponse{Links: make([]domain.LinkResponse, len(links))}
	for i := range links {
		resp.Links[i] = domain.NewLinkResponse(&links[i], h.baseURL)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetLink(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, err := h.links.Get(c.Request().Context(), code)
	if err != nil {
		return h.handleError(c, "failed to get link", err)
	}
	return c.JSON(http.StatusOK, domain.NewLinkResponse(link, h.baseURL))
}

func (h *Handler) DeleteLink(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, err := h.links.Delete(c.Request().Context(), code)
	if err != nil {
		return h.handleError(c, "failed to delete link", err)
	}
	return c.JSON(http.StatusOK, domain.NewLinkResponse(link, h.baseURL))
}

func (h *Handler) Redirect(c echo.Context) error {
	code := c.Param("code")
	if code == "" {
		return c.JSON(http.StatusBadRequest, errCodeRequired)
	}

	link, err := h.links.Resolve(c.Request().Context(), code)
	if err != nil {
		return h.handleError(c, "failed to resolve link", err)
	}

	h.logger.Debug("redirect",
		slog.String("code", code),
		slog.String("referrer", extractDomain(c.Request().Referer())),
		slog.Int64("clicks", link.Clicks),
	)
	return c.Redirect(http.StatusFound, link.OriginalURL)
}

func extractDomain(referer string) string {
	if referer == "" {
		return "direct"
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host == "" {
		return "unknown"
	}

	return parsed.Host
}

func (h *Handler) handleError(c echo.Context, msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, invalidURLBody(err))
	case errors.Is(err, domain.ErrInvalidCode):
		return c.JSON(http.StatusBadRequest, invalidCodeBody(err))
	case errors.Is(err, domain.ErrCodeExists):
		return c.JSON(http.StatusConflict, errCodeExists)
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, errLinkNotFound)
	case errors.Is(err, domain.ErrAllocationExhausted):
		h.logger.Warn(msg, slog.String("error", err.Error()))
		return c.JSON(http.StatusServiceUnavailable, errAllocation)
	default:
		h.logger.Error(msg, slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errInternal)
	}
}

func invalidURLBody(err error) map[string]string {
	switch {
	case errors.Is(err, validation.ErrEmptyURL):
		return errURLRequired
	case errors.Is(err, validation.ErrUnsafeProtocol):
		return errUnsafeURL
	case errors.Is(err, validation.ErrURLTooLong):
		return errURLTooLong
	case errors.Is(err, validation.ErrPrivateIPNotAllowed):
		return errPrivateIP
	default:
		return errInvalidURL
	}
}

func invalidCodeBody(err error) map[string]string {
	switch {
	case errors.Is(err, validation.ErrCodeLength):
		return errCodeLength
	case errors.Is(err, validation.ErrCodeCharset):
		return errCodeCharset
	default:
		return errInvalidCode
	}
}
