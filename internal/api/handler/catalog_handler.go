package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/api/metrics"
	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// CatalogHandler handles HTTP requests for catalog operations.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// --- Request / Response types ---

type addBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	TotalCopies int    `json:"total_copies"`
}

type issueBookRequest struct {
	// Recipient is a confirmation-only label; it is never persisted.
	Recipient string `json:"recipient" validate:"required"`
}

type bookListResponse struct {
	Books []domain.Book `json:"books"`
}

type bookResponse struct {
	Book    domain.Book `json:"book"`
	Message string      `json:"message,omitempty"`
}

// List returns the ordered catalog.
//
// @Summary      List all books
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  bookListResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/books [get]
func (h *CatalogHandler) List(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookListResponse{Books: books})
}

// Add creates a new catalog record. Admin only.
//
// @Summary      Add a book
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addBookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/books [post]
func (h *CatalogHandler) Add(c echo.Context) error {
	var req addBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Add(c.Request().Context(), ports.AddBookInput{
		Title:       req.Title,
		Author:      req.Author,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return err
	}

	metrics.BooksAddedTotal.Inc()
	return c.JSON(http.StatusCreated, bookResponse{Book: *book, Message: "book added"})
}

// Issue hands out one copy of a book.
//
// @Summary      Issue a book
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Book identifier (e.g. B-101)"
// @Param        body  body      issueBookRequest  true  "Recipient confirmation"
// @Success      200   {object}  bookResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/books/{id}/issue [post]
func (h *CatalogHandler) Issue(c echo.Context) error {
	var req issueBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.service.Issue(c.Request().Context(), c.Param("id"), req.Recipient)
	if err != nil {
		return err
	}

	metrics.BooksIssuedTotal.Inc()
	return c.JSON(http.StatusOK, bookResponse{Book: *book, Message: "book issued"})
}

// Return takes one copy of a book back.
//
// @Summary      Return a book
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Book identifier (e.g. B-101)"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/books/{id}/return [post]
func (h *CatalogHandler) Return(c echo.Context) error {
	book, err := h.service.Return(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.BooksReturnedTotal.Inc()
	return c.JSON(http.StatusOK, bookResponse{Book: *book, Message: "book returned"})
}

// Dashboard returns the catalog counts reduction.
//
// @Summary      Dashboard counts
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Counts
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *CatalogHandler) Dashboard(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	counts, err := h.service.Counts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
