package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/core/ports"
)

// ThemeHandler exposes the persisted UI theme preference.
type ThemeHandler struct {
	themes ports.ThemeStore
}

func NewThemeHandler(themes ports.ThemeStore) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

type themeResponse struct {
	Theme string `json:"theme"`
}

type setThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// Get returns the current theme.
//
// @Summary      Current theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /theme [get]
func (h *ThemeHandler) Get(c echo.Context) error {
	theme, err := h.themes.Theme(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// Set stores a theme preference.
//
// @Summary      Set theme
// @Tags         theme
// @Accept       json
// @Produce      json
// @Param        body  body      setThemeRequest  true  "Theme (light or dark)"
// @Success      200   {object}  themeResponse
// @Failure      400   {object}  map[string]string
// @Router       /theme [put]
func (h *ThemeHandler) Set(c echo.Context) error {
	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.themes.SetTheme(c.Request().Context(), req.Theme); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: req.Theme})
}

// Toggle flips light↔dark and returns the new value.
//
// @Summary      Toggle theme
// @Tags         theme
// @Produce      json
// @Success      200  {object}  themeResponse
// @Router       /theme/toggle [post]
func (h *ThemeHandler) Toggle(c echo.Context) error {
	theme, err := h.themes.Toggle(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}
