package api

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/internal/domain/dto"
	"github.com/guttosm/aodata-web/internal/domain/models"
	"github.com/guttosm/aodata-web/internal/service"
)

// Handler exposes one route per page.
//
// Responsibilities:
//   - Validate path and query parameters
//   - Run the page's loader with the request context
//   - Return the loader's props object as JSON
//
// Loader failures are not handled here: they are attached to the gin context
// and rendered by middleware.ErrorHandler as the generic error response.
type Handler struct {
	svc service.PageService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PageService) *Handler {
	return &Handler{svc: svc}
}

// GetOverview godoc
// @Summary      Landing page props
// @Description  Total, offer and request market order counts
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.Page[dto.DataProps[dto.OverviewData]]
// @Failure      502  {object}  dto.ErrorResponse  "Backend error"
// @Failure      504  {object}  dto.ErrorResponse  "Backend timeout"
// @Router       / [get]
func (h *Handler) GetOverview(c *gin.Context) {
	page, err := h.svc.LoadOverview(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetStatistics godoc
// @Summary      Statistics page props
// @Description  Order counts grouped by location, auction type, updated_at, created_at and updated_at+location
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.Page[dto.DataProps[dto.StatisticsData]]
// @Failure      502  {object}  dto.ErrorResponse  "Backend error"
// @Failure      504  {object}  dto.ErrorResponse  "Backend timeout"
// @Router       /statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	page, err := h.svc.LoadStatistics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetDevStatistics godoc
// @Summary      Development statistics page props
// @Description  Order counts grouped by item, location, auction type and hour
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.Page[dto.DataProps[dto.DevStatisticsData]]
// @Failure      502  {object}  dto.ErrorResponse  "Backend error"
// @Failure      504  {object}  dto.ErrorResponse  "Backend timeout"
// @Router       /dev/statistics [get]
func (h *Handler) GetDevStatistics(c *gin.Context) {
	page, err := h.svc.LoadDevStatistics(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetItem godoc
// @Summary      Item page props
// @Description  Localized names and descriptions of an item plus its market orders
// @Tags         pages
// @Produce      json
// @Param        unique_name        path   string  true   "Item unique name" example(T4_BAG)
// @Param        location_id        query  string  false  "Location id" example(3005)
// @Param        auction_type       query  string  false  "offer or request"
// @Param        quality_level      query  int     false  "Quality level"
// @Param        enchantment_level  query  int     false  "Enchantment level"
// @Param        limit              query  int     false  "Page size (default 100)"
// @Param        offset             query  int     false  "Page offset (default 0)"
// @Success      200  {object}  dto.Page[dto.DataProps[dto.ItemData]]
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Backend error"
// @Router       /items/{unique_name} [get]
func (h *Handler) GetItem(c *gin.Context) {
	// ─── Validate path param ──────────────────────────────────
	name := strings.TrimSpace(c.Param("unique_name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unique_name is required", nil))
		return
	}

	// ─── Parse optional filters ───────────────────────────────
	filter := service.ItemFilter{LocationID: strings.TrimSpace(c.Query("location_id"))}

	if s := c.Query("auction_type"); s != "" {
		at := models.AuctionType(strings.ToLower(s))
		if !at.Valid() {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid auction_type, expected offer or request", nil))
			return
		}
		filter.AuctionType = at
	}

	var err error
	if filter.QualityLevel, err = optionalInt32(c, "quality_level"); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid quality_level", err))
		return
	}
	if filter.EnchantmentLevel, err = optionalInt32(c, "enchantment_level"); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid enchantment_level", err))
		return
	}
	if filter.Limit, err = optionalInt64(c, "limit"); err != nil || (filter.Limit != nil && *filter.Limit <= 0) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit, expected a positive integer", err))
		return
	}
	if filter.Offset, err = optionalInt64(c, "offset"); err != nil || (filter.Offset != nil && *filter.Offset < 0) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid offset, expected a non-negative integer", err))
		return
	}

	// ─── Load page ────────────────────────────────────────────
	page, err := h.svc.LoadItem(c.Request.Context(), name, filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetSearch godoc
// @Summary      Search page props
// @Description  Items whose localized name matches the query
// @Tags         pages
// @Produce      json
// @Param        query  path   string  true   "Search text" example(bag)
// @Param        lang   query  string  false  "Locale column (default en_us)" example(de_de)
// @Success      200  {object}  dto.Page[dto.DataProps[dto.SearchData]]
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      502  {object}  dto.ErrorResponse  "Backend error"
// @Router       /search/{query} [get]
func (h *Handler) GetSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("query is required", nil))
		return
	}

	lang := strings.ToLower(strings.TrimSpace(c.Query("lang")))
	if lang != "" && !knownLocale(lang) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unsupported lang", nil))
		return
	}

	page, err := h.svc.LoadSearch(c.Request.Context(), query, lang)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetSlug godoc
// @Summary      Generic page props
// @Description  Echoes the slug back for the page template
// @Tags         pages
// @Produce      json
// @Param        slug  path  string  true  "Page slug" example(about)
// @Success      200  {object}  dto.Page[dto.SlugProps]
// @Router       /pages/{slug} [get]
func (h *Handler) GetSlug(c *gin.Context) {
	page, err := h.svc.LoadSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func optionalInt32(c *gin.Context, key string) (*int32, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return nil, err
	}
	v := int32(n)
	return &v, nil
}

func optionalInt64(c *gin.Context, key string) (*int64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func knownLocale(lang string) bool {
	return slices.Contains(models.Locales, lang)
}
