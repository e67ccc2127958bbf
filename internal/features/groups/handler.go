package groups

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nour-Ali/NodeBB-nour/internal/middleware"
	"github.com/Nour-Ali/NodeBB-nour/pkg/apperrors"
	"github.com/Nour-Ali/NodeBB-nour/pkg/pagination"
	"github.com/Nour-Ali/NodeBB-nour/pkg/response"
	"github.com/Nour-Ali/NodeBB-nour/pkg/slugify"
)

// groupCacheSeconds is the max-age of single group reads.
const groupCacheSeconds = 30

// Handler processes group HTTP requests.
type Handler struct {
	creator   *Creator
	reader    *Reader
	validator *Validator
	logger    *slog.Logger
}

// NewHandler constructs a group handler instance.
func NewHandler(creator *Creator, reader *Reader, validator *Validator, logger *slog.Logger) *Handler {
	return &Handler{creator: creator, reader: reader, validator: validator, logger: logger}
}

// Create handles POST /groups. Without an explicit ownerUid the
// authenticated caller becomes the owner.
func (h *Handler) Create(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, apperrors.BadRequest("Request body must be a JSON object", apperrors.ErrValidation, err))
		return
	}

	in := CreateInputFromMap(body)
	if _, supplied := body["ownerUid"]; !supplied {
		if uid, ok := middleware.GetUIDFromContext(c); ok {
			in.OwnerUID = uid
		}
	}

	group, err := h.creator.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, NewView(group), "Group created")
}

// List returns visible groups, sorted by ?sort= (alpha, date or count).
func (h *Handler) List(c *gin.Context) {
	sortBy := c.DefaultQuery("sort", DefaultSort)
	params := pagination.Extract(c)

	groups, total, err := h.reader.ListVisible(c.Request.Context(), sortBy, params.Start, params.Stop)
	if err != nil {
		h.respondError(c, err)
		return
	}

	views := make([]View, 0, len(groups))
	for _, g := range groups {
		views = append(views, NewView(g))
	}

	response.Success(c, http.StatusOK, views, "", pagination.MetadataFrom(total, params))
}

// Get returns a group by its exact name.
func (h *Handler) Get(c *gin.Context) {
	group, err := h.reader.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithCache(c, http.StatusOK, NewView(group), "", groupCacheSeconds)
}

// GetBySlug returns the group whose slug matches.
func (h *Handler) GetBySlug(c *gin.Context) {
	group, err := h.reader.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.SuccessWithCache(c, http.StatusOK, NewView(group), "", groupCacheSeconds)
}

// Owners lists the owner uids of a group.
func (h *Handler) Owners(c *gin.Context) {
	owners, err := h.reader.Owners(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, owners, "", nil)
}

// Members lists the member uids of a group in join order.
func (h *Handler) Members(c *gin.Context) {
	members, err := h.reader.Members(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members, "", nil)
}

type validateRequest struct {
	Name interface{} `json:"name"`
}

// Validate checks a candidate name without creating anything.
func (h *Handler) Validate(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, apperrors.BadRequest("Request body must be a JSON object", apperrors.ErrValidation, err))
		return
	}

	name, err := h.validator.Validate(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.SuccessNoCache(c, http.StatusOK, gin.H{"name": name, "slug": slugify.Slugify(name)}, "")
}

// respondError hands err to the error middleware with its HTTP mapping.
func (h *Handler) respondError(c *gin.Context, err error) {
	_ = c.Error(toAppError(err))
	c.Abort()
}
