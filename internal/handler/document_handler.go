package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docklogger/internal/domain"
	"docklogger/internal/service"
)

// DocumentHandler handles document management endpoints.
type DocumentHandler struct {
	docService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(docService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{docService: docService}
}

type uploadDocumentRequest struct {
	Name     string `json:"name"`
	Category string `json:"category" binding:"required"`
	DataURL  string `json:"data_url" binding:"required"`
	Notes    string `json:"notes"`
}

// Upload handles POST /api/v1/documents
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var req uploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	doc, err := h.docService.Upload(c.Request.Context(), service.UploadDocumentInput{
		UserID:   userID,
		Name:     req.Name,
		Category: domain.DocumentCategory(req.Category),
		DataURL:  req.DataURL,
		Notes:    req.Notes,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// Get handles GET /api/v1/documents/:id
func (h *DocumentHandler) Get(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	docID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	doc, err := h.docService.GetByID(c.Request.Context(), userID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// List handles GET /api/v1/documents?category=&offset=&limit=
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	category := domain.DocumentCategory(c.Query("category"))

	docs, total, err := h.docService.List(c.Request.Context(), userID, category, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

type updateNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateNotes handles PATCH /api/v1/documents/:id/notes
func (h *DocumentHandler) UpdateNotes(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	docID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	var req updateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.docService.UpdateNotes(c.Request.Context(), userID, docID, req.Notes); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "notes updated"})
}

// Delete handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	docID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	if err := h.docService.Delete(c.Request.Context(), userID, docID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "document deleted"})
}

// Share handles GET /api/v1/documents/:id/share
func (h *DocumentHandler) Share(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}
	docID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid document id")
		return
	}

	url, err := h.docService.ShareURL(c.Request.Context(), userID, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
