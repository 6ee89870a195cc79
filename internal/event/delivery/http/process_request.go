package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds the create/export request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "event.delivery.processCreateReq: %v", err)
		return req, errInvalidBody
	}
	return req, req.validate()
}

// processPreviewReq binds the preview request body.
func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "event.delivery.processPreviewReq: %v", err)
		return req, errInvalidBody
	}
	return req, req.validate()
}
