package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/matisaar/T661-Checker/internal/model"
	"github.com/matisaar/T661-Checker/internal/service"
)

type FeedbackHandler struct {
	service *service.FeedbackService
}

func NewFeedbackHandler(service *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit accepts one feedback entry or an array of entries. Clients rating
// a single paragraph post a bare object, so the shape is detected from the
// raw body instead of bound to a fixed type.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no feedback provided"})
		return
	}

	var entries []model.FeedbackEntry
	if body[0] == '[' {
		if err := json.Unmarshal(body, &entries); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		var entry model.FeedbackEntry
		if err := json.Unmarshal(body, &entry); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		entries = []model.FeedbackEntry{entry}
	}

	result, err := h.service.Submit(c, entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// List returns every stored feedback entry in arrival order.
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// Export rebuilds both training datasets from the full feedback log.
func (h *FeedbackHandler) Export(c *gin.Context) {
	result, err := h.service.Export(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
