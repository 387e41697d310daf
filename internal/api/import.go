package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"sivportal/internal/importer"
)

// Import runs a full import over an uploaded workbook and streams progress
// events back as SSE.
// POST /api/import
func (h *Handler) Import(c *gin.Context) {
	h.runImport(c, false)
}

// Preview extracts and validates the upload without touching the store.
// POST /api/import/preview
func (h *Handler) Preview(c *gin.Context) {
	h.runImport(c, true)
}

func (h *Handler) runImport(c *gin.Context, dryRun bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	// The intake limit is enforced again inside the pipeline; rejecting
	// here avoids buffering an oversized body at all.
	if fileHeader.Size > h.cfg.MaxUploadBytes() {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds the %d MB upload limit", h.cfg.Import.MaxUploadMB),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read upload"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	coordinator := importer.NewCoordinator(h.store)
	progress := coordinator.Import(importer.ImportOptions{
		FileName: fileHeader.Filename,
		Data:     data,
		MaxBytes: h.cfg.MaxUploadBytes(),
		DryRun:   dryRun,
	})

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	for event := range progress {
		eventData, err := json.Marshal(event)
		if err != nil {
			continue
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", eventData)
		flusher.Flush()
	}
}
