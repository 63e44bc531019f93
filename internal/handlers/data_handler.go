package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finplanner/internal/errors"
	"finplanner/internal/services"
)

// maxImportSize bounds an uploaded export document.
const maxImportSize = 32 << 20

// DataHandler handles whole-store export, import and reset.
type DataHandler struct {
	dataService services.DataServicer
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(dataService services.DataServicer) *DataHandler {
	return &DataHandler{dataService: dataService}
}

// Export downloads the whole store
// @Summary     Export data
// @Description Download every collection as financial-data-YYYY-MM-DD.json
// @Tags        data
// @Produce     json
// @Success     200 {object} services.Document "Export document"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data/export [get]
func (h *DataHandler) Export(c *gin.Context) {
	doc, err := h.dataService.ExportAll()
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteDocument(&buf, doc); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName(time.Now())+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

// Import replaces the store with an export document
// @Summary     Import data
// @Description Replace every collection with the uploaded export document, sent as the JSON body or as multipart field "file". Collections restored before a failure stay.
// @Tags        data
// @Accept      json,mpfd
// @Produce     json
// @Param       request body services.Document true "Export document"
// @Success     200 {object} map[string]int64 "Row counts after the import"
// @Failure     400 {object} ErrorResponse "Invalid document"
// @Failure     422 {object} ErrorResponse "Import stopped part way"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data/import [post]
func (h *DataHandler) Import(c *gin.Context) {
	body, err := importBody(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer body.Close()

	doc, err := services.ReadDocument(io.LimitReader(body, maxImportSize))
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dataService.ImportAll(doc); err != nil {
		respondWithError(c, err)
		return
	}

	h.Stats(c)
}

// Reset clears the store and seeds the defaults again
// @Summary     Reset data
// @Description Delete every row and recreate the default profile, expenses, SIP, goals and portfolio
// @Tags        data
// @Produce     json
// @Success     200 {object} map[string]int64 "Row counts after the reset"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data/reset [post]
func (h *DataHandler) Reset(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.dataService.ResetToDefaults(ownerID); err != nil {
		respondWithError(c, err)
		return
	}

	h.Stats(c)
}

// Stats returns the row count of each collection
// @Summary     Data statistics
// @Description Count the rows of every collection
// @Tags        data
// @Produce     json
// @Success     200 {object} map[string]int64 "Row counts"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /data/stats [get]
func (h *DataHandler) Stats(c *gin.Context) {
	counts, err := h.dataService.Stats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

func importBody(c *gin.Context) (io.ReadCloser, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.Request.Body, nil
	}
	header, err := c.FormFile("file")
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "multipart field \"file\" is required")
	}
	f, err := header.Open()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	return f, nil
}
