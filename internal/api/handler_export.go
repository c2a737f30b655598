package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamenight-backend/internal/schedule"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportGroup handles GET /api/group/export?start=...&end=...&format=csv.
// The flattened day,slot,count rows are streamed as a download; an empty
// result is a header-only file, not an error.
func (h *Handler) ExportGroup(c *gin.Context) {
	days, err := parseRange(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	counts, err := h.store.GroupCounts(c.Request.Context(), days)
	if err != nil {
		abortWithError(c, err)
		return
	}

	switch format := c.DefaultQuery("format", "csv"); format {
	case "csv":
		data, err := schedule.ExportCSV(counts)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="group_availability.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	case "xlsx":
		buf, err := schedule.ExportXLSX(counts)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="group_availability.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	default:
		abortWithError(c, fmt.Errorf("%w: unsupported export format %q", schedule.ErrInvalidInput, format))
	}
}
