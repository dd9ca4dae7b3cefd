package rsvps

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "RSVPs"

// ExportRsvps downloads the guest list as a spreadsheet
// @Summary Export RSVPs as xlsx
// @Description Download every stored RSVP as an xlsx workbook with the same columns as the Google Sheet mirror
// @Tags RSVPs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /rsvps/export [get]
func ExportRsvps(c *gin.Context) {
	rsvps, err := services.ListRsvps()
	if err != nil {
		log.Println("Error exporting RSVPs: ", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheetName)

	headers := []string{"Name", "Attendees", "Date"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheetName, cell, header)
	}

	for row, rsvp := range rsvps {
		f.SetCellValue(exportSheetName, fmt.Sprintf("A%d", row+2), rsvp.Name)
		f.SetCellValue(exportSheetName, fmt.Sprintf("B%d", row+2), rsvp.Attendees)
		f.SetCellValue(exportSheetName, fmt.Sprintf("C%d", row+2), rsvp.CreatedAt.UTC().Format(time.RFC3339))
	}

	c.Header("Content-Disposition", `attachment; filename="rsvps.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Println("Error writing xlsx export: ", err)
	}
}
