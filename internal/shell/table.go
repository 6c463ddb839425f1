package shell

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/zulandar/taproom/internal/models"
)

// WriteTable renders kegs as an aligned table, one row per keg.
func WriteTable(out io.Writer, kegs []models.Keg) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBEER TYPE\tSIZE\tCURRENT\tLOCATION\tUPDATED")
	for _, keg := range kegs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			keg.ID,
			truncate(keg.BeerType, 24),
			FormatVolume(keg.Size),
			FormatVolume(keg.CurrentVolume),
			truncate(keg.Location, 24),
			formatTimestamp(keg.LastUpdated))
	}
	w.Flush()
}

// FormatVolume renders a volume with one decimal place.
func FormatVolume(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// formatTimestamp renders a Unix-seconds stamp in local time.
func formatTimestamp(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02 15:04:05")
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
