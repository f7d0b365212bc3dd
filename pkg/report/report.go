package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/travigo/shuttle-planner/pkg/planner"
)

// Render writes the three plan views as aligned text tables.
func Render(w io.Writer, plan *planner.Plan) error {
	if _, err := fmt.Fprintf(w, "Month: %s\nTraffic: %s (x%.1f)\nShuttle capacity: %d\nTrips: %d\n",
		plan.Month, plan.TrafficLevel, plan.Multiplier, plan.Capacity, plan.Trips); err != nil {
		return err
	}

	if err := renderView(w, "Mean passenger volume by day", plan.MeanVolumeByDay, formatMean); err != nil {
		return err
	}
	if err := renderView(w, "Mean passenger volume by day and pickup location", plan.MeanVolumeByLocation, formatMean); err != nil {
		return err
	}

	return renderView(w, "Shuttles required", plan.ShuttleCount, func(value int) string {
		return fmt.Sprintf("%d", value)
	})
}

func renderView[T planner.Number](w io.Writer, title string, view planner.View[T], format func(T) string) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}

	if len(view.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(no trips)")
		return err
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := []string{"time_block"}
	for _, column := range view.Columns {
		header = append(header, columnLabel(column))
	}
	fmt.Fprintln(table, strings.Join(header, "\t")+"\t")

	for i, row := range view.Rows {
		line := []string{row}
		for _, value := range view.Cells[i] {
			line = append(line, format(value))
		}
		fmt.Fprintln(table, strings.Join(line, "\t")+"\t")
	}

	return table.Flush()
}

func columnLabel(column planner.Column) string {
	if column.PickupLocation == "" {
		return column.DayOfWeek
	}

	return column.DayOfWeek + "/" + column.PickupLocation
}

func formatMean(value float64) string {
	return fmt.Sprintf("%.2f", value)
}
