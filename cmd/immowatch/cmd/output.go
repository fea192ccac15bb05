package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/kakwa/immowatch/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printSearchTable(specs []domain.SearchSpec) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPOSTAL\tMIN SURFACE\tMAX PRICE\tDEAL\tMIN ROOMS\tACTIVE\n")
	for i := range specs {
		tw.writef("%s\t%s\t%s\t%s\t%s\t%d\t%v\n",
			specs[i].ID,
			specs[i].PostalCode,
			specs[i].MinSurface,
			specs[i].MaxPrice,
			specs[i].DealType,
			specs[i].MinRooms,
			specs[i].Active,
		)
	}
	return tw.finish()
}

func printRoomStatsTable(buckets []domain.RoomBucket) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ROOMS\tCOUNT\tAVG SURFACE\tAVG PRICE\n")
	for i := range buckets {
		tw.writef("%d\t%d\t%.1f\t%.2f\n",
			buckets[i].Rooms,
			buckets[i].Count,
			buckets[i].AvgSurface,
			buckets[i].AvgPrice,
		)
	}
	return tw.finish()
}

func printSurfaceStatsTable(buckets []domain.SurfaceBucket) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("RANGE\tCOUNT\tAVG PRICE\tAVG PRICE/AREA\n")
	for i := range buckets {
		tw.writef("%s\t%d\t%.2f\t%.2f\n",
			buckets[i].Label,
			buckets[i].Count,
			buckets[i].AvgPrice,
			buckets[i].AvgPricePerArea,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
