package internal

import (
	"fmt"
	"io"
	"path/filepath"
	"time"
)

const timestampLayout = "Jan 02 2006 15:04:05.000"

func formatEpochNanos(ns int64) string {
	t := time.Unix(0, ns)
	return fmt.Sprintf("%s (%.3f)", t.Format(timestampLayout), float64(ns)/1e9)
}

// WriteSummary writes the fixed-format bag report: total size, storage id,
// duration, start/end timestamps, message total and one line per connection.
// The output is byte-identical across runs on an unmodified bag.
func WriteSummary(w io.Writer, r *BagReader) error {
	size, err := r.Location.Size()
	if err != nil {
		return err
	}
	meta := r.Metadata()

	fmt.Fprintf(w, "Files:             %s\n", filepath.Base(r.Location.DataFile))
	fmt.Fprintf(w, "Bag size:          %.1f MiB\n", float64(size)/(1024*1024))
	fmt.Fprintf(w, "Storage id:        %s\n", meta.StorageIdentifier)
	fmt.Fprintf(w, "Duration:          %.3fs\n", float64(meta.DurationNanos())/1e9)
	fmt.Fprintf(w, "Start:             %s\n", formatEpochNanos(meta.StartNanos()))
	fmt.Fprintf(w, "End:               %s\n", formatEpochNanos(meta.EndNanos()))
	fmt.Fprintf(w, "Messages:          %d\n", meta.MessageCount)
	fmt.Fprintln(w, "Topic information:")

	counts := meta.MessageCountByTopic()
	for _, conn := range r.Connections() {
		count, ok := counts[conn.Topic]
		if !ok {
			// Metadata inconsistency, not an error.
			LogWarn("topic %s missing from metadata message counts, reporting 0", conn.Topic)
		}
		fmt.Fprintf(w, "  Topic: %s | Type: %s | Count: %d | Serialization Format: %s\n",
			conn.Topic, conn.MsgType, count, conn.SerializationFormat)
	}
	return nil
}
