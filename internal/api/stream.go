package api

import (
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"handmade-backend/internal/db"
)

// streamSnapshots forwards live query snapshots to the client as
// server-sent events. Each "snapshot" event carries the full current result
// set, so clients replace their local state rather than patching it. The
// stream ends when the client disconnects or the watch fails.
func streamSnapshots[T any](c *gin.Context, snapshots <-chan db.Snapshot[T]) {
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		snap, ok := <-snapshots
		if !ok {
			return false
		}
		if snap.Err != nil {
			log.Printf("snapshot stream for %s failed: %v", c.FullPath(), snap.Err)
			c.SSEvent("error", gin.H{"error": "stream terminated"})
			return false
		}
		c.SSEvent("snapshot", snap.Docs)
		return true
	})
}
