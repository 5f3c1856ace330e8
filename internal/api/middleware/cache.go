package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventdesk/eventdesk-api/internal/viewcache"
)

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheViews serves successful GET responses from the view cache. The key
// includes the query string, so each page/limit/search variant is its own
// view. Mutating handlers invalidate by path prefix.
func CacheViews(cache *viewcache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()
		if entry, ok := cache.Get(key); ok {
			ctx.Data(entry.Status, entry.ContentType, entry.Body)
			ctx.Abort()
			return
		}

		writer := &captureWriter{ResponseWriter: ctx.Writer}
		ctx.Writer = writer

		ctx.Next()

		if writer.Status() == http.StatusOK {
			cache.Set(key, viewcache.Entry{
				Status:      writer.Status(),
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.buf.Bytes(),
			})
		}
	}
}
