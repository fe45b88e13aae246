package static

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Register serves the built web UI from dir. Unknown non-API paths fall back
// to index.html so client-side routes survive a reload. An empty dir
// disables static serving.
func Register(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	fs := gin.Dir(dir, false)
	fileServer := http.FileServer(fs)

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, "/api/") || strings.HasPrefix(p, "/ws/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		if f, err := fs.Open(p); err == nil {
			st, statErr := f.Stat()
			_ = f.Close()
			if statErr == nil && !st.IsDir() {
				fileServer.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		if _, err := os.Stat(index); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(index)
	})
}
