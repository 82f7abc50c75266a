// Command pathserver exposes the path codec over HTTP: the Go-side
// companion service of the web editor.
//
// Routes:
//   - GET  /api/formats        list registered format names
//   - POST /api/decode         path file text -> authoring document JSON
//   - POST /api/encode         authoring document JSON -> path file text
//
// Both conversion routes accept a ?format= query parameter and default
// to "LemLib v0.4".
package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerryio/pathcore"
)

const defaultFormat = "LemLib v0.4"

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pathcore.SetLogger(slog.Default())
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.GET("/api/formats", listFormats)
	r.POST("/api/decode", decodePath)
	r.POST("/api/encode", encodePath)

	log.Printf("pathserver listening on %s", *addr)
	if err := r.Run(*addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func listFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": pathcore.Formats()})
}

func requestedFormat(c *gin.Context) (pathcore.Format, bool) {
	name := c.DefaultQuery("format", defaultFormat)
	f, ok := pathcore.FormatByName(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown format: " + name})
		return nil, false
	}
	return f, true
}

func decodePath(c *gin.Context) {
	f, ok := requestedFormat(c)
	if !ok {
		return
	}
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body: " + err.Error()})
		return
	}
	path, err := f.Decode(data)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pathcore.NewDocument(f.Name(), path))
}

func encodePath(c *gin.Context) {
	f, ok := requestedFormat(c)
	if !ok {
		return
	}
	var doc pathcore.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document: " + err.Error()})
		return
	}
	out, err := f.Encode(&doc)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, pathcore.ErrEmptyPath) || errors.Is(err, pathcore.ErrNoSplines) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", out)
}
