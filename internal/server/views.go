package server

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

const layoutView = "layouts/main"

// NewViewEngine returns the HTML engine serving the embedded templates.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("friendlyDate", friendlyDate)
	return engine
}

// friendlyDate renders timestamps like "Tue Mar 5 2024, 2:07 PM".
func friendlyDate(t time.Time) string {
	return t.Format("Mon Jan 2 2006, 3:04 PM")
}
