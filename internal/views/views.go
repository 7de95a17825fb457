// internal/views/views.go
package views

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded view set with the shared template funcs.
// The router installs the result on the gin engine.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html"))
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": FormatDate,
	}
}

// FormatDate renders a stored date for display in en-GB long form,
// e.g. "2 January 2006". Unparseable or empty input renders as "".
func FormatDate(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("2 January 2006")
	case string:
		if v == "" {
			return ""
		}
		if date, err := time.Parse("2006-01-02", v); err == nil {
			return date.Format("2 January 2006")
		}
		if date, err := time.Parse(time.RFC3339, v); err == nil {
			return date.Format("2 January 2006")
		}
	}
	return ""
}
