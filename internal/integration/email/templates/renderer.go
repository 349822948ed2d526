// Package templates renders the embedded notice templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Message is a rendered notice body in both formats.
type Message struct {
	HTML string
	Text string
}

// Renderer holds the parsed HTML and plain text templates. Every template exists in both formats.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{html: html, text: text}, nil
}

// Has reports whether a template with that name exists.
func (r *Renderer) Has(name string) bool {
	return r.html.Lookup(name+".html") != nil && r.text.Lookup(name+".txt") != nil
}

// Render executes the named template in both formats.
func (r *Renderer) Render(name string, data any) (Message, error) {
	var html, text bytes.Buffer
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s.txt: %w", name, err)
	}
	return Message{HTML: html.String(), Text: text.String()}, nil
}

// FreightSettledData fills the freight_settled template.
type FreightSettledData struct {
	BrokerName   string
	FreightName  string
	Origin       string
	Destination  string
	TotalValue   string
	AdvanceTotal string
	FinalAmount  string
	AppURL       string
}

// NewFreightSettledData reads the queued template data of a settlement notice.
func NewFreightSettledData(data map[string]string) FreightSettledData {
	return FreightSettledData{
		BrokerName:   data["broker_name"],
		FreightName:  data["freight_name"],
		Origin:       data["origin"],
		Destination:  data["destination"],
		TotalValue:   data["total_value"],
		AdvanceTotal: data["advance_total"],
		FinalAmount:  data["final_amount"],
		AppURL:       data["app_url"],
	}
}
