package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Result is the outcome of one command
type Result struct {
	Command    string   `json:"command"`
	Expression string   `json:"expression"`
	Value      string   `json:"value"`
	Values     []string `json:"values,omitempty"`
	Decimal    string   `json:"decimal,omitempty"`
}

// Renderer writes results in the configured output format
type Renderer struct {
	w      io.Writer
	asJSON bool
	color  bool

	expr    lipgloss.Style
	value   lipgloss.Style
	decimal lipgloss.Style
}

func (a *app) renderer(w io.Writer) *Renderer {
	// styles follow the color profile of w, so pipes and buffers stay plain
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		asJSON:  a.settings.OutputFormat == "json",
		color:   a.settings.OutputColor,
		expr:    r.NewStyle().Foreground(lipgloss.Color("245")),
		value:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		decimal: r.NewStyle().Faint(true),
	}
}

// Render writes res as one JSON object or one text line
func (r *Renderer) Render(res Result) error {
	if r.asJSON {
		enc := json.NewEncoder(r.w)
		return enc.Encode(res)
	}

	expr, value, dec := res.Expression, res.Value, res.Decimal
	if r.color {
		expr = r.expr.Render(expr)
		value = r.value.Render(value)
		if dec != "" {
			dec = r.decimal.Render(dec)
		}
	}

	if dec != "" {
		_, err := fmt.Fprintf(r.w, "%s = %s (%s)\n", expr, value, dec)
		return err
	}
	_, err := fmt.Fprintf(r.w, "%s = %s\n", expr, value)
	return err
}

// RenderJSON writes v as indented JSON
func (r *Renderer) RenderJSON(v interface{}) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
