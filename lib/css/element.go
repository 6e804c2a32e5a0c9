package css

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Element is one node of the builder element tree stored in _builder_data.
type Element struct {
	ID       string          `json:"id"`
	ElType   string          `json:"elType"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Elements []Element       `json:"elements,omitempty"`
}

type Dimensions struct {
	Unit   string `json:"unit"`
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

func (d Dimensions) value() string {
	unit := d.Unit
	if unit == "" {
		unit = "px"
	}
	side := func(v string) string {
		if v == "" || v == "0" {
			return "0"
		}
		return v + unit
	}
	return strings.Join([]string{side(d.Top), side(d.Right), side(d.Bottom), side(d.Left)}, " ")
}

func (d Dimensions) empty() bool {
	return d.Top == "" && d.Right == "" && d.Bottom == "" && d.Left == ""
}

type elementSettings struct {
	BackgroundColor string      `json:"background_color"`
	Color           string      `json:"color"`
	TitleColor      string      `json:"title_color"`
	TextAlign       string      `json:"text_align"`
	Padding         *Dimensions `json:"padding"`
	Margin          *Dimensions `json:"margin"`
	CustomCSS       string      `json:"custom_css"`
}

type rule struct {
	selector     string
	declarations map[string]string
}

func (r rule) String() string {
	keys := make([]string, 0, len(r.declarations))
	for k := range r.declarations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(r.selector)
	sb.WriteString(" {\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", k, r.declarations[k]))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// ParseElements decodes the builder data blob. An empty blob is an empty tree.
func ParseElements(data string) ([]Element, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}
	var elements []Element
	if err := json.Unmarshal([]byte(data), &elements); err != nil {
		return nil, fmt.Errorf("invalid builder data: %w", err)
	}
	return elements, nil
}

// Render walks the element tree depth first and returns the stylesheet of
// the document. Elements without styling settings produce nothing.
func Render(docID int64, elements []Element) (string, error) {
	var sb strings.Builder
	if err := renderElements(&sb, docID, elements); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderElements(sb *strings.Builder, docID int64, elements []Element) error {
	for _, el := range elements {
		selector := fmt.Sprintf(".builder-%d .builder-element-%s", docID, el.ID)

		if len(el.Settings) > 0 && string(el.Settings) != "[]" {
			var s elementSettings
			if err := json.Unmarshal(el.Settings, &s); err != nil {
				return fmt.Errorf("invalid settings on element %s: %w", el.ID, err)
			}
			r := rule{selector: selector, declarations: map[string]string{}}
			if s.BackgroundColor != "" {
				r.declarations["background-color"] = s.BackgroundColor
			}
			if s.Color != "" {
				r.declarations["color"] = s.Color
			}
			if s.TextAlign != "" {
				r.declarations["text-align"] = s.TextAlign
			}
			if s.Padding != nil && !s.Padding.empty() {
				r.declarations["padding"] = s.Padding.value()
			}
			if s.Margin != nil && !s.Margin.empty() {
				r.declarations["margin"] = s.Margin.value()
			}
			if len(r.declarations) > 0 {
				sb.WriteString(r.String())
			}
			if s.TitleColor != "" {
				title := rule{
					selector:     selector + " .builder-heading-title",
					declarations: map[string]string{"color": s.TitleColor},
				}
				sb.WriteString(title.String())
			}
			if s.CustomCSS != "" {
				sb.WriteString(strings.ReplaceAll(s.CustomCSS, "selector", selector))
				sb.WriteString("\n")
			}
		}

		if err := renderElements(sb, docID, el.Elements); err != nil {
			return err
		}
	}
	return nil
}
