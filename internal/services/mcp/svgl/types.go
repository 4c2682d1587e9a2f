package svgl

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is a typed view of a catalog category and its logo count.
type Category struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// ThemeOptions holds theme-dependent asset URLs.
type ThemeOptions struct {
	Dark  string `json:"dark"`
	Light string `json:"light"`
}

// SVG is a typed view of one logo record. The client itself returns bodies
// untouched; decode into SVG with DecodeSVGs when typed access is needed.
type SVG struct {
	ID       *int       `json:"id,omitempty"`
	Title    string     `json:"title"`
	Category Categories `json:"category"`
	Route    Route      `json:"route"`
	Wordmark *Route     `json:"wordmark,omitempty"`
	BrandURL string     `json:"brandUrl,omitempty"`
	URL      string     `json:"url"`
}

// Categories is either a single category name or a list of names. The
// upstream shape is kept so re-encoding produces what was received.
type Categories struct {
	Names []string
	multi bool
}

// SingleCategory builds a Categories value encoded as a plain string.
func SingleCategory(name string) Categories {
	return Categories{Names: []string{name}}
}

// MultiCategory builds a Categories value encoded as a list.
func MultiCategory(names ...string) Categories {
	return Categories{Names: names, multi: true}
}

// IsMulti reports whether the record belongs to a list of categories.
func (c Categories) IsMulti() bool {
	return c.multi
}

// MarshalJSON implements json.Marshaler.
func (c Categories) MarshalJSON() ([]byte, error) {
	if !c.multi && len(c.Names) == 0 {
		return []byte("null"), nil
	}
	if c.multi {
		names := c.Names
		if names == nil {
			names = []string{}
		}
		return json.Marshal(names)
	}
	return json.Marshal(c.Names[0])
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Categories) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*c = Categories{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var names []string
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return fmt.Errorf("decode category list: %w", err)
		}
		*c = Categories{Names: names, multi: true}
		return nil
	}
	var name string
	if err := json.Unmarshal(trimmed, &name); err != nil {
		return fmt.Errorf("decode category: %w", err)
	}
	*c = Categories{Names: []string{name}}
	return nil
}

// Route is either a single asset URL or a light/dark pair.
type Route struct {
	URL    string
	Themed *ThemeOptions
}

// MarshalJSON implements json.Marshaler.
func (r Route) MarshalJSON() ([]byte, error) {
	if r.Themed != nil {
		return json.Marshal(r.Themed)
	}
	return json.Marshal(r.URL)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Route) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var themed ThemeOptions
		if err := json.Unmarshal(trimmed, &themed); err != nil {
			return fmt.Errorf("decode themed route: %w", err)
		}
		*r = Route{Themed: &themed}
		return nil
	}
	var url string
	if err := json.Unmarshal(trimmed, &url); err != nil {
		return fmt.Errorf("decode route: %w", err)
	}
	*r = Route{URL: url}
	return nil
}

// DecodeSVGs decodes a logo listing body into typed records.
func DecodeSVGs(data []byte) ([]SVG, error) {
	var svgs []SVG
	if err := json.Unmarshal(data, &svgs); err != nil {
		return nil, fmt.Errorf("decode logos: %w", err)
	}
	return svgs, nil
}

// DecodeCategories decodes a category listing body into typed records.
func DecodeCategories(data []byte) ([]Category, error) {
	var categories []Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}
