package model

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseKeys are the sixteen base16 colour slots, in order.
var BaseKeys = []string{
	"base00", "base01", "base02", "base03",
	"base04", "base05", "base06", "base07",
	"base08", "base09", "base0A", "base0B",
	"base0C", "base0D", "base0E", "base0F",
}

// Scheme is the content of a base16 scheme file.
type Scheme struct {
	Slug   string            `yaml:"-" json:"slug"`
	Name   string            `yaml:"scheme" json:"name"`
	Author string            `yaml:"author" json:"author"`
	Colors map[string]string `yaml:",inline" json:"colors"`
}

// Validation errors.
var (
	ErrMissingColor = errors.New("scheme is missing a base color")
	ErrInvalidColor = errors.New("scheme color must be six hex digits")
)

// ParseScheme decodes a scheme file. slug is the scheme's file name
// without extension.
func ParseScheme(slug string, data []byte) (*Scheme, error) {
	var s Scheme
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scheme %s: %w", slug, err)
	}
	s.Slug = slug
	for k, v := range s.Colors {
		s.Colors[k] = strings.TrimPrefix(strings.TrimSpace(v), "#")
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scheme %s: %w", slug, err)
	}
	return &s, nil
}

// Validate checks that all sixteen colours are present and well formed.
func (s *Scheme) Validate() error {
	for _, key := range BaseKeys {
		v, ok := s.Colors[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingColor, key)
		}
		if !isHex6(v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidColor, key, v)
		}
	}
	return nil
}

// Color returns the hex value of a slot with a leading '#'.
func (s *Scheme) Color(key string) string {
	return "#" + s.Colors[key]
}

func isHex6(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
