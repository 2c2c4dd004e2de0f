package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ocean = `scheme: "Ocean"
author: "Chris Kempson (http://chriskempson.com)"
base00: "2b303b"
base01: "343d46"
base02: "4f5b66"
base03: "65737e"
base04: "a7adba"
base05: "c0c5ce"
base06: "dfe1e8"
base07: "eff1f5"
base08: "bf616a"
base09: "d08770"
base0A: "ebcb8b"
base0B: "a3be8c"
base0C: "96b5b4"
base0D: "8fa1b3"
base0E: "b48ead"
base0F: "#ab7967"
`

func TestParseScheme(t *testing.T) {
	s, err := ParseScheme("ocean", []byte(ocean))
	require.NoError(t, err)

	assert.Equal(t, "ocean", s.Slug)
	assert.Equal(t, "Ocean", s.Name)
	assert.Equal(t, "Chris Kempson (http://chriskempson.com)", s.Author)
	assert.Len(t, s.Colors, 16)
	assert.Equal(t, "#2b303b", s.Color("base00"))
	assert.Equal(t, "#ab7967", s.Color("base0F"))
}

func TestParseScheme_Invalid(t *testing.T) {
	t.Run("not yaml", func(t *testing.T) {
		_, err := ParseScheme("bad", []byte("scheme: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("missing color", func(t *testing.T) {
		data := strings.Replace(ocean, `base0A: "ebcb8b"`+"\n", "", 1)
		_, err := ParseScheme("ocean", []byte(data))
		assert.ErrorIs(t, err, ErrMissingColor)
	})

	t.Run("bad color", func(t *testing.T) {
		data := strings.Replace(ocean, `"ebcb8b"`, `"zzz"`, 1)
		_, err := ParseScheme("ocean", []byte(data))
		assert.ErrorIs(t, err, ErrInvalidColor)
	})
}

func TestSchemeName(t *testing.T) {
	assert.Equal(t, "ocean", SchemeName("/c/schemes/base16/ocean.yaml"))
	assert.Equal(t, "gruvbox-dark-hard", SchemeName("/c/schemes/gruvbox/gruvbox-dark-hard.yml"))
}

func TestParseTemplateRef(t *testing.T) {
	tests := []struct {
		in   string
		want TemplateRef
		err  bool
	}{
		{"vim/default", TemplateRef{"vim", "default"}, false},
		{"vim", TemplateRef{"vim", "default"}, false},
		{"vim/templates/colors", TemplateRef{"vim", "colors"}, false},
		{"vim/colors.mustache", TemplateRef{"vim", "colors"}, false},
		{"vim/", TemplateRef{}, true},
		{"/colors", TemplateRef{}, true},
		{"vim/a/b", TemplateRef{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTemplateRef(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidTemplateRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Family+"/"+tt.want.Subtemplate, got.String())
		})
	}
}

func TestTemplateRefFromPath(t *testing.T) {
	assert.Equal(t,
		TemplateRef{Family: "vim", Subtemplate: "default"},
		TemplateRefFromPath("/d/base16/templates/vim/templates/default.mustache"))
	assert.Equal(t,
		TemplateRef{Subtemplate: "vim"},
		TemplateRefFromPath("/d/base16/templates/vim"))
	assert.Equal(t, "vim", TemplateRef{Subtemplate: "vim"}.String())
}

func TestNewResource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vim", "templates", "default.mustache")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	r, err := NewResource(KindTemplate, path, "data")
	require.NoError(t, err)
	assert.Equal(t, "vim/default", r.Name)
	assert.Equal(t, "data", r.Origin)
	assert.Equal(t, int64(5), r.Size)
	assert.False(t, r.ModTime.IsZero())

	_, err = NewResource(KindScheme, filepath.Join(dir, "missing.yaml"), "config")
	assert.Error(t, err)
}
