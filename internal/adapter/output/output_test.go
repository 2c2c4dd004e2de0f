package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/flavours/internal/model"
)

var testNow = time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)

func testResources() []model.Resource {
	return []model.Resource{
		{
			Kind:    model.KindTemplate,
			Name:    "vim/default",
			Origin:  "config",
			Path:    "/c/templates/vim/templates/default.mustache",
			Size:    2048,
			ModTime: testNow.Add(-2 * time.Hour),
		},
		{
			Kind:    model.KindTemplate,
			Name:    "vim/default",
			Origin:  "data",
			Path:    "/d/base16/templates/vim/templates/default.mustache",
			Size:    10,
			ModTime: testNow.Add(-72 * time.Hour),
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"plain", "LINES", " long ", "json"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}

	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, FormatterOptions{}))
	assert.IsType(t, &LinesFormatter{}, NewFormatter(FormatLines, FormatterOptions{}))
	assert.IsType(t, &LongFormatter{}, NewFormatter(FormatLong, FormatterOptions{}))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, FormatterOptions{}))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("other", FormatterOptions{}))
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	rs := []model.Resource{{Name: "ocean"}, {Name: "eighties"}}
	require.NoError(t, NewPlainFormatter(FormatterOptions{}).Format(&buf, rs))
	assert.Equal(t, "ocean eighties\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPlainFormatter(FormatterOptions{}).Format(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestLinesFormatter_Format(t *testing.T) {
	t.Run("names", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewLinesFormatter(FormatterOptions{}).Format(&buf, testResources()))
		assert.Equal(t, "vim/default\nvim/default\n", buf.String())
	})

	t.Run("paths", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewLinesFormatter(FormatterOptions{ShowPath: true}).Format(&buf, testResources()))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, "/c/templates/vim/templates/default.mustache", lines[0])
	})

	t.Run("custom template", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewLinesFormatter(FormatterOptions{Template: "{{.Origin}}:{{.Name}}"})
		require.NoError(t, f.Format(&buf, testResources()))
		assert.Equal(t, "config:vim/default\ndata:vim/default\n", buf.String())
	})

	t.Run("invalid template falls back", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewLinesFormatter(FormatterOptions{Template: "{{.Origin"})
		require.NoError(t, f.Format(&buf, testResources()[:1]))
		assert.Equal(t, "vim/default\n", buf.String())
	})
}

func TestLongFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewLongFormatter(FormatterOptions{})
	f.now = func() time.Time { return testNow }

	require.NoError(t, f.Format(&buf, testResources()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "config")
	assert.Contains(t, lines[0], "2.0 kB")
	assert.Contains(t, lines[0], "2 hours ago")
	assert.Contains(t, lines[0], "/c/templates/vim/templates/default.mustache")
	assert.Contains(t, lines[1], "data")
	assert.Contains(t, lines[1], "10 B")
	assert.Contains(t, lines[1], "3 days ago")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestLongFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	f := NewLongFormatter(FormatterOptions{Color: ResolveColorMode("always", &buf)})
	f.now = func() time.Time { return testNow }

	require.NoError(t, f.Format(&buf, testResources()))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "/c/templates/vim/templates/default.mustache")
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(FormatterOptions{}).Format(&buf, testResources()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "config", decoded[0]["origin"])
	assert.Equal(t, "template", decoded[0]["kind"])

	buf.Reset()
	require.NoError(t, NewJSONFormatter(FormatterOptions{}).Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatScheme(t *testing.T) {
	s := &model.Scheme{
		Slug:   "ocean",
		Name:   "Ocean",
		Author: "Chris Kempson",
		Colors: map[string]string{},
	}
	for _, key := range model.BaseKeys {
		s.Colors[key] = "2b303b"
	}

	var buf bytes.Buffer
	require.NoError(t, FormatScheme(&buf, s, "/c/schemes/base16/ocean.yaml", false))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Ocean (ocean)\nby Chris Kempson\n/c/schemes/base16/ocean.yaml\n"))
	assert.Contains(t, out, "base0F #2b303b\n")
	assert.Equal(t, 19, strings.Count(out, "\n"))
	assert.NotContains(t, out, "\x1b[")

	t.Run("color always renders swatches to a non-terminal", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, FormatScheme(&buf, s, "/c/schemes/base16/ocean.yaml", ResolveColorMode("always", &buf)))
		out := buf.String()
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "base0F #2b303b\n")
		assert.Equal(t, 19, strings.Count(out, "\n"))
	})
}

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "name", NewStyles(&buf, false).Name.Render("name"))
	assert.Contains(t, NewStyles(&buf, true).Config.Render("name"), "\x1b[")
}

func TestResolveColorMode(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ResolveColorMode("never", &buf))
	assert.True(t, ResolveColorMode("always", &buf))
	assert.False(t, ResolveColorMode("auto", &buf))
	assert.False(t, IsTTY(&buf))
}
