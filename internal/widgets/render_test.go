package widgets

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextool/nextcloud"
)

// plainRenderer avoids ANSI noise in assertions.
func plainRenderer() *Renderer {
	return NewRenderer(&Settings{Color: false, Icons: false, DateFormat: "2006-01-02"})
}

func TestHumanizeSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
		{5368709120, "5.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeSize(tt.size))
	}
}

func TestFilesWidget(t *testing.T) {
	out := plainRenderer().Files("Documents", []nextcloud.FileEntry{
		{Name: "Photos", IsDirectory: true},
		{Name: "a.txt", Size: 42},
	})

	assert.Contains(t, out, "Files: Documents")
	assert.Contains(t, out, "Photos/")
	assert.Contains(t, out, "a.txt 42 B")
}

func TestFilesWidgetEmpty(t *testing.T) {
	out := plainRenderer().Files("", nil)
	assert.Contains(t, out, "(empty)")
}

func TestContactsPageHeader(t *testing.T) {
	out := plainRenderer().ContactsPage("contacts", &nextcloud.ContactPage{
		Contacts:   []nextcloud.Contact{{FN: "Jane", Email: "jane@example.com"}},
		Total:      45,
		Page:       2,
		Limit:      30,
		TotalPages: 2,
	})

	assert.Contains(t, out, "page 2/2")
	assert.Contains(t, out, "45 total")
	assert.Contains(t, out, "Jane")
	assert.Contains(t, out, "<jane@example.com>")
}

func TestContactDetailSkipsEmptyFields(t *testing.T) {
	out := plainRenderer().Contact(&nextcloud.Contact{FN: "Jane", Tel: "+49123"})
	assert.Contains(t, out, "Phone: +49123")
	assert.NotContains(t, out, "Email:")
	assert.NotContains(t, out, "Address:")
}

func TestEventsWidgetDateFormatting(t *testing.T) {
	out := plainRenderer().Events("personal", []nextcloud.CalendarEvent{
		{Summary: "Standup", DTStart: "20260901T090000Z"},
		{Summary: "Odd", DTStart: "not-a-date"},
	})

	assert.Contains(t, out, "2026-09-01 Standup")
	// Unparseable DTSTART values pass through verbatim.
	assert.Contains(t, out, "not-a-date Odd")
}

func TestRecipeWidget(t *testing.T) {
	out := plainRenderer().Recipe(&nextcloud.Recipe{
		Name:         "Pancakes",
		Ingredients:  []string{"flour", "milk"},
		Instructions: []string{"mix", "fry"},
	})

	assert.Contains(t, out, "Pancakes")
	assert.Contains(t, out, "• flour")
	assert.Contains(t, out, "1. mix")
	assert.Contains(t, out, "2. fry")
}

func TestSuccessAndError(t *testing.T) {
	r := plainRenderer()
	assert.Equal(t, "✓ done\n", r.Success("done"))
	assert.Equal(t, "✗ boom\n", r.Error(errors.New("boom")))
}

func TestClipMaxWidth(t *testing.T) {
	r := NewRenderer(&Settings{MaxWidth: 10})
	out := r.clip("short\nthis line is far too long\n")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 10)
	}
}

func TestLoadSettingsFromBytes(t *testing.T) {
	settings, err := LoadSettingsFromBytes([]byte("color: false\nicons: true\nmax_width: 120\n"), "test")
	require.NoError(t, err)
	assert.False(t, settings.Color)
	assert.True(t, settings.Icons)
	assert.Equal(t, 120, settings.MaxWidth)
	assert.Equal(t, "2006-01-02", settings.DateFormat)
}

func TestLoadSettingsInvalid(t *testing.T) {
	_, err := LoadSettingsFromBytes([]byte("max_width: 9999\n"), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = LoadSettingsFromBytes([]byte("color: [not, a, bool]\n"), "test")
	require.Error(t, err)
}
