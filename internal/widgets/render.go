// Package widgets renders Nextcloud records as styled terminal text.
// Renderers are pure presentation: they take decoded records and
// return a string, never touching the network.
package widgets

import (
	"fmt"
	"strings"
	"time"

	"nextool/nextcloud"
)

// Renderer renders widgets according to its settings.
type Renderer struct {
	settings *Settings
}

// NewRenderer creates a renderer. A nil settings uses the defaults.
func NewRenderer(settings *Settings) *Renderer {
	if settings == nil {
		settings = DefaultSettings()
	}
	return &Renderer{settings: settings}
}

// Files renders a directory listing. Directories sort the way the
// server returned them; the first entry of a PROPFIND is the
// collection itself and is expected to be filtered out by the caller.
func (r *Renderer) Files(path string, entries []nextcloud.FileEntry) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, "Files: "+displayPath(path)))
	s.WriteString("\n")

	if len(entries) == 0 {
		s.WriteString(r.style(dimStyle, "  (empty)"))
		s.WriteString("\n")
		return s.String()
	}

	for _, entry := range entries {
		icon := r.fileIcon(entry.IsDirectory)
		name := entry.Name
		if entry.IsDirectory {
			name = r.style(dirStyle, name+"/")
			s.WriteString(fmt.Sprintf("  %s%s\n", icon, name))
			continue
		}
		s.WriteString(fmt.Sprintf("  %s%s %s\n", icon, name,
			r.style(dimStyle, humanizeSize(entry.Size))))
	}
	return r.clip(s.String())
}

// Notes renders a notes listing.
func (r *Renderer) Notes(notes []nextcloud.Note) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, fmt.Sprintf("Notes (%d)", len(notes))))
	s.WriteString("\n")

	for _, note := range notes {
		line := fmt.Sprintf("  %s[%d] %s", r.icon("📝 "), note.ID, note.Title)
		if note.Category != "" {
			line += r.style(dimStyle, " ("+note.Category+")")
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return r.clip(s.String())
}

// Note renders a single note with its content.
func (r *Renderer) Note(note *nextcloud.Note) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, note.Title))
	s.WriteString("\n")
	if note.Category != "" {
		s.WriteString(r.style(dimStyle, "Category: "+note.Category))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(note.Content)
	if !strings.HasSuffix(note.Content, "\n") {
		s.WriteString("\n")
	}
	return s.String()
}

// Calendars renders the calendar collections of the account.
func (r *Renderer) Calendars(calendars []nextcloud.Calendar) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, fmt.Sprintf("Calendars (%d)", len(calendars))))
	s.WriteString("\n")
	for _, cal := range calendars {
		s.WriteString(fmt.Sprintf("  %s%s\n", r.icon("📅 "), cal.Name))
	}
	return s.String()
}

// Events renders events of a calendar time range.
func (r *Renderer) Events(calendar string, events []nextcloud.CalendarEvent) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, "Events: "+calendar))
	s.WriteString("\n")

	if len(events) == 0 {
		s.WriteString(r.style(dimStyle, "  (no events in range)"))
		s.WriteString("\n")
		return s.String()
	}

	for _, event := range events {
		date := formatEventDate(event.DTStart, r.settings.DateFormat)
		s.WriteString(fmt.Sprintf("  %s%s %s\n", r.icon("📅 "),
			r.style(dimStyle, date), event.Summary))
	}
	return r.clip(s.String())
}

// AddressBooks renders the address book collections of the account.
func (r *Renderer) AddressBooks(books []nextcloud.AddressBook) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, fmt.Sprintf("Address books (%d)", len(books))))
	s.WriteString("\n")
	for _, book := range books {
		s.WriteString(fmt.Sprintf("  %s%s\n", r.icon("📇 "), book.Name))
	}
	return s.String()
}

// ContactsPage renders one page of contacts with a page x/y header.
func (r *Renderer) ContactsPage(book string, page *nextcloud.ContactPage) string {
	var s strings.Builder
	header := fmt.Sprintf("Contacts: %s (page %d/%d, %d total)",
		book, page.Page, page.TotalPages, page.Total)
	s.WriteString(r.style(titleStyle, header))
	s.WriteString("\n")

	if len(page.Contacts) == 0 {
		s.WriteString(r.style(dimStyle, "  (no contacts)"))
		s.WriteString("\n")
		return s.String()
	}

	for _, contact := range page.Contacts {
		name := contact.FN
		if name == "" {
			name = r.style(dimStyle, "(unnamed)")
		}
		line := "  " + r.icon("👤 ") + name
		if contact.Email != "" {
			line += r.style(dimStyle, " <"+contact.Email+">")
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return r.clip(s.String())
}

// Contact renders a full contact card.
func (r *Renderer) Contact(contact *nextcloud.Contact) string {
	var s strings.Builder
	name := contact.FN
	if name == "" {
		name = "(unnamed)"
	}
	s.WriteString(r.style(titleStyle, name))
	s.WriteString("\n")

	r.field(&s, "Email", contact.Email)
	r.field(&s, "Phone", contact.Tel)
	r.field(&s, "Org", contact.Org)
	r.field(&s, "Address", contact.Adr)
	r.field(&s, "Note", contact.Note)
	return s.String()
}

// Boards renders the Deck boards of the account.
func (r *Renderer) Boards(boards []nextcloud.Board) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, fmt.Sprintf("Boards (%d)", len(boards))))
	s.WriteString("\n")
	for _, board := range boards {
		line := fmt.Sprintf("  %s[%d] %s", r.icon("📋 "), board.ID, board.Title)
		if board.Archived {
			line += r.style(dimStyle, " (archived)")
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return s.String()
}

// Stacks renders the stacks of a board.
func (r *Renderer) Stacks(board string, stacks []nextcloud.Stack) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, "Stacks: "+board))
	s.WriteString("\n")
	for _, stack := range stacks {
		s.WriteString(fmt.Sprintf("  [%d] %s %s\n", stack.ID, stack.Title,
			r.style(dimStyle, fmt.Sprintf("(%d cards)", len(stack.Cards)))))
	}
	return s.String()
}

// Cards renders the cards of a stack.
func (r *Renderer) Cards(stack string, cards []nextcloud.Card) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, "Cards: "+stack))
	s.WriteString("\n")

	if len(cards) == 0 {
		s.WriteString(r.style(dimStyle, "  (no cards)"))
		s.WriteString("\n")
		return s.String()
	}

	for _, card := range cards {
		line := fmt.Sprintf("  [%d] %s", card.ID, card.Title)
		if card.DueDate != "" {
			line += r.style(dimStyle, " due "+card.DueDate)
		}
		if card.Archived {
			line += r.style(dimStyle, " (archived)")
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	return r.clip(s.String())
}

// Recipes renders a recipe listing.
func (r *Renderer) Recipes(recipes []nextcloud.Recipe) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, fmt.Sprintf("Recipes (%d)", len(recipes))))
	s.WriteString("\n")
	for _, recipe := range recipes {
		s.WriteString(fmt.Sprintf("  %s[%d] %s\n", r.icon("🍲 "), recipe.ID, recipe.Name))
	}
	return s.String()
}

// Recipe renders a full recipe with ingredients and instructions.
func (r *Renderer) Recipe(recipe *nextcloud.Recipe) string {
	var s strings.Builder
	s.WriteString(r.style(titleStyle, recipe.Name))
	s.WriteString("\n")
	if recipe.Description != "" {
		s.WriteString(recipe.Description)
		s.WriteString("\n")
	}

	if len(recipe.Ingredients) > 0 {
		s.WriteString("\n")
		s.WriteString(r.style(headerStyle, "Ingredients"))
		s.WriteString("\n")
		for _, ingredient := range recipe.Ingredients {
			s.WriteString("  • " + ingredient + "\n")
		}
	}

	if len(recipe.Instructions) > 0 {
		s.WriteString("\n")
		s.WriteString(r.style(headerStyle, "Instructions"))
		s.WriteString("\n")
		for i, step := range recipe.Instructions {
			s.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}
	return s.String()
}

// Success renders a confirmation card for a completed mutation.
func (r *Renderer) Success(message string) string {
	return r.style(successStyle, "✓ "+message) + "\n"
}

// Error renders a failure card. The message flows back to the host as
// text, never as a crash.
func (r *Renderer) Error(err error) string {
	return r.style(errorStyle, "✗ "+err.Error()) + "\n"
}

func (r *Renderer) field(s *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	s.WriteString("  " + r.style(labelStyle, label+":") + " " + value + "\n")
}

func (r *Renderer) icon(glyph string) string {
	if !r.settings.Icons {
		return ""
	}
	return glyph
}

func (r *Renderer) fileIcon(isDir bool) string {
	if !r.settings.Icons {
		return ""
	}
	if isDir {
		return "📁 "
	}
	return "📄 "
}

// clip truncates each line to the configured max width.
func (r *Renderer) clip(text string) string {
	if r.settings.MaxWidth <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > r.settings.MaxWidth {
			lines[i] = string(runes[:r.settings.MaxWidth-1]) + "…"
		}
	}
	return strings.Join(lines, "\n")
}

func displayPath(path string) string {
	if path == "" || path == "/" {
		return "/"
	}
	return strings.Trim(path, "/")
}

// humanizeSize formats a byte count with binary units, one decimal.
func humanizeSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// formatEventDate reformats a DTSTART value for display. Unparseable
// values pass through verbatim.
func formatEventDate(dtstart, layout string) string {
	if dtstart == "" {
		return ""
	}
	for _, in := range []string{"20060102T150405Z", "20060102T150405", "20060102"} {
		if t, err := time.Parse(in, dtstart); err == nil {
			return t.Format(layout)
		}
	}
	return dtstart
}
