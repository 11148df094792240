package nextcloud

// FileEntry represents a single resource from a WebDAV file listing.
// Size is taken from getcontentlength and defaults to 0 when the
// property is absent (collections usually omit it).
type FileEntry struct {
	Name        string `json:"name"`
	Href        string `json:"href"`
	IsDirectory bool   `json:"is_directory"`
	Size        int64  `json:"size"`
}

// Note is a Nextcloud Notes app note. Category may be empty (root).
type Note struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Calendar is a CalDAV calendar collection. Href is the DAV collection
// path and is the stable reference for event operations.
type Calendar struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// AddressBook is a CardDAV address book collection.
type AddressBook struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// CalendarEvent is a single VEVENT from a calendar-query REPORT.
// Data carries the raw iCalendar text when the full fetch was requested.
type CalendarEvent struct {
	Summary string `json:"summary"`
	DTStart string `json:"dtstart"`
	Href    string `json:"href"`
	Data    string `json:"data,omitempty"`
}

// Contact is a flat VCard record. Href is the .vcf basename within its
// address book collection and identifies the contact for get/update.
type Contact struct {
	FN    string `json:"fn"`
	Email string `json:"email,omitempty"`
	Tel   string `json:"tel,omitempty"`
	Org   string `json:"org,omitempty"`
	Note  string `json:"note,omitempty"`
	Adr   string `json:"adr,omitempty"`
	Href  string `json:"href"`
}

// ContactPage is one page of a client-side paginated contact listing.
// Total counts the filtered set before slicing.
type ContactPage struct {
	Contacts   []Contact `json:"contacts"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}

// Board is a Deck kanban board. Color is a hex string without '#'.
type Board struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color,omitempty"`
	Archived bool   `json:"archived"`
}

// Stack is a Deck column. Stacks belong to exactly one board.
type Stack struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
	Cards []Card `json:"cards,omitempty"`
}

// Card is a Deck card. DueDate is an ISO-8601 string when set.
type Card struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	DueDate     string `json:"duedate,omitempty"`
	Archived    bool   `json:"archived"`
}

// Label is a Deck board label.
type Label struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// Recipe is a Nextcloud Cookbook recipe.
type Recipe struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions []string `json:"instructions,omitempty"`
}
