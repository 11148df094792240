package nextcloud

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const addressBookListPropfind = `<?xml version="1.0" encoding="utf-8" ?>
<d:propfind xmlns:d="DAV:" xmlns:card="urn:ietf:params:xml:ns:carddav">
  <d:prop>
    <d:resourcetype />
    <d:displayname />
  </d:prop>
</d:propfind>`

const contactsReportQuery = `<?xml version="1.0" encoding="utf-8" ?>
<c:addressbook-query xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:carddav">
  <d:prop>
    <d:getetag />
    <c:address-data>
      <c:prop name="FN"/>
      <c:prop name="EMAIL"/>
      <c:prop name="TEL"/>
      <c:prop name="UID"/>
    </c:address-data>
  </d:prop>
</c:addressbook-query>`

// DefaultContactPageLimit is the page size used when the caller does
// not pick one.
const DefaultContactPageLimit = 30

// ListAddressBooks discovers the user's address book collections.
// Responses without a carddav addressbook resourcetype marker are
// excluded.
func (c *Client) ListAddressBooks() ([]AddressBook, error) {
	const op = "ListAddressBooks"

	headers := map[string]string{
		"Content-Type": "application/xml",
		"Depth":        "1",
	}
	resp, err := c.do("PROPFIND", c.carddavURL(""), strings.NewReader(addressBookListPropfind), headers)
	if err != nil {
		return nil, NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp, op); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestError(op, 0, "failed to read response").WithError(err)
	}

	ms, err := parseMultistatus(op, body)
	if err != nil {
		return nil, err
	}

	var books []AddressBook
	for _, r := range ms.Responses {
		prop := r.prop()
		if !prop.isAddressBook() {
			continue
		}
		href := r.decodedHref()
		books = append(books, AddressBook{
			Name: prop.displayName(href),
			Href: href,
		})
	}

	return books, nil
}

// ListContacts pages through an address book. CardDAV has no
// standardized server-side paging, so one addressbook-query REPORT
// materializes every contact and search, sort and slicing all happen
// client-side. When the REPORT fails entirely, a plain PROPFIND over
// the .vcf resource names serves as a degraded fallback.
//
// The search term OR-matches fn, email and tel case-insensitively.
// The filtered set is sorted ascending by fn (case-insensitive, empty
// fn first) before slicing; Total counts the pre-slice set.
func (c *Client) ListContacts(addressBookName string, page, limit int, searchTerm string) (*ContactPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultContactPageLimit
	}

	contacts, err := c.queryContacts(addressBookName)
	if err != nil {
		contacts, err = c.propfindContacts(addressBookName)
		if err != nil {
			return nil, err
		}
	}

	return paginateContacts(contacts, page, limit, searchTerm), nil
}

// queryContacts fetches every contact of a collection via REPORT.
func (c *Client) queryContacts(addressBookName string) ([]Contact, error) {
	const op = "ListContacts"

	headers := map[string]string{
		"Content-Type": "application/xml; charset=utf-8",
		"Depth":        "1",
	}
	resp, err := c.do("REPORT", c.carddavURL(addressBookName), strings.NewReader(contactsReportQuery), headers)
	if err != nil {
		return nil, NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp, op); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestError(op, 0, "failed to read response").WithError(err)
	}

	ms, err := parseMultistatus(op, body)
	if err != nil {
		return nil, err
	}

	var contacts []Contact
	for _, r := range ms.Responses {
		prop := r.prop()
		if prop == nil || prop.AddressData == "" {
			continue
		}
		contact := parseVCard(prop.AddressData)
		contact.Href = pathBasename(r.decodedHref())
		contacts = append(contacts, contact)
	}

	return contacts, nil
}

// propfindContacts is the degraded fallback: discover .vcf resource
// names only and derive a display name by title-casing the filename
// with dashes turned into spaces.
func (c *Client) propfindContacts(addressBookName string) ([]Contact, error) {
	const op = "ListContacts"

	headers := map[string]string{"Depth": "1"}
	resp, err := c.do("PROPFIND", c.carddavURL(addressBookName), nil, headers)
	if err != nil {
		return nil, NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp, op); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestError(op, 0, "failed to read response").WithError(err)
	}

	ms, err := parseMultistatus(op, body)
	if err != nil {
		return nil, err
	}

	var contacts []Contact
	for _, r := range ms.Responses {
		href := r.decodedHref()
		if !strings.HasSuffix(href, ".vcf") {
			continue
		}
		base := pathBasename(href)
		name := strings.TrimSuffix(base, ".vcf")
		name = titleCase(strings.ReplaceAll(name, "-", " "))
		contacts = append(contacts, Contact{FN: name, Href: base})
	}

	return contacts, nil
}

// paginateContacts filters, sorts and slices a materialized contact
// set. Total is the filtered count; TotalPages is at least 1 so an
// empty result still reads as "page 1 of 1".
func paginateContacts(contacts []Contact, page, limit int, searchTerm string) *ContactPage {
	filtered := contacts
	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		filtered = make([]Contact, 0, len(contacts))
		for _, contact := range contacts {
			if strings.Contains(strings.ToLower(contact.FN), term) ||
				strings.Contains(strings.ToLower(contact.Email), term) ||
				strings.Contains(strings.ToLower(contact.Tel), term) {
				filtered = append(filtered, contact)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return strings.ToLower(filtered[i].FN) < strings.ToLower(filtered[j].FN)
	})

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return &ContactPage{
		Contacts:   filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// GetContact fetches and decodes one contact. The filename is the
// .vcf basename within the address book, the identity used across
// list and get.
func (c *Client) GetContact(addressBookName, contactFilename string) (*Contact, error) {
	const op = "GetContact"

	resp, err := c.do("GET", c.carddavURL(addressBookName+"/"+contactFilename), nil, nil)
	if err != nil {
		return nil, NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return nil, NewRequestError(op, 404, fmt.Sprintf("contact %q not found", contactFilename))
	}
	if err := c.checkResponse(resp, op); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestError(op, 0, "failed to read response").WithError(err)
	}

	contact := parseVCard(string(body))
	contact.Href = contactFilename
	return &contact, nil
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
