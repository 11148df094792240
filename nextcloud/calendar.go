package nextcloud

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const calendarListPropfind = `<?xml version="1.0" encoding="utf-8" ?>
<d:propfind xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">
  <d:prop>
    <d:resourcetype />
    <d:displayname />
  </d:prop>
</d:propfind>`

// ListCalendars discovers the user's calendar collections. Responses
// without a caldav calendar resourcetype marker (the home itself,
// inbox, trash) are excluded.
func (c *Client) ListCalendars() ([]Calendar, error) {
	const op = "ListCalendars"

	headers := map[string]string{
		"Content-Type": "application/xml",
		"Depth":        "1",
	}
	resp, err := c.do("PROPFIND", c.caldavURL(""), strings.NewReader(calendarListPropfind), headers)
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

	var calendars []Calendar
	for _, r := range ms.Responses {
		prop := r.prop()
		if !prop.isCalendar() {
			continue
		}
		href := r.decodedHref()
		calendars = append(calendars, Calendar{
			Name: prop.displayName(href),
			Href: href,
		})
	}

	return calendars, nil
}

// ListEvents runs a calendar-query REPORT over [start, end]. The
// timestamps are passed to the server verbatim and are expected in
// YYYYMMDDTHHMMSSZ form. Each returned event carries the SUMMARY and
// DTSTART scanned from its calendar-data blob.
func (c *Client) ListEvents(calendarName, start, end string) ([]CalendarEvent, error) {
	const op = "ListEvents"

	query := fmt.Sprintf(`<?xml version="1.0" encoding="utf-8" ?>
<c:calendar-query xmlns:d="DAV:" xmlns:c="urn:ietf:params:xml:ns:caldav">
  <d:prop>
    <d:getetag />
    <c:calendar-data />
  </d:prop>
  <c:filter>
    <c:comp-filter name="VCALENDAR">
      <c:comp-filter name="VEVENT">
        <c:time-range start="%s" end="%s"/>
      </c:comp-filter>
    </c:comp-filter>
  </c:filter>
</c:calendar-query>`, start, end)

	headers := map[string]string{
		"Content-Type": "application/xml; charset=utf-8",
		"Depth":        "1",
	}
	resp, err := c.do("REPORT", c.caldavURL(calendarName), strings.NewReader(query), headers)
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

	var events []CalendarEvent
	for _, r := range ms.Responses {
		prop := r.prop()
		if prop == nil || prop.CalendarData == "" {
			continue
		}
		summary, dtstart := scanEventLines(prop.CalendarData)
		events = append(events, CalendarEvent{
			Summary: summary,
			DTStart: dtstart,
			Href:    r.decodedHref(),
		})
	}

	return events, nil
}

// scanEventLines pulls SUMMARY and DTSTART out of raw iCalendar text
// with a plain line scan. Events without a summary get "No Title".
func scanEventLines(data string) (summary, dtstart string) {
	summary = "No Title"
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if v, ok := strings.CutPrefix(line, "SUMMARY:"); ok {
			summary = v
		}
		if v, ok := strings.CutPrefix(line, "DTSTART:"); ok {
			dtstart = v
		}
	}
	return summary, dtstart
}

// CreateEvent PUTs a minimal VEVENT into the named calendar and
// returns the generated UID. Timestamps are caller-supplied verbatim
// in YYYYMMDDTHHMMSSZ form; no validation is done here.
func (c *Client) CreateEvent(calendarName, title, start, end, description string) (string, error) {
	const op = "CreateEvent"

	uid := uuid.NewString()

	var ical bytes.Buffer
	ical.WriteString("BEGIN:VCALENDAR\r\n")
	ical.WriteString("VERSION:2.0\r\n")
	ical.WriteString("BEGIN:VEVENT\r\n")
	ical.WriteString(fmt.Sprintf("UID:%s\r\n", uid))
	ical.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", title))
	ical.WriteString(fmt.Sprintf("DTSTART:%s\r\n", start))
	ical.WriteString(fmt.Sprintf("DTEND:%s\r\n", end))
	ical.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", description))
	ical.WriteString("END:VEVENT\r\n")
	ical.WriteString("END:VCALENDAR\r\n")

	headers := map[string]string{
		"Content-Type": "text/calendar; charset=utf-8",
	}
	url := c.caldavURL(calendarName + "/" + uid + ".ics")
	resp, err := c.do("PUT", url, &ical, headers)
	if err != nil {
		return "", NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp, op); err != nil {
		return "", err
	}
	return uid, nil
}

// GetEvent fetches the full ICS content of one event. The filename is
// the .ics resource name within the calendar collection.
func (c *Client) GetEvent(calendarName, eventFilename string) (string, error) {
	const op = "GetEvent"

	resp, err := c.do("GET", c.caldavURL(calendarName+"/"+eventFilename), nil, nil)
	if err != nil {
		return "", NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return "", NewRequestError(op, 404, fmt.Sprintf("event %q not found", eventFilename))
	}
	if err := c.checkResponse(resp, op); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewRequestError(op, 0, "failed to read response").WithError(err)
	}
	return string(body), nil
}

// DeleteEvent removes one event resource from a calendar.
func (c *Client) DeleteEvent(calendarName, eventFilename string) error {
	const op = "DeleteEvent"

	resp, err := c.do("DELETE", c.caldavURL(calendarName+"/"+eventFilename), nil, nil)
	if err != nil {
		return NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return NewRequestError(op, 404, fmt.Sprintf("event %q not found", eventFilename))
	}
	return c.checkResponse(resp, op, 200, 204)
}
