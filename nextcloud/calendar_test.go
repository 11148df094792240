package nextcloud

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

const calendarHomeMultistatus = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:" xmlns:cal="urn:ietf:params:xml:ns:caldav">
    <d:response>
        <d:href>/remote.php/dav/calendars/testuser/</d:href>
        <d:propstat>
            <d:prop><d:resourcetype><d:collection/></d:resourcetype></d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
    <d:response>
        <d:href>/remote.php/dav/calendars/testuser/personal/</d:href>
        <d:propstat>
            <d:prop>
                <d:displayname>Personal</d:displayname>
                <d:resourcetype><d:collection/><cal:calendar/></d:resourcetype>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
    <d:response>
        <d:href>/remote.php/dav/calendars/testuser/work/</d:href>
        <d:propstat>
            <d:prop>
                <d:resourcetype><d:collection/><cal:calendar/></d:resourcetype>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
</d:multistatus>`

func TestListCalendars(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PROPFIND" {
			t.Errorf("method = %s, want PROPFIND", r.Method)
		}
		w.WriteHeader(207)
		w.Write([]byte(calendarHomeMultistatus))
	}))

	calendars, err := client.ListCalendars()
	if err != nil {
		t.Fatalf("ListCalendars failed: %v", err)
	}

	// The home collection has no calendar marker and is excluded.
	if len(calendars) != 2 {
		t.Fatalf("got %d calendars, want 2", len(calendars))
	}
	if calendars[0].Name != "Personal" {
		t.Errorf("name = %q", calendars[0].Name)
	}
	// No displayname falls back to the href basename.
	if calendars[1].Name != "work" {
		t.Errorf("fallback name = %q, want work", calendars[1].Name)
	}
}

const eventsReportMultistatus = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:" xmlns:cal="urn:ietf:params:xml:ns:caldav">
    <d:response>
        <d:href>/remote.php/dav/calendars/testuser/personal/ev1.ics</d:href>
        <d:propstat>
            <d:prop>
                <cal:calendar-data>BEGIN:VCALENDAR
BEGIN:VEVENT
SUMMARY:Standup
DTSTART:20260901T090000Z
END:VEVENT
END:VCALENDAR</cal:calendar-data>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
    <d:response>
        <d:href>/remote.php/dav/calendars/testuser/personal/ev2.ics</d:href>
        <d:propstat>
            <d:prop>
                <cal:calendar-data>BEGIN:VCALENDAR
BEGIN:VEVENT
DTSTART:20260902T100000Z
END:VEVENT
END:VCALENDAR</cal:calendar-data>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
</d:multistatus>`

func TestListEvents(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "REPORT" {
			t.Errorf("method = %s, want REPORT", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		gotQuery = string(body)
		w.WriteHeader(207)
		w.Write([]byte(eventsReportMultistatus))
	}))

	events, err := client.ListEvents("personal", "20260901T000000Z", "20260930T235959Z")
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}

	// Range bounds are passed to the server verbatim.
	if !strings.Contains(gotQuery, `start="20260901T000000Z"`) ||
		!strings.Contains(gotQuery, `end="20260930T235959Z"`) {
		t.Errorf("time-range missing from query: %s", gotQuery)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Summary != "Standup" || events[0].DTStart != "20260901T090000Z" {
		t.Errorf("event 0 = %+v", events[0])
	}
	if events[1].Summary != "No Title" {
		t.Errorf("summary = %q, missing SUMMARY should read No Title", events[1].Summary)
	}
}

func TestCreateEvent(t *testing.T) {
	var gotPath, gotBody string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(201)
	}))

	uid, err := client.CreateEvent("personal", "Dentist", "20260901T140000Z", "20260901T150000Z", "bring card")
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if uid == "" {
		t.Fatal("expected a generated uid")
	}

	wantPath := "/remote.php/dav/calendars/testuser/personal/" + uid + ".ics"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}

	for _, line := range []string{
		"UID:" + uid,
		"SUMMARY:Dentist",
		"DTSTART:20260901T140000Z",
		"DTEND:20260901T150000Z",
		"DESCRIPTION:bring card",
	} {
		if !strings.Contains(gotBody, line+"\r\n") {
			t.Errorf("VEVENT missing CRLF-terminated line %q in:\n%s", line, gotBody)
		}
	}
}

func TestGetEventNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))

	_, err := client.GetEvent("personal", "missing.ics")
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "DELETE" {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(204)
	}))

	if err := client.DeleteEvent("personal", "ev1.ics"); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
}
