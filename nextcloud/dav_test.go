package nextcloud

import (
	"testing"
)

const filesMultistatus = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:">
    <d:response>
        <d:href>/remote.php/dav/files/testuser/Documents/</d:href>
        <d:propstat>
            <d:prop>
                <d:displayname>Documents</d:displayname>
                <d:resourcetype><d:collection/></d:resourcetype>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
    <d:response>
        <d:href>/remote.php/dav/files/testuser/Documents/a.txt</d:href>
        <d:propstat>
            <d:prop>
                <d:displayname>a.txt</d:displayname>
                <d:getcontentlength>42</d:getcontentlength>
                <d:resourcetype/>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
</d:multistatus>`

func TestParseMultistatus(t *testing.T) {
	ms, err := parseMultistatus("test", []byte(filesMultistatus))
	if err != nil {
		t.Fatalf("parseMultistatus failed: %v", err)
	}
	if len(ms.Responses) != 2 {
		t.Fatalf("got %d responses, want 2", len(ms.Responses))
	}

	dir := ms.Responses[0].prop()
	if !dir.isCollection() {
		t.Error("Documents should be a collection")
	}
	if dir.displayName(ms.Responses[0].decodedHref()) != "Documents" {
		t.Errorf("displayName = %q", dir.displayName(ms.Responses[0].decodedHref()))
	}

	file := ms.Responses[1].prop()
	if file.isCollection() {
		t.Error("a.txt should not be a collection")
	}
	if file.contentLength() != 42 {
		t.Errorf("contentLength = %d, want 42", file.contentLength())
	}
}

func TestParseMultistatusMalformed(t *testing.T) {
	_, err := parseMultistatus("test", []byte("<d:multistatus xmlns:d=\"DAV:\"><unclosed"))
	if err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestResourceTypeMarkers(t *testing.T) {
	const body = `<?xml version="1.0"?>
<d:multistatus xmlns:d="DAV:" xmlns:cal="urn:ietf:params:xml:ns:caldav" xmlns:card="urn:ietf:params:xml:ns:carddav">
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
        <d:href>/remote.php/dav/addressbooks/users/testuser/contacts/</d:href>
        <d:propstat>
            <d:prop>
                <d:displayname>Contacts</d:displayname>
                <d:resourcetype><d:collection/><card:addressbook/></d:resourcetype>
            </d:prop>
            <d:status>HTTP/1.1 200 OK</d:status>
        </d:propstat>
    </d:response>
</d:multistatus>`

	ms, err := parseMultistatus("test", []byte(body))
	if err != nil {
		t.Fatal(err)
	}

	home := ms.Responses[0].prop()
	if home.isCalendar() || home.isAddressBook() {
		t.Error("plain collection misread as calendar or address book")
	}
	if !ms.Responses[1].prop().isCalendar() {
		t.Error("calendar marker not detected")
	}
	if !ms.Responses[2].prop().isAddressBook() {
		t.Error("addressbook marker not detected")
	}
}

func TestDisplayNameFallback(t *testing.T) {
	var empty davProp
	if got := empty.displayName("/remote.php/dav/files/u/Photos/"); got != "Photos" {
		t.Errorf("displayName fallback = %q, want Photos", got)
	}
	var nilProp *davProp
	if got := nilProp.displayName("/a/b/c.txt"); got != "c.txt" {
		t.Errorf("nil prop displayName = %q, want c.txt", got)
	}
}

func TestDecodedHref(t *testing.T) {
	r := davResponse{Href: "/remote.php/dav/files/u/My%20Folder/"}
	if got := r.decodedHref(); got != "/remote.php/dav/files/u/My Folder/" {
		t.Errorf("decodedHref = %q", got)
	}

	// Undecodable hrefs pass through untouched.
	r = davResponse{Href: "/bad%zz"}
	if got := r.decodedHref(); got != "/bad%zz" {
		t.Errorf("decodedHref = %q, want raw href", got)
	}
}

func TestContentLengthDefaults(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"", 0},
		{"garbage", 0},
		{"-5", 0},
		{" 1024 ", 1024},
	}
	for _, tt := range tests {
		p := davProp{GetContentLength: tt.raw}
		if got := p.contentLength(); got != tt.want {
			t.Errorf("contentLength(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestPathBasename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/a/b/c.txt", "c.txt"},
		{"/a/b/dir/", "dir"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := pathBasename(tt.in); got != tt.want {
			t.Errorf("pathBasename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
