package nextcloud

import (
	"encoding/xml"
	"net/url"
	"strconv"
	"strings"
)

// DAV multistatus document as returned by PROPFIND and REPORT.
// Namespaces matter: DAV: for the envelope, the caldav/carddav URNs
// for the embedded calendar-data and address-data blobs.
type multistatus struct {
	XMLName   xml.Name      `xml:"DAV: multistatus"`
	Responses []davResponse `xml:"response"`
}

type davResponse struct {
	Href     string        `xml:"href"`
	Propstat []davPropstat `xml:"propstat"`
}

type davPropstat struct {
	Prop   davProp `xml:"prop"`
	Status string  `xml:"status"`
}

type davProp struct {
	DisplayName      string           `xml:"displayname"`
	GetContentLength string           `xml:"getcontentlength"`
	ResourceType     *davResourceType `xml:"resourcetype"`
	CalendarData     string           `xml:"urn:ietf:params:xml:ns:caldav calendar-data"`
	AddressData      string           `xml:"urn:ietf:params:xml:ns:carddav address-data"`
}

type davResourceType struct {
	Collection  *struct{} `xml:"DAV: collection"`
	Calendar    *struct{} `xml:"urn:ietf:params:xml:ns:caldav calendar"`
	AddressBook *struct{} `xml:"urn:ietf:params:xml:ns:carddav addressbook"`
}

// parseMultistatus decodes a multistatus body. Malformed XML surfaces
// as an error value so callers can report it without crashing.
func parseMultistatus(op string, data []byte) (*multistatus, error) {
	var ms multistatus
	if err := xml.Unmarshal(data, &ms); err != nil {
		return nil, NewRequestError(op, 0, "malformed multistatus response").WithError(err)
	}
	return &ms, nil
}

// prop returns the properties of the first propstat, the one Nextcloud
// puts the 200 OK values in.
func (r *davResponse) prop() *davProp {
	if len(r.Propstat) == 0 {
		return nil
	}
	return &r.Propstat[0].Prop
}

// decodedHref returns the percent-decoded href. An undecodable href is
// returned as-is rather than dropped.
func (r *davResponse) decodedHref() string {
	href, err := url.PathUnescape(r.Href)
	if err != nil {
		return r.Href
	}
	return href
}

// isCollection reports whether the response's resourcetype carries a
// DAV: collection marker. This alone decides directory-ness.
func (p *davProp) isCollection() bool {
	return p != nil && p.ResourceType != nil && p.ResourceType.Collection != nil
}

// isCalendar reports a caldav calendar resourcetype marker.
func (p *davProp) isCalendar() bool {
	return p != nil && p.ResourceType != nil && p.ResourceType.Calendar != nil
}

// isAddressBook reports a carddav addressbook resourcetype marker.
func (p *davProp) isAddressBook() bool {
	return p != nil && p.ResourceType != nil && p.ResourceType.AddressBook != nil
}

// displayName returns the displayname property, falling back to the
// last path segment of the href with any trailing slash stripped. It
// never fails: an unnamed resource still gets a usable name.
func (p *davProp) displayName(href string) string {
	if p != nil && strings.TrimSpace(p.DisplayName) != "" {
		return strings.TrimSpace(p.DisplayName)
	}
	return pathBasename(href)
}

// contentLength returns getcontentlength as an integer, defaulting to
// 0 when the property is absent or unparseable.
func (p *davProp) contentLength() int64 {
	if p == nil || p.GetContentLength == "" {
		return 0
	}
	size, err := strconv.ParseInt(strings.TrimSpace(p.GetContentLength), 10, 64)
	if err != nil || size < 0 {
		return 0
	}
	return size
}

// pathBasename returns the last segment of a slash-separated path,
// ignoring a trailing slash.
func pathBasename(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
