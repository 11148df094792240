package nextcloud

import (
	"io"
	"strings"
)

// ListFiles lists the resources under a user-relative path with a
// PROPFIND of depth 1. Every DAV response becomes one FileEntry;
// directory-ness comes solely from the collection resourcetype marker.
func (c *Client) ListFiles(path string) ([]FileEntry, error) {
	const op = "ListFiles"

	resp, err := c.do("PROPFIND", c.webdavURL(path), nil, map[string]string{
		"Depth": "1",
	})
	if err != nil {
		return nil, NewRequestError(op, 0, "request failed").WithPath(path).WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return nil, NewRequestError(op, 404, "path not found").WithPath(path)
	}
	if err := c.checkResponse(resp, op); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewRequestError(op, 0, "failed to read response").WithPath(path).WithError(err)
	}

	ms, err := parseMultistatus(op, body)
	if err != nil {
		return nil, err
	}

	entries := make([]FileEntry, 0, len(ms.Responses))
	for _, r := range ms.Responses {
		href := r.decodedHref()
		prop := r.prop()
		entries = append(entries, FileEntry{
			Name:        prop.displayName(href),
			Href:        href,
			IsDirectory: prop.isCollection(),
			Size:        prop.contentLength(),
		})
	}

	return entries, nil
}

// ReadFile fetches a file's content as text. A 404 comes back as a
// not-found RequestError, not a hard failure.
func (c *Client) ReadFile(path string) (string, error) {
	const op = "ReadFile"

	resp, err := c.do("GET", c.webdavURL(path), nil, nil)
	if err != nil {
		return "", NewRequestError(op, 0, "request failed").WithPath(path).WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return "", NewRequestError(op, 404, "file not found").WithPath(path)
	}
	if err := c.checkResponse(resp, op); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewRequestError(op, 0, "failed to read response").WithPath(path).WithError(err)
	}

	return string(body), nil
}

// WriteFile creates or overwrites a file with the given content.
func (c *Client) WriteFile(path, content string) error {
	const op = "WriteFile"

	resp, err := c.do("PUT", c.webdavURL(path), strings.NewReader(content), nil)
	if err != nil {
		return NewRequestError(op, 0, "request failed").WithPath(path).WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	return c.checkResponse(resp, op)
}

// DeleteFile removes a file or directory.
func (c *Client) DeleteFile(path string) error {
	const op = "DeleteFile"

	resp, err := c.do("DELETE", c.webdavURL(path), nil, nil)
	if err != nil {
		return NewRequestError(op, 0, "request failed").WithPath(path).WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 404 {
		return NewRequestError(op, 404, "file not found").WithPath(path)
	}
	return c.checkResponse(resp, op, 200, 204)
}

// CreateDirectory creates a collection via MKCOL. A 405 means the
// directory already exists or the parent forbids it.
func (c *Client) CreateDirectory(path string) error {
	const op = "CreateDirectory"

	resp, err := c.do("MKCOL", c.webdavURL(path), nil, nil)
	if err != nil {
		return NewRequestError(op, 0, "request failed").WithPath(path).WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == 405 {
		return NewRequestError(op, 405, "directory already exists or not allowed").WithPath(path)
	}
	return c.checkResponse(resp, op, 201)
}
