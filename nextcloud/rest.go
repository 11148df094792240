package nextcloud

import (
	"bytes"
	"encoding/json"
	"io"
)

// doJSON issues one REST request with an optional JSON payload and
// decodes the JSON response into out when out is non-nil. Mutating
// calls go out exactly once; there is no retry.
func (c *Client) doJSON(op, method, url string, payload, out any) error {
	var body io.Reader
	var headers map[string]string

	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return NewRequestError(op, 0, "failed to encode request").WithError(err)
		}
		body = bytes.NewReader(data)
		headers = map[string]string{"Content-Type": "application/json"}
	}

	resp, err := c.do(method, url, body, headers)
	if err != nil {
		return NewRequestError(op, 0, "request failed").WithError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkResponse(resp, op); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewRequestError(op, 0, "failed to read response").WithError(err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewRequestError(op, 0, "malformed JSON response").WithError(err)
	}

	return nil
}
