// Package device talks to a GeekMagic display over its plain HTTP
// firmware API. The panel accepts image uploads via multipart POST and
// everything else through GET query parameters.
package device

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"
)

// APIError reports a non-success response from the panel firmware.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := e.Body
	if len(body) > 120 {
		body = body[:120] + "..."
	}
	return fmt.Sprintf("device: %s: status %d: %s", e.Op, e.StatusCode, body)
}

// SpaceInfo is the flash usage report from /space.json.
type SpaceInfo struct {
	Total int64 `json:"total"`
	Used  int64 `json:"used"`
	Free  int64 `json:"free"`
}

// Client drives one panel.
type Client struct {
	rc         *resty.Client
	uploadPath string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// WithUploadPath changes the on-device directory images land in.
func WithUploadPath(p string) Option {
	return func(c *Client) { c.uploadPath = p }
}

// New creates a client for the panel at host. A bare host gets the
// http scheme.
func New(host string, opts ...Option) *Client {
	base := host
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	c := &Client{
		rc:         resty.New().SetBaseURL(strings.TrimRight(base, "/")).SetTimeout(15 * time.Second),
		uploadPath: "/image/",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying transport.
func (c *Client) Close() error { return c.rc.Close() }

// Upload stores an image on the panel's flash without displaying it.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) error {
	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("dir", c.uploadPath).
		SetMultipartField("file", filename, "image/jpeg", bytes.NewReader(data)).
		Post("/doUpload")
	if err != nil {
		return fmt.Errorf("device: upload %s: %w", filename, err)
	}
	if res.IsError() {
		return &APIError{Op: "upload " + filename, StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}

// Display switches the panel to show a previously uploaded image.
func (c *Client) Display(ctx context.Context, filename string) error {
	return c.get(ctx, "display "+filename, "img", path.Join(c.uploadPath, filename))
}

// UploadAndDisplay uploads an image and immediately shows it. This is the
// normal per-frame path.
func (c *Client) UploadAndDisplay(ctx context.Context, filename string, data []byte) error {
	if err := c.Upload(ctx, filename, data); err != nil {
		return err
	}
	return c.Display(ctx, filename)
}

// SetBrightness adjusts the backlight, 0 to 100.
func (c *Client) SetBrightness(ctx context.Context, level int) error {
	if level < 0 || level > 100 {
		return fmt.Errorf("device: brightness %d out of range 0-100", level)
	}
	return c.get(ctx, "set brightness", "brt", strconv.Itoa(level))
}

// Delete removes a file from the panel's flash.
func (c *Client) Delete(ctx context.Context, filename string) error {
	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam("file", path.Join(c.uploadPath, filename)).
		Get("/delete")
	if err != nil {
		return fmt.Errorf("device: delete %s: %w", filename, err)
	}
	if res.IsError() {
		return &APIError{Op: "delete " + filename, StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}

// Space reports flash usage.
func (c *Client) Space(ctx context.Context) (SpaceInfo, error) {
	var info SpaceInfo
	res, err := c.rc.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/space.json")
	if err != nil {
		return SpaceInfo{}, fmt.Errorf("device: space: %w", err)
	}
	if res.IsError() {
		return SpaceInfo{}, &APIError{Op: "space", StatusCode: res.StatusCode(), Body: res.String()}
	}
	return info, nil
}

// Version returns the firmware version string from /v.json.
func (c *Client) Version(ctx context.Context) (string, error) {
	var out struct {
		Version string `json:"version"`
	}
	res, err := c.rc.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/v.json")
	if err != nil {
		return "", fmt.Errorf("device: version: %w", err)
	}
	if res.IsError() {
		return "", &APIError{Op: "version", StatusCode: res.StatusCode(), Body: res.String()}
	}
	return out.Version, nil
}

func (c *Client) get(ctx context.Context, op, param, value string) error {
	res, err := c.rc.R().
		SetContext(ctx).
		SetQueryParam(param, value).
		Get("/set")
	if err != nil {
		return fmt.Errorf("device: %s: %w", op, err)
	}
	if res.IsError() {
		return &APIError{Op: op, StatusCode: res.StatusCode(), Body: res.String()}
	}
	return nil
}
