// Package huffclient talks to the session HTTP API.
package huffclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"huffman_codec_go/pkg/huffpack"
)

// request bodies
type ReqPayload interface {
	CreatePayload | DecodePayload
}
type CreatePayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}
type DecodePayload struct {
	Bits string `json:"bits"`
}

// response bodies
type Session struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Total       int       `json:"total"`
	Encoded     bool      `json:"encoded"`
	InOrder     string    `json:"inorder"`
	Frequencies []struct {
		Char  string `json:"char"`
		Count int    `json:"count"`
	} `json:"frequencies"`
	Codes []struct {
		Char string `json:"char"`
		Code string `json:"code"`
	} `json:"codes"`
}

type Encoded struct {
	Bits     string `json:"bits"`
	BitCount int    `json:"bit_count"`
	Packed   []byte `json:"packed"`
	Checksum string `json:"checksum"`
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("huffclient: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1/sessions",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	return data, nil
}

func doRequest[T ReqPayload](ctx context.Context, c *Client, path string, payload T) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(b))
}

func decodeInto[V any](data []byte, err error) (*V, error) {
	if err != nil {
		return nil, err
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("huffclient: bad response: %w", err)
	}
	return &v, nil
}

func (c *Client) CreateSession(ctx context.Context, name, text string) (*Session, error) {
	return decodeInto[Session](doRequest(ctx, c, "", CreatePayload{Name: name, Text: text}))
}

func (c *Client) GetSession(ctx context.Context, id string) (*Session, error) {
	return decodeInto[Session](c.do(ctx, http.MethodGet, "/"+id, nil))
}

func (c *Client) Encode(ctx context.Context, id string) (*Encoded, error) {
	return decodeInto[Encoded](c.do(ctx, http.MethodPost, "/"+id+"/encode", nil))
}

type decodedText struct {
	Text string `json:"text"`
}

// Decode decodes bits against the session's tree. An empty bits string is an
// empty stream and decodes to "".
func (c *Client) Decode(ctx context.Context, id, bits string) (string, error) {
	out, err := decodeInto[decodedText](doRequest(ctx, c, "/"+id+"/decode", DecodePayload{Bits: bits}))
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

// DecodeOwn decodes the session's own encoded stream.
func (c *Client) DecodeOwn(ctx context.Context, id string) (string, error) {
	out, err := decodeInto[decodedText](c.do(ctx, http.MethodPost, "/"+id+"/decode", nil))
	if err != nil {
		return "", err
	}
	return out.Text, nil
}

// DownloadText fetches the session archive and unpacks it locally.
func (c *Client) DownloadText(ctx context.Context, id string) (string, error) {
	data, err := c.do(ctx, http.MethodGet, "/"+id+"/archive", nil)
	if err != nil {
		return "", err
	}
	text, err := huffpack.UnpackBytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to unpack data: %w", err)
	}
	return text, nil
}
