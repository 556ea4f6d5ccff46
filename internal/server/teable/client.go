// Package teable is a thin HTTP client for the spreadsheet-as-database
// service used as the system of record for accounts, activity stats and
// the course/trip catalog.
//
// Only three calls are consumed: list records, create record and create
// table. Every transport error, HTTP error status or malformed body is
// returned as an error scoped to the current request.
package teable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Record is a single row of a table. Fields are keyed by column name.
type Record struct {
	ID     string         `json:"id,omitempty"`
	Fields map[string]any `json:"fields"`
}

// FieldSpec describes one column of a table being created.
type FieldSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StatusError is returned when the upstream responds with a non-2xx
// status. Handlers that need to propagate the upstream status verbatim
// can recover it with errors.As.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a client for the record store API rooted at baseURL
// (e.g. "https://app.teable.io/api"). The timeout bounds every call; there
// are no retries.
func NewClient(baseURL string, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method string, path string, payload any, out any) error {

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("malformed upstream response: %w", err)
		}
	}

	return nil
}

// recordList tolerates both the flat shape {records:[...]} and the
// {data:{records:[...]}} wrapper the live API uses on some endpoints.
type recordList struct {
	Records []Record `json:"records"`
	Data    struct {
		Records []Record `json:"records"`
	} `json:"data"`
}

func (l *recordList) records() []Record {
	if len(l.Records) > 0 {
		return l.Records
	}
	return l.Data.Records
}

// ListRecords returns all rows of the given table.
func (c *Client) ListRecords(ctx context.Context, tableID string) ([]Record, error) {
	var list recordList
	if err := c.do(ctx, http.MethodGet, "/table/"+tableID+"/record", nil, &list); err != nil {
		return nil, err
	}
	return list.records(), nil
}

// CreateRecord appends one row to the given table. Field values are sent
// with typecast enabled so numeric columns accept string input.
func (c *Client) CreateRecord(ctx context.Context, tableID string, fields map[string]any) (*Record, error) {

	payload := map[string]any{
		"fieldKeyType": "name",
		"typecast":     true,
		"records":      []map[string]any{{"fields": fields}},
	}

	var list recordList
	if err := c.do(ctx, http.MethodPost, "/table/"+tableID+"/record", payload, &list); err != nil {
		return nil, err
	}

	created := list.records()
	if len(created) == 0 {
		// Some deployments return an empty body on create; echo the input.
		return &Record{Fields: fields}, nil
	}
	return &created[0], nil
}

type tableCreated struct {
	ID   string `json:"id"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CreateTable provisions a new table under the given base and returns its
// id. An empty id in a 2xx response is reported to the caller as-is; the
// service layer treats it as a provisioning failure.
func (c *Client) CreateTable(ctx context.Context, baseID string, name string, fields []FieldSpec) (string, error) {

	payload := map[string]any{
		"name":   name,
		"fields": fields,
	}

	var created tableCreated
	if err := c.do(ctx, http.MethodPost, "/base/"+baseID+"/table", payload, &created); err != nil {
		return "", err
	}

	if created.ID != "" {
		return created.ID, nil
	}
	return created.Data.ID, nil
}
