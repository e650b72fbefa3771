package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// ParseConfig carries the connection settings for the Parse-compatible
// REST backend that owns all domain records.
type ParseConfig struct {
	BaseURL    string
	AppID      string
	RestAPIKey string
}

func ParseConfigFromEnv() ParseConfig {
	return ParseConfig{
		BaseURL:    os.Getenv("BACKEND_URL"),
		AppID:      os.Getenv("PARSE_APP_ID"),
		RestAPIKey: os.Getenv("PARSE_REST_API_KEY"),
	}
}

type ParseClient struct {
	cfg    ParseConfig
	client *http.Client
}

func NewParseClient(cfg ParseConfig) *ParseClient {
	return &ParseClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type CreateObjectResult struct {
	ObjectID  string `json:"objectId"`
	CreatedAt string `json:"createdAt"`
}

// CreateObject POSTs one object to /classes/<class> and returns the new
// objectId. Missing env configuration is not checked up front; the backend
// answers non-2xx and the caller surfaces a generic error.
func (p *ParseClient) CreateObject(ctx context.Context, class string, body interface{}) (CreateObjectResult, error) {
	var result CreateObjectResult

	payload, err := json.Marshal(body)
	if err != nil {
		return result, fmt.Errorf("marshal %s payload: %w", class, err)
	}

	endpoint := fmt.Sprintf("%s/classes/%s", p.cfg.BaseURL, class)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return result, err
	}
	p.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return result, fmt.Errorf("create %s: status %d: %s", class, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s response: %w", class, err)
	}
	return result, nil
}

// QueryObjects runs a where-constrained query against /classes/<class>
// and decodes the "results" array into out.
func (p *ParseClient) QueryObjects(ctx context.Context, class string, where map[string]interface{}, limit int, out interface{}) error {
	endpoint := fmt.Sprintf("%s/classes/%s", p.cfg.BaseURL, class)

	params := url.Values{}
	if len(where) > 0 {
		raw, err := json.Marshal(where)
		if err != nil {
			return fmt.Errorf("marshal where clause: %w", err)
		}
		params.Set("where", string(raw))
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint = endpoint + "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("query %s: status %d: %s", class, resp.StatusCode, string(raw))
	}

	envelope := struct {
		Results json.RawMessage `json:"results"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s results: %w", class, err)
	}
	return json.Unmarshal(envelope.Results, out)
}

// CallFunction invokes a cloud function under /functions/<name> and
// decodes its "result" field into out.
func (p *ParseClient) CallFunction(ctx context.Context, name string, params interface{}, out interface{}) error {
	payload, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshal %s params: %w", name, err)
	}

	endpoint := fmt.Sprintf("%s/functions/%s", p.cfg.BaseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	p.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("function %s: status %d: %s", name, resp.StatusCode, string(raw))
	}

	envelope := struct {
		Result json.RawMessage `json:"result"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s result: %w", name, err)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(envelope.Result, out)
}

func (p *ParseClient) setHeaders(req *http.Request) {
	req.Header.Set("X-Parse-Application-Id", p.cfg.AppID)
	req.Header.Set("X-Parse-REST-API-Key", p.cfg.RestAPIKey)
}
