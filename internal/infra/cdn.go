package infra

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// CDNConfig points at the file storage service: writes go to the storage
// origin with an AccessKey header, public reads come from a separate
// read origin.
type CDNConfig struct {
	StorageURL string
	ReadURL    string
	AccessKey  string
}

func CDNConfigFromEnv() CDNConfig {
	return CDNConfig{
		StorageURL: os.Getenv("CDN_STORAGE_URL"),
		ReadURL:    os.Getenv("CDN_READ_URL"),
		AccessKey:  os.Getenv("CDN_ACCESS_KEY"),
	}
}

type CDNClient struct {
	cfg    CDNConfig
	client *http.Client
}

func NewCDNClient(cfg CDNConfig) *CDNClient {
	return &CDNClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Upload PUTs the file under path on the storage origin and returns the
// public read URL.
func (c *CDNClient) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	endpoint := c.storageEndpoint(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("AccessKey", c.cfg.AccessKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("cdn upload %s: status %d: %s", path, resp.StatusCode, string(raw))
	}

	return c.PublicURL(path), nil
}

func (c *CDNClient) Delete(ctx context.Context, path string) error {
	endpoint := c.storageEndpoint(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("AccessKey", c.cfg.AccessKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cdn delete %s: status %d: %s", path, resp.StatusCode, string(raw))
	}
	return nil
}

func (c *CDNClient) PublicURL(path string) string {
	return strings.TrimRight(c.cfg.ReadURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func (c *CDNClient) storageEndpoint(path string) string {
	return strings.TrimRight(c.cfg.StorageURL, "/") + "/" + strings.TrimLeft(path, "/")
}
