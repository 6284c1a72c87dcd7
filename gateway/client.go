package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tavolo-app/backend/utils"
)

// ClientConfig holds the hosted record-store settings.
type ClientConfig struct {
	BaseURL   string
	ProjectID string
	APIKey    string
}

// Client talks to the hosted record store over HTTP. All entity data lives
// there; this process keeps no copy between calls.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClientFromEnv builds a Client from environment variables.
func NewClientFromEnv() *Client {
	cfg := &ClientConfig{
		BaseURL:   os.Getenv("RECORDS_API_URL"),
		ProjectID: os.Getenv("RECORDS_PROJECT_ID"),
		APIKey:    os.Getenv("RECORDS_API_KEY"),
	}

	if cfg.BaseURL == "" {
		utils.ErrorLogger.Println("WARNING: RECORDS_API_URL is empty, using default sandbox URL")
		cfg.BaseURL = "https://sandbox.records.tavolo.app"
	}

	return NewClient(cfg)
}

func NewClient(cfg *ClientConfig) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidateConfig checks that the required settings are present.
func (cl *Client) ValidateConfig() error {
	if cl.config.BaseURL == "" {
		return fmt.Errorf("RECORDS_API_URL is not set")
	}
	if cl.config.ProjectID == "" {
		return fmt.Errorf("RECORDS_PROJECT_ID is not set")
	}
	if cl.config.APIKey == "" {
		return fmt.Errorf("RECORDS_API_KEY is not set")
	}
	return nil
}

func (cl *Client) FetchRecords(entity string, req FetchRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/records/%s/fetch", cl.config.BaseURL, cl.config.ProjectID, entity)
	return cl.post(url, req)
}

func (cl *Client) GetRecordByID(entity string, id int, req FetchRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/records/%s/%d", cl.config.BaseURL, cl.config.ProjectID, entity, id)
	return cl.post(url, req)
}

func (cl *Client) CreateRecord(entity string, req WriteRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/records/%s", cl.config.BaseURL, cl.config.ProjectID, entity)
	return cl.post(url, req)
}

func (cl *Client) UpdateRecord(entity string, req WriteRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/records/%s/update", cl.config.BaseURL, cl.config.ProjectID, entity)
	return cl.post(url, req)
}

func (cl *Client) DeleteRecord(entity string, req DeleteRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/records/%s/delete", cl.config.BaseURL, cl.config.ProjectID, entity)
	return cl.post(url, req)
}

func (cl *Client) InvokeFunction(functionID string, req FunctionRequest) (*Response, error) {
	url := fmt.Sprintf("%s/v1/projects/%s/functions/%s", cl.config.BaseURL, cl.config.ProjectID, functionID)
	return cl.post(url, req)
}

func (cl *Client) post(url string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %v", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+cl.config.APIKey)

	resp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("record store returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope Response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("error parsing response: %v", err)
	}

	return &envelope, nil
}
