package calculator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	types "calc-api/internal/calculator/types"
	logger "calc-api/internal/logger"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{}}
}

// Health checks the liveness endpoint.
func (c *Client) Health() error {
	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Calculate posts the operands to /calc/<op> and decodes the result.
// Failure responses carry a message naming the specific problem; it is
// surfaced verbatim in the returned error.
func (c *Client) Calculate(a, b float64, op string) (*types.CalculationResponse, error) {
	payload, err := json.Marshal(types.Operands{A: &a, B: &b})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.baseURL+"/calc/"+op, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		logger.Errorf("Failed to reach server at %s: %v", c.baseURL, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			return nil, fmt.Errorf("calculation failed, status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("calculation failed: %s", errBody.Error)
	}

	var result types.CalculationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Errorf("Error decoding result JSON: %v", err)
		return nil, err
	}

	return &result, nil
}
