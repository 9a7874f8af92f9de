package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetJSON faz um GET e decodifica o corpo em target
func GetJSON(ctx context.Context, client *http.Client, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Error on Request: %s status: %s body: %s", url, resp.Status, string(data))
	}

	return json.Unmarshal(data, target)
}
