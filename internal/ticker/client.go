package ticker

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

const snapshotPath = "/api/get-revenue"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Fetch busca o snapshot atual do servidor
func (c *Client) Fetch(ctx context.Context) (domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := utils.GetJSON(ctx, c.http, c.baseURL+snapshotPath, &snapshot); err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}
