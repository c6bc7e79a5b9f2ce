package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGuestOrderLifecycle drives a running stack through the gateway. It needs
// the example seed provisioned and QRDINE_E2E_URL pointing at the gateway.
func TestGuestOrderLifecycle(t *testing.T) {
	baseURL := os.Getenv("QRDINE_E2E_URL")
	if baseURL == "" {
		t.Skip("QRDINE_E2E_URL not set")
	}
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar, Timeout: 10 * time.Second}

	call := func(method, path string, body any, out any) int {
		t.Helper()
		var payload bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&payload).Encode(body))
		}
		req, err := http.NewRequest(method, baseURL+path, &payload)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		if out != nil && resp.StatusCode < 300 {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	var menu struct {
		Categories []struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"categories"`
		Tables []struct {
			QRSlug string `json:"qrSlug"`
		} `json:"tables"`
	}
	require.Equal(t, http.StatusOK, call("GET", "/api/hotels/aurora-grand", nil, &menu))
	require.NotEmpty(t, menu.Categories)
	require.NotEmpty(t, menu.Categories[0].Items)
	require.NotEmpty(t, menu.Tables)

	var created struct {
		OrderID string `json:"orderId"`
		Status  string `json:"status"`
	}
	require.Equal(t, http.StatusCreated, call("POST", "/api/orders", map[string]any{
		"hotelSlug": "aurora-grand",
		"tableSlug": menu.Tables[0].QRSlug,
		"items":     []map[string]any{{"menuItemId": menu.Categories[0].Items[0].ID, "quantity": 2}},
	}, &created))
	assert.Equal(t, "PENDING", created.Status)

	assert.Equal(t, http.StatusUnauthorized, call("PATCH", "/api/orders/"+created.OrderID, map[string]string{"status": "COMPLETED"}, nil))
	require.Equal(t, http.StatusOK, call("POST", "/api/auth/login", map[string]string{"slug": "aurora-grand", "pin": "4821"}, nil))
	require.Equal(t, http.StatusOK, call("PATCH", "/api/orders/"+created.OrderID, map[string]string{"status": "COMPLETED"}, nil))

	require.Equal(t, http.StatusCreated, call("POST", "/api/orders/"+created.OrderID+"/rating", map[string]any{"score": 5}, nil))
	assert.Equal(t, http.StatusConflict, call("POST", "/api/orders/"+created.OrderID+"/rating", map[string]any{"score": 1}, nil))

	var metrics struct {
		Analytics struct {
			TotalOrders int `json:"totalOrders"`
			ReviewCount int `json:"reviewCount"`
		} `json:"analytics"`
	}
	require.Equal(t, http.StatusOK, call("GET", "/api/dashboard/aurora-grand/metrics", nil, &metrics))
	assert.GreaterOrEqual(t, metrics.Analytics.TotalOrders, 1)
	assert.GreaterOrEqual(t, metrics.Analytics.ReviewCount, 1)

	assert.Equal(t, http.StatusForbidden, call("GET", "/api/dashboard/coastal-breeze/metrics", nil, nil))
}
