//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"

	pacttest "github.com/selfservice/fastfood-api/test/pact"
)

type kioskProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type kioskPaymentStatus struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
}

func TestKioskContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.KioskConsumer,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	burger := pacttest.ExampleBurger()
	productMatcher := matchers.Map{
		"id":          matchers.Like(burger["id"]),
		"name":        matchers.Like(burger["name"]),
		"description": matchers.Like(burger["description"]),
		"price":       matchers.Like(burger["price"]),
		"category":    matchers.S("BURGER"),
	}

	pact.AddInteraction().
		Given(pacttest.StateMenuBaseline).
		UponReceiving("a request for the burger menu").
		WithRequest("GET", "/products/category/BURGER").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.EachLike(productMatcher, 1))
		})

	pact.AddInteraction().
		Given(pacttest.StateNoOrders).
		UponReceiving("a request to place an order").
		WithRequest("POST", "/orders", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(matchers.Map{
				"clientId": matchers.Like(pacttest.ExistingClientID),
				"products": matchers.EachLike(productMatcher, 1),
			})
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"message": matchers.S("Success!")})
		})

	pact.AddInteraction().
		Given(pacttest.StateOrderExists).
		UponReceiving("a request for the payment status of an order").
		WithRequest("GET", "/orders/"+pacttest.ExistingOrderID+"/payment-status").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id":            matchers.S(pacttest.ExistingOrderID),
				"paymentStatus": matchers.Term("PENDING", "^(PENDING|APPROVED)$"),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		kiosk := &kioskClient{baseURL: mockBaseURL(config), http: &http.Client{Timeout: 10 * time.Second}}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var menu []kioskProduct
		if err := kiosk.do(ctx, http.MethodGet, "/products/category/BURGER", nil, http.StatusOK, &menu); err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if len(menu) == 0 {
			return fmt.Errorf("expected at least one burger")
		}

		order := map[string]any{"clientId": pacttest.ExistingClientID, "products": []map[string]any{burger}}
		var placed map[string]string
		if err := kiosk.do(ctx, http.MethodPost, "/orders", order, http.StatusCreated, &placed); err != nil {
			return fmt.Errorf("place order: %w", err)
		}

		var status kioskPaymentStatus
		if err := kiosk.do(ctx, http.MethodGet, "/orders/"+pacttest.ExistingOrderID+"/payment-status", nil, http.StatusOK, &status); err != nil {
			return fmt.Errorf("payment status: %w", err)
		}
		if status.ID != pacttest.ExistingOrderID {
			return fmt.Errorf("expected order %s, got %+v", pacttest.ExistingOrderID, status)
		}
		return nil
	})
	require.NoError(t, err)
}

type kioskClient struct {
	baseURL string
	http    *http.Client
}

func (c *kioskClient) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	var req *http.Request
	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
		}
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
