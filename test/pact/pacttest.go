//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	// ProviderName is this service; KioskConsumer is the self-service front end calling it.
	ProviderName  = "fastfood-api"
	KioskConsumer = "self-service-kiosk"

	// IdentityProvider and OrderServiceProvider are the services this API consumes.
	IdentityProvider     = "identity-service"
	OrderServiceProvider = "order-service"
)

const (
	StateMenuBaseline    = "a burger is on the menu"
	StateOrderExists     = "order pact-order exists"
	StateNoOrders        = "no orders placed"
	StateClientExists    = "client with cpf 12345678900 exists"
	StateClientMissing   = "no client with cpf 00000000000"
	StateIdentityAccepts = "identity service accepts new clients"
	StateCatalogAccepted = "order service accepts new products"
)

const (
	ExistingOrderID  = "pact-order"
	ExistingClientID = "pact-client"
	ExistingCPF      = "12345678900"
	MissingCPF       = "00000000000"
	BurgerID         = "pact-burger"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for a consumer/provider pair.
func PactFile(t testing.TB, consumer, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), consumer+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleBurger provides stable product data for pact interactions.
func ExampleBurger() map[string]any {
	return map[string]any{
		"id":          BurgerID,
		"name":        "X-Burger",
		"description": "Beef patty, cheese and bun",
		"price":       25.9,
		"category":    "BURGER",
	}
}

// ExampleClient provides stable client data for identity interactions.
func ExampleClient() map[string]any {
	return map[string]any{
		"id":   ExistingClientID,
		"name": "Pact Client",
		"cpf":  ExistingCPF,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
