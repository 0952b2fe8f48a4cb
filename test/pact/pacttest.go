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
	ProviderName = "dealership-api"
	ConsumerName = "dealer-portal"

	StateSalesBaseline = "sales baseline"
	StateSaleExists    = "sale with id 1 exists"
	StateSaleMissing   = "no sale with id 404"
)

const (
	ExistingSaleID int64 = 1
	MissingSaleID  int64 = 404
)

const (
	exampleSaleNumber = "S-PACT-0001"
	exampleSaleDate   = "2024-06-12T10:00:00Z"
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

// PactFile returns the canonical pact file path for the dealer portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
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

// ExampleSalePayload provides stable test data for pact interactions.
func ExampleSalePayload() map[string]any {
	return map[string]any{
		"saleNumber":    exampleSaleNumber,
		"customerId":    1,
		"employeeId":    1,
		"saleDate":      exampleSaleDate,
		"status":        "COMPLETED",
		"total":         1950.00,
		"paymentMethod": "CASH",
		"details": []map[string]any{
			{
				"motorcycleId": 1,
				"quantity":     2,
				"unitPrice":    1000.00,
				"discount":     50.00,
			},
		},
	}
}

// ExampleCustomerPayload provides the customer the example sale points at.
func ExampleCustomerPayload() map[string]any {
	return map[string]any{
		"firstName":      "Laura",
		"lastName":       "Gomez",
		"email":          "laura.gomez@example.pact",
		"phone":          "3001234567",
		"documentNumber": "CC-100200300",
		"documentType":   "CEDULA",
	}
}

// ExampleEmployeePayload provides the employee the example sale points at.
func ExampleEmployeePayload() map[string]any {
	return map[string]any{
		"firstName": "Carlos",
		"lastName":  "Ruiz",
		"email":     "carlos.ruiz@example.pact",
		"jobTitle":  "Sales Advisor",
	}
}

// ExampleMotorcyclePayload provides the motorcycle the example line points at.
func ExampleMotorcyclePayload() map[string]any {
	return map[string]any{
		"code":  "YAM-MT07",
		"name":  "MT-07",
		"brand": "Yamaha",
		"type":  "STANDARD",
		"price": 1000.00,
		"stock": 5,
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
