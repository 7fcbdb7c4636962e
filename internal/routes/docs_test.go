package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ErkinAl/MuvTimeBack/internal/config"
	"github.com/gofiber/fiber/v2"
)

func TestDocsHiddenByDefault(t *testing.T) {
	app := fiber.New()
	RegisterDocs(app, &config.Config{AppEnv: "production", EnableDocs: false})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDocsHiddenOutsideDevelopmentEvenWhenEnabled(t *testing.T) {
	app := fiber.New()
	RegisterDocs(app, &config.Config{AppEnv: "production", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDocsListsStatsEndpointsInDevelopment(t *testing.T) {
	app := fiber.New()
	RegisterDocs(app, &config.Config{AppEnv: "development", EnableDocs: true})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Name      string `json:"name"`
		Endpoints []struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		} `json:"endpoints"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	found := false
	for _, endpoint := range body.Endpoints {
		if endpoint.Method == "POST" && endpoint.Path == "/api/v1/stats/:userId/update" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the stats update endpoint in the catalog, got %+v", body.Endpoints)
	}
}
