// Command pipeline is a CLI demo entry: it runs the five-stage
// enrichment pipeline for a single (MPN, manufacturer) pair read from
// argv and prints the resulting FinalResult, grounded on the teacher's
// report-printing style in its own cmd/pipeline/main.go.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Zareef13/Partly-MVP-V1/pkg/core/crawler"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/discovery"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/llm"
	"github.com/Zareef13/Partly-MVP-V1/pkg/core/pipeline"
)

const defaultSearchEndpoint = "https://google.serper.dev/search"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, assuming environment variables are set.")
	}

	mpn := "M1-1120-3"
	manufacturer := "Acme"
	if len(os.Args) >= 3 {
		mpn = os.Args[1]
		manufacturer = os.Args[2]
	}

	searchKey := os.Getenv("SEARCH_API_KEY")
	if searchKey == "" {
		log.Fatal("Error: SEARCH_API_KEY is not set.")
	}
	searchEndpoint := os.Getenv("SEARCH_API_ENDPOINT")
	if searchEndpoint == "" {
		searchEndpoint = defaultSearchEndpoint
	}

	orch := &pipeline.Orchestrator{
		SearchClient: discovery.NewHTTPSearchClient(searchEndpoint, searchKey),
		BrowserPool:  crawler.NewBrowserPool(),
		LLMProvider:  &llm.GeminiProvider{},
		Tenant:       os.Getenv("TENANT_ID"),
		Verbose:      true,
	}
	defer orch.BrowserPool.Close()

	fmt.Printf("Enriching %s (%s)...\n", mpn, manufacturer)

	result, err := orch.RunForProduct(context.Background(), mpn, manufacturer)
	if err != nil {
		log.Fatalf("pipeline failed: %v", err)
	}

	if !result.Usable {
		fmt.Printf("Result not usable (confidence %.2f): %s\n", result.Confidence, result.FailureReason)
		return
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal result: %v", err)
	}
	fmt.Println(string(out))
}
