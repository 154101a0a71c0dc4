package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
)

// Smoke-tests a running API instance end to end: login as admin, create a
// lead, append a memo, pull the dashboard and download the leads report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found, using system environment")
	}

	base := os.Getenv("API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	fmt.Printf("🔄 Logging in as admin@company.com...\n")
	identity := post(base+"/auth/login", map[string]string{
		"email":    "admin@company.com",
		"password": "admin123",
	})
	fmt.Printf("   identity: %s\n\n", identity)

	fmt.Println("🔄 Creating a lead...")
	lead := post(base+"/leads", map[string]any{
		"company":      "Smoke Test Corp",
		"contact_name": "Sam Smoke",
		"email":        "sam@smoketest.example",
		"status":       "new",
		"source":       "website",
	})
	fmt.Printf("   lead: %s\n\n", lead)

	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal([]byte(lead), &created)

	fmt.Println("🔄 Appending a memo...")
	post(base+"/leads/"+created.ID+"/memos", map[string]string{
		"category": "general",
		"content":  "created by the smoke client",
	})

	fmt.Println("🔄 Fetching dashboard summary...")
	fmt.Printf("   %s\n\n", get(base+"/dashboard"))

	fmt.Println("🔄 Downloading leads report...")
	report := get(base + "/reports/leads.csv")
	fmt.Printf("   %d bytes of CSV\n", len(report))

	fmt.Println("✅ smoke run complete")
}

func post(url string, body any) string {
	raw, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		log.Fatalf("❌ POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Fatalf("❌ POST %s: %d %s", url, resp.StatusCode, out)
	}
	return string(out)
}

func get(url string) string {
	resp, err := http.Get(url)
	if err != nil {
		log.Fatalf("❌ GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		log.Fatalf("❌ GET %s: %d %s", url, resp.StatusCode, out)
	}
	return string(out)
}
