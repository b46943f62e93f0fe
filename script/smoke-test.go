package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// step is one request of the smoke scenario
type step struct {
	Name       string
	Method     string
	Path       string
	Body       map[string]any
	Auth       bool
	WantStatus int
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	fmt.Printf("Running smoke test against %s as %s\n\n", *baseURL, email)

	var token string

	steps := []step{
		{
			Name:   "register",
			Method: http.MethodPost,
			Path:   "/api/users/register",
			Body: map[string]any{
				"name":             "Smoke Tester",
				"email":            email,
				"password":         "password123",
				"confirm_password": "password123",
				"balance":          "100.00",
			},
			WantStatus: http.StatusCreated,
		},
		{
			Name:   "login",
			Method: http.MethodPost,
			Path:   "/api/users/login",
			Body: map[string]any{
				"email":    email,
				"password": "password123",
			},
			WantStatus: http.StatusOK,
		},
		{
			Name:   "add income",
			Method: http.MethodPost,
			Path:   "/api/transactions/addIncome",
			Body: map[string]any{
				"amount":  "500.00",
				"remarks": "Salary payment",
			},
			Auth:       true,
			WantStatus: http.StatusOK,
		},
		{
			Name:   "add expense",
			Method: http.MethodPost,
			Path:   "/api/transactions/addExpense",
			Body: map[string]any{
				"amount":  "100.00",
				"remarks": "Grocery shopping",
			},
			Auth:       true,
			WantStatus: http.StatusOK,
		},
		{
			Name:       "list transactions",
			Method:     http.MethodGet,
			Path:       "/api/transactions/",
			Auth:       true,
			WantStatus: http.StatusOK,
		},
		{
			Name:       "dashboard",
			Method:     http.MethodGet,
			Path:       "/api/users/dashboard",
			Auth:       true,
			WantStatus: http.StatusOK,
		},
	}

	failed := 0
	for _, s := range steps {
		body, err := runStep(client, *baseURL, s, token)
		if err != nil {
			fmt.Printf("FAIL %-18s %v\n", s.Name, err)
			failed++
			continue
		}

		// Capture the token for the authenticated steps
		if accessToken, ok := body["accessToken"].(string); ok && accessToken != "" {
			token = accessToken
		}

		fmt.Printf("ok   %-18s status=%v\n", s.Name, body["status"])
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d steps failed\n", failed, len(steps))
		os.Exit(1)
	}
	fmt.Printf("\nall %d steps passed\n", len(steps))
}

func runStep(client *http.Client, baseURL string, s step, token string) (map[string]any, error) {
	var reqBody io.Reader
	if s.Body != nil {
		data, err := json.Marshal(s.Body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(s.Method, baseURL+s.Path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Auth {
		if token == "" {
			return nil, fmt.Errorf("no access token captured yet")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != s.WantStatus {
		return nil, fmt.Errorf("status %d, want %d: %s", resp.StatusCode, s.WantStatus, raw)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return body, nil
}
