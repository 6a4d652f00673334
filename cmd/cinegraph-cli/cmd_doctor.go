package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and connectivity",
		Long:  "Run diagnostic checks against config and server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

type checkResult struct {
	Name   string
	Passed bool
	Detail string
	Hint   string
}

func runDoctor() error {
	fmt.Println("\ncinegraph Doctor")
	fmt.Println("================")

	var results []checkResult

	// 1. Config file (optional).
	cfgPath, cfgErr := doctorConfigPath()
	if cfgErr != nil {
		results = append(results, checkResult{
			Name: "Config file", Passed: false,
			Detail: cfgPath,
			Hint:   fmt.Sprintf("Optional. Create %s with a url: entry to skip --url", cfgPath),
		})
	} else {
		results = append(results, checkResult{
			Name: "Config file", Passed: true,
			Detail: fmt.Sprintf("found (%s)", cfgPath),
		})
	}

	// 2. Server URL.
	url := doctorResolveURL()
	results = append(results, checkResult{
		Name: "Server URL", Passed: true, Detail: url,
	})

	// 3. Server reachable.
	ver, err := doctorCheckHealth(url)
	if err != nil {
		results = append(results, checkResult{
			Name: "Server reachable", Passed: false,
			Detail: url,
			Hint:   fmt.Sprintf("Is the cinegraph server running?\n   Error: %v", err),
		})
	} else {
		detail := url
		if ver != "" {
			detail = fmt.Sprintf("v%s", ver)
		}
		results = append(results, checkResult{
			Name: "Server reachable", Passed: true, Detail: detail,
		})
	}

	// 4. Graph store ready.
	if err == nil {
		if readyErr := doctorCheckReady(url); readyErr != nil {
			results = append(results, checkResult{
				Name: "Graph store", Passed: false,
				Hint: fmt.Sprintf("Server is up but Neo4j is unreachable. Error: %v", readyErr),
			})
		} else {
			results = append(results, checkResult{
				Name: "Graph store", Passed: true, Detail: "ready",
			})
		}
	}

	// Print results.
	fmt.Println()
	allPassed := true
	for _, r := range results {
		if r.Passed {
			if r.Detail != "" {
				fmt.Printf("✅ %s: %s\n", r.Name, r.Detail)
			} else {
				fmt.Printf("✅ %s\n", r.Name)
			}
		} else {
			allPassed = false
			if r.Detail != "" {
				fmt.Printf("❌ %s: %s\n", r.Name, r.Detail)
			} else {
				fmt.Printf("❌ %s\n", r.Name)
			}
			if r.Hint != "" {
				fmt.Printf("   Hint: %s\n", r.Hint)
			}
		}
	}

	fmt.Println()
	if allPassed {
		fmt.Println("✅ All checks passed!")
	} else {
		fmt.Println("❌ Some checks failed.")
		return fmt.Errorf("doctor found issues")
	}

	return nil
}

func doctorConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	cfgPath := filepath.Join(home, ".cinegraph", "config.yaml")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, err
	}
	return cfgPath, nil
}

func doctorResolveURL() string {
	url := flagURL
	if url == defaultURL {
		if v := os.Getenv("CINEGRAPH_URL"); v != "" {
			url = v
		}
	}
	return url
}

func doctorCheckHealth(url string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/health", nil)
	if err != nil {
		return "", err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var health struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", err
	}
	return health.Version, nil
}

func doctorCheckReady(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url+"/ready", nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
