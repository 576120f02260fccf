package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type loadConfig struct {
	targetHost   string
	serviceToken string
	rps          int
	duration     time.Duration
	seedUsers    int
}

type createUserRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	DiscordID   string `json:"discordId"`
	DiscordName string `json:"discordName"`
	IP          string `json:"ip"`
	ServerToken string `json:"server_token"`
}

type seededUser struct {
	UniqueID string `json:"uniqueid"`
	Username string `json:"username"`
}

var httpc = &http.Client{Timeout: 10 * time.Second}

func main() {
	cfg := loadConfig{}

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Seed the directory and run a read-heavy vegeta attack against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := seedData(cfg)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			runAttack(cfg, users)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfg.targetHost, "target", "http://localhost:4690", "service base URL")
	cmd.Flags().StringVar(&cfg.serviceToken, "service-token", os.Getenv("SERVICE_TOKEN"), "service token for seeding")
	cmd.Flags().IntVar(&cfg.rps, "rps", 50, "requests per second")
	cmd.Flags().DurationVar(&cfg.duration, "duration", time.Minute, "attack duration")
	cmd.Flags().IntVar(&cfg.seedUsers, "users", 200, "accounts to create before the attack")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func postJSON(target string, body any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, target, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}

// Seed
func seedData(cfg loadConfig) ([]seededUser, error) {
	log.Printf("Seeding: creating %d users...", cfg.seedUsers)

	run := time.Now().Unix()
	for i := 1; i <= cfg.seedUsers; i++ {
		status, err := postJSON(cfg.targetHost+"/users/create", createUserRequest{
			Username:    fmt.Sprintf("load_%d_%d", run, i),
			Email:       fmt.Sprintf("load%d.%d@example.com", run, i),
			DiscordID:   fmt.Sprintf("%d%04d", run, i),
			DiscordName: fmt.Sprintf("Load#%04d", i),
			IP:          fmt.Sprintf("10.%d.%d.%d", i/65536%256, i/256%256, i%256),
			ServerToken: cfg.serviceToken,
		})
		if err != nil {
			return nil, err
		}
		if status >= 400 {
			log.Printf("WARN users/create returned %d\n", status)
		}
	}

	resp, err := httpc.Get(cfg.targetHost + "/users/all?server_token=" + url.QueryEscape(cfg.serviceToken))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("users/all returned %d", resp.StatusCode)
	}

	var body struct {
		Users []seededUser `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Users) == 0 {
		return nil, fmt.Errorf("directory is empty after seeding")
	}

	log.Printf("Seed completed: users=%d\n", len(body.Users))
	return body.Users, nil
}

// Targeter
func makeTargeter(cfg loadConfig, users []seededUser) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		u := users[rand.Intn(len(users))]
		header := http.Header{
			"Accept": {"application/json"},
			"Cookie": {"id=" + u.UniqueID},
		}
		r := rand.Float64()

		// 60% GET users/me
		if r < 0.60 {
			t.Method = http.MethodGet
			t.URL = cfg.targetHost + "/users/me"
			t.Body = nil
			t.Header = header
			return nil
		}

		// 35% GET users/get по своему username
		if r < 0.95 {
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/get?search=username&id=%s", cfg.targetHost, url.QueryEscape(u.Username))
			t.Body = nil
			t.Header = header
			return nil
		}

		// 5% POST users/edit pc_hwid своей записи
		body, _ := json.Marshal(map[string]string{
			"uniqueid": u.UniqueID,
			"field":    "pc_hwid",
			"data":     fmt.Sprintf("HW-%d", time.Now().UnixNano()),
		})
		header.Set("Content-Type", "application/json")
		t.Method = http.MethodPost
		t.URL = cfg.targetHost + "/users/edit"
		t.Body = body
		t.Header = header
		return nil
	}
}

// Attack
func runAttack(cfg loadConfig, users []seededUser) {
	rate := vegeta.Rate{Freq: cfg.rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter(cfg, users)

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", cfg.targetHost, cfg.duration)
	for res := range attacker.Attack(targeter, rate, cfg.duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	for code, n := range metrics.StatusCodes {
		fmt.Printf("Status %s: %d\n", code, n)
	}
}
