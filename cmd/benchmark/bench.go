package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"runtime"
	"sync"
	"time"

	"github.com/nulzo/agent-models/internal/adapters/cache/memory"
	"github.com/nulzo/agent-models/internal/config"
	"github.com/nulzo/agent-models/internal/core/services"
	"github.com/nulzo/agent-models/internal/server"
	"github.com/nulzo/agent-models/pkg/models"
	vegeta "github.com/tsenart/vegeta/v12/lib"
	"go.uber.org/zap"
)

const benchKey = "bench-key-12345"

func main() {
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 500, "Requests per second")
	missRatio := flag.Float64("miss-ratio", 0.1, "Share of requests for unknown aliases")
	chaos := flag.Bool("chaos", false, "Simulate random client disconnections")
	flag.Parse()

	srv := startApp()
	defer srv.Close()

	done := make(chan struct{})
	go monitorResources(done)

	fmt.Printf("Running alias benchmark: %s duration, %d req/s, %.0f%% misses\n", *duration, *rate, *missRatio*100)

	aliases := models.AliasNames()
	targeter := func(t *vegeta.Target) error {
		alias := aliases[rand.Intn(len(aliases))]
		if rand.Float64() < *missRatio {
			alias = "gpt4"
		}
		t.Method = http.MethodGet
		t.URL = srv.URL + "/v1/aliases/" + alias
		t.Header = http.Header{
			"Authorization": []string{"Bearer " + benchKey},
		}
		return nil
	}

	if *chaos {
		fmt.Println("CHAOS MODE ENABLED: Starting Chaos Monkey sidecar...")
		chaosConcurrency := *rate / 10
		if chaosConcurrency < 5 {
			chaosConcurrency = 5
		}
		if chaosConcurrency > 50 {
			chaosConcurrency = 50
		}
		go startChaosMonkey(srv.URL+"/v1/catalog", chaosConcurrency, done)
	}

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "Benchmark") {
		metrics.Add(res)
	}
	metrics.Close()

	close(done)

	fmt.Println("--------------------------------------------------")
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("Status codes:    ", metrics.StatusCodes)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		fmt.Println("Error Set (first 5 unique):")

		uniqueErrors := make(map[string]bool)
		count := 0
		for _, msg := range metrics.Errors {
			if !uniqueErrors[msg] && count < 5 {
				fmt.Println(msg)

				uniqueErrors[msg] = true
				count++
			}
		}
	}
}

// startApp serves the full middleware stack in-process.
func startApp() *httptest.Server {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.APIKeys = []string{benchKey}
	cfg.RateLimit.RequestsPerSecond = 100000
	cfg.RateLimit.Burst = 100000

	registry := services.NewRegistryService(zap.NewNop(), services.WithCache(memory.NewMemoryCache(), time.Minute))
	app, err := server.New(cfg, zap.NewNop(), registry, server.WithVersion("bench"))
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}
	return httptest.NewServer(app.Handler())
}

func startChaosMonkey(url string, concurrency int, done chan struct{}) {
	fmt.Printf("Starting Chaos Monkey with %d concurrent disrupters (random disconnects 1-20ms)\n", concurrency)
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			client := &http.Client{
				Transport: &http.Transport{
					MaxIdleConns:        100,
					MaxIdleConnsPerHost: 100,
				},
			}

			for {
				select {
				case <-done:
					return
				default:
					timeout := time.Duration(rand.Intn(20)+1) * time.Millisecond

					ctx, cancel := context.WithTimeout(context.Background(), timeout)
					req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
					req.Header.Set("Authorization", "Bearer "+benchKey)

					resp, err := client.Do(req)
					if err == nil {
						_ = resp.Body.Close()
					}
					cancel()

					time.Sleep(time.Duration(rand.Intn(50)) * time.Millisecond)
				}
			}
		}()
	}
	wg.Wait()
}

func monitorResources(done chan struct{}) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	fmt.Println("\n--- Resource Usage ---")
	fmt.Printf("% -10s % -10s % -10s % -10s\n", "Time", "Heap(MB)", "Alloc(MB)", "Goroutines")

	var mem runtime.MemStats
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			runtime.ReadMemStats(&mem)
			fmt.Printf("% -10s % -10.2f % -10.2f % -10d\n",
				time.Now().Format("15:04:05"),
				float64(mem.HeapInuse)/1024/1024,
				float64(mem.Alloc)/1024/1024,
				runtime.NumGoroutine(),
			)
		}
	}
}
