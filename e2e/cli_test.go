package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinkergames/tinkerdeck/internal/api"
	"github.com/tinkergames/tinkerdeck/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "tinkerdeck-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tinkerdeck")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	projectRoot := findProjectRoot(t)
	err = app.CatalogService.LoadFromFile(context.Background(), filepath.Join(projectRoot, "data/catalog.yaml"))
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		CatalogService:    app.CatalogService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type stickerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type slotResponse struct {
	Index    int              `json:"index"`
	Occupant *stickerResponse `json:"occupant"`
}

type cardResponse struct {
	ID           string         `json:"id"`
	InstanceID   string         `json:"instance_id"`
	Name         string         `json:"name"`
	Race         string         `json:"race"`
	Slots        []slotResponse `json:"slots"`
	Power        int            `json:"power"`
	Construction int            `json:"construction"`
	Invention    int            `json:"invention"`
}

type sessionStateResponse struct {
	ID              string         `json:"id"`
	Hand            []cardResponse `json:"hand"`
	HandLimit       int            `json:"hand_limit"`
	DrawPileSize    int            `json:"draw_pile_size"`
	DiscardPileSize int            `json:"discard_pile_size"`
	Resources       struct {
		Power        int `json:"power"`
		Construction int `json:"construction"`
		Invention    int `json:"invention"`
	} `json:"resources"`
}

type drawResultResponse struct {
	Drawn    int `json:"drawn"`
	HandSize int `json:"hand_size"`
}

type healthResponse struct {
	Status string `json:"status"`
}

func TestCLIHealth(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var health healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &health))
	assert.Equal(t, "ok", health.Status)
}

func TestCLICatalog(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("catalog", "cards")
	require.NoError(t, err, "output: %s", output)

	var cards []struct {
		ID           string `json:"id"`
		MaxSlotCount int    `json:"max_slot_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &cards))
	assert.Len(t, cards, 5)

	output, err = cli.run("catalog", "stickers")
	require.NoError(t, err, "output: %s", output)

	var stickers []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &stickers))
	assert.Len(t, stickers, 7)
}

func TestCLISessionLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	// Create a session
	output, err := cli.run("session", "create", "card-soldier,card-soldier,card-mason", "--hand-limit", "2")
	require.NoError(t, err, "output: %s", output)

	var state sessionStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	require.NotEmpty(t, state.ID)
	assert.Equal(t, 3, state.DrawPileSize)
	sessionID := state.ID

	// Draw up to the limit
	output, err = cli.run("session", "draw", sessionID)
	require.NoError(t, err, "output: %s", output)

	var drawResult drawResultResponse
	require.NoError(t, json.Unmarshal([]byte(output), &drawResult))
	assert.Equal(t, 2, drawResult.Drawn)

	// Play the first hand card
	output, err = cli.run("session", "play", sessionID, "0")
	require.NoError(t, err, "output: %s", output)

	var played cardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &played))
	assert.NotEmpty(t, played.InstanceID)

	// Session state reflects the played resources
	output, err = cli.run("session", "get", sessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Len(t, state.Hand, 1)
	totals := state.Resources.Power + state.Resources.Construction + state.Resources.Invention
	assert.Greater(t, totals, 0)

	// Discard and recycle
	output, err = cli.run("session", "discard", sessionID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "recycle", sessionID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "get", sessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Empty(t, state.Hand)
	assert.Equal(t, 0, state.DiscardPileSize)
	assert.Equal(t, 2, state.DrawPileSize)

	// Raise the hand limit and draw again
	output, err = cli.run("session", "limit", sessionID, "5")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "draw", sessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &drawResult))
	assert.Equal(t, 2, drawResult.Drawn)

	// Delete the session
	output, err = cli.run("session", "delete", sessionID)
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("session", "get", sessionID)
	assert.Error(t, err)
}

func TestCLIApplySticker(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("session", "create", "card-apprentice", "--hand-limit", "1")
	require.NoError(t, err, "output: %s", output)

	var state sessionStateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	sessionID := state.ID

	output, err = cli.run("session", "draw", sessionID)
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "get", sessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	require.Len(t, state.Hand, 1)
	instanceID := state.Hand[0].InstanceID

	output, err = cli.run("session", "sticker", sessionID, instanceID, "st-blueprint", "--slot", "1")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("session", "get", sessionID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &state))
	assert.Equal(t, 3, state.Hand[0].Invention)
	require.NotNil(t, state.Hand[0].Slots[1].Occupant)
	assert.Equal(t, "st-blueprint", state.Hand[0].Slots[1].Occupant.ID)
}
