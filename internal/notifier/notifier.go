// Package notifier delivers rest cues to the eyerest-tray companion app,
// which draws the full-screen border outside the terminal.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/eyerest/internal/constants"
	"github.com/julianstephens/eyerest/internal/logger"
	"github.com/julianstephens/eyerest/internal/models"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// ErrTrayNotRunning is returned when no live tray process owns the lockfile.
var ErrTrayNotRunning = errors.New("eyerest-tray is not running")

// CuePayload is the JSON body the tray expects.
type CuePayload struct {
	Text        string `json:"text"`
	DurationMs  uint32 `json:"duration_ms"`
	AccentColor string `json:"accent_color"`
}

// Tray is an overlay presenter backed by the tray app. ShowOverlay returns
// immediately; delivery failures are logged, never reported to the caller.
type Tray struct {
	mu     sync.Mutex
	accent models.AccentColor
	client *http.Client
	wg     sync.WaitGroup
}

func NewTray(accent models.AccentColor) *Tray {
	return &Tray{
		accent: accent,
		client: &http.Client{Timeout: constants.NotifyTimeout},
	}
}

// SetAccent changes the border color used for later cues.
func (t *Tray) SetAccent(accent models.AccentColor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.accent = accent
}

// ShowOverlay asks the tray to show the cue for durationSeconds.
func (t *Tray) ShowOverlay(durationSeconds float64) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.Send(durationSeconds); err != nil {
			logger.Warn("Failed to deliver rest cue to tray", "error", err)
		}
	}()
}

// Wait blocks until every cue started by ShowOverlay was delivered or failed.
func (t *Tray) Wait() {
	t.wg.Wait()
}

// Send delivers one cue synchronously, retrying transient failures.
func (t *Tray) Send(durationSeconds float64) error {
	port, secret, err := Locate()
	if err != nil {
		return err
	}

	t.mu.Lock()
	accent := t.accent
	t.mu.Unlock()

	payload := CuePayload{
		Text:        constants.CueMessage,
		DurationMs:  durationMs(durationSeconds),
		AccentColor: string(accent),
	}

	var lastErr error
	for attempt := 1; attempt <= constants.NotifyMaxRetries; attempt++ {
		if lastErr = sendCue(t.client, port, secret, payload); lastErr == nil {
			logger.Debug("Rest cue delivered", "attempt", attempt, "duration_ms", payload.DurationMs)
			return nil
		}
		if attempt < constants.NotifyMaxRetries {
			time.Sleep(constants.NotifyRetryDelay)
		}
	}
	return fmt.Errorf("after %d attempts: %w", constants.NotifyMaxRetries, lastErr)
}

func durationMs(seconds float64) uint32 {
	d := time.Duration(seconds * float64(time.Second))
	if !(d >= constants.MinOverlayVisible) {
		d = constants.MinOverlayVisible
	}
	return uint32(d.Milliseconds())
}

// Locate finds the running tray app and returns its port and shared secret.
func Locate() (string, string, error) {
	dir, err := GetTrayAppConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateTrayProcess(filepath.Join(dir, constants.NotifierLockfileName))
}

// GetTrayAppConfigDir returns where the tray app keeps its lockfile. The tray
// may point it elsewhere through lockfile_dir in its settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(trayConfigDir, "settings.json"))
	if err != nil {
		return trayConfigDir, nil
	}
	var store struct {
		Settings struct {
			LockfileDir *string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &store); err != nil {
		logger.Debug("Ignoring unreadable tray settings", "error", err)
		return trayConfigDir, nil
	}
	if dir := store.Settings.LockfileDir; dir != nil && *dir != "" {
		return *dir, nil
	}
	return trayConfigDir, nil
}

// findAndValidateTrayProcess parses a "port|pid|secret" lockfile and checks
// the pid still belongs to the tray executable.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	if port == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", fmt.Errorf("%w (stale lockfile for PID %d)", ErrTrayNotRunning, pid)
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutablePrefix, process.Executable())
	}

	return port, secret, nil
}

func sendCue(client *http.Client, port, secret string, payload CuePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, "http://127.0.0.1:"+port, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.NotifierSecretHeader, secret)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("tray rejected cue with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
