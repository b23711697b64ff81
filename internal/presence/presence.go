//go:build !android && !ios

// Package presence publishes the playing file as Discord Rich Presence.
package presence

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/hugolgst/rich-go/client"
)

// ErrDisabled is returned by Connect when no application ID is configured.
var ErrDisabled = errors.New("presence disabled: no application id")

const reconnectCooldown = 2 * time.Second

type Client struct {
	appID string

	mu          sync.Mutex
	connected   bool
	lastPath    string
	startTime   time.Time
	lastAttempt time.Time
}

func New(appID string) *Client { return &Client{appID: appID} }

func (c *Client) Connect() error {
	if c.appID == "" {
		return ErrDisabled
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		return nil
	}
	c.lastAttempt = time.Now()
	if err := client.Login(c.appID); err != nil {
		return fmt.Errorf("discord login: %w", err)
	}
	c.connected = true
	return nil
}

// Update shows path as the current item. While disconnected it retries the
// login at most every couple of seconds and otherwise drops the update.
func (c *Client) Update(path string, paused bool) error {
	if c.appID == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected && !c.reconnectLocked() {
		return nil
	}
	if c.lastPath != path {
		c.lastPath = path
		c.startTime = time.Now()
	}
	err := client.SetActivity(activityFor(path, paused, c.startTime))
	if err == nil {
		return nil
	}
	if !brokenPipe(err) {
		return fmt.Errorf("set activity: %w", err)
	}
	client.Logout()
	c.connected = false
	if c.reconnectLocked() {
		return client.SetActivity(activityFor(path, paused, c.startTime))
	}
	return nil
}

func (c *Client) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastPath = ""
	if !c.connected {
		return nil
	}
	if err := client.SetActivity(client.Activity{}); err != nil {
		if brokenPipe(err) {
			client.Logout()
			c.connected = false
			return nil
		}
		return err
	}
	return nil
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connected {
		client.Logout()
		c.connected = false
	}
}

func (c *Client) reconnectLocked() bool {
	if time.Since(c.lastAttempt) < reconnectCooldown || !ipcAvailable() {
		return false
	}
	c.lastAttempt = time.Now()
	if err := client.Login(c.appID); err != nil {
		return false
	}
	c.connected = true
	return true
}

func activityFor(path string, paused bool, start time.Time) client.Activity {
	base := filepath.Base(path)
	a := client.Activity{
		Details:    strings.TrimSuffix(base, filepath.Ext(base)),
		State:      filepath.Base(filepath.Dir(path)),
		LargeImage: "pickplay",
		LargeText:  "pickplay",
		Timestamps: &client.Timestamps{Start: &start},
		SmallImage: "play",
		SmallText:  "Playing",
	}
	if paused {
		a.SmallImage = "pause"
		a.SmallText = "Paused"
	}
	return a
}

func brokenPipe(err error) bool {
	s := strings.ToLower(err.Error())
	for _, frag := range []string{"broken pipe", "use of closed network connection", "connection reset", "eof"} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}

// ipcAvailable looks for a Discord IPC socket that accepts connections.
func ipcAvailable() bool {
	var pattern string
	switch runtime.GOOS {
	case "linux":
		pattern = filepath.Join(fmt.Sprintf("/run/user/%d", os.Getuid()), "discord-ipc-*")
	case "darwin":
		pattern = "/tmp/discord-ipc-*"
	default:
		return true
	}
	matches, _ := filepath.Glob(pattern)
	for _, m := range matches {
		if conn, err := net.DialTimeout("unix", m, 200*time.Millisecond); err == nil {
			_ = conn.Close()
			return true
		}
	}
	return false
}
