package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/FrankGoortani/cv-mcp/sse"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

type watchFlags struct {
	APIKey    string
	Token     string
	MaxEvents int
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}
	cmd := &cobra.Command{
		Use:   "watch [url]",
		Short: "Watch a running server's session stream",
		Long: `Open an SSE session against a running server and show its events live.

Examples:
  cv-mcp watch                              # http://localhost:3001/sse
  cv-mcp watch https://cv.example.com       # /sse is appended
  cv-mcp watch http://localhost:3001/sse --api-key secret`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "http://localhost:3001"
			if len(args) == 1 {
				target = args[0]
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			body, err := openStream(ctx, target, flags)
			if err != nil {
				return err
			}
			defer body.Close()

			m := newWatchModel(target, sse.NewReader(body), flags.MaxEvents)
			p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				return fmt.Errorf("watch failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "Value for the x-api-key header")
	cmd.Flags().StringVar(&flags.Token, "token", "", "Bearer token for the Authorization header")
	cmd.Flags().IntVar(&flags.MaxEvents, "max-events", 20, "Number of recent events to display")
	return cmd
}

// streamURL appends /sse when target names no path.
func streamURL(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", target, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid url %q: scheme must be http or https", target)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/sse"
	}
	return u.String(), nil
}

func openStream(ctx context.Context, target string, flags *watchFlags) (io.ReadCloser, error) {
	u, err := streamURL(target)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	if flags.APIKey != "" {
		req.Header.Set("x-api-key", flags.APIKey)
	}
	if flags.Token != "" {
		req.Header.Set("Authorization", "Bearer "+flags.Token)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", u, err)
	}
	if res.StatusCode != http.StatusOK {
		defer res.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return nil, fmt.Errorf("connect %s: %s: %s", u, res.Status, strings.TrimSpace(string(msg)))
	}
	return res.Body, nil
}

type frameMsg sse.Frame

type streamEndMsg struct{ err error }

func nextFrame(r *sse.Reader) tea.Cmd {
	return func() tea.Msg {
		f, err := r.Next()
		if err != nil {
			return streamEndMsg{err: err}
		}
		return frameMsg(f)
	}
}

type eventLine struct {
	At      time.Time
	Event   string
	Summary string
}

// watchModel is the bubbletea state of one watched session.
type watchModel struct {
	target    string
	reader    *sse.Reader
	maxEvents int

	sessionID  string
	server     string
	tools      int
	heartbeats int
	lastBeat   string
	status     string
	events     []eventLine
	err        error
	now        func() time.Time
}

func newWatchModel(target string, r *sse.Reader, maxEvents int) watchModel {
	if maxEvents <= 0 {
		maxEvents = 20
	}
	return watchModel{
		target:    target,
		reader:    r,
		maxEvents: maxEvents,
		status:    "connecting",
		now:       time.Now,
	}
}

func (m watchModel) Init() tea.Cmd {
	return nextFrame(m.reader)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case frameMsg:
		m = m.apply(sse.Frame(msg))
		return m, nextFrame(m.reader)
	case streamEndMsg:
		m.status = "closed"
		if msg.err != nil && !errors.Is(msg.err, io.EOF) && !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
		return m, nil
	}
	return m, nil
}

func (m watchModel) apply(f sse.Frame) watchModel {
	line := eventLine{At: m.now(), Event: f.Event, Summary: string(f.Data)}
	switch sse.EventType(f.Event) {
	case sse.EventConnected:
		var c sse.Connected
		if json.Unmarshal(f.Data, &c) == nil {
			m.sessionID = c.SessionID
			m.status = c.Status
			line.Summary = "session " + c.SessionID
		}
	case sse.EventServerInfo:
		var info sse.ServerInfo
		if json.Unmarshal(f.Data, &info) == nil {
			m.server = info.Name + " " + info.Version
			m.tools = len(info.Tools)
			m.status = info.Status
			line.Summary = fmt.Sprintf("%s, %d tools, %d resources", m.server, len(info.Tools), len(info.Resources))
		}
	case sse.EventHeartbeat:
		var hb sse.Heartbeat
		if json.Unmarshal(f.Data, &hb) == nil {
			m.heartbeats = hb.Counter
			m.lastBeat = hb.Timestamp
			m.status = hb.Status
			line.Summary = fmt.Sprintf("#%d %s", hb.Counter, hb.Timestamp)
		}
	case sse.EventError:
		var e sse.ErrorPayload
		if json.Unmarshal(f.Data, &e) == nil {
			line.Summary = e.Message
		}
	}
	m.events = append(m.events, line)
	if len(m.events) > m.maxEvents {
		m.events = m.events[len(m.events)-m.maxEvents:]
	}
	return m
}

func (m watchModel) View() string {
	status := okStyle.Render(strings.ToUpper(m.status))
	if m.status == "closed" || m.err != nil {
		status = errorStyle.Render(strings.ToUpper(m.status))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		titleStyle.Render("cv-mcp watch"), "  ", mutedStyle.Render(m.target), "  ", status)

	info := fmt.Sprintf("Session: %s | Server: %s | Tools: %d | Heartbeats: %d",
		orDash(m.sessionID), orDash(m.server), m.tools, m.heartbeats)

	rows := []string{header, info, ruleStyle.Render(strings.Repeat("─", 60))}
	if len(m.events) == 0 {
		rows = append(rows, mutedStyle.Render("  Waiting for events..."))
	}
	for _, e := range m.events {
		rows = append(rows, fmt.Sprintf("%s  %-12s %s",
			mutedStyle.Render(e.At.Format("15:04:05")), nameStyle.Render(e.Event), truncate(e.Summary, 60)))
	}
	if m.err != nil {
		rows = append(rows, errorStyle.Render("Error: "+m.err.Error()))
	}
	rows = append(rows, ruleStyle.Render(strings.Repeat("─", 60)), mutedStyle.Render("[q] Quit"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
