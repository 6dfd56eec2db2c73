package tui

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rtype/rtypeadmin/internal/database/repository"
)

// ---- In-memory store ----

type memStore struct {
	mu      sync.Mutex
	players []repository.Player
	bans    []repository.Ban
	scores  []repository.Score
	nextBan int64
	listErr error
}

func newMemStore() *memStore { return &memStore{nextBan: 100} }

func (m *memStore) ListPlayers(context.Context) ([]repository.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.players), nil
}

func (m *memStore) PlayerByID(_ context.Context, id int64) (*repository.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.players {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memStore) DeletePlayer(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.players, func(p repository.Player) bool { return p.ID == id })
	if i < 0 {
		return repository.ErrNotFound
	}
	m.players = slices.Delete(m.players, i, i+1)
	return nil
}

func (m *memStore) ListBans(context.Context) ([]repository.Ban, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.bans), nil
}

func (m *memStore) InsertBan(_ context.Context, ip, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ip == "" {
		return repository.ErrEmptyIP
	}
	for _, b := range m.bans {
		if b.IPAddress == ip {
			return repository.ErrAlreadyBanned
		}
	}
	if reason == "" {
		reason = repository.DefaultBanReason
	}
	m.nextBan++
	m.bans = append(m.bans, repository.Ban{ID: m.nextBan, IPAddress: ip, BannedAt: "2026-01-01 00:00:00", Reason: reason})
	return nil
}

func (m *memStore) DeleteBan(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.bans, func(b repository.Ban) bool { return b.ID == id })
	if i < 0 {
		return repository.ErrNotFound
	}
	m.bans = slices.Delete(m.bans, i, i+1)
	return nil
}

func (m *memStore) ListScores(context.Context) ([]repository.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.scores), nil
}

func (m *memStore) DeleteScore(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.scores, func(s repository.Score) bool { return s.ID == id })
	if i < 0 {
		return repository.ErrNotFound
	}
	m.scores = slices.Delete(m.scores, i, i+1)
	return nil
}

func (m *memStore) setListErr(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

// ---- Driving screens ----

// execCmd runs cmd and flattens batches. Commands that do not return
// promptly (cursor blinks, ticks) are abandoned.
func execCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	var msg tea.Msg
	select {
	case msg = <-ch:
	case <-time.After(50 * time.Millisecond):
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, execCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// drain delivers everything cmd produces back to s until it goes quiet and
// returns the notices raised on the way.
func drain(t *testing.T, s Screen, cmd tea.Cmd) []Notice {
	t.Helper()
	var notices []Notice
	queue := execCmd(cmd)
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatalf("screen did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if n, ok := msg.(NoticeMsg); ok {
			notices = append(notices, Notice(n))
			continue
		}
		_, next, _ := s.Update(msg)
		queue = append(queue, execCmd(next)...)
	}
	return notices
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends keys to s one at a time, settling after each.
func press(t *testing.T, s Screen, keys ...string) []Notice {
	t.Helper()
	var notices []Notice
	for _, k := range keys {
		_, cmd, _ := s.Update(keyMsg(k))
		notices = append(notices, drain(t, s, cmd)...)
	}
	return notices
}

func loaded[R any](t *testing.T, s *TableScreen[R]) *TableScreen[R] {
	t.Helper()
	if notices := drain(t, s, s.Init()); len(notices) > 0 {
		t.Fatalf("unexpected notices on load: %+v", notices)
	}
	return s
}

func lastNotice(t *testing.T, notices []Notice) Notice {
	t.Helper()
	if len(notices) == 0 {
		t.Fatalf("expected a notice")
	}
	return notices[len(notices)-1]
}

func sampleStore() *memStore {
	st := newMemStore()
	st.players = []repository.Player{
		{ID: 1, Username: "nova", IPAddress: "1.2.3.4", CreatedAt: "2026-01-01 10:00:00", Online: true},
		{ID: 2, Username: "quasar", IPAddress: "5.6.7.8", CreatedAt: "2026-01-02 11:00:00"},
		{ID: 3, Username: "pulsar", IPAddress: "9.10.11.12", CreatedAt: "2026-01-03 12:00:00"},
	}
	st.bans = []repository.Ban{
		{ID: 10, IPAddress: "66.66.66.66", BannedAt: "2026-01-04 09:00:00", Reason: "Cheating"},
		{ID: 11, IPAddress: "77.77.77.77", BannedAt: "2026-01-05 09:00:00", Reason: repository.DefaultBanReason},
	}
	st.scores = []repository.Score{
		{ID: 20, PlayerID: 1, PlayerName: "nova", Score: 1200},
		{ID: 21, PlayerID: 2, PlayerName: "quasar", Score: 4800},
		{ID: 22, PlayerID: 3, PlayerName: "pulsar", Score: 1200},
		{ID: 23, PlayerID: 1, PlayerName: "nova", Score: 9000},
	}
	return st
}
