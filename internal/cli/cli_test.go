package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/dshills/tickloop/internal/config"
	"github.com/dshills/tickloop/internal/demo"
	"github.com/dshills/tickloop/internal/input/mouse"
	"github.com/dshills/tickloop/internal/renderer/backend"
)

// scriptedBackends hands out prepared null backends, one per run.
type scriptedBackends struct {
	backends []*backend.NullBackend
	next     int
}

func (s *scriptedBackends) newBackend() (backend.Backend, error) {
	if s.next >= len(s.backends) {
		return nil, errors.New("no more backends")
	}
	b := s.backends[s.next]
	s.next++
	return b, nil
}

func testEnv(out *bytes.Buffer, tty bool, backends *scriptedBackends) env {
	if backends == nil {
		backends = &scriptedBackends{}
	}
	return env{
		stdout:     out,
		stderr:     out,
		isTerminal: func() bool { return tty },
		newBackend: backends.newBackend,
		notify:     func(chan<- os.Signal) func() { return func() {} },
	}
}

func execute(t *testing.T, e env, args ...string) error {
	t.Helper()
	cmd := newRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"}, e)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// fastConfig writes a config that keeps demo runs short.
func fastConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.TickRate = time.Millisecond
	cfg.Splash.TickRate = time.Millisecond
	cfg.Splash.MinTicks = 2
	if err := config.Write(path, cfg); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute(t, testEnv(&out, false, nil), "version"); err != nil {
		t.Fatalf("version error = %v", err)
	}
	for _, want := range []string{"tickloop 1.2.3", "Commit: abc", "Built: today"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRootRefusesNonTerminal(t *testing.T) {
	var out bytes.Buffer
	err := execute(t, testEnv(&out, false, nil))
	if !errors.Is(err, errNotTerminal) {
		t.Errorf("error = %v, expected errNotTerminal", err)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	if err := execute(t, testEnv(&out, true, nil), "stray"); err == nil {
		t.Error("expected an error for a positional argument")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	var out bytes.Buffer
	e := testEnv(&out, false, nil)

	if err := execute(t, e, "config", "init", path); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output %q should name the file", out.String())
	}
	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("Load() of the written file error = %v", err)
	}
	if *cfg != *config.Default() {
		t.Errorf("written config = %+v, expected defaults", cfg)
	}

	err = execute(t, e, "config", "init", path)
	if !errors.Is(err, errConfigExists) {
		t.Errorf("second init error = %v, expected errConfigExists", err)
	}
	if err := execute(t, e, "config", "init", "--force", path); err != nil {
		t.Errorf("init --force error = %v", err)
	}
}

func TestConfigInitUsesConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.toml")
	var out bytes.Buffer
	if err := execute(t, testEnv(&out, false, nil), "--config", path, "config", "init"); err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func TestConfigShow(t *testing.T) {
	path := fastConfig(t)
	t.Setenv("TICKLOOP_THEME_ACCENT", "#123456")

	var out bytes.Buffer
	if err := execute(t, testEnv(&out, false, nil), "--config", path, "--log-level", "debug", "config", "show"); err != nil {
		t.Fatalf("config show error = %v", err)
	}
	text := out.String()
	for _, want := range []string{"1ms", "#123456", "debug"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunDemo(t *testing.T) {
	path := fastConfig(t)

	splash := backend.NewNullBackend(80, 24)
	swatches := backend.NewNullBackend(80, 24)
	// At 80x24 the demo origin is (20, 6); swatch 2 sits at (28, 8).
	swatches.PostEvent(backend.Event{Type: backend.EventMouse, MouseX: 28, MouseY: 8,
		MouseButton: mouse.ButtonLeft, MouseAction: mouse.ActionRelease})
	swatches.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'q'})

	var out bytes.Buffer
	scripted := &scriptedBackends{backends: []*backend.NullBackend{splash, swatches}}
	if err := execute(t, testEnv(&out, true, scripted), "--config", path); err != nil {
		t.Fatalf("run error = %v", err)
	}
	if scripted.next != 2 {
		t.Errorf("%d runs, expected splash and swatches", scripted.next)
	}

	p, err := demo.LoadPalette(filepath.Join(filepath.Dir(path), paletteFile))
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if p[0] != 2 {
		t.Errorf("saved palette = %v, expected slot 0 to hold swatch 2", p)
	}
}

func TestRunDemoPaletteFailure(t *testing.T) {
	path := fastConfig(t)
	bad := filepath.Join(filepath.Dir(path), paletteFile)
	if err := os.WriteFile(bad, []byte("slots = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	splash := backend.NewNullBackend(80, 24)
	message := backend.NewNullBackend(80, 24)
	message.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: 'x'})

	var out bytes.Buffer
	scripted := &scriptedBackends{backends: []*backend.NullBackend{splash, message}}
	err := execute(t, testEnv(&out, true, scripted), "--config", path)
	if err == nil || !strings.Contains(err.Error(), "parsing palette") {
		t.Errorf("error = %v, expected the palette parse failure", err)
	}
	if scripted.next != 2 {
		t.Errorf("%d runs, expected splash and the message", scripted.next)
	}
}

func TestRunDemoSignalRestoresTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.Splash.TickRate = time.Millisecond
	// The splash only ends through the signal.
	cfg.Splash.MinTicks = 1 << 30
	if err := config.Write(path, cfg); err != nil {
		t.Fatal(err)
	}

	splash := backend.NewNullBackend(80, 24)
	scripted := &scriptedBackends{backends: []*backend.NullBackend{splash, backend.NewNullBackend(80, 24)}}
	var out bytes.Buffer
	e := testEnv(&out, true, scripted)
	stopped := make(chan struct{})
	e.notify = func(c chan<- os.Signal) func() {
		c <- syscall.SIGTERM
		return func() { close(stopped) }
	}

	err := execute(t, e, "--config", path)
	if !errors.Is(err, errInterrupted) {
		t.Fatalf("run error = %v, expected errInterrupted", err)
	}
	if scripted.next != 1 {
		t.Errorf("%d runs, expected only the splash", scripted.next)
	}

	calls := splash.Calls()
	want := []string{"ResetStyle", "ShowCursor", "Clear", "Show", "DisableMouse", "Shutdown"}
	if len(calls) < len(want) || !reflect.DeepEqual(calls[len(calls)-len(want):], want) {
		t.Errorf("splash calls end with %v, expected teardown %v", calls, want)
	}
	if splash.Initialized() {
		t.Error("terminal left initialized after the signal")
	}

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Error("signal relay was not stopped")
	}
}

func TestRunDemoMessageFailureIsLogged(t *testing.T) {
	path := fastConfig(t)
	dir := filepath.Dir(path)
	if err := os.WriteFile(filepath.Join(dir, paletteFile), []byte("slots = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(dir, "tickloop.log")

	// Only the splash gets a terminal; the message screen cannot start.
	scripted := &scriptedBackends{backends: []*backend.NullBackend{backend.NewNullBackend(80, 24)}}
	var out bytes.Buffer
	err := execute(t, testEnv(&out, true, scripted), "--config", path, "--log-file", logPath)
	if err == nil || !strings.Contains(err.Error(), "parsing palette") {
		t.Errorf("error = %v, expected the palette parse failure", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "message screen failed") {
		t.Errorf("log does not mention the message screen failure:\n%s", data)
	}
}
