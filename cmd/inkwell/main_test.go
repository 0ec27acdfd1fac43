package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	root       string
}

// newCLITestEnv writes a config file pointing every path into a temp dir.
// llmURL may be empty for commands that never reach the provider.
func newCLITestEnv(t *testing.T, llmURL string) *cliTestEnv {
	t.Helper()
	baseDir := t.TempDir()
	root := filepath.Join(baseDir, "projects")

	lines := []string{
		"[paths]",
		`projects_root = "` + root + `"`,
		`log_dir = "` + filepath.Join(baseDir, "logs") + `"`,
		"[llm]",
		`api_key = "test-key"`,
		`model = "test/model"`,
	}
	if llmURL != "" {
		lines = append(lines, `base_url = "`+llmURL+`"`)
	}
	configPath := filepath.Join(baseDir, "config.toml")
	if err := os.WriteFile(configPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return &cliTestEnv{baseDir: baseDir, configPath: configPath, root: root}
}

// run executes the CLI with a fresh command tree and captures stdout.
func (env *cliTestEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func stubProvider(t *testing.T, response string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": response}},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewAndStatusAndList(t *testing.T) {
	env := newCLITestEnv(t, "")

	out, err := env.run(t, "new", "alpha", "--premise", "A heist in a sunken library.", "--type", "novella")
	if err != nil {
		t.Fatalf("new: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Created project \"alpha\"") || !strings.Contains(out, "30,000") {
		t.Fatalf("unexpected new output: %s", out)
	}

	// Creating the same name again fails.
	if _, err := env.run(t, "new", "alpha", "--premise", "x", "--type", "novel"); err == nil {
		t.Fatal("expected duplicate create to fail")
	}

	out, err = env.run(t, "status", "alpha", "--json")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	var view statusView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("status output not JSON: %v\n%s", err, out)
	}
	if view.NextStage != "idea" || view.Progress != 0 {
		t.Fatalf("unexpected status: %+v", view)
	}

	out, err = env.run(t, "list")
	if err != nil {
		t.Fatalf("list: %v\n%s", err, out)
	}
	if !strings.Contains(out, "alpha") || !strings.Contains(out, "novella") {
		t.Fatalf("unexpected list output: %s", out)
	}
}

func TestStatusUnknownProject(t *testing.T) {
	env := newCLITestEnv(t, "")
	if _, err := env.run(t, "status", "ghost"); err == nil {
		t.Fatal("expected error for unknown project")
	}
}

func TestNewRequiresPremiseWithoutTerminal(t *testing.T) {
	env := newCLITestEnv(t, "")
	// Tests run without a TTY on stdin, so the interactive fallback is
	// unavailable and the flags must carry everything.
	if _, err := env.run(t, "new", "beta", "--type", "novel"); err == nil {
		t.Fatal("expected error for missing premise")
	}
	if _, err := env.run(t, "new", "beta", "--premise", "p"); err == nil {
		t.Fatal("expected error for missing story type")
	}
}

func TestRunStagePipeline(t *testing.T) {
	server := stubProvider(t, "Generated stage output.")
	env := newCLITestEnv(t, server.URL)

	if _, err := env.run(t, "new", "alpha", "--premise", "A heist.", "--type", "short-story"); err != nil {
		t.Fatal(err)
	}

	// Characters before idea must fail with the missing stage named.
	out, err := env.run(t, "run", "characters", "alpha")
	if err == nil {
		t.Fatalf("expected prerequisite failure, got: %s", out)
	}
	if !strings.Contains(err.Error(), "idea") {
		t.Fatalf("error does not name the missing stage: %v", err)
	}

	if out, err := env.run(t, "run", "idea", "alpha"); err != nil {
		t.Fatalf("run idea: %v\n%s", err, out)
	}
	data, err := os.ReadFile(filepath.Join(env.root, "alpha", "idea.md"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "Generated stage output." {
		t.Fatalf("unexpected idea artifact: %q", data)
	}

	if out, err := env.run(t, "run", "characters", "alpha"); err != nil {
		t.Fatalf("run characters: %v\n%s", err, out)
	}

	out, err = env.run(t, "history", "alpha", "--json")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	if !strings.Contains(out, "\"idea\"") || !strings.Contains(out, "\"characters\"") {
		t.Fatalf("history missing runs: %s", out)
	}
}

func TestRunStageDirectMode(t *testing.T) {
	server := stubProvider(t, "Direct mode output.")
	env := newCLITestEnv(t, server.URL)

	outPath := filepath.Join(env.baseDir, "scratch", "idea.md")
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		t.Fatal(err)
	}

	out, err := env.run(t, "run", "idea", outPath, "--premise", "An ad hoc story.", "--type", "flash-fiction")
	if err != nil {
		t.Fatalf("direct run: %v\n%s", err, out)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "Direct mode output." {
		t.Fatalf("unexpected artifact: %q", data)
	}

	// Stages with prerequisites need --input in direct mode.
	if _, err := env.run(t, "run", "characters", filepath.Join(env.baseDir, "chars.md"),
		"--premise", "p", "--type", "flash-fiction"); err == nil {
		t.Fatal("expected error for missing --input")
	}
}

func TestExportCommand(t *testing.T) {
	env := newCLITestEnv(t, "")

	if _, err := env.run(t, "new", "alpha", "--premise", "A heist.", "--type", "flash-fiction"); err != nil {
		t.Fatal(err)
	}
	projectDir := filepath.Join(env.root, "alpha")

	// Export before prose exists fails naming prose.
	if _, err := env.run(t, "export", "alpha"); err == nil || !strings.Contains(err.Error(), "prose") {
		t.Fatalf("expected prose prerequisite error, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(projectDir, "prose.md"), []byte("# One\n\nStory text.\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// No title artifact: falls back to Untitled.
	out, err := env.run(t, "export", "alpha")
	if err != nil {
		t.Fatalf("export: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Untitled") {
		t.Fatalf("expected Untitled fallback: %s", out)
	}
	if _, err := os.Stat(filepath.Join(projectDir, "story.epub")); err != nil {
		t.Fatalf("epub artifact missing: %v", err)
	}

	// A title artifact wins over the fallback.
	if err := os.WriteFile(filepath.Join(projectDir, "title.txt"), []byte("The Sunken Library\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = env.run(t, "export", "alpha")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "The Sunken Library") {
		t.Fatalf("expected title from artifact: %s", out)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	env := newCLITestEnv(t, "")

	target := filepath.Join(env.baseDir, "sample.toml")
	out, err := env.run(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}
	// Without --overwrite a second init refuses.
	if _, err := env.run(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error for existing file")
	}

	out, err = env.run(t, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v\n%s", err, out)
	}
	if !strings.Contains(out, "projects_root") || !strings.Contains(out, "test/model") {
		t.Fatalf("unexpected show output: %s", out)
	}
}
