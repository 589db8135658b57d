package testsupport

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var (
	buildOnce sync.Once
	tdPath    string
	buildErr  error
)

// BuildTD builds the td binary once and returns its path.
func BuildTD(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "td-bin-")
		if err != nil {
			buildErr = err
			return
		}

		tdPath = filepath.Join(binDir, "td")
		cmd := exec.Command("go", "build", "-o", tdPath, "./cmd/td")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build td: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return tdPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TD", BuildTD(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

// CmdTaskFile stores the path of the only .td file in a directory in an env var.
func CmdTaskFile(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("taskfile does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: taskfile DIR VAR")
	}

	entries, err := os.ReadDir(args[0])
	if err != nil {
		ts.Fatalf("read dir: %v", err)
	}

	var matches []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".td" {
			matches = append(matches, filepath.Join(args[0], entry.Name()))
		}
	}
	if len(matches) != 1 {
		ts.Fatalf("expected exactly one task file in %s, found %d", args[0], len(matches))
	}

	ts.Setenv(args[1], matches[0])
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
