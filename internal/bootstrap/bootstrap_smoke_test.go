package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	platformconfig "github.com/GuillemIscla/live-bootcamp-project/internal/platform/config"
)

func TestInitGraphOrder(t *testing.T) {
	steps := InitGraph()
	want := []string{
		"config:load",
		"logging:init",
		"storage:init-database",
		"stores:init",
		"auth:init-service",
	}
	if len(steps) != len(want) {
		t.Fatalf("unexpected step count: got %d want %d", len(steps), len(want))
	}
	for i, step := range steps {
		if step.ID != want[i] {
			t.Fatalf("step %d mismatch: got %s want %s", i, step.ID, want[i])
		}
	}
}

func TestInitGraphDependenciesSatisfiable(t *testing.T) {
	completed := map[string]struct{}{}
	for _, step := range InitGraph() {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				t.Fatalf("step %s depends on %s before it completes", step.ID, dep)
			}
		}
		completed[step.ID] = struct{}{}
	}
}

func TestExecuteInitGraph(t *testing.T) {
	// Point at a missing config file so defaults apply: memory drivers, no
	// external backends needed.
	t.Setenv(platformconfig.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(platformconfig.EnvJWTSecret, "smoke-test-secret")

	state := &appState{}
	if err := executeInitSteps(context.Background(), InitGraph(), state); err != nil {
		t.Fatalf("executeInitSteps failed: %v", err)
	}
	t.Cleanup(func() {
		closeStores(state, state.logger)
		_ = state.logger.Sync()
	})

	if state.config == nil {
		t.Fatal("config is nil after init")
	}
	if state.logger == nil {
		t.Fatal("logger is nil after init")
	}
	if state.users == nil || state.banned == nil || state.codes == nil {
		t.Fatal("stores not initialised")
	}
	if state.db != nil {
		t.Fatal("no database expected for the memory driver")
	}
	if state.authService == nil {
		t.Fatal("auth service is nil after init")
	}
}

func TestExecuteInitGraphFailsWithoutSecret(t *testing.T) {
	t.Setenv(platformconfig.EnvConfigPath, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv(platformconfig.EnvJWTSecret, "")

	state := &appState{}
	if err := executeInitSteps(context.Background(), InitGraph(), state); err == nil {
		t.Fatal("expected config validation to fail without a JWT secret")
	}
}
