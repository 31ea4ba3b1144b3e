package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

type listedTarget struct {
	Name    string   `json:"name"`
	Files   []string `json:"files"`
	Default bool     `json:"default"`
}

func listTargets(t *testing.T, env *testEnv) []listedTarget {
	t.Helper()
	var targets []listedTarget
	if err := json.Unmarshal([]byte(env.mustRun("list", "--json")), &targets); err != nil {
		t.Fatalf("list --json is not valid JSON: %v", err)
	}
	return targets
}

func TestAddCreatesTargetAndDefault(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.writeFile("a.env", "A=1\n")
	env.writeFile("b.env", "B=1\n")

	output := env.mustRun("add", "db", "a.env", "b.env")
	if !strings.Contains(output, "Created target 'db'") {
		t.Errorf("Expected created message not found in output: %s", output)
	}
	if !strings.Contains(output, "[added] a.env") || !strings.Contains(output, "[added] b.env") {
		t.Errorf("Expected added lines not found in output: %s", output)
	}
	if !strings.Contains(output, "'db' is now the default target") {
		t.Errorf("Expected default message not found in output: %s", output)
	}

	output = env.mustRun("add", "db", "a.env")
	if !strings.Contains(output, "[skipped] a.env is already tracked") {
		t.Errorf("Expected skipped line not found in output: %s", output)
	}

	targets := listTargets(t, env)
	if len(targets) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(targets))
	}
	if got := strings.Join(targets[0].Files, ","); got != "a.env,b.env" {
		t.Errorf("Expected files a.env,b.env, got %s", got)
	}
	if !targets[0].Default {
		t.Errorf("Expected first target to be the default")
	}
}

func TestAddWithGlob(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.writeFile("config/db.env", "A=1\n")
	env.writeFile("config/nested/api.env", "B=1\n")
	env.writeFile("config/readme.md", "docs\n")

	env.mustRun("add", "app", "config/**/*.env")

	targets := listTargets(t, env)
	if len(targets) != 1 {
		t.Fatalf("Expected 1 target, got %d", len(targets))
	}
	files := strings.Join(targets[0].Files, ",")
	if !strings.Contains(files, "config/db.env") || !strings.Contains(files, "config/nested/api.env") {
		t.Errorf("Expected glob matches, got %s", files)
	}
	if strings.Contains(files, "readme.md") {
		t.Errorf("Glob matched a file it should not: %s", files)
	}
}

func TestAddGlobWithoutMatches(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()

	output, code := runCLI("add", "app", "*.nothing")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "no matching files found") {
		t.Errorf("Expected no files message not found in output: %s", output)
	}
}

func TestAddRequiresTarget(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()

	output, code := runCLI("add")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d: %s", code, output)
	}
}

func TestListKeepsDeclarationOrder(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.mustRun("add", "zeta", "z.env")
	env.mustRun("add", "alpha", "a.env")
	env.mustRun("add", "mid", "m.env")

	targets := listTargets(t, env)
	var names []string
	for _, target := range targets {
		names = append(names, target.Name)
	}
	if got := strings.Join(names, ","); got != "zeta,alpha,mid" {
		t.Errorf("Expected declaration order zeta,alpha,mid, got %s", got)
	}

	output := env.mustRun("list")
	if strings.Index(output, "'zeta'") > strings.Index(output, "'alpha'") {
		t.Errorf("Targets printed out of order: %s", output)
	}
	if !strings.Contains(output, "'zeta' (default)") {
		t.Errorf("Expected default marker not found in output: %s", output)
	}
}

func TestListEmpty(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()

	output := env.mustRun("list")
	if !strings.Contains(output, "No targets found.") {
		t.Errorf("Expected empty message not found in output: %s", output)
	}
}

func TestRemoveFiles(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.mustRun("add", "db", "a.env", "b.env")

	output := env.mustRun("remove", "db", "a.env", "c.env")
	if !strings.Contains(output, "[removed] a.env") {
		t.Errorf("Expected removed line not found in output: %s", output)
	}
	if !strings.Contains(output, "[not found] c.env") {
		t.Errorf("Expected not found line not found in output: %s", output)
	}

	targets := listTargets(t, env)
	if got := strings.Join(targets[0].Files, ","); got != "b.env" {
		t.Errorf("Expected remaining file b.env, got %s", got)
	}
}

func TestRemoveTarget(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.mustRun("add", "db", "a.env")
	env.mustRun("add", "api", "b.env")
	env.mustRun("set-default", "db", "api")

	output := env.mustRun("remove", "--target", "db")
	if !strings.Contains(output, "Removed target 'db'") {
		t.Errorf("Expected removed target message not found in output: %s", output)
	}

	targets := listTargets(t, env)
	if len(targets) != 1 || targets[0].Name != "api" {
		t.Fatalf("Expected only api to remain, got %+v", targets)
	}

	output = env.mustRun("get-default")
	if strings.Contains(output, "db") {
		t.Errorf("Removed target is still a default: %s", output)
	}
}

func TestRemoveWithoutFiles(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()
	env.mustRun("add", "db", "a.env")

	output, code := runCLI("remove", "db")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "no files given") {
		t.Errorf("Expected no files message not found in output: %s", output)
	}
}

func TestRemoveUnknownTarget(t *testing.T) {
	env := setupTestEnvironment(t)
	env.initializeProject()

	output, code := runCLI("remove", "-t", "nope")
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "Target not found: nope") {
		t.Errorf("Expected target error not found in output: %s", output)
	}
}
