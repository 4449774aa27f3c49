//go:build cucumber

package invocation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"

	"evalrunner/internal/jobspec"
)

// TestCompileScenarios runs the compile feature scenarios.
func TestCompileScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "compile",
		ScenarioInitializer: InitializeCompileScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("testdata", "features", "compile.feature")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeCompileScenario wires steps for compile scenarios.
func InitializeCompileScenario(ctx *godog.ScenarioContext) {
	state := &compileScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = compileScenarioState{}
		return ctx, nil
	})

	ctx.Step(`^the job document:$`, state.givenJobDocument)
	ctx.Step(`^I compile the job$`, state.whenCompile)
	ctx.Step(`^I compile the job twice$`, state.whenCompileTwice)
	ctx.Step(`^the arguments are "(.*)"$`, state.thenArguments)
	ctx.Step(`^the overlay sets "([^"]+)" to "(.*)"$`, state.thenOverlaySets)
	ctx.Step(`^the overlay does not set "([^"]+)"$`, state.thenOverlayOmits)
	ctx.Step(`^both invocations are identical$`, state.thenIdentical)
}

type compileScenarioState struct {
	job    jobspec.JobSpec
	first  Invocation
	second Invocation
}

func (s *compileScenarioState) givenJobDocument(doc *godog.DocString) error {
	raw, err := jobspec.Parse([]byte(doc.Content), jobspec.FormatJSON)
	if err != nil {
		return err
	}
	job, err := jobspec.Validate(raw)
	if err != nil {
		return err
	}
	s.job = job
	return nil
}

func (s *compileScenarioState) whenCompile() error {
	s.first = Compile(s.job, Env{"PATH": "/usr/bin"})
	return nil
}

func (s *compileScenarioState) whenCompileTwice() error {
	s.first = Compile(s.job, Env{"PATH": "/usr/bin"})
	s.second = Compile(s.job, Env{"PATH": "/usr/bin"})
	return nil
}

func (s *compileScenarioState) thenArguments(want string) error {
	if got := strings.Join(s.first.Args, " "); got != want {
		return fmt.Errorf("expected args %q, got %q", want, got)
	}
	return nil
}

func (s *compileScenarioState) thenOverlaySets(key, want string) error {
	got, ok := s.first.Overlay[key]
	if !ok {
		return fmt.Errorf("expected %s in overlay %v", key, s.first.Overlay.Keys())
	}
	if got != want {
		return fmt.Errorf("expected %s=%q, got %q", key, want, got)
	}
	return nil
}

func (s *compileScenarioState) thenOverlayOmits(key string) error {
	if _, ok := s.first.Overlay[key]; ok {
		return fmt.Errorf("did not expect %s in overlay", key)
	}
	return nil
}

func (s *compileScenarioState) thenIdentical() error {
	if diff := cmp.Diff(s.first, s.second); diff != "" {
		return fmt.Errorf("invocations differ (-first +second):\n%s", diff)
	}
	return nil
}
