//go:build integration

// Package integration runs the freight API feature files against an in-process server
// backed by SQLite and miniredis. Run with: go test -tags integration ./test/integration/...
//
// GODOG_TAGS filters scenarios by tag and GODOG_FORMAT picks the formatter. GODOG_FEATURE
// runs a single file from features/; GODOG_STOP_ON_FAILURE=true stops at the first failure.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/freight-manager/backend/test/integration/steps"
)

const featuresDir = "features"

func TestFeatures(t *testing.T) {
	paths := []string{featuresDir}
	if feature := os.Getenv("GODOG_FEATURE"); feature != "" {
		paths = []string{filepath.Join(featuresDir, feature)}
	}

	format := os.Getenv("GODOG_FORMAT")
	if format == "" {
		format = "pretty"
	}

	// Scenarios share one database and server, so they run one at a time in file order.
	opts := godog.Options{
		Format:        format,
		Paths:         paths,
		Output:        colors.Colored(os.Stdout),
		Tags:          os.Getenv("GODOG_TAGS"),
		Concurrency:   1,
		Strict:        true,
		StopOnFailure: os.Getenv("GODOG_STOP_ON_FAILURE") == "true",
		TestingT:      t,
	}

	suite := godog.TestSuite{
		Name:                 "freight-manager-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}

	if status := suite.Run(); status != 0 {
		t.Fatalf("feature suite failed with status %d", status)
	}
}
