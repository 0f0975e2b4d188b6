package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	SequenceLength = 10
	FixtureSteps   = 5
	FixturePath    = "fixtures.arrow"
	FixtureSeeds   = []string{"", "abc", "42", "5", "hello, world", "日本", "😀"}
	PseudoSeeds    = []any{42, 1, 2, 5, "", 0.1, -7, true, 1e21, 1e-7, 123.456}
)

const (
	EnvSequenceLength = "NUMX_SEQUENCE_LENGTH"
	EnvFixtureSteps   = "NUMX_FIXTURE_STEPS"
	EnvFixturePath    = "NUMX_FIXTURE_PATH"
	EnvFixtureSeeds   = "NUMX_FIXTURE_SEEDS"
)

// Load reads the given dotenv files (missing files are skipped) and then
// overlays NUMX_* variables onto the package defaults. Variables already set
// in the process environment win over dotenv files.
func Load(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: %s: %w", file, err)
		}
	}
	if err := loadInt(EnvSequenceLength, &SequenceLength); err != nil {
		return err
	}
	if err := loadInt(EnvFixtureSteps, &FixtureSteps); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvFixturePath); ok && v != "" {
		FixturePath = v
	}
	if v, ok := os.LookupEnv(EnvFixtureSeeds); ok {
		FixtureSeeds = strings.Split(v, ",")
	}
	return nil
}

func loadInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	if n < 0 {
		return fmt.Errorf("config: %s: negative value %d", key, n)
	}
	*dst = n
	return nil
}
