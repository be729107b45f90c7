package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"btc-yield.backend/internal/config"
	"btc-yield.backend/pkg/jwt"
)

func testDeps(out *bytes.Buffer, cfg *config.Config) devAssertionDeps {
	return devAssertionDeps{
		loadEnv: func() error { return nil },
		loadCfg: func() *config.Config { return cfg },
		out:     out,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Identity: config.IdentityConfig{DevSecret: "cli-test-secret"},
	}
}

func TestRunDevAssertion_MintsValidAssertion(t *testing.T) {
	var out bytes.Buffer
	err := runDevAssertion([]string{"--user-id", "alice", "--email", "alice@local"}, testDeps(&out, testConfig()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "user_id=alice", lines[0])
	require.Equal(t, "email=alice@local", lines[1])
	require.True(t, strings.HasPrefix(lines[2], "ASSERTION="))

	token := strings.TrimPrefix(lines[2], "ASSERTION=")
	claims, err := jwt.NewAssertionService("cli-test-secret", 0).Validate(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.Equal(t, "alice@local", claims.Email)
}

func TestRunDevAssertion_Defaults(t *testing.T) {
	var out bytes.Buffer
	err := runDevAssertion(nil, testDeps(&out, testConfig()))
	require.NoError(t, err)

	require.Contains(t, out.String(), "user_id=dev-user\n")
	require.Contains(t, out.String(), "email=dev@local\n")
}

func TestRunDevAssertion_RejectsEmptyUserID(t *testing.T) {
	var out bytes.Buffer
	err := runDevAssertion([]string{"--user-id", ""}, testDeps(&out, testConfig()))
	require.Error(t, err)
	require.Empty(t, out.String())
}

func TestRunDevAssertion_RejectsUnknownFlag(t *testing.T) {
	var out bytes.Buffer
	err := runDevAssertion([]string{"--bogus"}, testDeps(&out, testConfig()))
	require.Error(t, err)
}
