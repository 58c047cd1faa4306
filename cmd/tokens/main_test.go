package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"tokens"}, args...))
	return strings.TrimSpace(out.String()), err
}

func TestIssueThenInspect(t *testing.T) {
	token, err := run(t, "issue", "--secret", testSecret, "--role", "manager", "--subject", "2")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out, err := run(t, "inspect", "--secret", testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "role=manager subject=2", out)
}

func TestIssue_RejectsUnknownRole(t *testing.T) {
	_, err := run(t, "issue", "--secret", testSecret, "--role", "owner", "--subject", "2")
	assert.Error(t, err)
}

func TestInspect_RejectsForeignToken(t *testing.T) {
	other := "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	token, err := run(t, "issue", "--secret", other, "--role", "admin", "--subject", "1")
	require.NoError(t, err)

	_, err = run(t, "inspect", "--secret", testSecret, token)
	assert.Error(t, err)
}
