package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/lessonmark/internal/engine"
)

const worksheet = "# Practice\n1. $1/2 + 1/4$\n---ANSWER KEY---\n# Answer Key\n1. $3/4$"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_Stdin(t *testing.T) {
	out, err := run(t, worksheet, "render", "--no-color", "--mode", "worksheet")
	require.NoError(t, err)
	assert.Contains(t, out, "PRACTICE")
	assert.Contains(t, out, "1/2 + 1/4")
	assert.NotContains(t, out, "3/4")
	assert.NotContains(t, out, "$")
}

func TestRender_AnswersView(t *testing.T) {
	out, err := run(t, worksheet, "render", "-", "--no-color", "-m", "worksheet", "--view", "answers")
	require.NoError(t, err)
	assert.Contains(t, out, "ANSWER KEY")
	assert.Contains(t, out, "3/4")
	assert.NotContains(t, out, "1/2 + 1/4")
}

func TestRender_NoAnswerKey(t *testing.T) {
	_, err := run(t, "# Practice", "render", "--mode", "worksheet", "--view", "answers")
	assert.True(t, errors.Is(err, engine.ErrNoAnswerKey), "got %v", err)
}

func TestRender_BadFlags(t *testing.T) {
	_, err := run(t, "x", "render", "--mode", "poster")
	assert.Error(t, err)

	_, err = run(t, "x", "render", "--view", "solutions")
	assert.Error(t, err)
}

func TestRender_MissingFile(t *testing.T) {
	_, err := run(t, "", "render", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestConfig_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typo.yaml")
	_, err := run(t, "x", "render", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config "+path)
}

func TestConfig_InvalidDefaultMode(t *testing.T) {
	t.Setenv("LESSONMARK_DEFAULT_MODE", "poster")
	_, err := run(t, "x", "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_mode")
}

func TestConfig_FileSetsDefaultMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lessonmark.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_mode: worksheet\n"), 0o600))

	out, err := run(t, worksheet, "render", "--no-color", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PRACTICE")
	assert.NotContains(t, out, "3/4")
}

func TestPrint_ToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sheet.txt")
	require.NoError(t, os.WriteFile(in, []byte(worksheet), 0o600))
	outPath := filepath.Join(dir, "sheet.html")

	stdout, err := run(t, "", "print", in, "-m", "worksheet",
		"--recipient", "Rohan Mehta", "--topic", "Fractions", "--date", "2026-03-04", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	page := string(b)
	assert.Contains(t, page, "Adaptive Practice Sheet")
	assert.Contains(t, page, "Student: Rohan Mehta")
	assert.Contains(t, page, "Date: March 4, 2026")
	assert.Contains(t, page, `onload="window.print()"`)
	assert.NotContains(t, page, "Answer Key")
}

func TestPrint_StdoutFeedback(t *testing.T) {
	out, err := run(t, "**Great** work", "print", "--title", "Week 3")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Week 3</title>")
	assert.Contains(t, out, "Performance Feedback")
	assert.Contains(t, out, "<strong>Great</strong>")
}

func TestPrint_BadDate(t *testing.T) {
	_, err := run(t, "x", "print", "--date", "04/03/2026")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestSplit_Summary(t *testing.T) {
	out, err := run(t, worksheet, "split")
	require.NoError(t, err)
	assert.Equal(t, "questions: 3 lines\nanswer key: 3 lines\n", out)

	out, err = run(t, "just questions", "split")
	require.NoError(t, err)
	assert.Equal(t, "questions: 1 lines\nanswer key: none\n", out)
}

func TestSplit_Part(t *testing.T) {
	out, err := run(t, worksheet, "split", "--part", "answers")
	require.NoError(t, err)
	assert.Equal(t, "\n# Answer Key\n1. $3/4$", out)

	_, err = run(t, "just questions", "split", "--part", "answers")
	assert.Error(t, err)
}
