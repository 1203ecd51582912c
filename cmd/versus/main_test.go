package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ezBadminton/goversus/core"
	"github.com/ezBadminton/goversus/entry"
	"github.com/ezBadminton/goversus/internal"
)

// Runs the app with the given stdin and returns stdout
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"versus"}, args...))
	return out.String(), err
}

func writeDraft(t *testing.T, draft *entry.Draft) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, entry.Export(f, draft))
	return path
}

func TestDraftCommand(t *testing.T) {
	input := "Pizza\nhttps://youtu.be/dQw4w9WgXcQ\n\n  https://example.com/cat.PNG  \n"
	output := filepath.Join(t.TempDir(), "food.json")

	_, err := runApp(t, input, "draft", "--title", "Food", "-o", output)
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	draft, err := entry.Import(f, internal.NewSequenceGenerator("x"))
	require.NoError(t, err)
	assert.Equal(t, "Food", draft.Title)
	require.Len(t, draft.Items, 3)

	kinds := make([]core.Kind, 0, len(draft.Items))
	for _, item := range draft.Items {
		assert.NotEmpty(t, item.ID)
		kinds = append(kinds, item.Kind)
	}
	assert.Equal(t, []core.Kind{core.KindText, core.KindVideo, core.KindImage}, kinds)
}

func TestDraftCommandStdout(t *testing.T) {
	inputPath := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("Tea\nCoffee\n"), 0o600))

	out, err := runApp(t, "", "draft", "-i", inputPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"title": ""`)
	assert.Contains(t, out, `"content": "Coffee"`)
	assert.Contains(t, out, `"type": "TEXT"`)
}

func playDraft(t *testing.T) string {
	t.Helper()
	draft := &entry.Draft{Title: "Snacks"}
	ids := internal.NewSequenceGenerator("s")
	for _, content := range []string{"Chips", "Pretzels", "Popcorn", "Nachos"} {
		draft.Add(core.NewItem(ids, content, "", core.KindText))
	}
	return writeDraft(t, draft)
}

func TestPlayCommand(t *testing.T) {
	config := filepath.Join(t.TempDir(), "missing.yaml")

	out, err := runApp(t, "1\nx\n1\n1\n", "play", "--config", config, "--seed", "3", "--json", playDraft(t))
	require.NoError(t, err)

	assert.Contains(t, out, "Snacks (4 items)")
	assert.Contains(t, out, "Round 1, match 1 of 3")
	assert.Contains(t, out, "Round 2, match 3 of 3")
	assert.Contains(t, out, "Invalid choice")
	assert.Contains(t, out, "Final rankings of Snacks")
	assert.Contains(t, out, "  1. ")
	assert.Contains(t, out, "  3. ")
	assert.Contains(t, out, `"completed": true`)
}

func TestPlayCommandDeterministic(t *testing.T) {
	config := filepath.Join(t.TempDir(), "missing.yaml")
	path := playDraft(t)

	first, err := runApp(t, "2\n2\n2\n", "play", "--config", config, "--seed", "11", path)
	require.NoError(t, err)
	second, err := runApp(t, "2\n2\n2\n", "play", "--config", config, "--seed", "11", path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlayCommandErrors(t *testing.T) {
	config := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := runApp(t, "1\n", "play", "--config", config, playDraft(t))
	assert.ErrorIs(t, err, errInputEnded)

	_, err = runApp(t, "q\n", "play", "--config", config, playDraft(t))
	assert.Error(t, err)

	_, err = runApp(t, "", "play", "--config", config)
	assert.Error(t, err)

	_, err = runApp(t, "", "play", "--config", config, filepath.Join(t.TempDir(), "nothing.json"))
	assert.Error(t, err)

	single := writeDraft(t, &entry.Draft{Items: []*core.Item{{ID: "a", Content: "Alone"}}})
	_, err = runApp(t, "", "play", "--config", config, single)
	assert.ErrorIs(t, err, core.ErrTooFewEntries)
}
