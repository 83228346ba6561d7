package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"resolution.md":      {Data: []byte("# Resolution\n\nFour strategies")},
		"option-config.txt":  {Data: []byte("About --config")},
		"nested/suppress.md": {Data: []byte("# Suppressions")},
		"notes.txxt":         {Data: []byte("custom extension")},
		"ignored.json":       {Data: []byte("{}")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{})
		require.NoError(t, err)

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"resolution", true, "# Resolution\n\nFour strategies"},
			{"suppress", true, "# Suppressions"},
			{"config", true, "About --config"},
			{"--config", true, "About --config"},
			{"notes", false, ""},
			{"ignored", false, ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, ok := m.Get(tt.name)
				assert.Equal(t, tt.exists, ok)
				if ok {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
		assert.Equal(t, []string{"option-config", "resolution", "suppress"}, m.Names())
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"notes"}, m.Names())
	})
}

func TestMarkdownOnly(t *testing.T) {
	r := MarkdownOnly(strings.ToUpper)
	assert.Equal(t, "# TITLE", r.Render("# title", ".md"))
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "app", Short: "Test app"}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(*cobra.Command, []string) {}})

	m, err := Load(testFS(), Options{Renderer: MarkdownOnly(strings.ToUpper)})
	require.NoError(t, err)
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestInstall(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"topic list", []string{"help", "topics"}, []string{"General topics:", "  resolution", "Option topics:", "  --config", "'app help <topic>'"}},
		{"markdown topic", []string{"help", "resolution"}, []string{"# RESOLUTION"}},
		{"text topic", []string{"help", "config"}, []string{"About --config"}},
		{"command help", []string{"help", "sub"}, []string{"A subcommand"}},
		{"root help", []string{"help"}, []string{"Test app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestInstallNoTopics(t *testing.T) {
	root := &cobra.Command{Use: "app"}
	root.AddCommand(&cobra.Command{Use: "sub", Run: func(*cobra.Command, []string) {}})
	m, err := Load(fstest.MapFS{}, Options{})
	require.NoError(t, err)
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "No help topics available.")
}
