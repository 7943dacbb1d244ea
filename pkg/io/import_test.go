package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/treemark/pkg/errors"
	"github.com/matzehuels/treemark/pkg/tree"
)

func names(root tree.Node) []string {
	var out []string
	tree.Walk(root, func(n tree.Node, _ int) { out = append(out, n.Name()) })
	return out
}

func TestImportFileTOML(t *testing.T) {
	doc, err := ImportFile(filepath.Join("testdata", "demo.toml"))
	require.NoError(t, err)

	assert.Equal(t, "Composite Pattern Tree", doc.Title)
	assert.Equal(t, []string{"Main", "Sub-1", "Sub-2", "Sub-2-1", "Sub-2-2"}, names(doc.Root))

	main, ok := doc.Root.(*tree.Actionable)
	require.True(t, ok, "root should be actionable, got %T", doc.Root)
	assert.Equal(t, "Test Btn", main.ControlLabel())
	assert.Empty(t, main.ControlAction())

	stats := tree.Count(doc.Root)
	assert.Equal(t, 2, stats.Parents)
	assert.Equal(t, 4, stats.ByVariant[tree.VariantPlain])
}

func TestImportFileJSON(t *testing.T) {
	doc, err := ImportFile(filepath.Join("testdata", "company.json"))
	require.NoError(t, err)

	assert.Equal(t, "Company", doc.Title)
	assert.Equal(t, "Departments", doc.Heading)
	assert.Equal(t, []string{
		"Company", "HR", "Recruitment", "Benefits",
		"IT", "Development", "Infrastructure",
		"Sales", "North", "South",
	}, names(doc.Root))

	infra := doc.Root.ChildAt(1).ChildAt(1)
	c, ok := infra.(tree.Control)
	require.True(t, ok)
	assert.Equal(t, "Infra Button", c.ControlLabel())
	assert.Equal(t, "alert('infra')", c.ControlAction())
}

func TestReadTOMLDefaultLabel(t *testing.T) {
	doc, err := ReadTOML(strings.NewReader(`
[root]
name = "Main"
type = "button"
`))
	require.NoError(t, err)
	assert.Equal(t, tree.DefaultControlLabel, doc.Root.(tree.Control).ControlLabel())
}

func TestReadTOMLExplicitEmptyLabel(t *testing.T) {
	doc, err := ReadTOML(strings.NewReader(`
[root]
name = "Main"
type = "button"
label = ""
`))
	require.NoError(t, err)
	assert.Empty(t, doc.Root.(tree.Control).ControlLabel())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		read     func(string) (*Document, error)
		input    string
		wantCode errors.Code
		wantMsg  string
	}{
		{
			name:     "toml syntax",
			read:     readTOMLString,
			input:    `[root`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "toml missing root",
			read:     readTOMLString,
			input:    `title = "x"`,
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "missing root",
		},
		{
			name:     "toml unknown key",
			read:     readTOMLString,
			input:    "[root]\nname = \"a\"\ncolour = \"red\"",
			wantCode: errors.ErrCodeInvalidFormat,
			wantMsg:  "root.colour",
		},
		{
			name:     "toml missing child name",
			read:     readTOMLString,
			input:    "[root]\nname = \"a\"\n[[root.children]]\nname = \"b\"\n[[root.children]]\ntype = \"simple\"",
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "root.children[1]",
		},
		{
			name:     "toml unknown type",
			read:     readTOMLString,
			input:    "[root]\nname = \"a\"\ntype = \"link\"",
			wantCode: errors.ErrCodeInvalidFormat,
			wantMsg:  `"link"`,
		},
		{
			name:     "toml label on simple node",
			read:     readTOMLString,
			input:    "[root]\nname = \"a\"\nlabel = \"x\"",
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "require type 'button'",
		},
		{
			name:     "json syntax",
			read:     readJSONString,
			input:    `{"root": `,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "json unknown field",
			read:     readJSONString,
			input:    `{"root": {"name": "a", "kids": []}}`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "json nested missing name",
			read:     readJSONString,
			input:    `{"root": {"name": "a", "children": [{"name": "b", "children": [{}]}]}}`,
			wantCode: errors.ErrCodeInvalidInput,
			wantMsg:  "root.children[0].children[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := tt.read(tt.input)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.wantCode, errors.GetCode(err), "err = %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestImportFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ImportFile(filepath.Join(dir, "absent.toml"))
		assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound), "err = %v", err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ImportFile(filepath.Join(dir, "tree.yaml"))
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "err = %v", err)
	})

	t.Run("error names the file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

		_, err := ImportFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
	})
}

func readTOMLString(s string) (*Document, error) { return ReadTOML(strings.NewReader(s)) }
func readJSONString(s string) (*Document, error) { return ReadJSON(strings.NewReader(s)) }

func TestImportExampleTrees(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "trees", "*.toml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := ImportFile(path)
			require.NoError(t, err)
			assert.NoError(t, tree.CheckAcyclic(doc.Root))
			assert.NotEmpty(t, doc.Title)
		})
	}
}
