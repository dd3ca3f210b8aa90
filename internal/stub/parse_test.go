// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/stubconv/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    types.StubRecord
	}{
		{
			name: "full stub with all three sections",
			content: `[application]
name = Alpha App

[configuration_files]
.alpharc
.alpha/config

[xdg_configuration_files]
alpha/settings
`,
			want: types.StubRecord{
				ID:       "alpha",
				Name:     "Alpha App",
				Paths:    []string{".alpharc", ".alpha/config"},
				XDGPaths: []string{"alpha/settings"},
			},
		},
		{
			name:    "name without spaces around equals",
			content: "[application]\nname=Tight\n",
			want:    types.StubRecord{ID: "alpha", Name: "Tight"},
		},
		{
			name:    "name with excess whitespace",
			content: "[application]\n  name   =   Spaced Out  \n",
			want:    types.StubRecord{ID: "alpha", Name: "Spaced Out"},
		},
		{
			name:    "other keys in application section ignored",
			content: "[application]\nname = Alpha\nicon = alpha.png\n",
			want:    types.StubRecord{ID: "alpha", Name: "Alpha"},
		},
		{
			name: "comments and blank lines ignored in every section",
			content: `# leading comment
[application]
; name = Commented Out
name = Alpha

[configuration_files]
# not a path
.alpharc

; neither is this
`,
			want: types.StubRecord{
				ID:    "alpha",
				Name:  "Alpha",
				Paths: []string{".alpharc"},
			},
		},
		{
			name: "unknown sections parsed for boundaries but not data",
			content: `[configuration_files]
.alpharc
[mystery_section]
not-a-path
[xdg_configuration_files]
alpha/rc
`,
			want: types.StubRecord{
				ID:       "alpha",
				Paths:    []string{".alpharc"},
				XDGPaths: []string{"alpha/rc"},
			},
		},
		{
			name:    "path entries are trimmed, order preserved",
			content: "[configuration_files]\n  .zrc  \n.arc\n",
			want:    types.StubRecord{ID: "alpha", Paths: []string{".zrc", ".arc"}},
		},
		{
			name:    "lines before any section are ignored",
			content: "stray line\n.not-collected\n[configuration_files]\n.alpharc\n",
			want:    types.StubRecord{ID: "alpha", Paths: []string{".alpharc"}},
		},
		{
			name:    "unterminated bracket line is not a path entry",
			content: "[configuration_files]\n[broken\n.alpharc\n",
			want:    types.StubRecord{ID: "alpha", Paths: []string{".alpharc"}},
		},
		{
			name:    "no sections at all yields empty record",
			content: "just some text\nwith no structure\n",
			want:    types.StubRecord{ID: "alpha"},
		},
		{
			name:    "empty content yields empty record",
			content: "",
			want:    types.StubRecord{ID: "alpha"},
		},
		{
			name:    "xdg only",
			content: "[xdg_configuration_files]\n.config/beta/settings\n",
			want:    types.StubRecord{ID: "alpha", XDGPaths: []string{".config/beta/settings"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse("alpha", tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_CRLFLines(t *testing.T) {
	got := Parse("win", "[application]\r\nname = Windows App\r\n[configuration_files]\r\n.winrc\r\n")
	assert.Equal(t, "Windows App", got.Name)
	assert.Equal(t, []string{".winrc"}, got.Paths)
}

func TestParseFile(t *testing.T) {
	t.Run("derives ID from base name without extension", func(t *testing.T) {
		dir := t.TempDir()
		path := writeStub(t, dir, "sublime-text-3.cfg", "[application]\nname = Sublime Text\n")

		rec, err := ParseFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "sublime-text-3", rec.ID)
		assert.Equal(t, "Sublime Text", rec.Name)
	})

	t.Run("missing file is a per-file error", func(t *testing.T) {
		_, err := ParseFile(t.TempDir() + "/absent.cfg")
		assert.Error(t, err)
	})
}
