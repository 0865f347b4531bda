package idmatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractIdentifiersFromTagsFile(t *testing.T) {
	dir := t.TempDir()
	tagFile := filepath.Join(dir, "tags")
	require.NoError(t, os.WriteFile(tagFile, []byte(
		"!_TAG_FILE_FORMAT\t2\t/extended format/\n"+
			"foosy\tfoo.go\t/^func foosy/;\"\tf\tlanguage:Go\n"+
			"barsy\tsub/bar.cpp\t/^int barsy/;\"\tv\tlanguage:C++\n"+
			"fooaaa\tfoo.go\t/^class fooaaa/;\"\tlanguage:Gibberish\n"+
			"short line without tabs\n"), 0o600))

	identifierMap := ExtractIdentifiersFromTagsFile(tagFile)

	require.Equal(t, FiletypeIdentifierMap{
		"go": {
			filepath.Join(dir, "foo.go"): {"foosy"},
		},
		"cpp": {
			filepath.Join(dir, "sub", "bar.cpp"): {"barsy"},
		},
	}, identifierMap)
}

func TestExtractIdentifiersFromTagsFileAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	tagFile := filepath.Join(dir, "tags")
	absolute := filepath.Join(dir, "elsewhere", "foo.py")
	require.NoError(t, os.WriteFile(tagFile, []byte(
		"zoobar\t"+absolute+"\t1;\"\tkind:m\tlanguage:Python\n"), 0o600))

	identifierMap := ExtractIdentifiersFromTagsFile(tagFile)

	require.Equal(t, FiletypeIdentifierMap{
		"python": {
			absolute: {"zoobar"},
		},
	}, identifierMap)
}

func TestExtractIdentifiersFromTagsFileGroupsByPath(t *testing.T) {
	dir := t.TempDir()
	tagFile := filepath.Join(dir, "tags")
	require.NoError(t, os.WriteFile(tagFile, []byte(
		"alpha\tfoo.go\t1;\"\tlanguage:Go\n"+
			"beta\tfoo.go\t2;\"\tlanguage:Go\n"+
			"gamma\tbar.go\t3;\"\tlanguage:Go\n"), 0o600))

	identifierMap := ExtractIdentifiersFromTagsFile(tagFile)

	require.Equal(t, FiletypeIdentifierMap{
		"go": {
			filepath.Join(dir, "foo.go"): {"alpha", "beta"},
			filepath.Join(dir, "bar.go"): {"gamma"},
		},
	}, identifierMap)
}

func TestExtractIdentifiersFromMissingTagsFile(t *testing.T) {
	identifierMap := ExtractIdentifiersFromTagsFile("/does/not/exist/tags")
	require.Empty(t, identifierMap)
}

func TestLanguageFiletypeTable(t *testing.T) {
	require.Equal(t, "cpp", langToFiletype["C++"])
	require.Equal(t, "cs", langToFiletype["C#"])
	require.Equal(t, "python", langToFiletype["Python"])
	require.Equal(t, "vim", langToFiletype["Vim"])
	require.Len(t, langToFiletype, 41)
}
