package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sourcegen/internal/diagnostic"
	"sourcegen/internal/errors"
	"sourcegen/internal/gen"
	"sourcegen/internal/generate"
)

const sfdxProject = `{
  "packageDirectories": [{"path": "force-app", "default": true}],
  "sourceApiVersion": "59.0"
}`

const regions = `<?xml version="1.0" encoding="UTF-8"?>
<GlobalValueSet xmlns="http://soap.sforce.com/2006/04/metadata">
    <customValue>
        <fullName>EMEA</fullName>
        <default>false</default>
        <label>EMEA</label>
    </customValue>
    <masterLabel>Regions</masterLabel>
    <sorted>false</sorted>
</GlobalValueSet>
`

const support = `<?xml version="1.0" encoding="UTF-8"?>
<RecordType xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Support</fullName>
    <active>true</active>
    <label>Support</label>
</RecordType>
`

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "sfdx-project.json", sfdxProject)
	writeFile(t, root, "force-app/main/default/globalValueSets/Regions.globalValueSet-meta.xml", regions)
	writeFile(t, root, "force-app/main/default/objects/Case/recordTypes/Support.recordType-meta.xml", support)

	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	pterm.DisableColor()

	var out, errOut bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func classesDir(root string) string {
	return filepath.Join(root, "force-app", "main", "default", "classes")
}

func TestRecordTypes_DryRunPrintsManifest(t *testing.T) {
	root := newProject(t)

	out, err := execute(t, "record-types", "--project-dir", root, "--dry-run", "--output-class-name", "RT")
	require.NoError(t, err)

	var manifest gen.Manifest
	require.NoError(t, yaml.Unmarshal([]byte(out), &manifest))
	require.Len(t, manifest.Generated, 2)
	assert.Equal(t, "RT", manifest.Generated[0].Class)
	assert.Equal(t, "RTTest", manifest.Generated[1].Class)

	assert.NoDirExists(t, classesDir(root))
}

func TestPicklists_WritesClasses(t *testing.T) {
	root := newProject(t)

	out, err := execute(t, "picklists", "--project-dir", root, "--global-value-set-suffix", "Values")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 1 classes")

	body, err := os.ReadFile(filepath.Join(classesDir(root), "RegionsValues.cls"))
	require.NoError(t, err)
	assert.Contains(t, string(body), "public static final String EMEA = 'EMEA';")
	assert.FileExists(t, filepath.Join(classesDir(root), "RegionsValues.cls-meta.xml"))
}

func TestPicklists_PackageJSONConfig(t *testing.T) {
	root := newProject(t)
	writeFile(t, root, "package.json", `{"sourceGen": {"picklists": {"globalValueSetPrefix": "GV_"}}}`)

	_, err := execute(t, "picklists", "--project-dir", root)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(classesDir(root), "GV_Regions.cls"))
}

func TestCheck(t *testing.T) {
	root := newProject(t)

	out, err := execute(t, "check", "--project-dir", root)
	require.Error(t, err)
	assert.Contains(t, out, "out of date")
	assert.Contains(t, out, "(missing)")
	assert.NotEmpty(t, errors.GetAllHints(err))

	_, err = execute(t, "picklists", "--project-dir", root)
	require.NoError(t, err)
	_, err = execute(t, "record-types", "--project-dir", root)
	require.NoError(t, err)

	out, err = execute(t, "check", "--project-dir", root)
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	require.NoError(t, os.WriteFile(filepath.Join(classesDir(root), "Regions.cls"), []byte("edited"), 0o644))

	out, err = execute(t, "check", "--project-dir", root)
	require.Error(t, err)
	assert.Contains(t, out, "(modified)")
}

func TestNotDXProject(t *testing.T) {
	_, err := execute(t, "picklists", "--project-dir", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Contains(t, buf.String(), "Error: only DX projects are supported")
	assert.Contains(t, buf.String(), "Hint: ")
}

func TestInvalidOutputClassName(t *testing.T) {
	root := newProject(t)

	_, err := execute(t, "record-types", "--project-dir", root, "--output-class-name", "Record Types")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfig))
}

func TestKeepGoing(t *testing.T) {
	var buf bytes.Buffer

	invalid := keepGoing(func(context.Context) error {
		return errors.InvalidNamef("invalid record type developer name %q", "Bad Name")
	}, &buf)
	assert.NoError(t, invalid(context.Background()))
	assert.Contains(t, buf.String(), `Error: invalid record type developer name "Bad Name"`)

	diskFull := errors.New("disk full")
	failing := keepGoing(func(context.Context) error { return diskFull }, &buf)
	assert.ErrorIs(t, failing(context.Background()), diskFull)

	ok := keepGoing(func(context.Context) error { return nil }, &buf)
	assert.NoError(t, ok(context.Background()))
}

func TestPrintWarnings(t *testing.T) {
	pterm.DisableColor()

	var buf bytes.Buffer

	report := &generate.Report{}
	printWarnings(&buf, report)
	assert.Empty(t, buf.String())

	report.Diagnostics.AddWarning(diagnostic.CodeUnmatchedInclude, "include entry Acount matched nothing", "Acount", "")
	printWarnings(&buf, report)
	assert.Contains(t, buf.String(), "warning:")
	assert.Contains(t, buf.String(), "include entry Acount matched nothing")
}
