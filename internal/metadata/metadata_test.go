package metadata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcegen/internal/errors"
)

const statusField = `<?xml version="1.0" encoding="UTF-8"?>
<CustomField xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Status__c</fullName>
    <label>Status</label>
    <type>Picklist</type>
    <valueSet>
        <restricted>true</restricted>
        <valueSetDefinition>
            <sorted>false</sorted>
            <value>
                <fullName>New</fullName>
                <default>true</default>
                <label>New</label>
            </value>
            <value>
                <fullName>Won't Do</fullName>
                <default>false</default>
                <label>Won't Do</label>
            </value>
        </valueSetDefinition>
    </valueSet>
</CustomField>
`

const leadStatus = `<?xml version="1.0" encoding="UTF-8"?>
<StandardValueSet xmlns="http://soap.sforce.com/2006/04/metadata">
    <sorted>false</sorted>
    <standardValue>
        <fullName>Open</fullName>
        <default>true</default>
        <label>Open</label>
    </standardValue>
    <standardValue>
        <fullName>Closed</fullName>
        <default>false</default>
        <label>Closed</label>
    </standardValue>
</StandardValueSet>
`

const supportRecordType = `<?xml version="1.0" encoding="UTF-8"?>
<RecordType xmlns="http://soap.sforce.com/2006/04/metadata">
    <fullName>Support</fullName>
    <active>true</active>
    <label>Support</label>
</RecordType>
`

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestKind(t *testing.T) {
	assert.Equal(t, "CustomField", KindCustomField.String())
	assert.Equal(t, "RecordType", KindRecordType.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())

	assert.Equal(t, ".standardValueSet-meta.xml", KindStandardValueSet.Suffix())
	assert.Equal(t, "globalValueSets", KindGlobalValueSet.Dir())
	assert.Equal(t, "objects", KindRecordType.Dir())
	assert.Equal(t, "custom field value set", KindCustomField.Describe())
}

func TestDecode_CustomField(t *testing.T) {
	field, err := Decode[CustomField]([]byte(statusField))
	require.NoError(t, err)

	assert.Equal(t, "Status__c", field.FullName)
	assert.True(t, field.HasValueSet())
	assert.Equal(t, []string{"New", "Won't Do"}, ValueNames(field.InlineValues()), spew.Sdump(field))
}

func TestDecode_GlobalValueSetReference(t *testing.T) {
	field, err := Decode[CustomField]([]byte(`<CustomField>
    <fullName>Region__c</fullName>
    <type>MultiselectPicklist</type>
    <valueSet><valueSetName>Regions</valueSetName></valueSet>
</CustomField>`))
	require.NoError(t, err)

	assert.True(t, field.HasValueSet())
	assert.Equal(t, "Regions", field.ValueSet.ValueSetName)
	assert.Nil(t, field.InlineValues())
}

func TestDecode_NonPicklist(t *testing.T) {
	field, err := Decode[CustomField]([]byte(`<CustomField><fullName>Notes__c</fullName><type>LongTextArea</type></CustomField>`))
	require.NoError(t, err)
	assert.False(t, field.HasValueSet())
}

func TestDecode_RecordType(t *testing.T) {
	rt, err := Decode[RecordType]([]byte(supportRecordType))
	require.NoError(t, err)

	assert.Equal(t, "Support", rt.FullName)
	assert.True(t, rt.Active)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode[RecordType]([]byte(`<RecordType><fullName>x</RecordType>`))
	require.Error(t, err)
}

func TestValueNames_DropsEmpty(t *testing.T) {
	names := ValueNames([]CustomValue{{FullName: "A"}, {Label: "no name"}, {FullName: "B"}, {FullName: "A"}})
	assert.Equal(t, []string{"A", "B", "A"}, names)
}

func TestObjectNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"force-app/main/default/objects/Account/fields/Status__c.field-meta.xml", "Account", true},
		{`C:\proj\force-app\main\default\objects\Case\recordTypes\Support.recordType-meta.xml`, "Case", true},
		{"objects/Ship__c/fields/Mode__c.field-meta.xml", "Ship__c", true},
		{"/a/objects/Old/b/objects/New__c/fields/F.field-meta.xml", "New__c", true},
		{"force-app/main/default/fields/Status__c.field-meta.xml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := ObjectNameFromPath(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValueSetNameFromPath(t *testing.T) {
	name, ok := ValueSetNameFromPath("force-app/main/default/standardValueSets/LeadStatus.standardValueSet-meta.xml", KindStandardValueSet)
	assert.True(t, ok)
	assert.Equal(t, "LeadStatus", name)

	name, ok = ValueSetNameFromPath(`x\globalValueSets\Regions.globalValueSet-meta.xml`, KindGlobalValueSet)
	assert.True(t, ok)
	assert.Equal(t, "Regions", name)

	_, ok = ValueSetNameFromPath("force-app/misc/LeadStatus.standardValueSet-meta.xml", KindStandardValueSet)
	assert.False(t, ok)

	_, ok = ValueSetNameFromPath("globalValueSets/Regions.globalValueSet-meta.xml", KindStandardValueSet)
	assert.False(t, ok)

	_, ok = ValueSetNameFromPath("standardValueSets/.standardValueSet-meta.xml", KindStandardValueSet)
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "force-app/main/default/objects/Case/fields/Reason__c.field-meta.xml", statusField)
	writeFile(t, root, "force-app/main/default/objects/Account/fields/Status__c.field-meta.xml", statusField)
	writeFile(t, root, "force-app/main/default/objects/Account/Account.object-meta.xml", "<CustomObject/>")
	writeFile(t, root, "node_modules/pkg/objects/X/fields/Y.field-meta.xml", statusField)
	writeFile(t, root, ".sfdx/objects/X/fields/Y.field-meta.xml", statusField)

	paths, err := Find(root, KindCustomField)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// Lexical walk order
	assert.Contains(t, paths[0], filepath.Join("Account", "fields", "Status__c.field-meta.xml"))
	assert.Contains(t, paths[1], filepath.Join("Case", "fields", "Reason__c.field-meta.xml"))
}

func TestFind_UnknownKind(t *testing.T) {
	_, err := Find(t.TempDir(), Kind(0))
	require.Error(t, err)
}

func TestFindAndLoad_PreservesOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"} {
		writeFile(t, root, "objects/Obj/recordTypes/"+name+".recordType-meta.xml",
			"<RecordType><fullName>"+name+"</fullName><active>true</active></RecordType>")
	}

	files, err := FindAndLoad[RecordType](context.Background(), root, KindRecordType)
	require.NoError(t, err)
	require.Len(t, files, 10)

	for i, f := range files {
		assert.Equal(t, string(rune('A'+i)), f.Doc.FullName)
		assert.Contains(t, f.Path, f.Doc.FullName+".recordType-meta.xml")
	}
}

func TestLoad_ErrorNamesPath(t *testing.T) {
	root := t.TempDir()
	good := writeFile(t, root, "standardValueSets/LeadStatus.standardValueSet-meta.xml", leadStatus)
	bad := writeFile(t, root, "standardValueSets/Broken.standardValueSet-meta.xml", "<StandardValueSet>")

	_, err := Load[StandardValueSet](context.Background(), []string{good, bad}, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = Load[StandardValueSet](context.Background(), []string{filepath.Join(root, "missing.xml")}, 1)
	require.Error(t, err)
	assert.False(t, errors.IsFatal(err))
}

func TestRecordSource(t *testing.T) {
	assert.Equal(t, "Account__c.Status__c", ValueSetRecord{OwnerName: "Account__c", MemberName: "Status__c"}.Source())
	assert.Equal(t, "LeadStatus", ValueSetRecord{OwnerName: "LeadStatus"}.Source())
	assert.Equal(t, "Case.Support", RecordTypeRecord{ObjectName: "Case", DeveloperName: "Support"}.Source())
}
