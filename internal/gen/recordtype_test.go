package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sourcegen/internal/errors"
	"sourcegen/internal/metadata"
)

var caseRecordTypes = []metadata.RecordTypeRecord{
	{ObjectName: "Case", DeveloperName: "Support", Active: true},
	{ObjectName: "Case", DeveloperName: "Old", Active: false},
}

func TestRenderRecordTypes_ActiveOnly(t *testing.T) {
	content, err := RenderRecordTypes(caseRecordTypes, true, "RecordTypes")
	require.NoError(t, err)

	expected := Notice + `public inherited sharing class RecordTypes {

    public static RecordTypeInfo CASE_SUPPORT {
        get { return CASE_SUPPORT = CASE_SUPPORT != null
                ? CASE_SUPPORT : Schema.SObjectType.Case.getRecordTypeInfosByDeveloperName().get('Support'); }
        private set;
    }
    public static Id CASE_SUPPORT_ID {
        get { return CASE_SUPPORT.getRecordTypeId(); }
        private set;
    }
}
`
	assert.Equal(t, expected, content)
	assert.NotContains(t, content, "CASE_OLD")
}

func TestRenderRecordTypes_IncludeInactive(t *testing.T) {
	content, err := RenderRecordTypes(caseRecordTypes, false, "RecordTypes")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(content, "public static Id CASE_SUPPORT_ID"))
	assert.Equal(t, 1, strings.Count(content, "public static Id CASE_OLD_ID"))
	assert.Less(t, strings.Index(content, "CASE_SUPPORT"), strings.Index(content, "CASE_OLD"))
}

func TestRenderRecordTypes_CustomObject(t *testing.T) {
	content, err := RenderRecordTypes([]metadata.RecordTypeRecord{
		{ObjectName: "Shipment__c", DeveloperName: "Express", Active: true},
	}, true, "RT")
	require.NoError(t, err)

	assert.Contains(t, content, "public static RecordTypeInfo SHIPMENT_EXPRESS {")
	assert.Contains(t, content, "Schema.SObjectType.Shipment__c.getRecordTypeInfosByDeveloperName().get('Express')")
}

func TestRenderRecordTypes_Empty(t *testing.T) {
	content, err := RenderRecordTypes(nil, true, "RecordTypes")
	require.NoError(t, err)
	assert.Equal(t, Notice+"public inherited sharing class RecordTypes {\n\n}\n", content)
}

func TestRenderRecordTypes_MissingDeveloperName(t *testing.T) {
	records := []metadata.RecordTypeRecord{
		{ObjectName: "Case", DeveloperName: "Support", Active: true},
		{ObjectName: "Case", DeveloperName: "", Active: true},
	}

	_, err := RenderRecordTypes(records, true, "RecordTypes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingField))

	_, err = RenderRecordTypesTest(records, true, "RecordTypes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingField))
}

func TestRenderRecordTypes_InactiveWithoutNameIsFiltered(t *testing.T) {
	records := []metadata.RecordTypeRecord{
		{ObjectName: "Case", DeveloperName: "", Active: false},
	}

	_, err := RenderRecordTypes(records, true, "RecordTypes")
	require.NoError(t, err)

	_, err = RenderRecordTypes(records, false, "RecordTypes")
	require.Error(t, err)
}

func TestRenderRecordTypes_InvalidDeveloperName(t *testing.T) {
	_, err := RenderRecordTypes([]metadata.RecordTypeRecord{
		{ObjectName: "Case", DeveloperName: "Two Words", Active: true},
	}, true, "RecordTypes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidName))
	assert.Contains(t, err.Error(), "Case.Two Words")
}

func TestRenderRecordTypesTest(t *testing.T) {
	content, err := RenderRecordTypesTest(caseRecordTypes, false, "RecordTypes")
	require.NoError(t, err)

	expected := Notice + `@IsTest private class RecordTypesTest {

    private static void notNull(Object it) {
        System.assertNotEquals(null, it);
    }

    @IsTest private static void test() {
        notNull(RecordTypes.CASE_SUPPORT_ID);
        notNull(RecordTypes.CASE_OLD_ID);
    }
}
`
	assert.Equal(t, expected, content)
}

func TestTestClassName(t *testing.T) {
	assert.Equal(t, "RecordTypesTest", TestClassName("RecordTypes"))

	long := strings.Repeat("R", 40)
	name := TestClassName(long)
	assert.Len(t, name, 40)
	assert.True(t, strings.HasSuffix(name, "Test"))
}
