package gen

import (
	"text/template"
)

// Notice is the provenance header placed at the top of every generated class.
const Notice = `/*
 * Generated by sourcegen. DO NOT EDIT.
 * Changes are overwritten the next time the generator runs.
 */
`

var valueSetTemplate = template.Must(template.New("valueset").Parse(`{{.Notice}}
/**
 * {{.Header}}
 */
public inherited sharing class {{.ClassName}} {

{{range .Constants}}	public static final String {{.Name}} = '{{.Value}}';
{{end}}}
`))

var recordTypesTemplate = template.Must(template.New("recordtypes").Parse(`{{.Notice}}public inherited sharing class {{.ClassName}} {

{{range .Properties}}    public static RecordTypeInfo {{.Property}} {
        get { return {{.Property}} = {{.Property}} != null
                ? {{.Property}} : Schema.SObjectType.{{.ObjectName}}.getRecordTypeInfosByDeveloperName().get('{{.DeveloperName}}'); }
        private set;
    }
    public static Id {{.IDProperty}} {
        get { return {{.Property}}.getRecordTypeId(); }
        private set;
    }
{{end}}}
`))

var recordTypesTestTemplate = template.Must(template.New("recordtypestest").Parse(`{{.Notice}}@IsTest private class {{.TestClassName}} {

    private static void notNull(Object it) {
        System.assertNotEquals(null, it);
    }

    @IsTest private static void test() {
{{range .Properties}}        notNull({{$.ClassName}}.{{.IDProperty}});
{{end}}    }
}
`))
