package metadata

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is a metadata category handled by the generator.
type Kind int

const (
	_ Kind = iota // zero value is invalid

	KindCustomField
	KindStandardValueSet
	KindGlobalValueSet
	KindRecordType
)

// Suffix returns the source-format file suffix for the kind.
func (k Kind) Suffix() string {
	switch k {
	case KindCustomField:
		return ".field-meta.xml"
	case KindStandardValueSet:
		return ".standardValueSet-meta.xml"
	case KindGlobalValueSet:
		return ".globalValueSet-meta.xml"
	case KindRecordType:
		return ".recordType-meta.xml"
	default:
		return ""
	}
}

// Dir returns the directory name files of this kind live under.
func (k Kind) Dir() string {
	switch k {
	case KindCustomField, KindRecordType:
		return "objects"
	case KindStandardValueSet:
		return "standardValueSets"
	case KindGlobalValueSet:
		return "globalValueSets"
	default:
		return ""
	}
}

// Describe returns the lower-case phrase used in generated class headers.
func (k Kind) Describe() string {
	switch k {
	case KindCustomField:
		return "custom field value set"
	case KindStandardValueSet:
		return "standard value set"
	case KindGlobalValueSet:
		return "global value set"
	case KindRecordType:
		return "record type"
	default:
		return "unknown"
	}
}
