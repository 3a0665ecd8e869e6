package gen

import (
	"encoding/xml"
	"path/filepath"

	"sourcegen/internal/errors"
)

// File extensions of a generated class pair.
const (
	ClassExt     = ".cls"
	ClassMetaExt = ".cls-meta.xml"
)

// MetadataNamespace is the namespace of Salesforce metadata documents.
const MetadataNamespace = "http://soap.sforce.com/2006/04/metadata"

// StatusActive is the status stamped on every generated class.
const StatusActive = "Active"

// GeneratedClass is one class produced by a run.
type GeneratedClass struct {
	ClassName  string
	Body       string
	APIVersion string
}

// GeneratedFile is a file ready to be written.
type GeneratedFile struct {
	// Path is where the file goes, e.g. "force-app/main/default/classes/CaseStatus.cls".
	Path string
	// Content is the file body.
	Content []byte
}

type apexClassMeta struct {
	XMLName    xml.Name `xml:"ApexClass"`
	Xmlns      string   `xml:"xmlns,attr"`
	APIVersion string   `xml:"apiVersion"`
	Status     string   `xml:"status"`
}

// ClassMeta renders the metadata stamp for a class.
func ClassMeta(apiVersion string) ([]byte, error) {
	out, err := xml.MarshalIndent(apexClassMeta{
		Xmlns:      MetadataNamespace,
		APIVersion: apiVersion,
		Status:     StatusActive,
	}, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling class metadata")
	}

	content := make([]byte, 0, len(out)+64)
	content = append(content, `<?xml version="1.0" encoding="UTF-8"?>`+"\n"...)
	content = append(content, out...)
	content = append(content, '\n')

	return content, nil
}

// Files returns the class body file and its metadata stamp under outputDir.
func (c GeneratedClass) Files(outputDir string) ([]GeneratedFile, error) {
	meta, err := ClassMeta(c.APIVersion)
	if err != nil {
		return nil, err
	}

	return []GeneratedFile{
		{Path: filepath.Join(outputDir, c.ClassName+ClassExt), Content: []byte(c.Body)},
		{Path: filepath.Join(outputDir, c.ClassName+ClassMetaExt), Content: meta},
	}, nil
}
