package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// Минимальный набор частей OOXML-пакета для word-документа.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`
)

// SaveDocx пишет саммари как .docx: заголовок, имя исходного файла,
// по одному параграфу на непустую строку саммари.
func SaveDocx(summary, sourceName, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create docx: %w", err)
	}

	zw := zip.NewWriter(f)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(summary, sourceName)},
	}
	for _, part := range parts {
		name, content := part.name, part.content
		w, err := zw.Create(name)
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to finish docx: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close docx: %w", err)
	}
	return nil
}

func documentXML(summary, sourceName string) string {
	var buf strings.Builder

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	buf.WriteString(`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Document Summary</w:t></w:r></w:p>`)
	if sourceName != "" {
		writeParagraph(&buf, "Original file: "+sourceName)
	}
	writeParagraph(&buf, "")

	for _, line := range strings.Split(summary, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		writeParagraph(&buf, line)
	}

	buf.WriteString(`</w:body></w:document>`)
	return buf.String()
}

func writeParagraph(buf *strings.Builder, text string) {
	buf.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
	_ = xml.EscapeText(buf, []byte(text))
	buf.WriteString(`</w:t></w:r></w:p>`)
}
