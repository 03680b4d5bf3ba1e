package parser

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Extract reads a DOCX document from r and returns the plain text of its
// body paragraphs, joined with single newlines in document order. Empty
// paragraphs contribute empty lines; a document with no paragraphs yields "".
// Paragraphs nested inside tables are not body paragraphs and are skipped.
func Extract(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read document stream: %w", err)
	}

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX file: %w", err)
	}
	defer doc.Close()

	paragraphs, err := splitParagraphs(doc.Editable().GetContent())
	if err != nil {
		return "", err
	}

	return strings.Join(paragraphs, "\n"), nil
}

// splitParagraphs walks the document XML and collects the text of each
// top-level w:p element: w:t character data plus tabs and line breaks from
// the runs, formatting ignored.
func splitParagraphs(document string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(document))

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inRun      bool
		inText     bool
		tableDepth int
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed document XML: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inPara = true
					current.Reset()
				}
			case "r":
				inRun = inPara
			case "t":
				inText = inRun
			case "tab":
				if inRun {
					current.WriteByte('\t')
				}
			case "br", "cr":
				if inRun {
					current.WriteByte('\n')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if tableDepth == 0 && inPara {
					paragraphs = append(paragraphs, current.String())
					inPara = false
				}
			case "r":
				inRun = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
