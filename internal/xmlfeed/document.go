package xmlfeed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ParseDocument parses a feed response and returns its root element, whose
// direct children are the record elements. Documents that are not
// well-formed, declare a DTD or entities, or have no root element are
// rejected with a *MalformedDocumentError.
func ParseDocument(raw []byte) (*etree.Element, error) {
	if err := checkWellFormed(raw); err != nil {
		return nil, &MalformedDocumentError{Err: err}
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, &MalformedDocumentError{Err: err}
	}

	root := doc.Root()
	if root == nil {
		return nil, &MalformedDocumentError{Err: ErrNoRootElement}
	}
	return root, nil
}

// checkWellFormed runs a strict token pass over the document, which also
// catches unbalanced tags and trailing top-level elements that a raw token
// reader lets through.
func checkWellFormed(raw []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.CharsetReader = charset.NewReaderLabel

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch tok.(type) {
		case xml.Directive:
			return ErrUnsafeDocument
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return ErrMultipleRoots
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
}
