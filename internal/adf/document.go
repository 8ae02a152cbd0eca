// Package adf models the subset of the Atlassian Document Format used for
// pull request comments: a document of paragraphs holding text nodes, with
// an optional link mark on a text node.
package adf

import (
	"encoding/json"
	"fmt"
)

// schemaVersion is the ADF schema version carried on the document root.
const schemaVersion = 1

// NodeKind tags the variants of a document node.
type NodeKind string

const (
	// KindDoc is the document root.
	KindDoc NodeKind = "doc"
	// KindParagraph is a paragraph holding text nodes.
	KindParagraph NodeKind = "paragraph"
	// KindText is a literal text run, optionally carrying marks.
	KindText NodeKind = "text"
	// KindLink is a link mark with a target URL.
	KindLink NodeKind = "link"
)

// Node is a tagged union over the four supported node kinds. Only the
// fields belonging to a node's kind are meaningful: Version on the root,
// Text and Marks on text runs, Href on link marks, Content on the root
// and on paragraphs.
type Node struct {
	Kind    NodeKind
	Version int
	Text    string
	Href    string
	Content []Node
	Marks   []Node
}

// Doc constructs a document root wrapping the given paragraphs.
func Doc(paragraphs ...Node) Node {
	return Node{Kind: KindDoc, Version: schemaVersion, Content: paragraphs}
}

// Paragraph constructs a paragraph node from text runs.
func Paragraph(runs ...Node) Node {
	return Node{Kind: KindParagraph, Content: runs}
}

// Text constructs a text run carrying the given marks.
func Text(text string, marks ...Node) Node {
	return Node{Kind: KindText, Text: text, Marks: marks}
}

// Link constructs a link mark pointing at url.
func Link(url string) Node {
	return Node{Kind: KindLink, Href: url}
}

// MarshalJSON serializes a node in the shape the Jira comment API accepts.
// Empty optional fields are omitted entirely: non-root nodes carry no
// version, text runs without marks carry no "marks" key, and empty content
// sequences are never emitted as null placeholders.
func (n Node) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case KindDoc:
		return json.Marshal(struct {
			Version int    `json:"version"`
			Type    string `json:"type"`
			Content []Node `json:"content"`
		}{
			Version: n.Version,
			Type:    string(n.Kind),
			Content: n.Content,
		})
	case KindParagraph:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Content []Node `json:"content"`
		}{
			Type:    string(n.Kind),
			Content: n.Content,
		})
	case KindText:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Text  string `json:"text"`
			Marks []Node `json:"marks,omitempty"`
		}{
			Type:  string(n.Kind),
			Text:  n.Text,
			Marks: n.Marks,
		})
	case KindLink:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Attrs struct {
				Href string `json:"href"`
			} `json:"attrs"`
		}{
			Type: string(n.Kind),
			Attrs: struct {
				Href string `json:"href"`
			}{Href: n.Href},
		})
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

// commentPayload is the wire envelope of the comment creation endpoint.
type commentPayload struct {
	Body Node `json:"body"`
}

// Marshal serializes a document root into the request body expected by the
// comment creation endpoint.
func Marshal(doc Node) ([]byte, error) {
	data, err := json.Marshal(commentPayload{Body: doc})
	if err != nil {
		return nil, fmt.Errorf("encode comment document: %w", err)
	}
	return data, nil
}
