package render

import (
	"bytes"
	"fmt"
	"testing"
)

func TestDocumentProducesPDF(t *testing.T) {
	document, err := Document("Shopping list", []string{"flour: 500 g", "sugar: 50 g"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(document, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestDocumentEmptyList(t *testing.T) {
	document, err := Document("Shopping list", nil)
	if err != nil {
		t.Fatalf("render empty list: %v", err)
	}
	if len(document) == 0 {
		t.Error("expected a document even for an empty list")
	}
}

func TestDocumentOverflowsToNextPage(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = fmt.Sprintf("ingredient %03d: %d g", i, i)
	}

	long, err := Document("Shopping list", lines)
	if err != nil {
		t.Fatalf("render long list: %v", err)
	}
	short, err := Document("Shopping list", lines[:2])
	if err != nil {
		t.Fatalf("render short list: %v", err)
	}
	// 200 lines cannot fit one A4 page; the long document must carry
	// additional page objects.
	if bytes.Count(long, []byte("/Type /Page")) <= bytes.Count(short, []byte("/Type /Page")) {
		t.Errorf("expected the long list to span more pages than the short one")
	}
}
