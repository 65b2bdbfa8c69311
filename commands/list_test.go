package commands

import (
	"bytes"
	"fmt"
	"testing"
)

type brokenWriter struct {
}

func (w *brokenWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestWriteListing(t *testing.T) {
	expected := "Name\tDrive ID\n" +
		"a.png\tID_A\n" +
		"b.png\tID_B\n"

	records := [][]string{
		{"a.png", "ID_A"},
		{"b.png", "ID_B"},
	}

	var b bytes.Buffer

	if err := writeListing(&b, records); err != nil {
		t.Fatalf("Unexpected error returned from writeListing (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect listing\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestWriteListingWithBrokenWriter(t *testing.T) {
	records := [][]string{
		{"a.png", "ID_A"},
	}

	if err := writeListing(&brokenWriter{}, records); err == nil {
		t.Fatalf("Expected error return for broken writer, got %v", err)
	}
}
