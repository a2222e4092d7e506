package utils

import (
	"testing"
	"time"
)

func TestGenerateReferenceNo(t *testing.T) {
	at := time.UnixMilli(1700000012345)
	if got := GenerateReferenceNo(at); got != "BR-00012345" {
		t.Errorf("GenerateReferenceNo = %q, want %q", got, "BR-00012345")
	}
}

func TestGenerateReferenceNoPadsShortSuffix(t *testing.T) {
	at := time.UnixMilli(1700000000007)
	if got := GenerateReferenceNo(at); got != "BR-00000007" {
		t.Errorf("GenerateReferenceNo = %q, want %q", got, "BR-00000007")
	}
}

func TestDocumentKey(t *testing.T) {
	got := DocumentKey("availments", "m1", "tok123", "barangay clearance.pdf")
	want := "availments/m1/tok123_barangay_clearance.pdf"
	if got != want {
		t.Errorf("DocumentKey = %q, want %q", got, want)
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"clearance.pdf", "clearance.pdf"},
		{"../../etc/passwd", "passwd"},
		{"C:\\docs\\id card.jpg", "id_card.jpg"},
		{"  ", "file"},
		{"", "file"},
	}
	for _, c := range cases {
		if got := SanitizeFileName(c.in); got != c.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
