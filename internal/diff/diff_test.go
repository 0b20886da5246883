package diff

import (
	"strings"
	"testing"
)

const sample = `diff --git a/client/signer.go b/client/signer.go
index 1111111..2222222 100644
--- a/client/signer.go
+++ b/client/signer.go
@@ -10,6 +10,9 @@ func Sign(req *Request, key string) error {
 	if key == "" {
 		return ErrMissingKey
 	}
+	mac := hmac.New(sha256.New, []byte(key))
+	mac.Write(req.Payload)
 	return nil
 }
diff --git a/client/signer_test.go b/client/signer_test.go
index 3333333..4444444 100644
--- a/client/signer_test.go
+++ b/client/signer_test.go
@@ -1,3 +1,2 @@
 package client
-
+// moved
`

func TestParseUnified(t *testing.T) {
	files := ParseUnified(sample)
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != "client/signer.go" {
		t.Fatalf("unexpected path: %q", files[0].Path)
	}
	if files[0].Additions != 2 || files[0].Deletions != 0 {
		t.Fatalf("unexpected counts: +%d/-%d", files[0].Additions, files[0].Deletions)
	}
	if files[1].Additions != 1 || files[1].Deletions != 1 {
		t.Fatalf("unexpected counts: +%d/-%d", files[1].Additions, files[1].Deletions)
	}
}

func TestParseUnifiedEmpty(t *testing.T) {
	if files := ParseUnified(""); len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}

func TestSummarize(t *testing.T) {
	out := Summarize(ParseUnified(sample))
	if !strings.Contains(out, "client/signer.go (+2/-0)") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if Summarize(nil) != "No files" {
		t.Fatalf("expected placeholder for empty list")
	}
}
