package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/orgtrace/internal/config"
	"github.com/joshuapare/orgtrace/pkg/types"
)

const cleanRecords = `First Name: Ada
Second Name: Lovelace
Fingerprint: AB12CD34E
Position: Boss

First Name: Alan
Second Name: Turing
Fingerprint: QW98ER76T
Position: Left Hand

First Name: Grace
Second Name: Hopper
Fingerprint: ZX55CV44B
Position: Support_Left

`

// resetGlobals restores flag and config state between tests
func resetGlobals() {
	verbose, quiet, jsonOut = false, false, false
	configPath, logDir, encoding = "", "", ""
	treeFormat, treeIndent, treeShowKeys, treeMax = "", 2, false, 0
	decryptSpan, decryptStrict = -1, false
	cfg = config.DefaultConfig()
}

// writeTemp writes content to a file in a fresh temp dir
func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// writeCipher writes fp transformed by op and mask as binary digit lines
func writeCipher(t *testing.T, fp string, mask byte, op types.Operation, lines int) string {
	t.Helper()
	key := types.FingerprintOf(fp)
	var sb strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&sb, "%08b\n", op.Apply(key[i], mask))
	}
	return writeTemp(t, "cipher_bits.txt", sb.String())
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
