package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/orgtrace/pkg/types"
)

func TestDecrypt(t *testing.T) {
	records := writeTemp(t, "clean.txt", cleanRecords)

	tests := []struct {
		name     string
		cipher   func(t *testing.T) string
		args     []string
		span     int
		json     bool
		contains []string
	}{
		{
			name:     "xor match",
			cipher:   func(t *testing.T) string { return writeCipher(t, "ZX55CV44B", 0x05, types.OpXOR, 9) },
			args:     []string{"0"},
			span:     -1,
			contains: []string{"Successful Decrypt! The Mask used was mask_5 of type (XOR) and The fingerprint was ZX55CV44B belonging to Grace Hopper"},
		},
		{
			name:     "mask beyond span",
			cipher:   func(t *testing.T) string { return writeCipher(t, "ZX55CV44B", 0x30, types.OpXOR, 9) },
			args:     []string{"0"},
			span:     -1,
			contains: []string{"Unsuccesful decrypt, Looks like he got away\n"},
		},
		{
			name:     "wider span",
			cipher:   func(t *testing.T) string { return writeCipher(t, "ZX55CV44B", 0x30, types.OpXOR, 9) },
			args:     []string{"40"},
			span:     10,
			contains: []string{"mask_48 of type (XOR)", "Grace Hopper"},
		},
		{
			name:     "json",
			cipher:   func(t *testing.T) string { return writeCipher(t, "AB12CD34E", 0x00, types.OpXOR, 9) },
			args:     []string{"0"},
			span:     -1,
			json:     true,
			contains: []string{`"found": true`, `"mask": 0`, `"operation": "XOR"`, `"fingerprint": "AB12CD34E"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals()
			decryptSpan = tt.span
			if tt.json {
				cfg.Output.Format = "json"
			}

			args := append([]string{records, tt.cipher(t)}, tt.args...)
			output, err := captureOutput(t, func() error { return runDecrypt(args) })
			require.NoError(t, err)

			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.contains)
		})
	}
}

func TestDecrypt_DefaultMaskStart(t *testing.T) {
	resetGlobals()
	cfg.Search.MaskStart = 3
	records := writeTemp(t, "clean.txt", cleanRecords)
	bits := writeCipher(t, "QW98ER76T", 0x07, types.OpXOR, 9)

	output, err := captureOutput(t, func() error { return runDecrypt([]string{records, bits}) })
	require.NoError(t, err)
	assertContains(t, output, []string{"mask_7", "Alan Turing"})
}

func TestDecrypt_IncompleteCipher(t *testing.T) {
	resetGlobals()
	records := writeTemp(t, "clean.txt", cleanRecords)
	bits := writeCipher(t, "ZX55CV44B", 0x05, types.OpXOR, 8)

	output, err := captureOutput(t, func() error { return runDecrypt([]string{records, bits, "0"}) })
	require.NoError(t, err)
	assertNotContains(t, output, []string{"Successful", "Unsuccesful"})
}

func TestDecrypt_BadMaskStart(t *testing.T) {
	resetGlobals()
	records := writeTemp(t, "clean.txt", cleanRecords)
	bits := writeCipher(t, "ZX55CV44B", 0x05, types.OpXOR, 9)

	_, err := captureOutput(t, func() error { return runDecrypt([]string{records, bits, "five"}) })
	require.Error(t, err)
}

func TestDecrypt_ConfigFormatAndQuiet(t *testing.T) {
	records := writeTemp(t, "clean.txt", cleanRecords)
	bits := writeCipher(t, "ZX55CV44B", 0x05, types.OpXOR, 9)

	t.Run("json from config", func(t *testing.T) {
		resetGlobals()
		configPath = writeTemp(t, "orgctl.yaml", "output:\n  format: json\n")
		require.NoError(t, setup(rootCmd, nil))

		output, err := captureOutput(t, func() error { return runDecrypt([]string{records, bits, "0"}) })
		require.NoError(t, err)
		assertJSON(t, output)
		assertContains(t, output, []string{`"found": true`, `"mask": 5`})
	})

	t.Run("quiet", func(t *testing.T) {
		resetGlobals()
		quiet = true

		output, err := captureOutput(t, func() error { return runDecrypt([]string{records, bits, "0"}) })
		require.NoError(t, err)
		require.Empty(t, output)
	})
}
