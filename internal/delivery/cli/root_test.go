package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	domainerrors "addressconv/internal/domain/errors"
	"addressconv/internal/domain/repository"
	"addressconv/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var savedIDPattern = regexp.MustCompile(`Saved address with ID: ([0-9a-f-]{36})`)

// setupStorage points the JSON store at a fresh directory.
func setupStorage(t *testing.T) string {
	t.Helper()

	t.Chdir(t.TempDir())
	dir := filepath.Join(t.TempDir(), "json_storage")
	t.Setenv("STORAGE_DIR", dir)
	t.Setenv("ENV_LOG_LEVEL", "error")

	return dir
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func saveAddress(t *testing.T, address, format string) string {
	t.Helper()

	code, out, errOut := run(t, "save", "--address", address, "--from-format", format)
	require.Equal(t, ExitOK, code, errOut)

	match := savedIDPattern.FindStringSubmatch(out)
	require.Len(t, match, 2, out)

	return match[1]
}

func TestCLI_SaveFetchISO(t *testing.T) {
	dir := setupStorage(t)

	id := saveAddress(t, `{"name": "Monsieur Jean DELHOURME", "street": "25 RUE DE L'EGLISE", "postal": "33380 MIOS", "country": "FRANCE"}`, "french")

	_, err := os.Stat(filepath.Join(dir, id+".json"))
	require.NoError(t, err)

	code, out, errOut := run(t, "fetch", id, "--format", "iso20022")
	require.Equal(t, ExitOK, code, errOut)

	var iso map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &iso))
	postal := iso["postal_address"].(map[string]any)
	assert.Equal(t, "33380", postal["postcode"])
	assert.Equal(t, "MIOS", postal["town_name"])
	assert.Equal(t, "FR", postal["country"])
}

func TestCLI_SaveBusinessFetchFrench(t *testing.T) {
	setupStorage(t)

	id := saveAddress(t, `{"business_name": "Société DUPONT", "postal_address": {"street_name": "RUE DU MOULIN", "postcode": "34092", "town_name": "MONTPELLIER CEDEX 5", "country": "FR"}}`, "iso20022")

	code, out, errOut := run(t, "fetch", id, "-f", "french")
	require.Equal(t, ExitOK, code, errOut)

	var french map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &french))
	assert.Contains(t, french["postal"], "34092")
	assert.Equal(t, "FRANCE", french["country"])
}

func TestCLI_UpdateDelete(t *testing.T) {
	setupStorage(t)

	id := saveAddress(t, `{"name": "Jean", "street": "1 RUE HAUTE", "postal": "75001 PARIS", "country": "FRANCE"}`, "french")

	code, out, errOut := run(t, "update", id, "--address", `{"name": "Jean", "postal_address": {"street_name": "RUE BASSE", "building_number": "2", "postcode": "75002", "town_name": "PARIS", "country": "FR"}}`, "--from-format", "ISO20022")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "Updated address with ID: "+id+"\n", out)

	code, out, _ = run(t, "fetch", id, "--format", "french")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, out, "2 RUE BASSE")

	code, out, _ = run(t, "delete", id)
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "Deleted address with ID: "+id+"\n", out)

	code, _, errOut = run(t, "fetch", id, "--format", "french")
	assert.Equal(t, ExitNotFound, code)
	assert.True(t, strings.HasPrefix(errOut, "Error: "), errOut)
}

func TestCLI_Convert(t *testing.T) {
	dir := setupStorage(t)

	code, out, errOut := run(t, "convert",
		"--address", `{"business_name": "Société DUPONT", "recipient": "Mademoiselle Lucie MARTIN", "street": "56 RUE EMILE ZOLA", "distribution_info": "BP 90432 MONTFERRIER SUR LEZ", "postal": "34092 MONTPELLIER CEDEX 5", "country": "FRANCE"}`,
		"--from-format", "french", "--to-format", "iso20022")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, `"town_location_name": "MONTFERRIER SUR LEZ"`)
	assert.Contains(t, out, `"postbox": "BP 90432"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCLI_ExitCodes(t *testing.T) {
	setupStorage(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "invalid payload", args: []string{"save", "--address", `{"name": "Jean"}`, "--from-format", "french"}, want: ExitValidation},
		{name: "unknown format", args: []string{"save", "--address", `{}`, "--from-format", "xml"}, want: ExitValidation},
		{name: "unsupported country", args: []string{"save", "--address", `{"name": "Jean", "street": "1 MAIN STREET", "postal": "10001 TOKYO", "country": "JAPON"}`, "--from-format", "french"}, want: ExitConversion},
		{name: "unknown id", args: []string{"delete", "6f1c2a5e-1d4b-4f39-9a51-1e7a7c7f0b11"}, want: ExitNotFound},
		{name: "malformed id", args: []string{"delete", "42"}, want: ExitValidation},
		{name: "missing flag", args: []string{"fetch", "6f1c2a5e-1d4b-4f39-9a51-1e7a7c7f0b11"}, want: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			assert.Equal(t, tt.want, code, errOut)
		})
	}
}

func TestCLI_Version(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	code, out, _ := run(t, "version")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "addressconv 1.2.3\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitValidation, ExitCode(errors.Wrap(domainerrors.NewValidationError(), "wrapped")))
	assert.Equal(t, ExitConversion, ExitCode(domainerrors.NewConversionError("country", "unsupported")))
	assert.Equal(t, ExitNotFound, ExitCode(repository.ErrAddressNotFound.WrapMessage("address")))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}
