package network_wifi

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	output []byte
	err    error
	argv   []string
}

func (f *fakeRunner) Run(ctx context.Context, argv []string) ([]byte, error) {
	f.argv = argv
	return f.output, f.err
}

func newTestScanner(t *testing.T, variant Variant, device string, runner Runner) (*Scanner, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return NewScanner(variant, device, runner, logger), hook
}

func TestScannerScan(t *testing.T) {
	runner := &fakeRunner{output: []byte(readFixture(t, "nmcli.txt"))}
	scanner, _ := newTestScanner(t, VariantNMCLI, "wlan0", runner)

	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"nmcli", "-t", "-f", "ssid,bssid,signal,security", "device", "wifi", "list", "ifname", "wlan0"}, runner.argv)
	assert.Equal(t, VariantNMCLI, result.Variant)
	assert.Equal(t, "wlan0", result.Device)
	assert.Len(t, result.AccessPoints, 9)
	assert.Empty(t, result.Diagnostics)
}

func TestScannerSudo(t *testing.T) {
	runner := &fakeRunner{output: []byte(readFixture(t, "iwlist.txt"))}
	scanner, _ := newTestScanner(t, VariantIWList, "", runner)
	scanner.Sudo = true

	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"sudo", "iwlist", "scan"}, runner.argv)
	assert.Len(t, result.AccessPoints, 9)
}

func TestScannerLogsDiagnostics(t *testing.T) {
	runner := &fakeRunner{output: []byte("Home:A0\\:63\\:91\\:2B\\:9E\\:65:72:WPA2\nbroken\n")}
	scanner, hook := newTestScanner(t, VariantNMCLI, "", runner)

	result, err := scanner.Scan(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.AccessPoints, 1)
	require.Len(t, result.Diagnostics, 1)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
			assert.Equal(t, 2, entry.Data["line"])
			assert.Equal(t, "nmcli", entry.Data["variant"])
		}
	}
	assert.True(t, warned, "expected a warning for the skipped line")
}

func TestScannerCommandFailure(t *testing.T) {
	cmdErr := &CommandError{Command: []string{"nmcli"}, Stderr: "Error: NetworkManager is not running.", Err: errors.New("exit status 8")}

	t.Run("no output", func(t *testing.T) {
		scanner, _ := newTestScanner(t, VariantNMCLI, "", &fakeRunner{err: cmdErr})
		_, err := scanner.Scan(context.Background())

		var target *CommandError
		require.ErrorAs(t, err, &target)
		assert.Contains(t, err.Error(), "NetworkManager is not running")
	})

	t.Run("partial output", func(t *testing.T) {
		runner := &fakeRunner{output: []byte("Home:A0\\:63\\:91\\:2B\\:9E\\:65:72:WPA2\n"), err: cmdErr}
		scanner, hook := newTestScanner(t, VariantNMCLI, "", runner)

		result, err := scanner.Scan(context.Background())
		require.NoError(t, err)
		assert.Len(t, result.AccessPoints, 1)
		require.NotNil(t, hook.LastEntry())
	})
}

func TestScannerUnsupported(t *testing.T) {
	scanner, _ := newTestScanner(t, VariantUnsupported, "", &fakeRunner{})
	_, err := scanner.Scan(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}

func TestScannerOutputDecodes(t *testing.T) {
	runner := &fakeRunner{output: []byte{0xFF, 0xFE, 'o', 0, 'k', 0}}
	scanner, _ := newTestScanner(t, VariantNetsh, "", runner)

	out, err := scanner.Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestExecRunner(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	out, err := ExecRunner{}.Run(context.Background(), []string{"echo", "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))

	_, err = ExecRunner{}.Run(context.Background(), []string{"definitely-not-a-scan-tool"})
	var target *CommandError
	assert.ErrorAs(t, err, &target)

	_, err = ExecRunner{}.Run(context.Background(), nil)
	assert.Error(t, err)
}
