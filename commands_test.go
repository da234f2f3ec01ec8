package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zultys-gsm7/smpp/coding"
)

func init() {
	logger.SetOutput(io.Discard)
}

func newTestApp(t *testing.T, codecCfg coding.Config, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	app, err := NewApp(Config{Codec: codecCfg, LogLevel: logrus.InfoLevel}, strings.NewReader(stdin), &stdout)
	require.NoError(t, err)
	return app, &stdout
}

var replaceCfg = coding.Config{Unmappable: coding.UnmappableReplace}

func TestNewAppRejectsInvalidCodec(t *testing.T) {
	_, err := NewApp(Config{}, strings.NewReader(""), io.Discard)
	assert.ErrorIs(t, err, coding.ErrNoUnmappablePolicy)
}

func TestRunEncode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want string
	}{
		{"args", []string{"encode", "abcd"}, "", "61626364\n"},
		{"joined args", []string{"encode", "a", "b"}, "", "612062\n"},
		{"stdin", []string{"encode"}, "ab@\n", "6162000d\n"},
		{"stdin crlf", []string{"encode"}, "ab@\r\n", "6162000d\n"},
		{"stdin no newline", []string{"encode"}, "ab", "6162\n"},
		{"extension", []string{"encode", "{€}"}, "", "1b281b651b29\n"},
		{"replaced", []string{"encode", "aжb"}, "", "613f62\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, replaceCfg, tt.in)
			require.NoError(t, app.Run(tt.args))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunEncodeStrict(t *testing.T) {
	app, out := newTestApp(t, coding.Config{Unmappable: coding.UnmappableStrict}, "")
	err := app.Run([]string{"encode", "abж"})
	require.ErrorIs(t, err, coding.ErrUnmappableCharacter)
	assert.Empty(t, out.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(app.metrics.failures.WithLabelValues("encode", "unmappable_character")))
}

func TestRunDecode(t *testing.T) {
	app, out := newTestApp(t, replaceCfg, "61 62 00 0d\n1b 65")
	require.NoError(t, app.Run([]string{"decode"}))
	assert.Equal(t, "ab@\r€\n", out.String())
	assert.Equal(t, 6.0, testutil.ToFloat64(app.metrics.bytes.WithLabelValues("decode")))
}

func TestRunDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		kind  string
	}{
		{"lone escape", "611b", coding.ErrInvalidEscapeSequence, "invalid_escape_sequence"},
		{"high byte", "61ff", coding.ErrInvalidMainTableByte, "invalid_main_table_byte"},
		{"not hex", "zz", nil, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, replaceCfg, "")
			err := app.Run([]string{"decode", tt.input})
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
			assert.Empty(t, out.String())
			assert.Equal(t, 1.0, testutil.ToFloat64(app.metrics.failures.WithLabelValues("decode", tt.kind)))
		})
	}
}

func TestRunCheck(t *testing.T) {
	app, out := newTestApp(t, replaceCfg, "")
	require.NoError(t, app.Run([]string{"check", "a€ж"}))

	report := out.String()
	assert.Contains(t, report, "runes:      3\n")
	assert.Contains(t, report, "septets:    3\n")
	assert.Contains(t, report, "extension:  1\n")
	assert.Contains(t, report, "unmappable: 1\n")
	assert.Contains(t, report, "  2: U+0436 'ж'\n")
	assert.Contains(t, report, "smpp coding: ")
}

func TestRunClean(t *testing.T) {
	app, out := newTestApp(t, coding.Config{Unmappable: coding.UnmappableReplace, Replacement: '_'}, "")
	require.NoError(t, app.Run([]string{"clean", "naïve €5 日"}))
	assert.Equal(t, "na_ve €5 _\n", out.String())
}

func TestRunUnknownCommand(t *testing.T) {
	for _, args := range [][]string{nil, {"pack"}} {
		app, out := newTestApp(t, replaceCfg, "")
		assert.Error(t, app.Run(args))
		assert.Contains(t, out.String(), "usage: gsm7")
	}
}

func TestMetricsTextfile(t *testing.T) {
	app, _ := newTestApp(t, replaceCfg, "")
	require.NoError(t, app.Run([]string{"encode", "a{b}"}))

	assert.Equal(t, 2.0, testutil.ToFloat64(app.metrics.runes.WithLabelValues("encode", "main")))
	assert.Equal(t, 2.0, testutil.ToFloat64(app.metrics.runes.WithLabelValues("encode", "extension")))
	assert.Equal(t, 6.0, testutil.ToFloat64(app.metrics.bytes.WithLabelValues("encode")))

	path := filepath.Join(t.TempDir(), "gsm7.prom")
	require.NoError(t, app.metrics.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `gsm7_runes_total{operation="encode",table="extension"} 2`)
}
