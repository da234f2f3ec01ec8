package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/transform"

	"zultys-gsm7/smpp/coding"
)

const usage = `usage: gsm7 <command> [text]

commands:
  encode   text to unpacked GSM 03.38 bytes, printed as hex
  decode   hex GSM 03.38 bytes to text
  check    report how the text maps onto the GSM 03.38 tables
  clean    replace characters GSM 03.38 cannot carry

Input is read from the arguments, or from stdin without its final newline.`

var knownCommands = map[string]bool{
	"encode": true,
	"decode": true,
	"check":  true,
	"clean":  true,
}

// App runs one command against a configured codec.
type App struct {
	codec       *coding.Codec
	replacement rune
	metrics     *MetricExporter
	stdin       io.Reader
	stdout      io.Writer
}

// NewApp builds the codec described by cfg.
func NewApp(cfg Config, stdin io.Reader, stdout io.Writer) (*App, error) {
	codec, err := coding.NewCodec(cfg.Codec)
	if err != nil {
		return nil, err
	}
	return &App{
		codec:       codec,
		replacement: codec.Config().Replacement,
		metrics:     NewMetricExporter(),
		stdin:       stdin,
		stdout:      stdout,
	}, nil
}

// Run executes the command named by args[0].
func (app *App) Run(args []string) error {
	logf := LoggingFormat{Path: "commands", Function: "Run"}
	logf.AddField("log_id", uuid.New().String())

	if len(args) == 0 || !knownCommands[args[0]] {
		fmt.Fprintln(app.stdout, usage)
		logf.Level = logrus.ErrorLevel
		logf.Message = "missing or unknown command"
		return logf.ToError()
	}
	logf.AddField("command", args[0])

	input, err := app.input(args[1:])
	if err != nil {
		logf.Level = logrus.ErrorLevel
		logf.Message = "failed to read input"
		logf.Error = err
		return logf.ToError()
	}

	switch args[0] {
	case "encode":
		err = app.encode(input)
	case "decode":
		err = app.decode(input)
	case "check":
		err = app.check(input)
	case "clean":
		err = app.clean(input)
	}

	if err != nil {
		app.metrics.ObserveFailure(args[0], err)
		logf.Level = logrus.ErrorLevel
		logf.Message = args[0] + " failed"
		logf.Error = err
		return logf.ToError()
	}

	logf.Level = logrus.DebugLevel
	logf.Message = args[0] + " done"
	logf.AddField("input_bytes", len(input))
	logf.Print()
	return nil
}

func (app *App) input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(app.stdin)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func (app *App) encode(text string) error {
	app.metrics.ObserveText("encode", text)

	// buffered so a strict failure prints nothing
	var buf bytes.Buffer
	w := transform.NewWriter(&buf, app.codec.NewEncoder())
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	app.metrics.ObserveBytes("encode", buf.Len())

	_, err := fmt.Fprintln(app.stdout, hex.EncodeToString(buf.Bytes()))
	return err
}

func (app *App) decode(input string) error {
	p, err := hex.DecodeString(strings.Join(strings.Fields(input), ""))
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	app.metrics.ObserveBytes("decode", len(p))

	text, err := app.codec.Decode(p)
	if err != nil {
		return err
	}
	app.metrics.ObserveText("decode", text)

	_, err = fmt.Fprintln(app.stdout, text)
	return err
}

func (app *App) check(text string) error {
	a := coding.Analyze(text)
	app.metrics.ObserveText("check", text)

	fmt.Fprintf(app.stdout, "runes:      %d\n", a.Runes)
	fmt.Fprintf(app.stdout, "septets:    %d\n", a.Septets)
	fmt.Fprintf(app.stdout, "main:       %d\n", a.Main)
	fmt.Fprintf(app.stdout, "extension:  %d\n", a.Extension)
	fmt.Fprintf(app.stdout, "unmappable: %d\n", len(a.Unmappable))
	runes := []rune(text)
	for _, pos := range a.Unmappable {
		fmt.Fprintf(app.stdout, "  %d: %U %q\n", pos, runes[pos], runes[pos])
	}
	_, err := fmt.Fprintf(app.stdout, "smpp coding: %s\n", GetSMSEncoding(text))
	return err
}

func (app *App) clean(text string) error {
	cleaned := ValidateAndCleanSMS(text, app.replacement)
	app.metrics.ObserveText("clean", cleaned)
	_, err := fmt.Fprintln(app.stdout, cleaned)
	return err
}
