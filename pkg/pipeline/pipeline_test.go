package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"tex", false},
		{"asy", false},
		{"svg", false},
		{"dot", false},
		{"graph-svg", false},
		{"pdf-tex", false},
		{"pdf-asy", false},
		{"png", true},
		{"TEX", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %q", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"tex", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"tex", "png"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateChoice(t *testing.T) {
	for _, name := range domain.ChoiceNames() {
		if err := ValidateChoice(name); err != nil {
			t.Errorf("ValidateChoice(%q): %v", name, err)
		}
	}
	if err := ValidateChoice("greedy"); !errors.Is(err, errors.ErrCodeInvalidChoice) {
		t.Errorf("ValidateChoice(greedy) = %v, want INVALID_CHOICE", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Group: "gamma0(17)"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.Choice != DefaultChoice {
		t.Errorf("Choice = %q, want %q", opts.Choice, DefaultChoice)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if opts.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", opts.Limit, DefaultLimit)
	}
	if len(opts.Formats) != 2 || opts.Formats[0] != FormatTeX || opts.Formats[1] != FormatAsy {
		t.Errorf("Formats = %v, want %v", opts.Formats, DefaultFormats)
	}
	if opts.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", opts.Output, DefaultOutput)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Defaults must not alias the package-level slice.
	opts.Formats[0] = FormatSVG
	if DefaultFormats[0] != FormatTeX {
		t.Error("ValidateAndSetDefaults aliased DefaultFormats")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing group", Options{}, errors.ErrCodeInvalidGroup},
		{"bad choice", Options{Group: "full", Choice: "greedy"}, errors.ErrCodeInvalidChoice},
		{"bad format", Options{Group: "full", Formats: []string{"png"}}, errors.ErrCodeInvalidFormat},
		{"negative limit", Options{Group: "full", Limit: -1}, errors.ErrCodeInvalidInput},
		{"limit above max", Options{Group: "full", Limit: MaxLimit + 1}, errors.ErrCodeInvalidInput},
		{"directory output", Options{Group: "full", Output: "out/"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	opts := Options{Output: "out/g17"}
	tests := map[string]string{
		FormatTeX:      "out/g17.tex",
		FormatAsy:      "out/g17.asy",
		FormatSVG:      "out/g17.svg",
		FormatDOT:      "out/g17.dot",
		FormatGraphSVG: "out/g17-graph.svg",
		FormatPDFTeX:   "out/g17-tex.pdf",
		FormatPDFAsy:   "out/g17-asy.pdf",
	}
	for format, want := range tests {
		if got := opts.FileName(format); got != want {
			t.Errorf("FileName(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType(FormatSVG); got != "image/svg+xml" {
		t.Errorf("ContentType(svg) = %q", got)
	}
	if got := ContentType(FormatPDFAsy); got != "application/pdf" {
		t.Errorf("ContentType(pdf-asy) = %q", got)
	}
	if got := ContentType(FormatTeX); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("ContentType(tex) = %q", got)
	}
}

func TestExecute(t *testing.T) {
	var buf bytes.Buffer
	r := NewRunner(log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel}))

	res, err := r.Execute(context.Background(), Options{
		Group:   "gamma0(17)",
		Labels:  true,
		Formats: []string{FormatTeX, FormatAsy, FormatSVG, FormatDOT},
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Stats.Cosets != 18 || res.Stats.Index != 18 {
		t.Errorf("Stats = %+v, want 18 cosets and index 18", res.Stats)
	}
	if res.Stats.Rounds == 0 {
		t.Error("Rounds should be recorded")
	}
	for _, f := range []string{FormatTeX, FormatAsy, FormatSVG, FormatDOT} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing artifact %q", f)
		}
	}
	if !strings.Contains(string(res.Artifacts[FormatTeX]), "Γ₀(17) fundamental domain") {
		t.Error("tex output should carry the group title")
	}
	for _, want := range []string{"enumerated cosets", "rendered outputs"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log missing %q:\n%s", want, buf.String())
		}
	}
}

func TestExecuteIsReproducible(t *testing.T) {
	r := NewRunner(nil)
	opts := Options{Group: "gamma1(5)", Choice: "random", Seed: 3, Formats: []string{FormatAsy}}

	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Artifacts[FormatAsy], b.Artifacts[FormatAsy]) {
		t.Error("same options produced different output")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil)

	_, err := r.Execute(context.Background(), Options{Group: "gamma2(5)"})
	if !errors.Is(err, errors.ErrCodeInvalidGroup) {
		t.Errorf("unknown group: err = %v, want INVALID_GROUP", err)
	}

	_, err = r.Execute(context.Background(), Options{Group: "gamma(5)", Limit: 10})
	if !stderrors.Is(err, domain.ErrLimitExceeded) {
		t.Errorf("limit: err = %v, want ErrLimitExceeded", err)
	}
	if !errors.Is(err, errors.ErrCodeLimitExceeded) {
		t.Errorf("limit: code = %q", errors.GetCode(err))
	}
}

func TestEnumerateRejectsIndexAboveLimit(t *testing.T) {
	hooks := &recordingEnumerationHooks{}
	observability.SetEnumerationHooks(hooks)
	t.Cleanup(observability.Reset)

	// Γ(30) has index 8640, so the default limit rules it out up front.
	start := time.Now()
	_, err := NewRunner(nil).Enumerate(context.Background(), Options{Group: "gamma(30)"})
	if !stderrors.Is(err, domain.ErrLimitExceeded) || !errors.Is(err, errors.ErrCodeLimitExceeded) {
		t.Fatalf("err = %v, want LIMIT_EXCEEDED", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("rejection took %s", elapsed)
	}
	if hooks.started {
		t.Error("enumeration started for a group whose index exceeds the limit")
	}

	// Exactly at the limit still enumerates.
	d, err := NewRunner(nil).Enumerate(context.Background(), Options{Group: "gamma0(17)", Limit: 18})
	if err != nil {
		t.Fatalf("Enumerate at limit: %v", err)
	}
	if d.Len() != 18 {
		t.Errorf("Len = %d, want 18", d.Len())
	}
}

type recordingEnumerationHooks struct {
	observability.NoopEnumerationHooks
	started bool
}

func (h *recordingEnumerationHooks) OnEnumerateStart(context.Context, string) { h.started = true }

type recordingRenderHooks struct {
	observability.NoopRenderHooks
	formats []string
	err     error
	done    bool
}

func (h *recordingRenderHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	h.formats, h.err, h.done = formats, err, true
}

func TestRenderHooks(t *testing.T) {
	h := &recordingRenderHooks{}
	observability.SetRenderHooks(h)
	defer observability.Reset()

	r := NewRunner(nil)
	if _, err := r.Execute(context.Background(), Options{Group: "full", Formats: []string{FormatSVG}}); err != nil {
		t.Fatal(err)
	}
	if !h.done || h.err != nil || len(h.formats) != 1 || h.formats[0] != FormatSVG {
		t.Errorf("hooks = %+v", h)
	}
}
