package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/fundomain/pkg/domain"
	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/observability"
	"github.com/matzehuels/fundomain/pkg/render"
	"github.com/matzehuels/fundomain/pkg/render/asy"
	"github.com/matzehuels/fundomain/pkg/render/schreier"
	"github.com/matzehuels/fundomain/pkg/render/svg"
	"github.com/matzehuels/fundomain/pkg/render/tikz"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, d *domain.Domain, opts Options) (artifacts map[string][]byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	items := render.Items(d, opts.Labels)
	ropts := render.Options{Width: d.Width(), Title: d.Group.String() + " fundamental domain"}

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := renderFormat(ctx, d, items, ropts, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, d *domain.Domain, items []render.Item, ropts render.Options, format string) ([]byte, error) {
	switch format {
	case FormatTeX:
		return tikz.Render(items, ropts)
	case FormatAsy:
		return asy.Render(items, ropts)
	case FormatSVG:
		return svg.Render(items, ropts, svg.WithHover()), nil
	case FormatDOT:
		return []byte(schreier.ToDOT(d, schreier.Options{})), nil
	case FormatGraphSVG:
		return schreier.RenderSVG(schreier.ToDOT(d, schreier.Options{}))
	case FormatPDFTeX:
		src, err := tikz.Render(items, ropts)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, render.PDFLaTeX, src)
	case FormatPDFAsy:
		src, err := asy.Render(items, ropts)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, render.Asymptote, src)
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
}
