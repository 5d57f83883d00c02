package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/webbfontaine/i18n-asset-pipeline/internal/bundle"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/textutil"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/transpiler"
	"github.com/webbfontaine/i18n-asset-pipeline/internal/worker"
)

// Options configure a Compiler.
type Options struct {
	// BundleDirs are searched for message bundles after the asset's own
	// directory.
	BundleDirs []string
	// DefaultLocale applies to assets whose name carries no locale suffix.
	DefaultLocale string
	// Cache tracks content digests between runs. Nil disables skipping.
	Cache *DigestCache
	// Force recompiles every asset regardless of digests.
	Force bool
	// Workers is the tree-compile concurrency.
	Workers int
}

// Compiler renders .i18n assets into JavaScript message scripts.
type Compiler struct {
	opts Options
}

// NewCompiler creates a Compiler.
func NewCompiler(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

// Output is one compiled asset.
type Output struct {
	Asset Asset
	// JS is the full generated script.
	JS string
	// Digest identifies the request body plus resolved bundle content.
	Digest string
}

// Compile renders a single asset. Bundle misses are not errors; only an
// unreadable request file fails.
func (c *Compiler) Compile(a Asset) (*Output, error) {
	body, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", a.Rel, err)
	}

	assetDir := filepath.Dir(a.Path)
	req := ParseRequest(string(body), func(name string) (string, error) {
		imported, err := os.ReadFile(filepath.Join(assetDir, name+assetExt))
		if err != nil {
			return "", err
		}
		return string(imported), nil
	})

	locale := a.Locale
	if locale == "" {
		locale = c.opts.DefaultLocale
	}

	dirs := append([]string{assetDir}, c.opts.BundleDirs...)
	loader := bundle.NewLoader(bundle.NewDirResolver(dirs...))
	bdl := loader.Load(a.Base, locale)

	var fragment string
	switch {
	case req.Filter != "":
		fragment = transpiler.RenderFiltered(req.Filter, bdl.Table)
	case len(req.Keys) == 0:
		fragment = transpiler.RenderAll(bdl.Table)
	default:
		fragment = transpiler.RenderKeys(req.Keys, bdl.Table)
	}

	return &Output{
		Asset:  a,
		JS:     transpiler.Wrap(fragment),
		Digest: textutil.Hash(string(body) + "\x00" + bdl.Resource + "\x00" + string(bdl.Raw)),
	}, nil
}

// CompileAssetFile renders a single asset addressed by path, outside of
// any tree walk.
func (c *Compiler) CompileAssetFile(path string) (*Output, error) {
	return c.Compile(newAsset(path, filepath.Base(path)))
}

// Summary reports the outcome of a tree compile.
type Summary struct {
	Compiled int
	Skipped  int
	Failed   int
}

// CompileTree discovers every asset under srcRoot and writes the
// generated scripts under outRoot, mirroring the source layout.
// Unchanged assets whose output already exists are skipped.
func (c *Compiler) CompileTree(ctx context.Context, srcRoot, outRoot string) (Summary, error) {
	var sum Summary

	assets, err := Walk(srcRoot)
	if err != nil {
		return sum, err
	}
	if len(assets) == 0 {
		return sum, nil
	}

	if err := os.MkdirAll(outRoot, 0755); err != nil {
		return sum, fmt.Errorf("create output directory: %w", err)
	}

	pool := worker.NewPool[Asset, *Output](c.opts.Workers,
		func(ctx context.Context, a Asset) (*Output, error) {
			return c.Compile(a)
		},
	)
	results := pool.Execute(ctx, assets)

	for _, res := range results {
		if res.Err != nil {
			sum.Failed++
			continue
		}
		out := res.Output
		if out == nil {
			// Undispatched after cancellation.
			continue
		}

		outPath := filepath.Join(outRoot, out.Asset.OutputRel())

		if c.upToDate(out, outPath) {
			sum.Skipped++
			log.Debug().Str("asset", out.Asset.Rel).Msg("Unchanged, skipping")
			continue
		}

		if err := writeScript(outPath, out.JS); err != nil {
			sum.Failed++
			log.Error().Err(err).Str("asset", out.Asset.Rel).Msg("Write failed")
			continue
		}

		if c.opts.Cache != nil {
			c.opts.Cache.Put(out.Asset.Rel, out.Digest)
		}
		sum.Compiled++
		log.Info().Str("asset", out.Asset.Rel).Str("output", outPath).Msg("Asset compiled")
	}

	if c.opts.Cache != nil {
		if err := c.opts.Cache.Save(); err != nil {
			log.Warn().Err(err).Msg("Failed to save digest cache")
		}
	}

	log.Info().
		Int("compiled", sum.Compiled).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Str("output", outRoot).
		Msg("Compile complete")

	return sum, nil
}

func (c *Compiler) upToDate(out *Output, outPath string) bool {
	if c.opts.Force || c.opts.Cache == nil {
		return false
	}
	if !c.opts.Cache.Unchanged(out.Asset.Rel, out.Digest) {
		return false
	}
	_, err := os.Stat(outPath)
	return err == nil
}

func writeScript(path, js string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create script directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(js), 0644); err != nil {
		return fmt.Errorf("write script: %w", err)
	}
	return nil
}
