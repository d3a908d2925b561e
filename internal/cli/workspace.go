package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/skyfare/internal/domain"
	"github.com/aalvaropc/skyfare/internal/infra/quotestore"
	"github.com/aalvaropc/skyfare/internal/infra/workspacefinder"
	"github.com/aalvaropc/skyfare/internal/infra/yamlbatch"
	"github.com/aalvaropc/skyfare/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	batches ports.BatchLoader
	store   ports.QuoteStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		batches: yamlbatch.NewLoader(yamlbatch.WithBatchesDir(cfg.Paths.BatchesDir)),
		store:   quotestore.NewJSONStore(root, cfg, quotestore.WithIndex(true)),
	}, nil
}

// loadPolicy uses the workspace pricing when a workspace is available and
// falls back to the default policy otherwise. An explicit workspace flag
// must resolve.
func loadPolicy(workspaceFlag string) (domain.PricingPolicy, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil {
		return ws.cfg.Pricing, nil
	}
	if strings.TrimSpace(workspaceFlag) != "" || !domain.IsKind(err, domain.KindNotFound) {
		return domain.PricingPolicy{}, err
	}
	return domain.DefaultPricingPolicy(), nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `skyfare init`): %w", wd, err)
	}
	return root, nil
}

func resolveBatchPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("batch is required (use --batch or -b)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	dir := filepath.Join(ws.root, ws.cfg.Paths.BatchesDir)

	if hasYAMLExt(in) {
		if p := filepath.Join(dir, in); fileExists(p) {
			return p, nil
		}
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if p := filepath.Join(dir, in+ext); fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match by the batch "name" field.
	if refs, err := ws.batches.ListBatches(ws.root); err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("batch %q not found in %q", in, dir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
