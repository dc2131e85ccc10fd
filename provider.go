// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package segrules

import (
	"bytes"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

const defaultRulesFileSuffix = ".yaml"

// ProviderOptions configures rule set provider behavior.
type ProviderOptions struct {
	// Suffix is appended to rule set names to form file names.
	// Empty value defaults to ".yaml".
	Suffix string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	// BaseRules are merged before every loaded rules file.
	BaseRules Rules `json:"base_rules" yaml:"base_rules"`
	// EnableSymlinkEscapeCheck enables resolved-path validation to block
	// symlink/junction escapes outside provider root.
	// Default is false for lower cold-path overhead.
	EnableSymlinkEscapeCheck bool `json:"enable_symlink_escape_check,omitempty" yaml:"enable_symlink_escape_check,omitempty"`
}

// Provider resolves named rules files under a root directory and caches compiled segmenters.
//
// A Provider is safe for concurrent use; each rule set is loaded and compiled once.
type Provider struct {
	// cache stores compiled segmenter or load error by rule set name.
	cache map[string]*cachedSegmenter
	// base is merged before every rules file.
	base Rules
	// root is absolute provider root directory path.
	root string
	// resolvedRoot is provider root with symlinks/junctions resolved when possible.
	resolvedRoot string
	// suffix is rules file name suffix.
	suffix string

	// mu guards cache access.
	mu sync.Mutex
	// enableSymlinkEscapeCheck enables resolved-path root boundary validation.
	enableSymlinkEscapeCheck bool
}

// cachedSegmenter stores one compiled segmenter or a cached load error.
type cachedSegmenter struct {
	segmenter *Segmenter
	// err stores load/parse/compile error for deterministic repeated calls.
	err error
	// loading reports whether segmenter is currently being loaded by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one load attempt.
	wg sync.WaitGroup
}

// NewProvider creates a rule set provider rooted at rootDir.
func NewProvider(rootDir string, opts ProviderOptions) (*Provider, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	resolvedRoot := absRoot
	if opts.EnableSymlinkEscapeCheck {
		resolvedRoot, err = resolvePathOrAbs(absRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve root: %w", err)
		}
	}

	suffix, err := cleanRulesSuffix(opts.Suffix)
	if err != nil {
		return nil, err
	}

	return &Provider{
		root:                     absRoot,
		resolvedRoot:             resolvedRoot,
		suffix:                   suffix,
		base:                     MergeRules(opts.BaseRules),
		enableSymlinkEscapeCheck: opts.EnableSymlinkEscapeCheck,
		cache:                    make(map[string]*cachedSegmenter),
	}, nil
}

// Segmenter returns the compiled segmenter of a named rule set.
//
// The name "news/ja" loads "<root>/news/ja<suffix>" merged after BaseRules.
func (p *Provider) Segmenter(name string) (*Segmenter, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	clean, err := cleanRuleSetName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}

	return p.loadSegmenter(clean)
}

// Segment segments text with a named rule set.
func (p *Provider) Segment(name string, text string) (iter.Seq[Segment], error) {
	seg, err := p.Segmenter(name)
	if err != nil {
		return nil, err
	}

	return seg.Segment(text), nil
}

// Names lists rule set names available under provider root in sorted order.
func (p *Provider) Names() ([]string, error) {
	if p == nil {
		return nil, ErrNilProvider
	}

	var names []string
	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), p.suffix) {
			return nil
		}

		rel, err := filepath.Rel(p.root, path)
		if err != nil {
			return err
		}

		name, err := cleanRuleSetName(strings.TrimSuffix(rel, p.suffix))
		if err != nil {
			return nil
		}

		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list rule sets: %w", err)
	}

	slices.Sort(names)
	return names, nil
}

// loadSegmenter returns cached or newly loaded segmenter for one rule set.
func (p *Provider) loadSegmenter(name string) (*Segmenter, error) {
	p.mu.Lock()
	cached, ok := p.cache[name]
	if ok {
		loading := cached.loading
		p.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return cached.segmenter, cached.err
	}

	cached = &cachedSegmenter{
		loading: true,
	}
	cached.wg.Add(1)
	p.cache[name] = cached
	p.mu.Unlock()

	seg, loadErr := p.loadAndCompile(name)

	p.mu.Lock()
	cached.segmenter = seg
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	p.mu.Unlock()

	return seg, loadErr
}

// loadAndCompile loads one rules file and compiles it after base rules.
func (p *Provider) loadAndCompile(name string) (*Segmenter, error) {
	rulesPath := filepath.Join(p.root, filepath.FromSlash(name)+p.suffix)
	if p.enableSymlinkEscapeCheck {
		if err := p.validateRulesPath(rulesPath); err != nil {
			return nil, err
		}
	}

	content, err := os.ReadFile(rulesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRuleSetNotFound, name)
		}

		return nil, fmt.Errorf("read %s: %w", rulesPath, err)
	}

	rules, err := ParseRules(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rulesPath, err)
	}

	seg, err := MergeRules(p.base, rules).Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", rulesPath, err)
	}

	return seg, nil
}

// validateRulesPath resolves one rules file path and ensures it stays under provider root.
// Missing files pass and are reported by the read.
func (p *Provider) validateRulesPath(rulesPath string) error {
	if _, err := os.Lstat(rulesPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("stat %s: %w", rulesPath, err)
	}

	resolved, err := resolvePathOrAbs(rulesPath)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", rulesPath, err)
	}

	if !isPathWithinRoot(p.resolvedRoot, resolved) {
		return fmt.Errorf("%w: %s", ErrRulesPathOutsideRoot, rulesPath)
	}

	return nil
}
