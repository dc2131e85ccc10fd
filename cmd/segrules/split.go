// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/segrules

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/segrules"
)

const (
	formatText  = "text"
	formatJSONL = "jsonl"

	templateJapanese = "ja"
	templateNone     = "none"

	stdinName = "-"
)

var (
	errUnknownTemplate = errors.New("unknown template")
	errUnknownFormat   = errors.New("unknown output format")
	errRuleSetNoDir    = errors.New("--rule-set requires --rules-dir")
)

// splitOptions holds split command flags.
type splitOptions struct {
	rules         []string
	rulesDir      string
	ruleSet       string
	template      string
	format        string
	maxQuoteDepth int
	// depthSet reports whether --max-quote-depth was given.
	depthSet bool
}

type splitCmd struct {
	cobra.Command
	splitOptions
}

// segmentRecord is one jsonl output line.
type segmentRecord struct {
	File  string `json:"file"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func newSplitCmd() *splitCmd {
	c := &splitCmd{
		Command: cobra.Command{
			Use:   "split [files...]",
			Short: "Split files or stdin into sentences",
			Long: `Split files or stdin into sentences.

Rules are merged in order: template, --max-quote-depth, --rules files and
finally the --rule-set file from --rules-dir. Later sets override the quote
depth of earlier ones.`,
		},
		splitOptions: splitOptions{
			template: templateJapanese,
			format:   formatText,
		},
	}

	c.RunE = func(cmd *cobra.Command, files []string) error {
		c.depthSet = cmd.Flags().Changed("max-quote-depth")
		return c.run(cmd.InOrStdin(), cmd.OutOrStdout(), files)
	}

	flags := c.Flags()
	flags.StringArrayVarP(&c.rules, "rules", "r", nil,
		"Add a YAML or JSON rules file (repeatable)")
	flags.StringVar(&c.rulesDir, "rules-dir", "",
		"Set root directory of named rule sets")
	flags.StringVarP(&c.ruleSet, "rule-set", "s", "",
		"Use named rule set from --rules-dir, e.g. news/ja")
	flags.StringVarP(&c.template, "template", "t", c.template,
		"Set base template: ja or none")
	flags.StringVarP(&c.format, "format", "f", c.format,
		"Set output format: text or jsonl")
	flags.IntVar(&c.maxQuoteDepth, "max-quote-depth", segrules.DefaultMaxQuoteDepth,
		"Set deepest protected quote nesting level")

	return c
}

// run segments stdin when files is empty, otherwise every file in order.
func (o *splitOptions) run(stdin io.Reader, out io.Writer, files []string) error {
	if o.format != formatText && o.format != formatJSONL {
		return fmt.Errorf("%w: %q", errUnknownFormat, o.format)
	}

	seg, err := o.segmenter()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return o.splitReader(seg, stdinName, stdin, out)
	}

	for _, name := range files {
		if err := o.splitFile(seg, name, out); err != nil {
			return err
		}
	}

	return nil
}

// segmenter compiles rules selected by flags.
func (o *splitOptions) segmenter() (*segrules.Segmenter, error) {
	base, err := templateRules(o.template)
	if err != nil {
		return nil, err
	}

	if o.depthSet {
		depth := o.maxQuoteDepth
		base = segrules.MergeRules(base, segrules.Rules{MaxQuoteDepth: &depth})
	}

	if len(o.rules) > 0 {
		fileRules, err := segrules.LoadRulesFiles(o.rules...)
		if err != nil {
			return nil, err
		}

		base = segrules.MergeRules(base, fileRules)
	}

	if o.ruleSet == "" {
		slog.Debug("compile rules", "template", o.template, "rules_files", len(o.rules))
		return base.Compile()
	}

	if o.rulesDir == "" {
		return nil, errRuleSetNoDir
	}

	provider, err := segrules.NewProvider(o.rulesDir, segrules.ProviderOptions{
		BaseRules:                base,
		EnableSymlinkEscapeCheck: true,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("load rule set", "rules_dir", o.rulesDir, "rule_set", o.ruleSet)
	return provider.Segmenter(o.ruleSet)
}

// splitFile segments one named file; "-" reads stdin.
func (o *splitOptions) splitFile(seg *segrules.Segmenter, name string, out io.Writer) error {
	if name == stdinName {
		return o.splitReader(seg, name, os.Stdin, out)
	}

	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return o.splitReader(seg, name, f, out)
}

// splitReader reads all of r and writes its segments to out.
func (o *splitOptions) splitReader(seg *segrules.Segmenter, name string, r io.Reader, out io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	text := string(data)

	var enc *json.Encoder
	if o.format == formatJSONL {
		enc = json.NewEncoder(out)
		enc.SetEscapeHTML(false)
	}

	count := 0
	for s := range seg.Segment(text) {
		count++

		if enc != nil {
			err = enc.Encode(segmentRecord{
				File:  name,
				Start: s.Start,
				End:   s.End,
				Text:  s.Slice(text),
			})
		} else {
			_, err = fmt.Fprintln(out, s.Slice(text))
		}

		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	slog.Debug("segmented", "file", name, "bytes", len(text), "segments", count)
	return nil
}

// templateRules returns base rules of a named template.
func templateRules(name string) (segrules.Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case templateJapanese:
		return segrules.JapaneseRules(), nil
	case templateNone, "":
		return segrules.Rules{}, nil
	default:
		return segrules.Rules{}, fmt.Errorf("%w: %q", errUnknownTemplate, name)
	}
}
