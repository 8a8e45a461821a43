package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/a11ykit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runAudit(cmd *cobra.Command, args []string) error {
	engine, root, opts, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	issues := engine.AuditAll(root, opts)
	logger.Info("audit finished", zap.Int("issues", len(issues)))

	out := cmd.OutOrStdout()
	if auditJSON {
		enc := json.NewEncoder(out)
		for _, is := range issues {
			if err := enc.Encode(is); err != nil {
				return fmt.Errorf("encode issue: %w", err)
			}
		}
	} else {
		st := newStyles(out, colorMode)
		for i, is := range issues {
			fmt.Fprintln(out, st.issueLine(i+1, is))
		}
		fmt.Fprintln(out, st.summary(a11ykit.CountIssues(issues)))
	}

	if failOn == "" {
		return nil
	}
	threshold, err := parseSeverity(failOn)
	if err != nil {
		return err
	}
	for _, is := range issues {
		if is.Severity >= threshold {
			return fmt.Errorf("found %s severity issues", is.Severity)
		}
	}
	return nil
}

func runReport(cmd *cobra.Command, args []string) error {
	engine, root, _, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), engine.GenerateReport(root))
	return nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	engine, root, opts, err := prepare(cmd, args[0])
	if err != nil {
		return err
	}
	before := len(a11ykit.Dedupe(engine.AuditAll(root, opts)))
	engine.OptimizeAll(root, opts)
	after := len(a11ykit.Dedupe(engine.AuditAll(root, opts)))

	data, err := a11ykit.MarshalSnapshot(root)
	if err != nil {
		return err
	}
	if outputPath == "" {
		if _, err := cmd.OutOrStdout().Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	} else if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if showSummary {
		st := newStyles(cmd.ErrOrStderr(), colorMode)
		fmt.Fprintln(cmd.ErrOrStderr(), st.fixed(before, after))
	}
	return nil
}

func prepare(cmd *cobra.Command, input string) (*a11ykit.Engine, *a11ykit.Node, a11ykit.Options, error) {
	opts, err := parseOptions(optionList)
	if err != nil {
		return nil, nil, 0, err
	}
	engine, err := newEngine()
	if err != nil {
		return nil, nil, 0, err
	}
	root, err := loadTree(cmd.Context(), input)
	if err != nil {
		return nil, nil, 0, err
	}
	return engine, root, opts, nil
}

func parseSeverity(s string) (a11ykit.Severity, error) {
	for _, sev := range []a11ykit.Severity{a11ykit.SeverityLow, a11ykit.SeverityMedium, a11ykit.SeverityHigh} {
		if sev.String() == s {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}
