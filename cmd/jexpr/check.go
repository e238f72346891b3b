package main

import (
	"fmt"
	"io"
	"os"

	"github.com/HyperLuna/jexpr"
	"github.com/HyperLuna/jexpr/astjson"
	"github.com/HyperLuna/jexpr/certify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	params     []string
	global     string
	globalThis bool
	policyFile string
	emit       string
	watch      bool

	allowThis       bool
	allowCalls      bool
	allowArrows     bool
	allowMutation   bool
	allowInspection bool
}

var checkCmd = &cobra.Command{
	Use:   "check [file.json]",
	Short: "Certify an expression tree",
	Long: `Certify an expression tree read as ESTree JSON from a file or stdin.

The expression is checked against the active syntax policy and every
free identifier is rewritten into a property access on the global
binding, when one is configured. On success the compiled function
source is printed; --emit ast prints the rewritten tree as JSON
instead.

Policy defaults admit calls and arrow functions. Individual switches
are toggled with the --allow-* flags or loaded together from a YAML
file with --policy.

Examples:
  # Certify against two parameters, free identifiers resolve via g
  jexpr check expr.json --param order --param g --global g

  # Read from stdin, resolve free identifiers onto the receiver
  cat expr.json | jexpr check --this

  # Strict policy from a file, print the rewritten tree
  jexpr check expr.json --policy strict.yaml --emit ast

  # Keep re-certifying as the parser dump changes
  jexpr check expr.json --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	f := checkCmd.Flags()
	f.StringArrayVarP(&checkFlags.params, "param", "p", nil, "bound parameter name (repeatable, in order)")
	f.StringVarP(&checkFlags.global, "global", "g", "", "parameter receiving free identifiers")
	f.BoolVar(&checkFlags.globalThis, "this", false, "resolve free identifiers onto `this`")
	f.StringVar(&checkFlags.policyFile, "policy", "", "YAML policy file")
	f.StringVar(&checkFlags.emit, "emit", "source", "output form: source, ast")
	f.BoolVarP(&checkFlags.watch, "watch", "w", false, "re-certify when the input file changes")

	f.BoolVar(&checkFlags.allowThis, "allow-this", false, "admit `this` expressions")
	f.BoolVar(&checkFlags.allowCalls, "allow-calls", true, "admit call and constructor expressions")
	f.BoolVar(&checkFlags.allowArrows, "allow-arrows", true, "admit arrow function expressions")
	f.BoolVar(&checkFlags.allowMutation, "allow-mutation", false, "admit assignment, update, and delete")
	f.BoolVar(&checkFlags.allowInspection, "allow-inspection", false, "admit typeof, in, and instanceof")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	params, opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	if checkFlags.watch {
		if path == "" {
			return fmt.Errorf("--watch requires an input file")
		}
		return watchCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), path, params, opts)
	}

	return checkOnce(cmd.OutOrStdout(), path, params, opts)
}

// buildOptions folds the policy file and command line flags into the
// certification options. Flags set explicitly on the command line win
// over the policy file.
func buildOptions(cmd *cobra.Command) ([]string, []jexpr.Option, error) {
	policy := certify.Baseline
	params := checkFlags.params
	global := checkFlags.global

	if checkFlags.policyFile != "" {
		file, err := loadPolicyFile(checkFlags.policyFile)
		if err != nil {
			return nil, nil, err
		}
		policy = file.policy()
		if len(params) == 0 {
			params = file.Params
		}
		if global == "" {
			global = file.Global
		}
		log.Debug().Str("file", checkFlags.policyFile).Msg("loaded policy file")
	}

	flagSwitches := map[string]*bool{
		"allow-this":       &policy.AllowThis,
		"allow-calls":      &policy.AllowCalls,
		"allow-arrows":     &policy.AllowArrows,
		"allow-mutation":   &policy.AllowMutation,
		"allow-inspection": &policy.AllowInspection,
	}
	flagValues := map[string]bool{
		"allow-this":       checkFlags.allowThis,
		"allow-calls":      checkFlags.allowCalls,
		"allow-arrows":     checkFlags.allowArrows,
		"allow-mutation":   checkFlags.allowMutation,
		"allow-inspection": checkFlags.allowInspection,
	}
	for name, target := range flagSwitches {
		if cmd.Flags().Changed(name) {
			*target = flagValues[name]
		}
	}

	opts := []jexpr.Option{certify.WithPolicy(policy)}
	switch {
	case checkFlags.globalThis:
		if global != "" {
			return nil, nil, fmt.Errorf("--this and --global are mutually exclusive")
		}
		opts = append(opts, certify.WithGlobalThis())
	case global != "":
		opts = append(opts, certify.WithGlobal(global))
	}
	return params, opts, nil
}

func checkOnce(out io.Writer, path string, params []string, opts []jexpr.Option) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	expr, err := astjson.Decode(data)
	if err != nil {
		return err
	}

	fn, err := jexpr.Compile(expr, params, opts...)
	if err != nil {
		return err
	}

	switch checkFlags.emit {
	case "source":
		fmt.Fprintln(out, fn.Source())
	case "ast":
		encoded, err := astjson.Encode(fn.Tree())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(encoded))
	default:
		return fmt.Errorf("unknown emit form %q (expected source or ast)", checkFlags.emit)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
