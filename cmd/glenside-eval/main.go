// Command glenside-eval parses a Glenside expression in the textual
// concrete syntax (spec §6.3), binds a set of named tensors from a JSON
// file, interprets the expression, and prints the resulting Value as JSON.
// Its flag/log shape follows the teacher's cmd/zerfoo-predict.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
)

// EvalConfig is the command-line configuration for one evaluation run.
type EvalConfig struct {
	ExprPath    string `json:"expr_path"`
	Expr        string `json:"expr"`
	TensorsPath string `json:"tensors_path"`
	DType       string `json:"dtype"`
	OutputPath  string `json:"output_path"`
	Verbose     bool   `json:"verbose"`
}

func main() {
	config := parseEvalFlags()

	if config.Verbose {
		log.Printf("starting evaluation with config: %+v", config)
	}

	if err := runEval(config); err != nil {
		log.Printf("evaluation failed: %v", err)
		os.Exit(1)
	}
}

func parseEvalFlags() *EvalConfig {
	config := &EvalConfig{}

	flag.StringVar(&config.ExprPath, "expr-file", "", "path to a file containing the s-expression to evaluate")
	flag.StringVar(&config.Expr, "expr", "", "inline s-expression to evaluate (overrides -expr-file)")
	flag.StringVar(&config.TensorsPath, "tensors", "", "path to a JSON file binding symbol names to tensors (required)")
	flag.StringVar(&config.DType, "dtype", "float32", "element type: float32, float64, or int")
	flag.StringVar(&config.OutputPath, "output", "", "output path for the result JSON (default: stdout)")
	flag.BoolVar(&config.Verbose, "verbose", false, "verbose logging")

	flag.Parse()

	if config.Expr == "" && config.ExprPath == "" {
		log.Fatal("one of -expr or -expr-file is required")
	}

	if config.TensorsPath == "" {
		log.Fatal("-tensors is required")
	}

	return config
}

func runEval(config *EvalConfig) error {
	source := config.Expr
	if source == "" {
		data, err := os.ReadFile(config.ExprPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", config.ExprPath, err)
		}

		source = string(data)
	}

	tensorsData, err := os.ReadFile(config.TensorsPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", config.TensorsPath, err)
	}

	var specs map[string]TensorSpec
	if err := json.Unmarshal(tensorsData, &specs); err != nil {
		return fmt.Errorf("parsing %s: %w", config.TensorsPath, err)
	}

	result, err := evaluate(config.DType, source, specs)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	if config.OutputPath == "" {
		fmt.Println(string(out))

		return nil
	}

	if err := os.WriteFile(config.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", config.OutputPath, err)
	}

	if config.Verbose {
		log.Printf("result written to %s", config.OutputPath)
	}

	return nil
}
