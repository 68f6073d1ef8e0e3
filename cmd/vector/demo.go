package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cfoust/geom/pkg/config"
	"github.com/cfoust/geom/pkg/geom"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func formatValue(value any, repr bool) string {
	switch value := value.(type) {
	case geom.Vector:
		if repr {
			return value.GoString()
		}
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	return fmt.Sprint(value)
}

// formatExpression renders an operation the way it would be written by
// hand, e.g. "(1, 2) + (3, 5, 9)".
func formatExpression(op geom.Op, lhs, rhs any, repr bool) string {
	switch op {
	case geom.OpNeg:
		return "-" + formatValue(lhs, repr)
	case geom.OpAbs:
		return "abs(" + formatValue(lhs, repr) + ")"
	}
	return fmt.Sprintf(
		"%s %s %s",
		formatValue(lhs, repr),
		op.Symbol(),
		formatValue(rhs, repr),
	)
}

// evaluate applies a single operation and writes "expression = result".
func evaluate(out io.Writer, op geom.Op, lhs, rhs any, repr bool) error {
	result, err := geom.Apply(op, lhs, rhs)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(
		out,
		"%s = %s\n",
		formatExpression(op, lhs, rhs, repr),
		formatValue(result, repr),
	)
	return err
}

// runDemo prints the scenario's vectors and then every operation. A failed
// operation is logged and skipped; the count of failures is reported at
// the end.
func runDemo(out io.Writer, cfg *config.Config) error {
	demo := &cfg.Demo
	repr := cfg.Output.Repr

	for _, name := range demo.VectorNames() {
		vector, err := demo.Vector(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s = %s\n", name, formatValue(vector, repr))
	}

	failed := 0
	for i, operation := range demo.Operations {
		logger := log.With().
			Int("index", i).
			Str("op", operation.Op).
			Logger()

		err := func() error {
			op, err := geom.ParseOp(operation.Op)
			if err != nil {
				return err
			}

			lhs, err := demo.Resolve(operation.LHS)
			if err != nil {
				return err
			}

			rhs, err := demo.Resolve(operation.RHS)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("lhs", formatValue(lhs, true)).
				Str("rhs", formatValue(rhs, true)).
				Msg("evaluating")

			return evaluate(out, op, lhs, rhs, repr)
		}()
		if err != nil {
			logger.Error().Err(err).Msg("operation failed")
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf(
			"%d of %d operations failed",
			failed,
			len(demo.Operations),
		)
	}

	return nil
}

func demoCommand(out io.Writer, configs []string, repr bool) error {
	cfg, err := config.Process(configs)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %v", err)
	}

	if repr {
		cfg.Output.Repr = true
	}

	log.Debug().
		Int("vectors", len(cfg.Demo.Vectors)).
		Int("operations", len(cfg.Demo.Operations)).
		Msg("loaded scenario")

	return runDemo(out, cfg)
}

func configCommand(out io.Writer, configs []string) error {
	cfg, err := config.Process(configs)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %v", err)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	defer encoder.Close()

	return encoder.Encode(cfg)
}

// parseOperand reads a vector written as "1,2" or "(1, 2, 3)", or a bare
// number.
func parseOperand(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	text = strings.TrimPrefix(text, "Vector")
	text = strings.TrimSuffix(strings.TrimPrefix(text, "("), ")")

	if !strings.Contains(text, ",") {
		k, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", text)
		}
		return k, nil
	}

	fields := strings.Split(text, ",")
	components := make([]float64, 0, len(fields))
	for _, field := range fields {
		component, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q", field)
		}
		components = append(components, component)
	}

	return geom.FromSlice(components)
}

func evalCommand(out io.Writer, opName, lhsText, rhsText string, repr bool) error {
	op, err := geom.ParseOp(opName)
	if err != nil {
		return err
	}

	lhs, err := parseOperand(lhsText)
	if err != nil {
		return err
	}

	rhs, err := parseOperand(rhsText)
	if err != nil {
		return err
	}

	return evaluate(out, op, lhs, rhs, repr)
}
