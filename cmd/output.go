package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wct/selector"
	"github.com/s0up4200/wct/webcams"
)

// apiCall performs one catalog operation with the collected call options
type apiCall func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error)

// runAPI executes call and prints its payload
func runAPI(cmd *cobra.Command, call apiCall) error {
	sel, err := compileSelector()
	if err != nil {
		return err
	}

	opts, err := callOptions(cmd)
	if err != nil {
		return err
	}

	payload, err := call(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if fault := webcams.APIFault(payload); fault != nil {
		logger.Warn().
			Str("code", fault.Code).
			Str("message", fault.Message).
			Msg("webcams.travel reported an error")
	}

	return writePayload(cmd.OutOrStdout(), payload, sel, prettyOutput())
}

func compileSelector() (*selector.Selector, error) {
	if selectExpr == "" {
		return nil, nil
	}
	sel, err := selector.Compile(selectExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid --select expression: %w", err)
	}
	return sel, nil
}

func prettyOutput() bool {
	if rawOutput {
		return false
	}
	return cfg == nil || cfg.Output.Pretty
}

// writePayload prints payload, or the part of it picked by sel, as JSON
func writePayload(w io.Writer, payload webcams.Payload, sel *selector.Selector, pretty bool) error {
	result := payload
	if sel != nil {
		var err error
		result, err = sel.Apply(payload)
		if err != nil {
			return err
		}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

// callOptions turns the paging flags and --param values into call options.
// Paging flags are only forwarded when set so the API defaults apply.
func callOptions(cmd *cobra.Command) ([]webcams.CallOption, error) {
	var opts []webcams.CallOption

	intFlags := map[string]func(int) webcams.CallOption{
		"per-page": webcams.PerPage,
		"page":     webcams.Page,
		"limit":    webcams.Limit,
	}
	for _, name := range []string{"per-page", "page", "limit"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, intFlags[name](v))
	}

	stringFlags := map[string]func(string) webcams.CallOption{
		"unit":   webcams.RadiusUnit,
		"type":   webcams.RandomType,
		"mapapi": webcams.MapAPI,
	}
	for _, name := range []string{"unit", "type", "mapapi"} {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, stringFlags[name](v))
	}

	if cmd.Flags().Changed("radius") {
		v, err := cmd.Flags().GetFloat64("radius")
		if err != nil {
			return nil, err
		}
		opts = append(opts, webcams.Radius(v))
	}

	params, err := parseParams(extraArgs)
	if err != nil {
		return nil, err
	}
	for _, key := range params.Keys() {
		value, _ := params.Get(key)
		opts = append(opts, webcams.WithParam(key, value))
	}

	return opts, nil
}

// parseParams parses key=value pairs. Later pairs override earlier ones.
func parseParams(pairs []string) (*webcams.Params, error) {
	params := webcams.NewParams()
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (expected key=value)", pair)
		}
		params.Set(key, value)
	}
	return params, nil
}
