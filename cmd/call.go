package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/wct/webcams"
)

// callCmd performs an arbitrary API method
var callCmd = &cobra.Command{
	Use:   "call METHOD [key=value...]",
	Short: "Call any API method with explicit parameters",
	Long: `Call performs the given method identifier (for example
wct.webcams.list_new) with the key=value pairs that follow it. No
defaults are added.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(args[1:])
		if err != nil {
			return err
		}
		return runAPI(cmd, func(ctx context.Context, opts []webcams.CallOption) (webcams.Payload, error) {
			for _, opt := range opts {
				opt(params)
			}
			return client.Call(ctx, args[0], params)
		})
	},
}

// urlCmd prints the request URL without sending it
var urlCmd = &cobra.Command{
	Use:     "url METHOD [key=value...]",
	Short:   "Print the request URL for a method without calling it",
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(append(args[1:], extraArgs...))
		if err != nil {
			return err
		}

		requestURL := client.URL(args[0], params)
		if showDevID, _ := cmd.Flags().GetBool("show-devid"); !showDevID {
			requestURL = webcams.RedactURL(requestURL)
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), requestURL)
		return err
	},
}

func init() {
	urlCmd.Flags().Bool("show-devid", false, "print the developer ID instead of redacting it")

	rootCmd.AddCommand(callCmd, urlCmd)
}
