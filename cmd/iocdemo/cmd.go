package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/km-arc/go-ioc/examples/basic"
	"github.com/km-arc/go-ioc/framework/app"
	"github.com/km-arc/go-ioc/framework/container"
	"github.com/km-arc/go-ioc/framework/element"
)

type options struct {
	envFiles []string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "iocdemo",
		Short:         "Render the example component app wired through the container",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env", nil, "env files to load (default .env)")

	root.AddCommand(newServeCommand(opts), newRenderCommand(opts))
	return root
}

// bootstrap builds the application with the example provider registered.
func bootstrap(opts *options) (*app.Application, error) {
	a, err := app.New(opts.envFiles...)
	if err != nil {
		return nil, err
	}
	if err := a.Register(basic.Provider{}); err != nil {
		return nil, err
	}
	return a, nil
}

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the example app over HTTP on APP_PORT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			routes(a)
			return a.Run(cmd.Context())
		},
	}
}

func routes(a *app.Application) {
	a.Mount("/", "App")
	a.Mount("/user", "UserInfo")
	a.Mount("/counter", "Counter")

	a.Router().Post("/fetch", func(w http.ResponseWriter, r *http.Request) {
		container.Resolve[basic.FetchAction](a.Container, "fetchAction")()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	})
}

func newRenderCommand(opts *options) *cobra.Command {
	var props []string
	cmd := &cobra.Command{
		Use:   "render [component]",
		Short: "Print a component's HTML (default App)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "App"
			if len(args) == 1 {
				name = args[0]
			}
			p, err := parseProps(props)
			if err != nil {
				return err
			}
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			if err := a.Boot(); err != nil {
				return err
			}
			html, err := a.Render(name, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&props, "prop", "p", nil, "prop as key=value (repeatable)")
	return cmd
}

// parseProps turns key=value pairs into string props, like query values.
func parseProps(pairs []string) (element.Props, error) {
	props := make(element.Props, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid prop %q, want key=value", pair)
		}
		props[k] = v
	}
	return props, nil
}
