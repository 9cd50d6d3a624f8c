package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	appservice "github.com/turtacn/h5sign/internal/application/service"
	"github.com/turtacn/h5sign/internal/domain/profiles"
	domainservice "github.com/turtacn/h5sign/internal/domain/service"
	"github.com/turtacn/h5sign/internal/infrastructure/cache"
	"github.com/turtacn/h5sign/pkg/constants"
)

// services holds the in-process signing stack shared by the subcommands.
type services struct {
	algo    appservice.AlgoAppService
	command appservice.CommandAppService
}

type rootOptions struct {
	profilesFile   string
	defaultVersion string
}

// NewRootCmd builds the h5sign-cli command tree.
// NewRootCmd 构建 h5sign-cli 命令树，所有子命令共享一个进程内缓存的签名引擎。
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var svc *services

	root := &cobra.Command{
		Use:   "h5sign-cli",
		Short: "Sign JD web and client requests from the command line.",
		Long: `h5sign-cli computes h5st and sign signatures locally, using an in-process
fingerprint cache. Output is JSON on stdout.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.profilesFile, "profiles", "", "YAML file with extra version profiles")
	root.PersistentFlags().StringVar(&opts.defaultVersion, "default-version", constants.DefaultH5stVersion, "h5st version used when --version is omitted")

	load := func() (*services, error) {
		if svc != nil {
			return svc, nil
		}
		table := profiles.NewTable()
		if opts.profilesFile != "" {
			if _, err := table.LoadFile(opts.profilesFile); err != nil {
				return nil, err
			}
		}
		engine := domainservice.NewAlgoEngine(domainservice.EngineDeps{
			Profiles: table,
			Cache:    cache.NewMemoryStore(time.Minute),
		})
		svc = &services{
			algo:    appservice.NewAlgoAppService(engine, nil, opts.defaultVersion, nil),
			command: appservice.NewCommandAppService(engine, nil, nil),
		}
		return svc, nil
	}

	root.AddCommand(
		newH5stCmd(load),
		newSignCmd(load),
		newCommandCmd(load),
		newVersionsCmd(load),
	)
	return root
}

// Execute is the main entry point for the CLI application.
// Execute 是 CLI 应用程序的主入口点。
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
