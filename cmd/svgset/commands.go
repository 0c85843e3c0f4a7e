package svgset

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/svgset/internal/version"
	"github.com/arthur-debert/svgset/pkg/cobrax/topics"
	"github.com/arthur-debert/svgset/pkg/commands/build"
	"github.com/arthur-debert/svgset/pkg/commands/genconfig"
	"github.com/arthur-debert/svgset/pkg/commands/inspect"
	"github.com/arthur-debert/svgset/pkg/config"
	"github.com/arthur-debert/svgset/pkg/logging"
	"github.com/arthur-debert/svgset/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		report     string
	)

	rootCmd := &cobra.Command{
		Use:     "svgset",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&report, "report", "auto", MsgFlagReport)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	if err := initTopics(rootCmd); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// initTopics installs the help command with the embedded markdown topics
func initTopics(rootCmd *cobra.Command) error {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		return err
	}
	tm, err := topics.Load(sub, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
		GroupID:    "misc",
	})
	if err != nil {
		return err
	}
	tm.Install(rootCmd)
	return nil
}

// newRenderer creates the renderer selected by --report
func newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	name, _ := cmd.Flags().GetString("report")
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, fmt.Errorf(MsgErrRenderer, err)
	}
	return renderer, nil
}

// loadConfig loads the layered configuration with the given overrides
func loadConfig(cmd *cobra.Command, overrides map[string]interface{}) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func newBuildCmd() *cobra.Command {
	var (
		prefix    string
		output    string
		format    string
		noSubdirs bool
		pretty    bool
		dryRun    bool
		strict    bool
	)

	cmd := &cobra.Command{
		Use:     "build [source-dir]",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if len(args) == 1 {
				overrides["source.dir"] = args[0]
			}
			if cmd.Flags().Changed("prefix") {
				overrides["naming.prefix"] = prefix
			}
			if cmd.Flags().Changed("output") {
				overrides["output.path"] = output
			}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			if cmd.Flags().Changed("no-subdirs") {
				overrides["source.include_subdirs"] = !noSubdirs
			}
			if cmd.Flags().Changed("pretty") {
				overrides["output.pretty"] = pretty
			}

			cfg, err := loadConfig(cmd, overrides)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := build.Build(build.BuildOptions{
				Config: cfg,
				DryRun: dryRun,
			})
			if result != nil && result.Report != nil {
				if rerr := renderer.RenderResult(result); rerr != nil {
					return rerr
				}
			}
			if err != nil {
				return fmt.Errorf(MsgErrBuild, err)
			}

			if strict && len(result.Report.Failures) > 0 {
				return fmt.Errorf(MsgErrBuildFailed, len(result.Report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&noSubdirs, "no-subdirs", false, MsgFlagNoSubdirs)
	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&strict, "strict", false, MsgFlagStrict)

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FormatJSON, config.FormatYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <manifest>",
		Short:   MsgInspectShort,
		Long:    MsgInspectLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := inspect.Inspect(inspect.InspectOptions{Path: args[0]})
			if err != nil {
				return fmt.Errorf(MsgErrInspect, err)
			}
			return renderer.RenderResult(result)
		},
	}
}

func newConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			renderer, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Config: cfg,
				Write:  write,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

// Execute runs the root command and prints any error to stderr
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.DetectFormat(os.Stderr), os.Stderr)
		if rerr == nil {
			_ = renderer.RenderError(err)
		}
		return 1
	}
	return 0
}
