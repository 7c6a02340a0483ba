package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/catalog"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/config"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/store"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/terminal"
)

var (
	isTerminal      = terminal.IsInteractive
	loadConfigFunc  = config.Load
	openCatalogFunc = catalog.Open
	openStoreFunc   = store.Open
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, messages.RootFlagNoColor)

	cmd.AddCommand(
		newRandomCmd(opts),
		newStatsCmd(opts),
		newDiffCmd(opts),
		newPartsCmd(opts),
		newSavedCmd(opts),
		newDoctorCmd(opts),
		newInitCmd(opts),
		newFieldsCmd(),
		newWizardCmd(opts),
		newMcpPromptsCmd(opts),
	)
	return cmd
}

// loadConfig reads the config named by --config, or the default lookup.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, _, err := loadConfigFunc(o.configPath)
	return cfg, err
}

// load reads the config and the catalog it selects.
func (o *rootOptions) load() (*config.Config, *catalog.Catalog, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.CatalogPath()
	if err != nil {
		return nil, nil, err
	}
	cat, err := openCatalogFunc(cfg.Catalog.Version, path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cat, nil
}

// configFile names the file init and wizard write to.
func (o *rootOptions) configFile() string {
	if o.configPath == "" {
		return config.DefaultConfigFile
	}
	return o.configPath
}

func openStore(cfg *config.Config) (*store.Store, error) {
	path, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	return openStoreFunc(path)
}
