package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"justcode/internal/app"
	"justcode/internal/config"
	"justcode/internal/log"
	"justcode/internal/paths"
	"justcode/internal/session"
	"justcode/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "justcode [file ...]",
	Short:   "A terminal editor for the Steps language",
	Long:    `A terminal editor with syntax highlighting for the Steps language, a file tree, markdown preview, and an embedded shell.`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/justcode/config.yaml)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable reloading open files when they change on disk")
	rootCmd.Flags().Bool("no-restore", false,
		"do not restore the previous session's tabs")
	rootCmd.Flags().Bool("debug", false,
		"write a debug log to justcode.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_file_tree", defaults.UI.ShowFileTree)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("editor.tab_width", defaults.Editor.TabWidth)
	viper.SetDefault("session.restore", defaults.Session.Restore)

	viper.SetEnvPrefix("JUSTCODE")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .justcode/config.yaml (current directory)
		// 2. ~/.config/justcode/config.yaml (user config)
		if _, err := os.Stat(".justcode/config.yaml"); err == nil {
			viper.SetConfigFile(".justcode/config.yaml")
		} else {
			viper.AddConfigPath(paths.ConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere; create the default one.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			defaultPath := paths.ConfigFile()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("JUSTCODE_DEBUG") != "" {
		cleanup, err := log.Init("justcode.log")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.AutoReload = false
	}
	restore := cfg.Session.Restore
	if noRestore, _ := cmd.Flags().GetBool("no-restore"); noRestore {
		restore = false
	}

	switch cfg.Theme.Mode {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	// Session persistence is best-effort; the editor works without it.
	var store *session.Store
	if dbPath, err := paths.SessionDB(); err == nil {
		if s, err := session.Open(dbPath); err == nil {
			store = s
		} else {
			log.ErrorErr(log.CatSession, "session store unavailable", err, "path", dbPath)
		}
	}

	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = paths.ConfigFile()
	}

	zone.NewGlobal()
	model, err := app.New(app.Config{
		Config:     cfg,
		ConfigPath: configFilePath,
		WorkDir:    workDir,
		Store:      store,
		Restore:    restore,
		Paths:      args,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if store != nil {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
