// Command devfolio runs a personal blog and portfolio site from a directory
// of Markdown content. Configuration comes from devfolio.yaml and/or
// DEVFOLIO_* environment variables.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oyilmaz/devfolio"
	"github.com/oyilmaz/devfolio/views"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "devfolio",
	Short: "Personal blog and project-portfolio server",
	Long: `devfolio serves a blog and project portfolio from Markdown files with
YAML front matter. Drafts are hidden, entries are sorted newest first,
tags become filter menus, and listings paginate at nine entries a page.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./devfolio.yaml)")
	serveCmd.Flags().String("addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func initConfig() error {
	viper.SetDefault("name", "Blog")
	viper.SetDefault("url", "http://localhost:3000")
	viper.SetDefault("addr", ":3000")
	viper.SetDefault("contentDir", "content")
	viper.SetDefault("pageSize", devfolio.DefaultPageSize)
	viper.SetDefault("cacheTTL", 5*time.Minute)
	viper.SetDefault("watchContent", true)
	viper.SetDefault("statsEnabled", false)
	viper.SetDefault("statsDatabasePath", "data/stats.db")
	viper.SetDefault("thumbnails", false)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("devfolio")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DEVFOLIO")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found: %w", cfgFile, err)
			}
			// No file is fine; env vars and defaults carry the config.
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func runServe() error {
	cfg := devfolio.SiteConfig{
		Name:        viper.GetString("name"),
		URL:         viper.GetString("url"),
		Description: viper.GetString("description"),
		Author:      viper.GetString("author"),

		Addr:       viper.GetString("addr"),
		ContentDir: viper.GetString("contentDir"),
		PageSize:   viper.GetInt("pageSize"),

		PreviewPassword: viper.GetString("previewPassword"),
		SessionSecret:   viper.GetString("sessionSecret"),
		CookieSecure:    viper.GetBool("cookieSecure"),

		EntryCacheTTL: viper.GetDuration("cacheTTL"),
		WatchContent:  viper.GetBool("watchContent"),

		StatsEnabled:      viper.GetBool("statsEnabled"),
		StatsDatabasePath: viper.GetString("statsDatabasePath"),

		Thumbnails: viper.GetBool("thumbnails"),
	}

	site := views.Site{
		Name:        cfg.Name,
		URL:         cfg.URL,
		Description: cfg.Description,
		Author:      cfg.Author,
	}

	app := devfolio.New(cfg, devfolio.DefaultViews(site))
	defer app.Close()
	return app.Start()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
