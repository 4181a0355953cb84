/*
Copyright 2026 BCP47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cmd implements the bcp47 command line interface: classifying
// candidate tags, composing canonical tags from registry descriptions,
// listing registry contents, and refreshing the local snapshot from IANA.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonmeaden/bcp47/subtag"
)

var (
	version = "dev"
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:     "bcp47",
	Short:   "Query and validate BCP 47 language tags",
	Long: `A command line tool over the IANA Language Subtag Registry: classify
candidate language tags into typed segments, compose canonical tags from
plain-text names, list registry contents, and keep a local YAML snapshot of
the registry up to date.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/bcp47/config.yaml)")
	rootCmd.PersistentFlags().String("snapshot", "",
		"path to the registry snapshot file")
	rootCmd.PersistentFlags().String("registry-url", "",
		"registry URL (default: the IANA language subtag registry)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log load and refresh activity")

	_ = viper.BindPFlag("snapshot", rootCmd.PersistentFlags().Lookup("snapshot"))
	_ = viper.BindPFlag("registry_url", rootCmd.PersistentFlags().Lookup("registry-url"))
}

func initConfig() {
	home, _ := os.UserHomeDir()
	viper.SetDefault("snapshot", filepath.Join(home, ".config", "bcp47", "languages.yaml"))
	viper.SetDefault("registry_url", subtag.DefaultRegistryURL)
	viper.SetDefault("http_timeout", "30s")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(home, ".config", "bcp47"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; defaults and flags cover everything.
	_ = viper.ReadInConfig()
}

// logger returns a stderr logger when --verbose is set, otherwise a discard
// logger.
func logger() logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	return funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{Verbosity: 1})
}

// newService wires a Service from the resolved configuration.
func newService() *subtag.Service {
	timeout, err := time.ParseDuration(viper.GetString("http_timeout"))
	if err != nil {
		timeout = 30 * time.Second
	}
	store := &subtag.YAMLStore{Path: viper.GetString("snapshot")}
	fetcher := &subtag.HTTPFetcher{
		URL:    viper.GetString("registry_url"),
		Client: &http.Client{Timeout: timeout},
	}
	return subtag.NewService(store, fetcher, subtag.WithLogger(logger()))
}

// loadedService wires a Service and loads the snapshot, directing the user
// to refresh when no snapshot exists yet.
func loadedService() (*subtag.Service, error) {
	svc := newService()
	if err := svc.Load(); err != nil {
		return nil, fmt.Errorf("%w\nRun 'bcp47 refresh' to download the registry", err)
	}
	return svc, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
