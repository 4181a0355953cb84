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

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/simonmeaden/bcp47/subtag"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Download the registry and update the local snapshot",
	Long: `Refresh downloads the IANA Language Subtag Registry, parses it, and
replaces the local snapshot when the downloaded registry is strictly newer
than the snapshot's file date and parsed without errors. Otherwise the
existing snapshot is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	svc := newService()

	// An existing snapshot supplies the file date the download is gated
	// against. Starting fresh is fine: the zero date accepts anything.
	if err := svc.Load(); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "current snapshot file date: %s\n",
			svc.FileDate().Format("2006-01-02"))
	}

	err := svc.Refresh(cmd.Context())
	switch {
	case errors.Is(err, subtag.ErrNotNewer):
		fmt.Fprintln(cmd.OutOrStdout(), "snapshot already up to date")
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "snapshot updated to %s (%s)\n",
		svc.FileDate().Format("2006-01-02"), viper.GetString("snapshot"))
	return nil
}
