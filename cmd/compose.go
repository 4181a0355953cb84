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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonmeaden/bcp47/subtag"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Build canonical tags from registry description names",
	Long: `Compose builds canonical tag strings from plain-text registry
descriptions, e.g. "French" and "Canada" become "fr-CA". Names must match
the registry descriptions exactly; an unknown name fails the command.`,
}

var composeLanguageCmd = &cobra.Command{
	Use:   "language <language> [region]",
	Short: "Compose a language tag, optionally with a region",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return composed(cmd, func(ix *subtag.Index) string {
			region := ""
			if len(args) == 2 {
				region = args[1]
			}
			return ix.LanguageTag(args[0], region)
		})
	},
}

var composeExtlangCmd = &cobra.Command{
	Use:   "extlang <extlang>",
	Short: "Compose an extended language tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return composed(cmd, func(ix *subtag.Index) string {
			return ix.ExtLangTag(args[0])
		})
	},
}

var composeScriptCmd = &cobra.Command{
	Use:   "script <language> <script>",
	Short: "Compose a language tag carrying an explicit script",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return composed(cmd, func(ix *subtag.Index) string {
			return ix.ScriptTag(args[0], args[1])
		})
	},
}

var composeVariantCmd = &cobra.Command{
	Use:   "variant <variant> [region]",
	Short: "Compose a variant tag, optionally narrowed to a region",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return composed(cmd, func(ix *subtag.Index) string {
			region := ""
			if len(args) == 2 {
				region = args[1]
			}
			return ix.VariantTag(args[0], region)
		})
	},
}

func init() {
	composeCmd.AddCommand(composeLanguageCmd)
	composeCmd.AddCommand(composeExtlangCmd)
	composeCmd.AddCommand(composeScriptCmd)
	composeCmd.AddCommand(composeVariantCmd)
	rootCmd.AddCommand(composeCmd)
}

// composed runs one composer operation against the loaded index. Composer
// operations signal "not found" with an empty string, which becomes a
// command failure here.
func composed(cmd *cobra.Command, op func(*subtag.Index) string) error {
	svc, err := loadedService()
	if err != nil {
		return err
	}
	tag := op(svc.Index())
	if tag == "" {
		return fmt.Errorf("no registry entry matches the given name(s)")
	}
	fmt.Fprintln(cmd.OutOrStdout(), tag)
	return nil
}
