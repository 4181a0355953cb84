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
)

var listSubtags bool

var listCmd = &cobra.Command{
	Use:       "list <kind>",
	Short:     "List registry descriptions (or subtags) of one kind",
	ValidArgs: []string{"languages", "extlangs", "scripts", "regions", "variants", "grandfathered", "redundant"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runList,
}

func init() {
	listCmd.Flags().BoolVar(&listSubtags, "subtags", false,
		"list subtags (or full tags) instead of descriptions")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	svc, err := loadedService()
	if err != nil {
		return err
	}
	ix := svc.Index()

	var entries []string
	switch args[0] {
	case "languages":
		entries = pick(ix.LanguageDescriptions, ix.LanguageSubtags)
	case "extlangs":
		entries = pick(ix.ExtLangDescriptions, ix.ExtLangSubtags)
	case "scripts":
		entries = pick(ix.ScriptDescriptions, ix.ScriptSubtags)
	case "regions":
		entries = pick(ix.RegionDescriptions, ix.RegionSubtags)
	case "variants":
		entries = pick(ix.VariantDescriptions, ix.VariantSubtags)
	case "grandfathered":
		entries = pick(ix.GrandfatheredDescriptions, ix.GrandfatheredTags)
	case "redundant":
		entries = pick(ix.RedundantDescriptions, ix.RedundantTags)
	}

	for _, entry := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), entry)
	}
	return nil
}

// pick chooses the description or subtag listing based on the --subtags
// flag.
func pick(descriptions, subtags func() []string) []string {
	if listSubtags {
		return subtags()
	}
	return descriptions()
}
