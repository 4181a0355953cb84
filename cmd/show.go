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
	"io"

	"github.com/spf13/cobra"

	"github.com/simonmeaden/bcp47/subtag"
)

var showCmd = &cobra.Command{
	Use:   "show <description>",
	Short: "Show every registry entry carrying a description",
	Long: `Show prints the full registry entry (or entries: grandfathered
descriptions are not unique) for a description, e.g. "show French" or
"show Klingon". Empty fields are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := loadedService()
	if err != nil {
		return err
	}

	records := svc.Index().FromDescription(args[0])
	if len(records) == 0 {
		return fmt.Errorf("no registry entry is described as %q", args[0])
	}
	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "--")
		}
		printRecord(cmd.OutOrStdout(), rec)
	}
	return nil
}

func printRecord(w io.Writer, rec *subtag.Record) {
	fmt.Fprintf(w, "type:            %s\n", rec.Kind)
	if rec.IsWholeTag() {
		fmt.Fprintf(w, "tag:             %s\n", rec.Tag)
	} else {
		fmt.Fprintf(w, "subtag:          %s\n", rec.Subtag)
	}
	for _, desc := range rec.Descriptions {
		fmt.Fprintf(w, "description:     %s\n", desc)
	}
	if !rec.Added.IsZero() {
		fmt.Fprintf(w, "added:           %s\n", rec.Added.Format("2006-01-02"))
	}
	if rec.HasSuppressScript() {
		fmt.Fprintf(w, "suppress-script: %s\n", rec.SuppressScript)
	}
	if rec.Macrolanguage != "" {
		fmt.Fprintf(w, "macrolanguage:   %s\n", rec.Macrolanguage)
	}
	for _, prefix := range rec.Prefixes {
		fmt.Fprintf(w, "prefix:          %s\n", prefix)
	}
	if rec.HasPreferredValue() {
		fmt.Fprintf(w, "preferred-value: %s\n", rec.PreferredValue)
	}
	if rec.IsMacrolanguage {
		fmt.Fprintln(w, "scope:           macrolanguage")
	}
	if rec.IsCollection {
		fmt.Fprintln(w, "scope:           collection")
	}
	if rec.IsDeprecated {
		fmt.Fprintln(w, "deprecated:      true")
	}
	if rec.HasComment() {
		fmt.Fprintf(w, "comments:        %s\n", rec.Comments)
	}
}
