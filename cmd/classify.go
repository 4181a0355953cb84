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

var classifyCmd = &cobra.Command{
	Use:   "classify <tag>",
	Short: "Decompose a language tag into classified segments",
	Long: `Classify splits a candidate tag such as "az-Latn-AZ" into its
hyphen-delimited chunks and reports what each one is: a primary language,
extended language, script, region or variant subtag, a private-use code, a
whole grandfathered/redundant legacy tag, or malformed.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	svc, err := loadedService()
	if err != nil {
		return err
	}

	segments := svc.Classify(args[0])
	if len(segments) == 0 {
		return fmt.Errorf("empty tag")
	}

	malformed := false
	for _, seg := range segments {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s [%d:%d]\n",
			seg.Text, seg.Kind, seg.Start, seg.Start+seg.Length)
		if seg.Kind == subtag.SegMalformed {
			malformed = true
		}
	}
	if malformed {
		return fmt.Errorf("tag %q contains malformed segments", args[0])
	}
	return nil
}
