// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [affiliation]",
	Short: "Classify a single affiliation string",
	Long: `Classify runs the affiliation heuristics on one string and prints the
verdict. Useful for tuning a custom keyword file before a full run.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("keywords", "", "YAML file overriding the built-in classification keywords")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	clf, err := loadClassifier(cmd)
	if err != nil {
		return err
	}

	v := clf.Classify(args[0])
	if !v.NonAcademic {
		fmt.Println("academic")
		return nil
	}
	fmt.Printf("non-academic (matched %q)\n", v.Matched)
	fmt.Printf("company: %s\n", v.Company)
	return nil
}
