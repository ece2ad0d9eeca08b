package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"classdump"
)

func main() {
	var outputPath string

	rootCmd := &cobra.Command{
		Use:   "classdump <classfile>",
		Short: "Decode a JVM class file into JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read class file: %w", err)
			}

			out, err := classdump.Dump(data)
			if err != nil {
				return fmt.Errorf("decode class file: %w", err)
			}

			if outputPath == "" {
				_, err = os.Stdout.Write(append(out, '\n'))
				return err
			}
			return os.WriteFile(outputPath, out, 0o644)
		},
	}
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write JSON to this file instead of stdout")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
