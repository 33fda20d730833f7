package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/townsfolk/internal/games/townsfolk"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Explain how to play",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(townsfolk.Rules)
		fmt.Println()
		fmt.Println("Controls:", townsfolk.New(townsfolk.Variants[0]).Controls())
	},
}
