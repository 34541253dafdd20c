/*
cmd/promptdemo/main.go

Copyright © 2025 Code Monkey Cybersecurity
Contact: git@cybermonkey.net.au

This software is dual-licensed under the Do No Harm License
and the GNU Affero General Public License v3 (AGPL-3.0-or-later).
You may use, modify, and distribute it under the terms of either license.
*/
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/CodeMonkeyCybersecurity/prompt/pkg/prompt"
)

var (
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var verbose bool

func initLogger() {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		level,
	)
	zap.ReplaceGlobals(zap.New(core))
}

func printResult(label string, value any) {
	if value == nil {
		fmt.Println(resultStyle.Render(label+":"), faintStyle.Render("(no answer)"))
		return
	}
	fmt.Println(resultStyle.Render(label+":"), fmt.Sprint(value))
}

func newAskCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Walk through one prompt of every kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := prompt.String(prompt.Options[string]{Prompt: "Name: ", Default: prompt.Ptr("anonymous")})
			if err != nil {
				return err
			}
			printResult("name", *name)

			age, err := prompt.Integer(prompt.Options[int]{Prompt: "Age (Enter to skip): ", AllowEmpty: true})
			if err != nil {
				return err
			}
			if age == nil {
				printResult("age", nil)
			} else {
				printResult("age", *age)
			}

			mode := prompt.EmailSimple
			if strict {
				mode = prompt.EmailStrict
			}
			email, err := prompt.Email(prompt.EmailOptions{
				Options: prompt.Options[string]{Prompt: "Email: "},
				Mode:    mode,
			})
			if err != nil {
				return err
			}
			printResult("email", *email)

			grade, err := prompt.Character(prompt.Options[string]{Prompt: "Grade [A-F]: "})
			if err != nil {
				return err
			}
			printResult("grade", *grade)

			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "use strict email validation")
	return cmd
}

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [choice]...",
		Short: "Select one item from a numbered list",
		RunE: func(cmd *cobra.Command, args []string) error {
			choices := args
			if len(choices) == 0 {
				choices = []string{"moe", "curly", "larry"}
			}
			picked, err := prompt.Choice(choices, prompt.ChoiceOptions{})
			if err != nil {
				return err
			}
			printResult("picked", *picked)
			return nil
		},
	}
}

func newConfirmCmd() *cobra.Command {
	var defaultYes bool

	cmd := &cobra.Command{
		Use:   "confirm",
		Short: "Ask a yes/no question",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := prompt.Boolean(prompt.BooleanOptions{Default: &defaultYes})
			if err != nil {
				return err
			}
			printResult("confirmed", ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&defaultYes, "default-yes", false, "answer yes on an empty line")
	return cmd
}

func newSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secret",
		Short: "Read a secret without echoing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := prompt.Secret(prompt.Options[string]{Prompt: "Secret: "})
			if err != nil {
				return err
			}
			printResult("secret length", len(*s))
			return nil
		},
	}
}

func main() {
	root := &cobra.Command{
		Use:   "promptdemo",
		Short: "Exercise the interactive prompting helpers",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newAskCmd(), newPickCmd(), newConfirmCmd(), newSecretCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
