package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/service/scaffold"
)

var scaffoldDir string

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold NAME",
	Short: "Create a static starter project (index.html, style.css, script.js)",
	Args:  cobra.ExactArgs(1),
	RunE:  runScaffold,
}

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldDir, "dir", ".", "parent directory for the new project")
}

func runScaffold(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	res, err := scaffold.NewGenerator(fs).Generate(scaffoldDir, args[0])
	if err != nil {
		return err
	}

	logger.Debug("project scaffolded",
		zap.String("path", res.Path),
		zap.Bool("created", res.Created),
		zap.Strings("files", res.Files))

	name := color.New(color.Bold).Sprint(args[0])
	if res.Created {
		fmt.Fprintf(out, "📁 Folder '%s' created\n", name)
	} else {
		fmt.Fprintf(out, "%s Folder '%s' already exists\n", color.YellowString("⚠️"), name)
	}
	fmt.Fprintf(out, "✅ %s created inside '%s'\n", strings.Join(res.Files, ", "), name)
	return nil
}
