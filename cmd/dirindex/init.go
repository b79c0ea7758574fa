package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a config file interactively",
	Long: `Generate a dirindex config file by answering a few prompts.

You will be prompted for:
  - Directory to serve
  - Listen port
  - HTML layout (tiles or details)
  - Whether to show file type icons
  - Whether to include hidden entries
  - Whether to enable CORS, and for which origins`,
	RunE: runInit,
}

// yamlConfig mirrors the config file layout read by config.Load.
type yamlConfig struct {
	Server struct {
		Host string `yaml:"host,omitempty"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Listing struct {
		Root   string `yaml:"root"`
		Hidden bool   `yaml:"hidden"`
		Icons  bool   `yaml:"icons"`
		View   string `yaml:"view"`
	} `yaml:"listing"`
	CORS struct {
		Enabled        bool     `yaml:"enabled"`
		AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
	} `yaml:"cors"`
	Log struct {
		Level string `yaml:"level"`
		Mode  string `yaml:"mode"`
	} `yaml:"log"`
}

func init() {
	initCmd.Flags().String("output", "config.yaml", "path for the generated config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	rootPrompt := promptui.Prompt{
		Label:   "Directory to serve",
		Default: ".",
		Validate: func(input string) error {
			info, err := os.Stat(input)
			if err != nil {
				return fmt.Errorf("cannot stat %s: %w", input, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", input)
			}
			return nil
		},
	}
	root, err := rootPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}

	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: "3000",
		Validate: func(input string) error {
			port, parseErr := strconv.Atoi(input)
			if parseErr != nil || port < 1 || port > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return handlePromptError(err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("parse port: %w", err)
	}

	viewSelect := promptui.Select{
		Label: "HTML layout",
		Items: []string{"tiles", "details"},
	}
	_, view, err := viewSelect.Run()
	if err != nil {
		return handlePromptError(err)
	}

	icons := confirm("Show file type icons")
	hidden := confirm("Include hidden entries")

	corsEnabled := confirm("Enable CORS")
	var origins []string
	if corsEnabled {
		originsPrompt := promptui.Prompt{
			Label:   "Allowed origins (comma separated)",
			Default: "*",
		}
		raw, promptErr := originsPrompt.Run()
		if promptErr != nil {
			return handlePromptError(promptErr)
		}
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	var cfg yamlConfig
	cfg.Server.Port = port
	cfg.Listing.Root = root
	cfg.Listing.Hidden = hidden
	cfg.Listing.Icons = icons
	cfg.Listing.View = view
	cfg.CORS.Enabled = corsEnabled
	cfg.CORS.AllowedOrigins = origins
	cfg.Log.Level = "info"
	cfg.Log.Mode = "dev"

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if _, statErr := os.Stat(outputPath); statErr == nil {
		overwrite := promptui.Prompt{
			Label:     fmt.Sprintf("%s already exists. Overwrite", outputPath),
			IsConfirm: true,
		}
		if _, promptErr := overwrite.Run(); promptErr != nil {
			fmt.Println("Cancelled.")
			return nil //nolint:nilerr // User cancelled, not an error
		}
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	fmt.Printf("Wrote %s.\n", outputPath)
	fmt.Printf("Start the server with: dirindex serve --config %s\n", outputPath)
	return nil
}

// confirm runs a yes/no prompt; anything but an explicit yes counts as no.
func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
