package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"klafsa/internal/config"
	"klafsa/internal/texture"
)

var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "klafsa",
	Short: "klafsa - compress glTF textures to GPU formats",
	Long: "klafsa compresses the textures referenced by a glTF file into GPU texture formats\n" +
		"using basisu, kram or toktx, and writes one rewritten glTF file per output format.",
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.BackendName, "backend", "b", cfg.BackendName,
		"compression backend ("+strings.Join(backendNames(), ", ")+")")
	flags.StringVar(&cfg.CodecName, "codec", "",
		"compression format (default: the backend's format; one of "+strings.Join(texture.FormatNames(), ", ")+")")
	flags.StringVar(&cfg.ContainerName, "container", "", "container format: basis or ktx2 (default: the codec's container)")
	flags.BoolVar(&cfg.CompressToAll, "all", false, "compress to every format a backend supports")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar((*string)(&cfg.ColorMode), "color", string(cfg.ColorMode), "color output: auto, always or never")
	flags.StringVar(&cfg.LogFile, "log-file", "", "also append log lines to this file")
	flags.BoolVar(&cfg.Plain, "plain", false, "disable the interactive progress view")
}

func backendNames() []string {
	backends := texture.AllBackends()
	names := make([]string, len(backends))
	for i, b := range backends {
		names[i] = b.String()
	}
	return names
}
