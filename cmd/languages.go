package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satriahrh/suara/domain"
	"github.com/satriahrh/suara/internal/config"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Print the languages the configured backends support",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper(), configFile)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.UpstreamTimeout)
		defer cancel()

		b, err := newBackends(ctx, cfg, zap.NewNop())
		if err != nil {
			return err
		}
		defer b.Close()

		translation, err := b.translator.SupportedLanguages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list translation languages: %w", err)
		}
		speech, err := b.textToSpeech.SupportedLanguages(ctx)
		if err != nil {
			return fmt.Errorf("failed to list speech languages: %w", err)
		}

		out := cmd.OutOrStdout()
		printLanguages(out, fmt.Sprintf("Translation (%s)", cfg.TranslatorProvider), translation)
		fmt.Fprintln(out)
		printLanguages(out, fmt.Sprintf("Text-to-speech (%s)", cfg.TTSProvider), speech)
		return nil
	},
}

func printLanguages(w io.Writer, title string, set domain.LanguageSet) {
	fmt.Fprintf(w, "%s: %d languages\n", title, len(set))
	for _, code := range set.Codes() {
		fmt.Fprintf(w, "  %-8s %s\n", code, set[code])
	}
}

