// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZeyadKm/airlit/internal/mailer"
	"github.com/ZeyadKm/airlit/internal/review"
	"github.com/ZeyadKm/airlit/internal/sources"
	"github.com/ZeyadKm/airlit/pkg/types"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate the literature review and optionally email it",
	Long: `Review runs the full pipeline: retrieve recent articles from PubMed and
Crossref, deduplicate them, synthesise a themed narrative review with
numbered citations, print it, and optionally write it to a file and deliver
it by email.

Email delivery uses the email.* configuration keys (host, port, from, to,
username, password, use_tls); it is skipped when no host or recipients are
configured, or when --skip-email is set.`,
	RunE: runReview,
}

func init() {
	addFetchFlags(reviewCmd)
	reviewCmd.Flags().String("output", "", "path to write the review text")
	reviewCmd.Flags().Bool("skip-email", false, "generate the review without attempting to send email")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg := fetchConfig(cmd)

	articles, err := sources.Collect(cmd.Context(), defaultSources(cfg), cfg)
	if err != nil {
		return err
	}

	if len(articles) == 0 {
		fmt.Println(review.EmptyMessage)
		return nil
	}

	text := review.Synthesize(articles)

	fmt.Println("Generated literature review:")
	fmt.Println()
	fmt.Println(text)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing review to %s: %w", output, err)
		}
		fmt.Printf("\nSaved review to %s\n", output)
	}

	if skip, _ := cmd.Flags().GetBool("skip-email"); skip {
		return nil
	}
	return deliverReview(text)
}

// deliverReview emails the review when delivery is configured. Missing
// settings are not an error; incomplete settings are.
func deliverReview(text string) error {
	settings, err := mailer.SettingsFromConfig(emailConfig())
	if err != nil {
		return fmt.Errorf("email configuration: %w", err)
	}
	if settings == nil {
		fmt.Println("Email settings were not provided; skipping email delivery.")
		return nil
	}

	subject := fmt.Sprintf("Weekly Air Pollution Literature Review (%s)",
		time.Now().UTC().Format("2006-01-02"))
	if err := mailer.Send(settings, subject, text); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	fmt.Println("Email sent successfully.")
	return nil
}

// emailConfig reads delivery settings from the config file and environment,
// with the SMTP password falling back to the secrets directory.
func emailConfig() types.EmailConfig {
	return types.EmailConfig{
		Host:     viper.GetString("email.host"),
		Port:     viper.GetInt("email.port"),
		From:     viper.GetString("email.from"),
		To:       viper.GetString("email.to"),
		Username: secretDefault("smtp-username", viper.GetString("email.username")),
		Password: secretDefault("smtp-password", viper.GetString("email.password")),
		UseTLS:   viper.GetBool("email.use_tls"),
	}
}
